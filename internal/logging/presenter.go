// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	apperr "fitdash/cli/internal/errors"
)

// PresentError formats err for the terminal or a log line with secrets masked.
// A kinded error shows only its user-facing message unless detailed is set,
// in which case the whole cause chain is included.
func PresentError(err error, detailed bool) string {
	if err == nil {
		return ""
	}
	if detailed {
		return Mask(err.Error())
	}
	return Mask(apperr.Message(err))
}
