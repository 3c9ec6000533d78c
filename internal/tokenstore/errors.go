// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tokenstore

import "errors"

// errNotFound is returned by native backends when the key does not exist.
var errNotFound = errors.New("key not found")
