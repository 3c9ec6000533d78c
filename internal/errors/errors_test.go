package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	cause := stderrors.New("connection refused")
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain error", err: cause, want: ""},
		{name: "kinded", err: Wrap(AuthFailed, MsgInvalidCredentials, cause), want: AuthFailed},
		{name: "wrapped kinded", err: fmt.Errorf("login: %w", New(StorageFailed, "keyring locked")), want: StorageFailed},
		{
			name: "outermost kind wins",
			err:  Wrap(RegistrationFailed, MsgRegistrationFailed, Wrap(AuthFailed, MsgInvalidCredentials, cause)),
			want: RegistrationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	cause := stderrors.New("401 unauthorized")
	if got := Message(Wrap(AuthFailed, MsgInvalidCredentials, cause)); got != MsgInvalidCredentials {
		t.Errorf("Message() = %q, want %q", got, MsgInvalidCredentials)
	}
	if got := Message(cause); got != cause.Error() {
		t.Errorf("Message() = %q, want %q", got, cause.Error())
	}
	if got := Message(nil); got != "" {
		t.Errorf("Message(nil) = %q, want empty", got)
	}
}

func TestUnwrapReachesCause(t *testing.T) {
	cause := stderrors.New("dial tcp: timeout")
	err := Wrap(AuthFailed, MsgInvalidCredentials, cause)
	if !stderrors.Is(err, cause) {
		t.Fatalf("errors.Is(%v, cause) = false", err)
	}
	want := "auth_failed: Invalid email or password: dial tcp: timeout"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
