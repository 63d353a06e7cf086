package errors

import (
	stdErrors "errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"validation", ErrValidation},
		{"duplicate email", ErrDuplicateEmail},
		{"invalid transition", ErrInvalidTransition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestTypedErrorsUnwrapToSentinels(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{"validation", NewValidationError("quantity", "must be greater than zero"), ErrValidation, "quantity: must be greater than zero"},
		{"duplicate", &DuplicateEmailError{Email: "a@x.com"}, ErrDuplicateEmail, "email a@x.com is already registered"},
		{"transition", &TransitionError{From: "DELIVERED", To: "CANCELLED"}, ErrInvalidTransition, "cannot move from DELIVERED to CANCELLED"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.sentinel) {
				t.Fatalf("expected %v to wrap %v", tc.err, tc.sentinel)
			}
			if tc.err.Error() != tc.message {
				t.Fatalf("unexpected message %q", tc.err.Error())
			}
		})
	}
}

func TestJoinedValidationErrorsStillMatch(t *testing.T) {
	err := stdErrors.Join(NewValidationError("product", "is required"), NewValidationError("price", "must be greater than zero"))
	if !stdErrors.Is(err, ErrValidation) {
		t.Fatalf("expected joined error to match ErrValidation")
	}

	var vErr *ValidationError
	if !stdErrors.As(err, &vErr) || vErr.Field != "product" {
		t.Fatalf("expected first validation error to be extracted, got %+v", vErr)
	}
}
