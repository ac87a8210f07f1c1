package pcm

import (
	"errors"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err     error
		message string
	}{
		{ErrNotMono, "stereo is not supported, use mono"},
		{ErrNot16Bit, "only 16-bit PCM is supported"},
		{ErrCompressed, "compressed audio is not supported"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if tt.err.Error() != tt.message {
				t.Errorf("Error message = %q, want %q", tt.err.Error(), tt.message)
			}
		})
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	baseErrors := []error{
		ErrNotMono,
		ErrNot16Bit,
		ErrCompressed,
	}

	for _, baseErr := range baseErrors {
		t.Run(baseErr.Error(), func(t *testing.T) {
			wrapped := errors.Join(errors.New("context"), baseErr)

			if !errors.Is(wrapped, baseErr) {
				t.Errorf("Wrapped error doesn't match base error %v", baseErr)
			}
		})
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	errs := []error{
		ErrNotMono,
		ErrNot16Bit,
		ErrCompressed,
	}

	messages := make(map[string]bool)
	for _, err := range errs {
		msg := err.Error()
		if messages[msg] {
			t.Errorf("Duplicate error message: %s", msg)
		}
		messages[msg] = true
	}
}
