package errors

import (
	stderrors "errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	err := New(ErrCodeInvalidScenario, "cell count must be positive: %d", -1)
	want := "INVALID_SCENARIO: cell count must be positive: -1"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestError_WrapPreservesCause(t *testing.T) {
	cause := stderrors.New("bed floor reached")
	err := Wrap(ErrCodeBedExhausted, cause, "pass 3 on cell 12")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	got := err.Error()
	want := "BED_EXHAUSTED: pass 3 on cell 12: bed floor reached"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeConvergenceFailure, "no quiescence after 10000 sweeps")

	if !Is(err, ErrCodeConvergenceFailure) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeBedExhausted) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is() should not match plain errors")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeIndexOutOfRange, "cell 99")); got != ErrCodeIndexOutOfRange {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeIndexOutOfRange)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q for plain error, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidDirection, "unknown direction")
	if got := UserMessage(err); got != "unknown direction" {
		t.Errorf("UserMessage() = %q, want %q", got, "unknown direction")
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain")
	}
}
