package mvp

import (
	"errors"
	"strings"
	"testing"
)

// queue returns a fake glGetError reporting codes in order, then 0.
func queue(codes ...uint32) func() uint32 {
	return func() uint32 {
		if len(codes) == 0 {
			return 0
		}
		code := codes[0]
		codes = codes[1:]
		return code
	}
}

func TestDrainGLErrorsNone(t *testing.T) {
	if err := DrainGLErrors(queue()); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestDrainGLErrorsJoinsAll(t *testing.T) {
	err := DrainGLErrors(queue(0x502, 0x505))
	if err == nil {
		t.Fatal("Expected an error")
	}

	var glErr GLError
	if !errors.As(err, &glErr) || glErr != 0x502 {
		t.Errorf("Expected first GLError 0x502, got %v", glErr)
	}
	msg := err.Error()
	for _, name := range []string{"GL_INVALID_OPERATION", "GL_OUT_OF_MEMORY"} {
		if !strings.Contains(msg, name) {
			t.Errorf("Expected %q in %q", name, msg)
		}
	}
}

func TestDrainGLErrorsStops(t *testing.T) {
	calls := 0
	forever := func() uint32 {
		calls++
		return 0x507
	}
	if err := DrainGLErrors(forever); err == nil {
		t.Error("Expected an error")
	}
	if calls != maxGLErrors {
		t.Errorf("Expected %d calls, got %d", maxGLErrors, calls)
	}
}

func TestGLErrorUnknown(t *testing.T) {
	if got := GLError(0x1234).Error(); got != "GL_ERROR UNKNOWN: 0x1234" {
		t.Errorf("Unexpected message %q", got)
	}
}
