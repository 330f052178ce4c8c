package thorvg

import (
	"errors"
	"testing"
)

func TestResult_Error(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{ResultSuccess, "success"},
		{ResultInvalidArguments, "invalid arguments"},
		{ResultInsufficientCondition, "insufficient condition"},
		{ResultFailedAllocation, "failed allocation"},
		{ResultMemoryCorruption, "memory corruption"},
		{ResultNotSupported, "not supported"},
		{Result(99), "unknown result"},
	}
	for _, tt := range tests {
		if got := tt.r.Error(); got != tt.want {
			t.Errorf("Result(%d).Error() = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestWrapf_IsSentinel(t *testing.T) {
	err := wrapf(ResultInvalidArguments, "SetMask: %s", "nil target")
	if !errors.Is(err, ErrInvalidArguments) {
		t.Error("wrapped error should match ErrInvalidArguments via errors.Is")
	}
	if errors.Is(err, ErrNotSupported) {
		t.Error("wrapped error should not match an unrelated sentinel")
	}
}
