package thorvg

import "fmt"

// Result is a closed set of outcome kinds returned by fallible operations,
// following the teacher's plain-sentinel-error idiom (see NewMask, Dash
// clamping) generalized to an explicit, comparable error type instead of
// bare booleans. Result implements error so callers can use errors.Is.
type Result int

const (
	// ResultSuccess indicates the operation completed normally. Functions
	// that succeed return a nil error, never ResultSuccess as an error
	// value - it exists so Result's int values line up with a single
	// well-known "ok" case for logging and interop code.
	ResultSuccess Result = iota
	ResultInvalidArguments
	ResultInsufficientCondition
	ResultFailedAllocation
	ResultMemoryCorruption
	ResultNotSupported
	ResultUnknown
)

func (r Result) Error() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultInvalidArguments:
		return "invalid arguments"
	case ResultInsufficientCondition:
		return "insufficient condition"
	case ResultFailedAllocation:
		return "failed allocation"
	case ResultMemoryCorruption:
		return "memory corruption"
	case ResultNotSupported:
		return "not supported"
	default:
		return "unknown result"
	}
}

// Sentinel errors for errors.Is comparisons against the Result kinds above.
var (
	ErrInvalidArguments      = ResultInvalidArguments
	ErrInsufficientCondition = ResultInsufficientCondition
	ErrFailedAllocation      = ResultFailedAllocation
	ErrMemoryCorruption      = ResultMemoryCorruption
	ErrNotSupported          = ResultNotSupported
	ErrUnknown               = ResultUnknown
)

// wrapf formats an error message with the component and operation name,
// matching the teacher's log-message convention in logger.go.
func wrapf(result Result, format string, args ...any) error {
	return fmt.Errorf("%w: %s", result, fmt.Sprintf(format, args...))
}
