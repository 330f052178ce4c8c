package lottie

// Context is the evaluation environment exposed to a property
// expression, mirroring the variables tvgLottieExpressions.cpp binds
// into its embedded JS-like interpreter: the current frame, the
// property's own layer/name, and the composition's frame rate (needed
// by loopIn/loopOut/time-based helpers).
type Context struct {
	FrameNo   float64
	FrameRate float64
	Layer     *Layer
	Property  string
}

// Evaluator overrides a keyframe-interpolated property value with the
// result of its Lottie expression string, spec.md 4.8's "Expressions"
// paragraph. No concrete JS-backed implementation ships here - the
// original's tvgLottieExpressions.cpp is ~49KB of bound helpers
// (linear/ease/wiggle/loopIn/loopOut/valueAtTime/...) backed by a full
// ExpressionEvaluator; reproducing that requires an embedded JS engine
// (goja is the ecosystem option, noted in DESIGN.md) which this package
// does not depend on. Builder holds an Evaluator in its Expressions field
// but does not call it: property values always come from keyframe
// interpolation.
type Evaluator interface {
	// EvaluateFloat returns the expression's result and true if expr
	// produced an override, or false to fall back to the
	// keyframe-interpolated value.
	EvaluateFloat(expr string, ctx Context, fallback float64) (float64, bool)
}

// NopEvaluator never overrides a property, so expressions are silently
// ignored and keyframe interpolation always wins - the Evaluator
// NewBuilder stores in Builder.Expressions.
type NopEvaluator struct{}

func (NopEvaluator) EvaluateFloat(_ string, _ Context, fallback float64) (float64, bool) {
	return fallback, false
}
