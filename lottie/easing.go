package lottie

// cubicBezierEase solves the cubic-bezier timing curve Lottie stores as a
// keyframe's "o" (out tangent, at t=0) and "i" (in tangent, at t=1)
// handles: the curve runs from (0,0) to (1,1) through control points
// (ox,oy) and (ix,iy). Given the time fraction t within the segment,
// it returns the eased progress fraction - the same curve
// LottieBuilder's keyframe interpolation (tvgLottieModel.h's
// LottieScalarFrame/LottieVectorFrame) walks per property.
func cubicBezierEase(t, ox, oy, ix, iy float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	// Binary search for the curve parameter u whose x-coordinate equals t.
	lo, hi := 0.0, 1.0
	u := t
	for i := 0; i < 24; i++ {
		x := bezierComponent(u, 0, ox, ix, 1)
		if x < t {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return bezierComponent(u, 0, oy, iy, 1)
}

// bezierComponent evaluates a single cubic-bezier axis at parameter u with
// control values p0,p1,p2,p3.
func bezierComponent(u, p0, p1, p2, p3 float64) float64 {
	mu := 1 - u
	return mu*mu*mu*p0 + 3*mu*mu*u*p1 + 3*mu*u*u*p2 + u*u*u*p3
}
