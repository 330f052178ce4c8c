package thorvg

// Trim returns the portion of the path between arc-length fractions begin
// and end (each in [0,1], measured along the path's total length). If
// begin > end the trimmed region wraps around: the path is split into the
// [0,end] and [begin,1] pieces. When simultaneous is true and the path has
// multiple subpaths, the trim fraction is applied independently to each
// subpath rather than to the path's overall length - matching how ThorVG's
// trim path effect treats multi-contour shapes.
//
// Trim has no teacher equivalent (the teacher's Path has no arc-length
// trim); it is built from the same adaptive length machinery
// (cubicLengthRecursive/quadLengthRecursive) and per-segment Subsegment
// already defined on CubicBez/QuadBez in curve.go.
func (p *Path) Trim(begin, end float64, simultaneous bool) *Path {
	begin = clamp01(begin)
	end = clamp01(end)
	if begin == 0 && end == 1 {
		return p.Clone()
	}

	if simultaneous {
		result := NewPath()
		for _, sp := range p.collectSubpaths() {
			single := NewPath()
			replaySubpath(sp, single)
			trimmed := single.trimSingle(begin, end)
			appendPath(result, trimmed)
		}
		return result
	}
	return p.trimSingle(begin, end)
}

// trimSingle trims a path treated as one continuous arc-length domain.
func (p *Path) trimSingle(begin, end float64) *Path {
	const accuracy = 0.001
	total := p.Length(accuracy)
	if total <= 0 {
		return NewPath()
	}

	if begin <= end {
		return p.sliceByLength(begin*total, end*total)
	}

	// Wraparound: [begin,1] followed by [0,end].
	tail := p.sliceByLength(begin*total, total)
	head := p.sliceByLength(0, end*total)
	result := NewPath()
	appendPath(result, tail)
	appendPath(result, head)
	return result
}

// segment is one drawable element of a flattened-into-curves path, used
// internally by sliceByLength to walk arc length segment by segment.
type segment struct {
	kind int // 0=line, 1=quad, 2=cubic
	p0, p1, p2, p3 Point
	length float64
}

const (
	segLine = iota
	segQuad
	segCubic
)

// segments decomposes the path into a flat list of drawable segments with
// precomputed lengths, the step-count helper SPEC_FULL.md names for the
// stroker and now reused here for arc-length slicing.
func (p *Path) segments(accuracy float64) []segment {
	var out []segment
	var current, start Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			start = e.Point
			current = e.Point
		case LineTo:
			out = append(out, segment{kind: segLine, p0: current, p1: e.Point, length: current.Distance(e.Point)})
			current = e.Point
		case QuadTo:
			l := quadLength(current, e.Control, e.Point, accuracy)
			out = append(out, segment{kind: segQuad, p0: current, p1: e.Control, p2: e.Point, length: l})
			current = e.Point
		case CubicTo:
			l := cubicLength(current, e.Control1, e.Control2, e.Point, accuracy)
			out = append(out, segment{kind: segCubic, p0: current, p1: e.Control1, p2: e.Control2, p3: e.Point, length: l})
			current = e.Point
		case Close:
			if current != start {
				out = append(out, segment{kind: segLine, p0: current, p1: start, length: current.Distance(start)})
			}
			current = start
		}
	}
	return out
}

// sliceByLength returns the part of the path whose arc length falls within
// [from, to] (both absolute, in path units).
func (p *Path) sliceByLength(from, to float64) *Path {
	if to <= from {
		return NewPath()
	}
	const accuracy = 0.001
	segs := p.segments(accuracy)

	result := NewPath()
	var traveled float64
	started := false

	for _, s := range segs {
		segStart := traveled
		segEnd := traveled + s.length
		traveled = segEnd

		if segEnd <= from || segStart >= to {
			continue
		}

		lo := 0.0
		if from > segStart {
			lo = (from - segStart) / s.length
		}
		hi := 1.0
		if to < segEnd {
			hi = (to - segStart) / s.length
		}
		emitSubsegment(result, s, lo, hi, &started)
	}
	return result
}

// emitSubsegment appends the [lo,hi] sub-portion of a segment to result,
// issuing a MoveTo only for the first emitted piece.
func emitSubsegment(result *Path, s segment, lo, hi float64, started *bool) {
	switch s.kind {
	case segLine:
		a := s.p0.Lerp(s.p1, lo)
		b := s.p0.Lerp(s.p1, hi)
		if !*started {
			result.MoveTo(a.X, a.Y)
			*started = true
		}
		result.LineTo(b.X, b.Y)
	case segQuad:
		q := NewQuadBez(s.p0, s.p1, s.p2).Subsegment(lo, hi)
		if !*started {
			result.MoveTo(q.P0.X, q.P0.Y)
			*started = true
		}
		result.QuadraticTo(q.P1.X, q.P1.Y, q.P2.X, q.P2.Y)
	case segCubic:
		c := NewCubicBez(s.p0, s.p1, s.p2, s.p3).Subsegment(lo, hi)
		if !*started {
			result.MoveTo(c.P0.X, c.P0.Y)
			*started = true
		}
		result.CubicTo(c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y)
	}
}

// replaySubpath appends a single collected subpath onto dst as MoveTo
// followed by its elements, so it can be treated as an independent path.
func replaySubpath(sp subpath, dst *Path) {
	for _, elem := range sp.elements {
		switch e := elem.(type) {
		case MoveTo:
			dst.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			dst.LineTo(e.Point.X, e.Point.Y)
		case QuadTo:
			dst.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case CubicTo:
			dst.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		}
	}
	if sp.closed {
		dst.Close()
	}
}

// appendPath appends every element of src to dst without merging subpaths.
func appendPath(dst, src *Path) {
	for _, elem := range src.elements {
		switch e := elem.(type) {
		case MoveTo:
			dst.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			dst.LineTo(e.Point.X, e.Point.Y)
		case QuadTo:
			dst.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case CubicTo:
			dst.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case Close:
			dst.Close()
		}
	}
}
