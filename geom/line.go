package geom

import "math"

// Line is a directed segment between two distinct points. Start and End
// must differ by more than Epsilon; NewLine enforces this, but Line
// values built by struct literal (as Split does for its sub-segments
// and the orchestrator does for jump/fall links) skip the check for performance and must only ever be
// constructed from already-validated endpoints.
type Line struct {
	Start, End Point
}

// NewLine validates and builds a Line from two endpoints.
func NewLine(start, end Point) (Line, error) {
	l := Line{Start: start, End: end}
	if l.Start.Distance(l.End) <= Epsilon {
		return Line{}, ErrDegenerateLine
	}
	return l, nil
}

// Delta returns End-Start as a vector.
func (l Line) Delta() Point {
	return Point{X: l.End.X - l.Start.X, Y: l.End.Y - l.Start.Y}
}

// Length returns the Euclidean length of the segment.
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// UnitAxis returns the unit vector from Start to End.
func (l Line) UnitAxis() Point {
	length := l.Length()
	if length <= Epsilon {
		return Point{}
	}
	d := l.Delta()
	return Point{X: d.X / length, Y: d.Y / length}
}

// Normal returns the unit vector perpendicular to the segment, rotated
// 90 degrees counter-clockwise from UnitAxis.
func (l Line) Normal() Point {
	axis := l.UnitAxis()
	return Point{X: -axis.Y, Y: axis.X}
}

// MinX returns the smaller of the two endpoints' X coordinates.
func (l Line) MinX() float64 { return math.Min(l.Start.X, l.End.X) }

// MaxX returns the larger of the two endpoints' X coordinates.
func (l Line) MaxX() float64 { return math.Max(l.Start.X, l.End.X) }

// MinY returns the smaller of the two endpoints' Y coordinates.
func (l Line) MinY() float64 { return math.Min(l.Start.Y, l.End.Y) }

// MaxY returns the larger of the two endpoints' Y coordinates.
func (l Line) MaxY() float64 { return math.Max(l.Start.Y, l.End.Y) }

// IsHorizontal reports whether the segment's Y extent is within Epsilon
// of zero.
func (l Line) IsHorizontal() bool {
	return math.Abs(l.Start.Y-l.End.Y) <= Epsilon
}

// IsVertical reports whether the segment's X extent is within Epsilon
// of zero.
func (l Line) IsVertical() bool {
	return math.Abs(l.Start.X-l.End.X) <= Epsilon
}

// Slope returns the line's slope, or +/-Inf for a vertical segment.
func (l Line) Slope() float64 {
	dx := l.End.X - l.Start.X
	if math.Abs(dx) <= Epsilon {
		if l.End.Y > l.Start.Y {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	return (l.End.Y - l.Start.Y) / dx
}

// Intercept returns the Y-intercept of the infinite line through l, or
// NaN if the line is vertical.
func (l Line) Intercept() float64 {
	if l.IsVertical() {
		return math.NaN()
	}
	return l.Start.Y - l.Slope()*l.Start.X
}

// Centroid returns the segment's midpoint.
func (l Line) Centroid() Point {
	return Point{X: (l.Start.X + l.End.X) / 2, Y: (l.Start.Y + l.End.Y) / 2}
}

// Distance returns the perpendicular distance from p to the infinite
// line through l, clamped to the distance to the nearer endpoint when
// the foot of the perpendicular falls outside the segment.
func (l Line) Distance(p Point) float64 {
	d := l.Delta()
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq <= Epsilon*Epsilon {
		return l.Start.Distance(p)
	}

	// Project p onto the infinite line; t in [0,1] means the foot of
	// the perpendicular lies within the segment.
	t := ((p.X-l.Start.X)*d.X + (p.Y-l.Start.Y)*d.Y) / lenSq
	if t < 0 {
		return l.Start.Distance(p)
	}
	if t > 1 {
		return l.End.Distance(p)
	}
	foot := Point{X: l.Start.X + t*d.X, Y: l.Start.Y + t*d.Y}
	return foot.Distance(p)
}

// Split divides l into equal colinear sub-segments: starting from one,
// the segment count doubles until each has squared length at most
// targetLength^2, so the count is the smallest sufficient power of two
// (a 23-unit line with target 5 yields 8 segments), capped at
// maxSegments. If l is
// already no longer than targetLength, Split returns []Line{l}.
func (l Line) Split(targetLength float64, maxSegments int) []Line {
	if maxSegments <= 0 {
		maxSegments = 100
	}
	if targetLength <= 0 || l.Length() <= targetLength {
		return []Line{l}
	}

	n := 1
	targetSq := targetLength * targetLength
	for n < maxSegments {
		subLenSq := (l.Length() / float64(n)) * (l.Length() / float64(n))
		if subLenSq <= targetSq {
			break
		}
		n *= 2
	}
	if n > maxSegments {
		n = maxSegments
	}

	d := l.Delta()
	out := make([]Line, 0, n)
	prev := l.Start
	for i := 1; i <= n; i++ {
		frac := float64(i) / float64(n)
		next := Point{X: l.Start.X + d.X*frac, Y: l.Start.Y + d.Y*frac}
		out = append(out, Line{Start: prev, End: next})
		prev = next
	}
	return out
}

// LeftPoint returns the endpoint with the smaller X coordinate,
// breaking ties by keeping Start.
func (l Line) LeftPoint() Point {
	if l.End.X < l.Start.X {
		return l.End
	}
	return l.Start
}

// RightPoint returns the endpoint with the larger X coordinate,
// breaking ties by keeping End.
func (l Line) RightPoint() Point {
	if l.End.X >= l.Start.X {
		return l.End
	}
	return l.Start
}
