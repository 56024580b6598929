package geom

import "math"

// Rect is an axis-aligned rectangle in y-up world space: Top is the
// larger Y, Bottom the smaller; Right is the larger X, Left the smaller.
// NewRect normalizes whatever corners it is given so this invariant
// always holds.
type Rect struct {
	Top, Bottom, Left, Right float64
}

// NewRect builds a normalized Rect from two arbitrary corners.
func NewRect(x1, y1, x2, y2 float64) Rect {
	return Rect{
		Top:    math.Max(y1, y2),
		Bottom: math.Min(y1, y2),
		Left:   math.Min(x1, x2),
		Right:  math.Max(x1, x2),
	}
}

// Width returns Right-Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Top-Bottom.
func (r Rect) Height() float64 { return r.Top - r.Bottom }

// Area returns Width*Height.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Contains reports whether p lies within r, inclusive of its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Bottom && p.Y <= r.Top
}

// IntersectsWith reports whether r and other overlap, using strict
// inequalities on opposite edges so merely-touching rectangles do not
// count as intersecting.
func (r Rect) IntersectsWith(other Rect) bool {
	if r.Left >= other.Right || other.Left >= r.Right {
		return false
	}
	if r.Bottom >= other.Top || other.Bottom >= r.Top {
		return false
	}
	return true
}

// Merge returns the smallest rectangle containing both r and other.
func (r Rect) Merge(other Rect) Rect {
	return Rect{
		Top:    math.Max(r.Top, other.Top),
		Bottom: math.Min(r.Bottom, other.Bottom),
		Left:   math.Min(r.Left, other.Left),
		Right:  math.Max(r.Right, other.Right),
	}
}

// MergeEnlargement returns the absolute increase in area that merging
// other into r would incur: |area(r.Merge(other)) - area(r)|.
func (r Rect) MergeEnlargement(other Rect) float64 {
	return math.Abs(r.Merge(other).Area() - r.Area())
}

// Inflate expands r symmetrically: Left and Right each move out by w,
// Top and Bottom each move out by h. The orchestrator uses it to pad
// the rectangles of spatial-index entries.
func (r Rect) Inflate(w, h float64) Rect {
	return Rect{
		Top:    r.Top + h,
		Bottom: r.Bottom - h,
		Left:   r.Left - w,
		Right:  r.Right + w,
	}
}

// Above reports whether r is entirely above other (r's bottom is at or
// above other's top).
func (r Rect) Above(other Rect) bool {
	return r.Bottom >= other.Top
}

// Below reports whether r is entirely below other.
func (r Rect) Below(other Rect) bool {
	return r.Top <= other.Bottom
}

// LeftOf reports whether r is entirely to the left of other.
func (r Rect) LeftOf(other Rect) bool {
	return r.Right <= other.Left
}

// RightOf reports whether r is entirely to the right of other.
func (r Rect) RightOf(other Rect) bool {
	return r.Left >= other.Right
}

// AxisMinimum returns the rectangle's minimum coordinate on the given
// axis: Left for horizontal, Bottom for vertical.
func (r Rect) AxisMinimum(axis Axis) float64 {
	if axis == AxisHorizontal {
		return r.Left
	}
	return r.Bottom
}

// AxisMaximum returns the rectangle's maximum coordinate on the given
// axis: Right for horizontal, Top for vertical.
func (r Rect) AxisMaximum(axis Axis) float64 {
	if axis == AxisHorizontal {
		return r.Right
	}
	return r.Top
}

// OverlapsOnAxis reports whether the projection of l onto axis overlaps
// the projection of r onto axis, short-circuiting via Above/Below or
// LeftOf/RightOf depending on the axis.
func (r Rect) OverlapsOnAxis(l Line, axis Axis) bool {
	if axis == AxisHorizontal {
		lineMin, lineMax := l.MinX(), l.MaxX()
		if lineMax <= r.Left || lineMin >= r.Right {
			return false
		}
		return true
	}
	lineMin, lineMax := l.MinY(), l.MaxY()
	if lineMax <= r.Bottom || lineMin >= r.Top {
		return false
	}
	return true
}

// Anchor names a corner or edge-midpoint of a rectangle, used by
// SetLocation to pin a rectangle at a world point by that feature.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
	AnchorTopCenter
	AnchorBottomCenter
	AnchorLeftCenter
	AnchorRightCenter
	AnchorCenter
)

// SetLocation returns a copy of r translated so that its anchor feature
// sits exactly at p, preserving r's width and height.
func (r Rect) SetLocation(anchor Anchor, p Point) Rect {
	w, h := r.Width(), r.Height()
	var left, top float64
	switch anchor {
	case AnchorTopLeft:
		left, top = p.X, p.Y
	case AnchorTopRight:
		left, top = p.X-w, p.Y
	case AnchorBottomLeft:
		left, top = p.X, p.Y+h
	case AnchorBottomRight:
		left, top = p.X-w, p.Y+h
	case AnchorTopCenter:
		left, top = p.X-w/2, p.Y
	case AnchorBottomCenter:
		left, top = p.X-w/2, p.Y+h
	case AnchorLeftCenter:
		left, top = p.X, p.Y+h/2
	case AnchorRightCenter:
		left, top = p.X-w, p.Y+h/2
	case AnchorCenter:
		left, top = p.X-w/2, p.Y+h/2
	}
	return NewRect(left, top, left+w, top-h)
}
