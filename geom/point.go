package geom

import (
	"fmt"
	"hash/fnv"
	"math"
)

// Epsilon is the tolerance below which two coordinates, or two points,
// are considered identical by the geometry package.
const Epsilon = 1e-3

// PointGridResolution is the positional resolution of a PointKey: two
// points whose coordinates round to the same multiple of this value on
// each axis collapse to the same graph node identity.
const PointGridResolution = 0.01

// Point is a 2D coordinate in the y-up world space the engine operates
// in (larger Y is "up").
type Point struct {
	X, Y float64
}

// Axis selects one of the two planar axes.
type Axis int

const (
	// AxisHorizontal is the X axis.
	AxisHorizontal Axis = iota
	// AxisVertical is the Y axis.
	AxisVertical
)

// PointKey returns a stable identity for p, derived from its
// coordinates rounded to two decimals. Points that differ only by
// floating-point noise produce the same key, which is what lets the
// traversal graph share a single Node instance across every Edge that
// meets at (approximately) the same location.
func PointKey(p Point) uint64 {
	canonical := fmt.Sprintf("%.2f,%.2f", roundTo(p.X, 2), roundTo(p.Y, 2))
	h := fnv.New64a()
	_, _ = h.Write([]byte(canonical))
	return h.Sum64()
}

func roundTo(v float64, decimals int) float64 {
	scale := 1.0
	for i := 0; i < decimals; i++ {
		scale *= 10
	}
	if v >= 0 {
		return float64(int64(v*scale+0.5)) / scale
	}
	return float64(int64(v*scale-0.5)) / scale
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
