// Package geometry holds the computational geometry primitives used by the
// layout core and the validator that gates authored room geometry.
package geometry

import (
	"math"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
)

// Epsilon is the coordinate distance below which two vertices are the same point
const Epsilon = 1e-6

// Distance returns the euclidean distance between two points
func Distance(a, b layout.Point2D) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// SamePoint reports whether two points coincide within Epsilon
func SamePoint(a, b layout.Point2D) bool {
	return Distance(a, b) <= Epsilon
}

// SignedArea returns the shoelace area of the polygon.
// Positive for counterclockwise winding, negative for clockwise.
func SignedArea(vertices []layout.Point2D) float64 {
	n := len(vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += vertices[i].X * vertices[j].Y
		area -= vertices[j].X * vertices[i].Y
	}
	return area / 2
}

// PolygonArea returns the unsigned shoelace area
func PolygonArea(vertices []layout.Point2D) float64 {
	return math.Abs(SignedArea(vertices))
}

// IsClockwise reports whether the polygon winds clockwise in a y-up frame
func IsClockwise(vertices []layout.Point2D) bool {
	return SignedArea(vertices) < 0
}

// Perimeter returns the length of the closed outline
func Perimeter(vertices []layout.Point2D) float64 {
	n := len(vertices)
	if n < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		total += Distance(vertices[i], vertices[(i+1)%n])
	}
	return total
}

// PointInPolygon tests containment by ray casting. Points exactly on an
// edge may land on either side.
func PointInPolygon(pt layout.Point2D, vertices []layout.Point2D) bool {
	n := len(vertices)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi, vj := vertices[i], vertices[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Centroid returns the area centroid, or the vertex average for degenerate input
func Centroid(vertices []layout.Point2D) layout.Point2D {
	n := len(vertices)
	if n == 0 {
		return layout.Point2D{}
	}

	a := SignedArea(vertices)
	if n < 3 || math.Abs(a) < 1e-12 {
		var sx, sy float64
		for _, v := range vertices {
			sx += v.X
			sy += v.Y
		}
		return layout.Point2D{X: sx / float64(n), Y: sy / float64(n)}
	}

	var cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := vertices[i].X*vertices[j].Y - vertices[j].X*vertices[i].Y
		cx += (vertices[i].X + vertices[j].X) * cross
		cy += (vertices[i].Y + vertices[j].Y) * cross
	}
	f := 1.0 / (6.0 * a)
	return layout.Point2D{X: cx * f, Y: cy * f}
}

// orientation returns 0 for collinear, 1 for clockwise, 2 for counterclockwise
func orientation(p, q, r layout.Point2D) int {
	v := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case math.Abs(v) < 1e-10:
		return 0
	case v > 0:
		return 1
	default:
		return 2
	}
}

// onSegment reports whether q lies on segment pr, given the three are collinear
func onSegment(p, q, r layout.Point2D) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

// SegmentsIntersect reports whether segment p1p2 and segment p3p4 share a point.
// Touching endpoints and collinear overlaps count as intersections.
func SegmentsIntersect(p1, p2, p3, p4 layout.Point2D) bool {
	o1 := orientation(p1, p2, p3)
	o2 := orientation(p1, p2, p4)
	o3 := orientation(p3, p4, p1)
	o4 := orientation(p3, p4, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	switch {
	case o1 == 0 && onSegment(p1, p3, p2):
		return true
	case o2 == 0 && onSegment(p1, p4, p2):
		return true
	case o3 == 0 && onSegment(p3, p1, p4):
		return true
	case o4 == 0 && onSegment(p3, p2, p4):
		return true
	}
	return false
}

// Dedupe drops consecutive duplicate vertices and a closing vertex that repeats the first
func Dedupe(vertices []layout.Point2D) []layout.Point2D {
	out := make([]layout.Point2D, 0, len(vertices))
	for _, v := range vertices {
		if len(out) > 0 && SamePoint(out[len(out)-1], v) {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && SamePoint(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

// SelfIntersections returns the index pairs of non-adjacent edges that cross.
// Edge i runs from vertex i to vertex i+1, wrapping at the end.
func SelfIntersections(vertices []layout.Point2D) [][2]int {
	n := len(vertices)
	if n < 4 {
		return nil
	}

	var hits [][2]int
	for i := 0; i < n; i++ {
		a1, a2 := vertices[i], vertices[(i+1)%n]
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			b1, b2 := vertices[j], vertices[(j+1)%n]
			if SegmentsIntersect(a1, a2, b1, b2) {
				hits = append(hits, [2]int{i, j})
			}
		}
	}
	return hits
}
