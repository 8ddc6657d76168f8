package placement

import "github.com/vovakirdan/pickup-arena/internal/core"

// PlacedSet is an ordered, append-only sequence of accepted points.
// The zero value is an empty set ready to use.
type PlacedSet struct {
	points []core.Point2D
}

// NewPlacedSet returns a set seeded with the given points, in order.
func NewPlacedSet(points ...core.Point2D) *PlacedSet {
	s := &PlacedSet{points: make([]core.Point2D, 0, len(points))}
	s.points = append(s.points, points...)
	return s
}

// Add appends p to the set.
func (s *PlacedSet) Add(p core.Point2D) {
	s.points = append(s.points, p)
}

// Len returns the number of points in the set.
func (s *PlacedSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.points)
}

// At returns the i-th accepted point.
func (s *PlacedSet) At(i int) core.Point2D {
	return s.points[i]
}

// Points returns a copy of the accepted points in placement order.
func (s *PlacedSet) Points() []core.Point2D {
	if s == nil {
		return nil
	}
	out := make([]core.Point2D, len(s.points))
	copy(out, s.points)
	return out
}

// Clone returns an independent copy of the set.
func (s *PlacedSet) Clone() PlacedSet {
	return PlacedSet{points: s.Points()}
}
