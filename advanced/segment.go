package advanced

import "fmt"

func (s Segment) String() string {
	return fmt.Sprintf("%s -> %s", s.Start, s.End)
}

// The direction vector of the segment, End - Start.
func (s Segment) Delta() Point {
	return delta(wrapping{}, s)
}

func (s Segment) Reverse() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// Check whether p lies on the segment itself, endpoints included. Intersect
// works on the infinite lines through its segments, so this is how a caller
// tells whether an intersection point is actually on both of them.
func (s Segment) ContainsPoint(p Point) bool {
	if s.Delta().Determinant(p.Sub(s.Start)) != 0 {
		return false
	}
	minX, maxX := s.Start.X, s.End.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := s.Start.Y, s.End.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

func delta[A arithmetic](ar A, s Segment) Point {
	return sub(ar, s.End, s.Start)
}
