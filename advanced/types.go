package advanced

import "fmt"

// Points double as vectors. A line's direction and a line equation's normal
// are both stored as a Point, so it's up to the caller to keep track of which
// role a value is playing.
type Point struct {
	X int
	Y int
}

// Segments are directed. Reversing a segment flips the sides and the outer
// side of any joint it takes part in, but it does not change whether it is
// parallel to another segment.
type Segment struct {
	Start Point
	End   Point
}

// Which side of a directed line a point is on. Imagine standing on Start,
// looking towards End. Left is to your left, Right to your right.
type LineSide int

const (
	Left LineSide = iota
	Right
)

func (side LineSide) String() string {
	switch side {
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("LineSide(%d)", int(side))
}

func (side LineSide) Opposite() LineSide {
	if side == Left {
		return Right
	}
	return Left
}

// The result of intersecting two segments is either Colinear or a
// PointIntersection. Callers are expected to type switch over it, so the two
// outcomes can never be confused with each other.
type Intersection interface {
	fmt.Stringer

	// Dummy method that closes the set of Intersection types to the ones
	// enumerated below.
	intersectionTypeHint()
}

func (Colinear) intersectionTypeHint()          {}
func (PointIntersection) intersectionTypeHint() {}

// The infinite extensions of the two segments are parallel. This covers both
// segments on the same line and parallel segments some distance apart; the two
// are deliberately not told apart.
type Colinear struct{}

func (Colinear) String() string {
	return "colinear"
}

// The infinite extensions of the two segments cross at Point. Note that Point
// may be outside of either segment.
type PointIntersection struct {
	Point Point

	// The "outer" side of the joint, i.e. the side that has the joint's reflex
	// angle. This is used to find the outside edge of a corner when building a
	// stroke outline.
	//
	//   # Left outer side:
	//
	//    ⎯
	//   ╱
	//
	//   # Right outer side:
	//    │
	//   ╱
	OuterSide LineSide

	// Set when the segments were too close to parallel to solve for the
	// intersection, and Point is only the average of the two nearest endpoints.
	IsSpecialCase bool
}

func (pi PointIntersection) String() string {
	s := fmt.Sprintf("Point: %s, %s", pi.Point, pi.OuterSide)
	if pi.IsSpecialCase {
		s += ", special case"
	}
	return s
}
