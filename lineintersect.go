// Integer-only intersection of 2D line segments.
//
// This package intersects the infinite lines through two directed segments
// without any floating point math. Besides the intersection point, it reports
// which side of the joint between the segments is the outer (reflex) side,
// which is what you need to build a mitered stroke outline. Nearly parallel
// segments get an approximate point instead of a numerically unstable one, and
// the result says so.
//
// Coordinates up to ±MaxSafeCoordinate are always exact. For larger ones, use
// IntersectChecked, which reports overflow instead of returning garbage.
package lineintersect

import "github.com/osuushi/lineintersect/advanced"

type Point = advanced.Point
type Segment = advanced.Segment
type LineSide = advanced.LineSide
type LinearEquation = advanced.LinearEquation
type Intersection = advanced.Intersection
type Colinear = advanced.Colinear
type PointIntersection = advanced.PointIntersection
type OverflowError = advanced.OverflowError

const (
	Left  = advanced.Left
	Right = advanced.Right

	MaxSafeCoordinate = advanced.MaxSafeCoordinate
)

// Intersect the infinite lines through a and b. The result is either
// Colinear, when the lines are parallel, or a PointIntersection.
//
// The point is not checked against the bounds of either segment; use
// Segment.ContainsPoint if that matters.
func Intersect(a, b Segment) Intersection {
	return a.Intersect(b)
}

// Same as Intersect, but integer overflow anywhere in the computation is
// reported as an error wrapping an *OverflowError instead of silently
// producing a wrong result.
func IntersectChecked(a, b Segment) (result Intersection, err error) {
	defer func() {
		recoveredErr := advanced.HandleOverflowPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return a.IntersectOrPanic(b), nil
}

func LinearEquationFromSegment(s Segment) LinearEquation {
	return advanced.LinearEquationFromSegment(s)
}
