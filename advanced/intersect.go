package advanced

// For coordinates within ±MaxSafeCoordinate, every intermediate value of
// Intersect fits in a 64 bit int. The largest of them is the squared
// denominator, which is bounded by (8·c²)² = 64·c⁴ < 2⁶³ for c = 2¹⁴. Outside
// this range, use IntersectOrPanic or the checked entry point in the root
// package.
const MaxSafeCoordinate = 1 << 14

// Intersect the infinite lines through two segments, using only integer math.
//
// This does not check that the intersection lies on either segment; see
// ContainsPoint for that. Outside of ±MaxSafeCoordinate, intermediate values
// can silently overflow and produce garbage.
//
// Inspired by https://stackoverflow.com/a/61485959/383609, which links to
// https://webdocs.cs.ualberta.ca/~graphics/books/GraphicsGems/gemsii/xlines.c
func (s Segment) Intersect(other Segment) Intersection {
	return intersect(wrapping{}, s, other)
}

// Like Intersect, but every operation is overflow checked. On overflow this
// panics with an *OverflowError, which HandleOverflowPanicRecover turns back
// into an error.
func (s Segment) IntersectOrPanic(other Segment) Intersection {
	return intersect(checked{}, s, other)
}

func intersect[A arithmetic](ar A, s, other Segment) Intersection {
	line1 := equationOf(ar, s)
	line2 := equationOf(ar, other)

	// The determinant of the system of the two line equations, to solve it
	// using Cramer's rule.
	denominator := determinant(ar, line1.NormalVector, line2.NormalVector)

	// The system has no single solution if the determinant is zero. The lines
	// are either parallel or the same line, and we don't care which.
	if denominator == 0 {
		return Colinear{}
	}

	outerSide := Left
	if denominator > 0 {
		outerSide = Right
	}

	// Special case: if the two lines are almost parallel, solving the system
	// amplifies rounding error into a point that can be far off. Return the
	// average of the end of this segment and the start of the other instead.
	if ar.mul(denominator, denominator) < dot(ar, delta(ar, s), delta(ar, other)) {
		return PointIntersection{
			Point:         div(ar, add(ar, s.End, other.Start), 2),
			OuterSide:     outerSide,
			IsSpecialCase: true,
		}
	}

	// The intersection point, with a method similar to the one described at
	// http://paulbourke.net/geometry/pointlineplane/#i2l
	originDistances := Point{line1.OriginDistance, line2.OriginDistance}
	xNumerator := determinant(ar, originDistances, Point{line1.NormalVector.Y, line2.NormalVector.Y})
	yNumerator := determinant(ar, Point{line1.NormalVector.X, line2.NormalVector.X}, originDistances)

	// Adding half the denominator (away from zero) before dividing rounds the
	// result instead of truncating it.
	offset := abs(ar, denominator) / 2

	return PointIntersection{
		Point: Point{
			X: ar.div(roundingOffset(ar, xNumerator, offset), denominator),
			Y: ar.div(roundingOffset(ar, yNumerator, offset), denominator),
		},
		OuterSide: outerSide,
	}
}

func roundingOffset[A arithmetic](ar A, numerator, offset int) int {
	if numerator < 0 {
		return ar.sub(numerator, offset)
	}
	return ar.add(numerator, offset)
}
