package advanced

// The implicit equation of the infinite line through a segment, stored as a
// normal vector and the distance to the origin. A point P is on the line iff
// P·NormalVector - OriginDistance == 0.
type LinearEquation struct {
	// Perpendicular to the line. Rather than a unit vector, this is the
	// segment's direction rotated by 90°, which keeps everything in integers.
	NormalVector Point

	// Distance from the origin, scaled up by the length of the normal vector,
	// so it doesn't directly correspond to a distance in pixels.
	OriginDistance int
}

func LinearEquationFromSegment(s Segment) LinearEquation {
	return equationOf(wrapping{}, s)
}

// The signed distance between the line and a point, scaled by the length of
// the normal vector. It is positive for points on the left side of the line and
// negative on the right. Only the sign, and comparisons between distances from
// the same equation, are meaningful.
func (e LinearEquation) Distance(p Point) int {
	return distance(wrapping{}, e, p)
}

// Check if a point is on the given side of the line. Points on the line are on
// both sides, so this always returns true for them.
func (e LinearEquation) CheckSide(p Point, side LineSide) bool {
	d := e.Distance(p)
	switch side {
	case Right:
		return d <= 0
	case Left:
		return d >= 0
	}
	return false
}

func equationOf[A arithmetic](ar A, s Segment) LinearEquation {
	normal := rotate90(ar, delta(ar, s))
	return LinearEquation{
		NormalVector:   normal,
		OriginDistance: dot(ar, s.Start, normal),
	}
}

func distance[A arithmetic](ar A, e LinearEquation, p Point) int {
	return ar.sub(dot(ar, p, e.NormalVector), e.OriginDistance)
}
