package advanced

import "fmt"

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (p Point) Add(q Point) Point {
	return add(wrapping{}, p, q)
}

func (p Point) Sub(q Point) Point {
	return sub(wrapping{}, p, q)
}

func (p Point) Mul(n int) Point {
	return Point{p.X * n, p.Y * n}
}

// Divide both coordinates by n, truncating toward zero.
func (p Point) Div(n int) Point {
	return div(wrapping{}, p, n)
}

// Rotate the vector by 90° around the origin. The direction is fixed: (1, 0)
// becomes (0, -1), which on a y-down screen is a counterclockwise turn.
func (p Point) Rotate90() Point {
	return rotate90(wrapping{}, p)
}

func (p Point) Dot(q Point) int {
	return dot(wrapping{}, p, q)
}

// The determinant of the 2x2 matrix with p and q as rows:
//
//	| p.X  p.Y |
//	| q.X  q.Y |
//
// This is the z component of the cross product, or twice the signed area of
// the triangle (0, p, q). Parallel vectors, including any vector with itself,
// give zero.
func (p Point) Determinant(q Point) int {
	return determinant(wrapping{}, p, q)
}

// Squared length of the vector from the origin to p.
func (p Point) LengthSquared() int {
	return dot(wrapping{}, p, p)
}

func add[A arithmetic](ar A, p, q Point) Point {
	return Point{ar.add(p.X, q.X), ar.add(p.Y, q.Y)}
}

func sub[A arithmetic](ar A, p, q Point) Point {
	return Point{ar.sub(p.X, q.X), ar.sub(p.Y, q.Y)}
}

func div[A arithmetic](ar A, p Point, n int) Point {
	return Point{ar.div(p.X, n), ar.div(p.Y, n)}
}

func rotate90[A arithmetic](ar A, p Point) Point {
	return Point{p.Y, ar.neg(p.X)}
}

func dot[A arithmetic](ar A, p, q Point) int {
	return ar.add(ar.mul(p.X, q.X), ar.mul(p.Y, q.Y))
}

func determinant[A arithmetic](ar A, p, q Point) int {
	return ar.sub(ar.mul(p.X, q.Y), ar.mul(p.Y, q.X))
}
