package harness

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/osuushi/lineintersect/advanced"
	"github.com/osuushi/lineintersect/internal/param"
)

// A thick polyline of up to five vertices. Each interior joint is marked with
// the outer side the stroke would need to extend towards, which is exactly
// what Intersect reports for the two segments meeting there.
type PolylineScene struct {
	Points      uint32
	Vertices    [5]advanced.Point
	StrokeWidth uint32
}

func NewPolylineScene() *PolylineScene {
	return &PolylineScene{
		Points: 5,
		Vertices: [5]advanced.Point{
			{X: 65, Y: 130},
			{X: 120, Y: 80},
			{X: 190, Y: 120},
			{X: 190, Y: 70},
			{X: 220, Y: 50},
		},
		StrokeWidth: 10,
	}
}

func (s *PolylineScene) Name() string             { return "polyline" }
func (s *PolylineScene) Title() string            { return "Polyline debugger" }
func (s *PolylineScene) DisplaySize() image.Point { return displaySize }

func (s *PolylineScene) Parameters() []param.Parameter {
	return []param.Parameter{
		param.New("points", param.Uint32(&s.Points)),
		param.New("p1", param.Point(&s.Vertices[0])),
		param.New("p2", param.Point(&s.Vertices[1])),
		param.New("p3", param.Point(&s.Vertices[2])),
		param.New("p4", param.Point(&s.Vertices[3])),
		param.New("p5", param.Point(&s.Vertices[4])),
		param.New("stroke", param.Uint32(&s.StrokeWidth)),
	}
}

// The vertices in use, which is the first Points of them.
func (s *PolylineScene) ActiveVertices() []advanced.Point {
	n := int(s.Points)
	if n > len(s.Vertices) {
		n = len(s.Vertices)
	}
	return s.Vertices[:n]
}

// A corner of the polyline and the result of intersecting the two segments
// that meet there.
type Joint struct {
	Vertex       advanced.Point
	Intersection advanced.Intersection
}

func (s *PolylineScene) Joints() []Joint {
	vertices := s.ActiveVertices()
	var joints []Joint
	for i := 1; i+1 < len(vertices); i++ {
		incoming := advanced.Segment{Start: vertices[i-1], End: vertices[i]}
		outgoing := advanced.Segment{Start: vertices[i], End: vertices[i+1]}
		joints = append(joints, Joint{
			Vertex:       vertices[i],
			Intersection: incoming.Intersect(outgoing),
		})
	}
	return joints
}

func (s *PolylineScene) Draw(dc *gg.Context) error {
	vertices := s.ActiveVertices()
	if len(vertices) == 0 {
		return nil
	}

	dc.SetHexColor("#00ff00")
	dc.SetLineWidth(float64(s.StrokeWidth))
	dc.SetLineJoin(gg.LineJoinBevel)
	dc.MoveTo(pixelCenter(vertices[0].X, vertices[0].Y))
	for _, v := range vertices[1:] {
		dc.LineTo(pixelCenter(v.X, v.Y))
	}
	dc.Stroke()

	dc.SetLineWidth(1)
	for _, joint := range s.Joints() {
		x, y := pixelCenter(joint.Vertex.X, joint.Vertex.Y)
		switch result := joint.Intersection.(type) {
		case advanced.Colinear:
			// Straight through, nothing to mark
		case advanced.PointIntersection:
			if result.OuterSide == advanced.Left {
				dc.SetHexColor("#ff6347")
			} else {
				dc.SetHexColor("#87ceeb")
			}
			dc.DrawCircle(x, y, 2)
			dc.Stroke()
			dc.DrawStringAnchored(result.OuterSide.String()[:1], x+float64(s.StrokeWidth), y, 0, 0.5)
		}
	}
	return nil
}
