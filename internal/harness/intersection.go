package harness

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/osuushi/lineintersect/advanced"
	"github.com/osuushi/lineintersect/internal/param"
)

// Two segments and their intersection, recomputed on every frame. The point is
// circled in green, or in red when it came from the near parallel special case
// and is only approximate.
type IntersectionScene struct {
	Line1, Line2 advanced.Segment
}

func NewIntersectionScene() *IntersectionScene {
	return &IntersectionScene{
		Line1: advanced.Segment{
			Start: advanced.Point{X: 150, Y: 170},
			End:   advanced.Point{X: 170, Y: 200},
		},
		Line2: advanced.Segment{
			Start: advanced.Point{X: 120, Y: 130},
			End:   advanced.Point{X: 145, Y: 169},
		},
	}
}

func (s *IntersectionScene) Name() string             { return "line-intersection" }
func (s *IntersectionScene) Title() string            { return "Line intersection debugger" }
func (s *IntersectionScene) DisplaySize() image.Point { return displaySize }

func (s *IntersectionScene) Parameters() []param.Parameter {
	return []param.Parameter{
		param.New("l1_start", param.Point(&s.Line1.Start)),
		param.New("l1_end", param.Point(&s.Line1.End)),
		param.New("l2_start", param.Point(&s.Line2.Start)),
		param.New("l2_end", param.Point(&s.Line2.End)),
	}
}

// The text shown under the menu for a result.
func Label(result advanced.Intersection) string {
	switch result := result.(type) {
	case advanced.PointIntersection:
		label := fmt.Sprintf("Point: %s, %s", result.Point, result.OuterSide)
		if result.IsSpecialCase {
			label += " (special)"
		}
		return label
	}
	return "colinear"
}

func (s *IntersectionScene) Draw(dc *gg.Context) error {
	dc.SetLineWidth(1)
	dc.SetHexColor("#4682b4")
	strokeSegment(dc, s.Line1)
	dc.SetHexColor("#87ceeb")
	strokeSegment(dc, s.Line2)

	result := s.Line1.Intersect(s.Line2)
	if point, ok := result.(advanced.PointIntersection); ok {
		if point.IsSpecialCase {
			dc.SetHexColor("#ff6347")
		} else {
			dc.SetHexColor("#00ff7f")
		}
		x, y := pixelCenter(point.Point.X, point.Point.Y)
		dc.DrawCircle(x, y, 1.5)
		dc.Stroke()
	}

	dc.SetHexColor("#ffffff")
	dc.DrawStringAnchored(Label(result), 12, 60, 0, 1)
	return nil
}
