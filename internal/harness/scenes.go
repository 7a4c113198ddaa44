package harness

import (
	"image"
	"sort"

	"github.com/fogleman/gg"
	"github.com/osuushi/lineintersect/advanced"
	"github.com/osuushi/lineintersect/internal/param"
)

var displaySize = image.Pt(256, 256)

// Every scene, by the name used on the command line. Each call returns a scene
// with its default parameters.
var Scenes = map[string]func() App{
	"line":              func() App { return NewLineScene() },
	"polyline":          func() App { return NewPolylineScene() },
	"line-intersection": func() App { return NewIntersectionScene() },
}

func SceneNames() []string {
	names := make([]string, 0, len(Scenes))
	for name := range Scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// A single segment with a configurable stroke width.
type LineScene struct {
	Start, End  advanced.Point
	StrokeWidth uint32
}

func NewLineScene() *LineScene {
	return &LineScene{
		Start:       advanced.Point{X: 128, Y: 128},
		End:         advanced.Point{X: 150, Y: 170},
		StrokeWidth: 1,
	}
}

func (s *LineScene) Name() string             { return "line" }
func (s *LineScene) Title() string            { return "Line debugger" }
func (s *LineScene) DisplaySize() image.Point { return displaySize }

func (s *LineScene) Parameters() []param.Parameter {
	return []param.Parameter{
		param.New("start", param.Point(&s.Start)),
		param.New("end", param.Point(&s.End)),
		param.New("stroke", param.Uint32(&s.StrokeWidth)),
	}
}

func (s *LineScene) Draw(dc *gg.Context) error {
	dc.SetHexColor("#00ff00")
	dc.SetLineWidth(float64(s.StrokeWidth))
	strokeSegment(dc, advanced.Segment{Start: s.Start, End: s.End})
	return nil
}

func strokeSegment(dc *gg.Context, segment advanced.Segment) {
	x1, y1 := pixelCenter(segment.Start.X, segment.Start.Y)
	x2, y2 := pixelCenter(segment.End.X, segment.End.Y)
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()
}
