// Package harness renders the debug scenes.
//
// Each scene is an App: a handful of live parameters plus a Draw method. A
// frame is rendered by clearing the canvas, letting the app draw, and then
// listing its parameters in the top left corner, the way the interactive
// debuggers show their menu. There is no window or event loop; frames are
// written to PNG files or printed to an iTerm compatible terminal.
package harness

import (
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/lineintersect/internal/param"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/basicfont"
)

var (
	ClearColor color.Color = color.Black
	MenuColor  color.Color = color.White
)

type App interface {
	Name() string
	Title() string
	DisplaySize() image.Point

	// Handles onto the app's live state. Setting one of them changes what the
	// next Draw produces.
	Parameters() []param.Parameter

	Draw(dc *gg.Context) error
}

type Options struct {
	// Integer upscaling applied to the finished frame, so single pixels are
	// visible. Values below 2 leave the frame at display size.
	Scale int

	HideMenu bool
}

func Render(app App, opts Options) (image.Image, error) {
	size := app.DisplaySize()
	dc := gg.NewContext(size.X, size.Y)
	dc.SetColor(ClearColor)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	if err := app.Draw(dc); err != nil {
		return nil, errors.Wrapf(err, "drawing %s", app.Name())
	}
	if !opts.HideMenu {
		drawMenu(dc, app.Parameters(), MenuColor)
	}

	frame := dc.Image()
	if opts.Scale > 1 {
		frame = upscale(frame, opts.Scale)
	}
	return frame, nil
}

func upscale(src image.Image, factor int) image.Image {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst
}

func WritePNG(frame image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating %s", dir)
		}
	}
	return errors.Wrapf(gg.SavePNG(path, frame), "writing %s", path)
}

// Write the frame to path, then print it inline to w, which is normally the
// terminal. Only iTerm displays the result.
func ShowInTerminal(frame image.Image, path string, w io.Writer) error {
	if err := WritePNG(frame, path); err != nil {
		return err
	}
	return errors.Wrap(imgcat.CatFile(path, w), "printing frame")
}

// The center of pixel (x, y). Scenes work in whole pixels, while gg works in
// continuous coordinates where pixel (x, y) covers [x, x+1) × [y, y+1).
func pixelCenter(x, y int) (float64, float64) {
	return float64(x) + 0.5, float64(y) + 0.5
}
