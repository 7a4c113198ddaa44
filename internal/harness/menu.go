package harness

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/osuushi/lineintersect/internal/param"
)

// Layout of the parameter listing, in pixels. basicfont.Face7x13 is a fixed
// width font, so columns line up by character count.
const (
	menuCharWidth  = 7
	menuLineHeight = 13
	menuMargin     = 2
)

// List name and value of every parameter, one per line, with the values in a
// column after the longest name.
func drawMenu(dc *gg.Context, params []param.Parameter, c color.Color) {
	maxNameWidth := 0
	for _, p := range params {
		if len(p.Name) > maxNameWidth {
			maxNameWidth = len(p.Name)
		}
	}

	nameX := float64(menuMargin + menuCharWidth)
	valueX := nameX + float64((maxNameWidth+1)*menuCharWidth)
	y := float64(menuMargin)

	dc.SetColor(c)
	for _, p := range params {
		dc.DrawStringAnchored(p.Name, nameX, y, 0, 1)
		dc.DrawStringAnchored(p.Value.String(), valueX, y, 0, 1)
		y += menuLineHeight
	}
}
