package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	apperrors "generationscli/internal/errors"
)

const suptitleSize = 20

// Figure is a row of plots under a common title
type Figure struct {
	Title  string
	Panels []*plot.Plot
}

// Render tiles the panels side by side on a w x h canvas of the given
// format (png, svg, pdf, eps, jpg, tif) and draws the title above them.
func (f *Figure) Render(w, h vg.Length, format string) (vg.CanvasWriterTo, error) {
	if len(f.Panels) == 0 {
		return nil, apperrors.NewRenderError("figure has no panels", nil).WithContext("figure", f.Title)
	}

	c, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return nil, apperrors.NewRenderError("failed to create canvas", err).
			WithContext("figure", f.Title).
			WithContext("format", format)
	}
	dc := draw.New(c)

	style := suptitleStyle()
	var titleBand vg.Length
	if f.Title != "" {
		titleBand = style.Height(f.Title) * 1.6
	}

	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(f.Panels),
		PadTop:    titleBand + vg.Millimeter*2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
		PadX:      vg.Millimeter * 4,
	}

	canvases := plot.Align([][]*plot.Plot{f.Panels}, tiles, dc)
	for i, p := range f.Panels {
		p.Draw(canvases[0][i])
	}

	if f.Title != "" {
		dc.FillText(style, vg.Point{
			X: (dc.Min.X + dc.Max.X) / 2,
			Y: dc.Max.Y - vg.Millimeter*2 - titleBand/2,
		}, f.Title)
	}

	return c, nil
}

func suptitleStyle() text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, vg.Points(suptitleSize)),
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: plot.DefaultTextHandler,
	}
}
