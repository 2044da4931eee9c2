package chart

import (
	"fmt"
	"image/color"
	"math"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"generationscli/internal/cohort"
	apperrors "generationscli/internal/errors"
	"generationscli/pkg/contracts/domain"
)

// Position selects the y axis labels of a panel inside a figure
type Position int

const (
	// PositionNone draws no y labels
	PositionNone Position = iota
	// PositionFirst draws the axis title and age ranges on the left
	PositionFirst
	// PositionLast draws generation names on the right
	PositionLast
)

func (p Position) String() string {
	switch p {
	case PositionNone:
		return "none"
	case PositionFirst:
		return "first"
	case PositionLast:
		return "last"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// PositionAt returns the position of panel i in a row of n panels
func PositionAt(i, n int) Position {
	switch {
	case i == 0:
		return PositionFirst
	case i == n-1:
		return PositionLast
	default:
		return PositionNone
	}
}

const (
	barThickness    = 0.8
	foregroundAlpha = 128
	yAxisLabel      = "Altersgruppe"
)

var (
	referenceColor  = color.NRGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}
	annotationColor = color.Black
)

// Panel is one pyramid chart
type Panel struct {
	Title     string
	Histogram domain.CohortHistogram
	Color     color.NRGBA
	Position  Position
	// Reference is drawn in grey beneath the histogram when set
	Reference *domain.CohortHistogram
}

// Plot builds the panel with the x axis fixed to [-xLimit, xLimit]
func (p Panel) Plot(xLimit float64) (*plot.Plot, error) {
	if p.Position < PositionNone || p.Position > PositionLast {
		return nil, apperrors.NewRenderError(fmt.Sprintf("unknown panel position %s", p.Position), nil).
			WithContext("panel", p.Title)
	}
	n := p.Histogram.Cohorts()
	if n == 0 {
		return nil, apperrors.NewRenderError("histogram has no cohorts", nil).WithContext("panel", p.Title)
	}
	if p.Reference != nil && p.Reference.Cohorts() != n {
		return nil, apperrors.NewRenderError(
			fmt.Sprintf("reference has %d cohorts, histogram %d", p.Reference.Cohorts(), n), nil).
			WithContext("panel", p.Title)
	}

	plt := plot.New()
	plt.Title.Text = p.Title

	if p.Reference != nil {
		plt.Add(&pyramidBars{values: p.Reference.Percentages, thickness: barThickness, color: referenceColor})
	}
	plt.Add(&pyramidBars{
		values:    p.Histogram.Percentages,
		thickness: barThickness,
		color:     Translucent(p.Color, foregroundAlpha),
	})

	annotations, err := percentLabels(p.Histogram.Percentages)
	if err != nil {
		return nil, apperrors.NewRenderError("failed to build annotations", err).WithContext("panel", p.Title)
	}
	if annotations != nil {
		plt.Add(annotations)
	}

	edges := p.Histogram.Edges
	switch p.Position {
	case PositionFirst:
		plt.Y.Label.Text = yAxisLabel
		plt.Y.Tick.Marker = indexTicks(cohort.RangeLabels(edges))
		plt.Y.Tick.Length = 0
		plt.Y.LineStyle.Width = 0
	case PositionLast:
		plt.HideY()
		names, err := sideLabels(cohort.CohortLabels(edges), xLimit)
		if err != nil {
			return nil, apperrors.NewRenderError("failed to build generation labels", err).
				WithContext("panel", p.Title)
		}
		plt.Add(names)
	default:
		plt.HideY()
	}

	plt.HideX()
	plt.X.Min, plt.X.Max = -xLimit, xLimit
	plt.Y.Min, plt.Y.Max = -0.5, float64(n)-0.5

	return plt, nil
}

// indexTicks places one label at every integer y
func indexTicks(labels []string) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(labels))
	for i, l := range labels {
		ticks[i] = plot.Tick{Value: float64(i), Label: l}
	}
	return ticks
}

// percentLabels centers the bold rounded percentage on every cohort.
// Cohorts that round to zero get no label; nil is returned when none do.
func percentLabels(percentages []float64) (*plotter.Labels, error) {
	var (
		xys    plotter.XYs
		labels []string
	)
	for i, v := range percentages {
		s := cohort.FormatPercent(v)
		if s == "" {
			continue
		}
		xys = append(xys, plotter.XY{X: 0, Y: float64(i)})
		labels = append(labels, s)
	}
	if len(labels) == 0 {
		return nil, nil
	}

	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].Color = annotationColor
		l.TextStyle[i].Font.Weight = xfont.WeightBold
		l.TextStyle[i].Font.Size = vg.Points(12)
		l.TextStyle[i].XAlign = text.XCenter
		l.TextStyle[i].YAlign = text.YCenter
	}
	return l, nil
}

// sideLabels writes labels just right of x, one per cohort. Labels reserve
// their glyph boxes, so the data area shrinks to make room.
func sideLabels(labels []string, x float64) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(labels))
	for i := range labels {
		xys[i] = plotter.XY{X: x, Y: float64(i)}
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	l.Offset = vg.Point{X: vg.Points(4)}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = text.XLeft
		l.TextStyle[i].YAlign = text.YCenter
	}
	return l, nil
}

// pyramidBars draws value i as a bar from -v to +v centered on y = i
type pyramidBars struct {
	values    []float64
	thickness float64
	color     color.Color
}

// Plot implements plot.Plotter
func (b *pyramidBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, v := range b.values {
		if v == 0 {
			continue
		}
		y := float64(i)
		pts := []vg.Point{
			{X: trX(-v), Y: trY(y - b.thickness/2)},
			{X: trX(v), Y: trY(y - b.thickness/2)},
			{X: trX(v), Y: trY(y + b.thickness/2)},
			{X: trX(-v), Y: trY(y + b.thickness/2)},
		}
		clipped := c.ClipPolygonXY(pts)
		if len(clipped) == 0 {
			continue
		}
		c.FillPolygon(b.color, clipped)
	}
}

// DataRange implements plot.DataRanger
func (b *pyramidBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	var widest float64
	for _, v := range b.values {
		widest = math.Max(widest, math.Abs(v))
	}
	return -widest, widest, -b.thickness / 2, float64(len(b.values)) - 1 + b.thickness/2
}
