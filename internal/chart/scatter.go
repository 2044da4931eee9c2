package chart

import (
	"math/rand/v2"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	apperrors "generationscli/internal/errors"
	"generationscli/pkg/contracts/domain"
)

const (
	MembersTitle = "Abgeordnete des 21. Bundestages nach Alter und Partei"

	// jitter is the largest horizontal offset of a point from its category
	jitter = 0.2
)

// jitterSeed keeps the point layout identical between runs
var jitterSeed = [2]uint64{21, 2025}

// MembersFigure plots every member's age above its party. The y axis spans
// the binned age range with a tick at every edge.
func MembersFigure(members domain.Roster, parties []string, palette Palette, edges []int) (*Figure, error) {
	if len(edges) < 2 {
		return nil, apperrors.NewRenderError("age axis needs at least two edges", nil)
	}

	plt := plot.New()
	plt.Y.Label.Text = "Alter"
	plt.X.Tick.Marker = indexTicks(parties)
	plt.Y.Tick.Marker = edgeTicks(edges)
	plt.Add(plotter.NewGrid())

	rng := rand.New(rand.NewPCG(jitterSeed[0], jitterSeed[1]))
	for i, name := range parties {
		group := members.Filter(name)
		if len(group) == 0 {
			continue
		}
		c, err := palette.Color(name)
		if err != nil {
			return nil, err
		}

		xys := make(plotter.XYs, len(group))
		for j, m := range group {
			xys[j] = plotter.XY{
				X: float64(i) + (rng.Float64()*2-1)*jitter,
				Y: float64(m.Age),
			}
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, apperrors.NewRenderError("failed to build member points", err).
				WithContext("party", name)
		}
		s.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(3), Shape: draw.CircleGlyph{}}
		plt.Add(s)
	}

	plt.X.Min, plt.X.Max = -0.5, float64(len(parties))-0.5
	plt.Y.Min, plt.Y.Max = float64(edges[0]), float64(edges[len(edges)-1])

	return &Figure{Title: MembersTitle, Panels: []*plot.Plot{plt}}, nil
}

func edgeTicks(edges []int) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(edges))
	for i, e := range edges {
		ticks[i] = plot.Tick{Value: float64(e), Label: strconv.Itoa(e)}
	}
	return ticks
}
