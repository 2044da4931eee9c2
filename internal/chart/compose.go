package chart

import (
	"generationscli/internal/cohort"
	"generationscli/internal/config"
	"generationscli/pkg/contracts/domain"
)

const (
	PartiesTitle = "Altersstruktur der Fraktionen"
	NationTitle  = "Generationen in Deutschland, im Bundestag und in der Regierung"
)

// Layout holds the panel settings shared by both compositions
type Layout struct {
	XLimit        float64
	ShowReference bool
}

// LayoutFromConfig reads the layout from the charts configuration
func LayoutFromConfig(cfg config.ChartsConfig) Layout {
	return Layout{XLimit: cfg.XLimit, ShowReference: cfg.ShowReference}
}

func (l Layout) reference(s *cohort.Summary) *domain.CohortHistogram {
	if !l.ShowReference {
		return nil
	}
	ref := s.Population
	return &ref
}

// PartiesPalette colors the configured parties plus the whole legislature
func PartiesPalette(parties []config.PartyConfig) (Palette, error) {
	p, err := NewPalette(parties)
	if err != nil {
		return Palette{}, err
	}
	return p.With(config.LegislatureGroup, config.LegislatureColor)
}

// NationPalette colors the nation, the legislature and the executive. An
// empty executiveHex derives the executive color from the legislature's.
func NationPalette(executiveHex string) (Palette, error) {
	p, err := Palette{}.With(config.NationGroup, config.NationColor)
	if err != nil {
		return Palette{}, err
	}
	if p, err = p.With(config.LegislatureGroup, config.LegislatureColor); err != nil {
		return Palette{}, err
	}
	if executiveHex != "" {
		return p.With(config.ExecutiveGroup, executiveHex)
	}
	legislature, err := p.Color(config.LegislatureGroup)
	if err != nil {
		return Palette{}, err
	}
	return p.WithColor(config.ExecutiveGroup, DeriveExecutiveColor(legislature)), nil
}

// PartiesFigure shows the legislature followed by every party, each over
// the population reference
func PartiesFigure(s *cohort.Summary, palette Palette, layout Layout) (*Figure, error) {
	groups := s.Groups()
	panels := make([]Panel, len(groups))
	for i, h := range groups {
		c, err := palette.Color(h.Group)
		if err != nil {
			return nil, err
		}
		panels[i] = Panel{
			Title:     h.Group,
			Histogram: h,
			Color:     c,
			Position:  PositionAt(i, len(groups)),
			Reference: layout.reference(s),
		}
	}
	return compose(PartiesTitle, panels, layout)
}

// NationFigure compares the national population with the legislature and
// the executive. The population panel has no reference beneath it.
func NationFigure(s *cohort.Summary, palette Palette, layout Layout) (*Figure, error) {
	groups := []struct {
		hist      domain.CohortHistogram
		reference *domain.CohortHistogram
	}{
		{hist: s.Population},
		{hist: s.Legislature, reference: layout.reference(s)},
		{hist: s.Executive, reference: layout.reference(s)},
	}

	panels := make([]Panel, len(groups))
	for i, g := range groups {
		c, err := palette.Color(g.hist.Group)
		if err != nil {
			return nil, err
		}
		panels[i] = Panel{
			Title:     g.hist.Group,
			Histogram: g.hist,
			Color:     c,
			Position:  PositionAt(i, len(groups)),
			Reference: g.reference,
		}
	}
	return compose(NationTitle, panels, layout)
}

func compose(title string, panels []Panel, layout Layout) (*Figure, error) {
	fig := &Figure{Title: title}
	for _, p := range panels {
		plt, err := p.Plot(layout.XLimit)
		if err != nil {
			return nil, err
		}
		fig.Panels = append(fig.Panels, plt)
	}
	return fig, nil
}
