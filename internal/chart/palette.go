package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"generationscli/internal/config"
	apperrors "generationscli/internal/errors"
)

// Palette maps group names to colors. The zero value is an empty palette;
// With returns a new palette and never changes the receiver.
type Palette struct {
	colors map[string]color.NRGBA
}

// NewPalette builds a palette from the configured parties
func NewPalette(parties []config.PartyConfig) (Palette, error) {
	p := Palette{colors: make(map[string]color.NRGBA, len(parties))}
	for _, party := range parties {
		c, err := ParseHex(party.Color)
		if err != nil {
			return Palette{}, err
		}
		p.colors[party.Name] = c
	}
	return p, nil
}

// With returns a copy of the palette with name set to the hex color
func (p Palette) With(name, hex string) (Palette, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return Palette{}, err
	}
	return p.WithColor(name, c), nil
}

// WithColor returns a copy of the palette with name set to c
func (p Palette) WithColor(name string, c color.NRGBA) Palette {
	next := Palette{colors: make(map[string]color.NRGBA, len(p.colors)+1)}
	for k, v := range p.colors {
		next.colors[k] = v
	}
	next.colors[name] = c
	return next
}

// Color returns the color of the named group
func (p Palette) Color(name string) (color.NRGBA, error) {
	c, ok := p.colors[name]
	if !ok {
		return color.NRGBA{}, apperrors.NewRenderError(fmt.Sprintf("no color for group %q", name), nil)
	}
	return c, nil
}

// ParseHex parses a "#rrggbb" color
func ParseHex(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, apperrors.NewRenderError(fmt.Sprintf("invalid color %q", hex), err)
	}
	return toNRGBA(c), nil
}

// DeriveExecutiveColor returns a lighter tint of the legislature color
// with the same hue, used for the executive panel.
func DeriveExecutiveColor(legislature color.NRGBA) color.NRGBA {
	c, _ := colorful.MakeColor(legislature)
	h, chroma, l := c.Hcl()
	return toNRGBA(colorful.Hcl(h, chroma*1.1, l+(1-l)*0.6).Clamped())
}

// Translucent returns c with the given alpha
func Translucent(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = alpha
	return c
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: math.MaxUint8}
}
