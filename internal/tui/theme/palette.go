package theme

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Palette is a Theme resolved into lipgloss colors, plus the shades
// derived from it.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Today       lipgloss.Color
	Weekend     lipgloss.Color
	Warning     lipgloss.Color
	Success     lipgloss.Color

	PreviewBg  lipgloss.Color
	ConflictBg lipgloss.Color

	TextOnAccent   lipgloss.Color
	TextOnToday    lipgloss.Color
	TextOnWarning  lipgloss.Color
	TextOnPreview  lipgloss.Color
	TextOnConflict lipgloss.Color

	Modal ModalColors

	base  *Theme
	light bool
}

// ModalColors are the colors used inside modals.
type ModalColors struct {
	Bg          lipgloss.Color
	Border      lipgloss.AdaptiveColor
	Text        lipgloss.AdaptiveColor
	Muted       lipgloss.AdaptiveColor
	Highlight   lipgloss.AdaptiveColor
	Panel       lipgloss.AdaptiveColor
	ReverseText lipgloss.AdaptiveColor
	Backdrop    lipgloss.Color
}

// BarShades holds the colors for one tag's period bars.
type BarShades struct {
	Bg       lipgloss.Color // regular bar
	BgAlt    lipgloss.Color // bar under the cursor or selected
	BgPast   lipgloss.Color // bar that ended before today
	Text     lipgloss.Color
	TextPast lipgloss.Color
}

// NewPalette resolves t. A nil theme uses DefaultName.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}
	th := *t
	th.fill()

	p := &Palette{base: &th, light: luminance(th.Bg) > 0.55}
	preview := p.barHex(th.Preview)
	conflict := p.barHex(th.Conflict)

	p.Bg, p.BgHighlight, p.BgSelection = Color(th.Bg), Color(th.BgHighlight), Color(th.BgSelection)
	p.Fg, p.FgMuted, p.Accent = Color(th.Fg), Color(th.FgMuted), Color(th.Accent)
	p.Today, p.Weekend = Color(th.Today), Color(th.Weekend)
	p.Warning, p.Success = Color(th.Warning), Color(th.Success)
	p.PreviewBg, p.ConflictBg = Color(preview), Color(conflict)

	p.TextOnAccent = p.textOn(th.Accent)
	p.TextOnToday = p.textOn(th.Today)
	p.TextOnWarning = p.textOn(th.Warning)
	p.TextOnPreview = p.textOn(preview)
	p.TextOnConflict = p.textOn(conflict)

	panel := firstSet(th.BgSelection, th.BgHighlight, th.Bg)
	p.Modal = ModalColors{
		Bg:          Color(th.Modal.Bg),
		Border:      fixed(th.Modal.Border),
		Text:        fixed(th.Modal.Text),
		Muted:       fixed(th.Modal.Muted),
		Highlight:   fixed(th.Modal.Highlight),
		Panel:       fixed(panel),
		ReverseText: lipgloss.AdaptiveColor{Dark: th.Modal.Bg, Light: th.Modal.Text},
		Backdrop:    Color(panel),
	}
	return p
}

// Bar derives the bar shades for a tag color. Colors that are not
// #rrggbb are passed through unchanged.
func (p *Palette) Bar(tagHex string) BarShades {
	bar := p.barHex(tagHex)
	past := p.pastHex(tagHex)

	alt := bar
	if c, ok := parseRGB(bar); ok {
		if p.light {
			alt = c.mix(rgb{}, 0.10).hex()
		} else {
			alt = c.mix(rgb{255, 255, 255}, 0.30).hex()
		}
	}
	return BarShades{
		Bg:       Color(bar),
		BgAlt:    Color(alt),
		BgPast:   Color(past),
		Text:     p.textOn(bar),
		TextPast: p.textOn(past),
	}
}

// barHex tones a tag color down for use as a bar background: towards the
// page on light themes, towards black on dark ones.
func (p *Palette) barHex(hex string) string {
	if p.light {
		return blend(hex, p.base.Bg, 0.75)
	}
	return dim(hex, 0.50, 40)
}

func (p *Palette) pastHex(hex string) string {
	if p.light {
		return blend(hex, p.base.Bg, 0.88)
	}
	return dim(hex, 0.30, 30)
}

// textOn picks whichever of the theme's bg and fg reads better on hex.
func (p *Palette) textOn(hex string) lipgloss.Color {
	if contrast(hex, p.base.Bg) >= contrast(hex, p.base.Fg) {
		return Color(p.base.Bg)
	}
	return Color(p.base.Fg)
}

func fixed(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: hex, Light: hex}
}

type rgb struct{ r, g, b float64 }

func parseRGB(hex string) (rgb, bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return rgb{}, false
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return rgb{}, false
	}
	return rgb{float64(v >> 16 & 0xff), float64(v >> 8 & 0xff), float64(v & 0xff)}, true
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", int(c.r), int(c.g), int(c.b))
}

// mix moves c towards o by t, clamped to [0, 1].
func (c rgb) mix(o rgb, t float64) rgb {
	t = math.Max(0, math.Min(1, t))
	return rgb{
		c.r + (o.r-c.r)*t,
		c.g + (o.g-c.g)*t,
		c.b + (o.b-c.b)*t,
	}
}

// dim scales every channel by factor without going below floor.
func dim(hex string, factor, floor float64) string {
	c, ok := parseRGB(hex)
	if !ok {
		return hex
	}
	scale := func(v float64) float64 { return math.Max(math.Trunc(v*factor), floor) }
	return rgb{scale(c.r), scale(c.g), scale(c.b)}.hex()
}

func blend(a, b string, t float64) string {
	ca, okA := parseRGB(a)
	cb, okB := parseRGB(b)
	if !okA || !okB {
		return a
	}
	return ca.mix(cb, t).hex()
}

// luminance is the WCAG relative luminance; invalid colors count as black.
func luminance(hex string) float64 {
	c, ok := parseRGB(hex)
	if !ok {
		return 0
	}
	linear := func(v float64) float64 {
		v /= 255
		if v <= 0.04045 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*linear(c.r) + 0.7152*linear(c.g) + 0.0722*linear(c.b)
}

func contrast(a, b string) float64 {
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
