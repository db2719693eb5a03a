package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func darkTheme() *Theme {
	return &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Today:       "#777777",
		Weekend:     "#0a0a0a",
		Preview:     "#112233",
		Conflict:    "#445566",
		Warning:     "#888888",
		Success:     "#00ff00",
	}
}

func TestBarOnDarkTheme(t *testing.T) {
	bar := NewPalette(darkTheme()).Bar("#3B82F6")

	// 0x3b*0.5=29 (floored to 40), 0x82*0.5=65, 0xf6*0.5=123
	if bar.Bg != "#28417b" {
		t.Errorf("Bg = %q, want #28417b", bar.Bg)
	}
	// 0x3b*0.3=17, 0x82*0.3=39, 0xf6*0.3=73; floor 30
	if bar.BgPast != "#1e2749" {
		t.Errorf("BgPast = %q, want #1e2749", bar.BgPast)
	}
	if luminance(string(bar.BgAlt)) <= luminance(string(bar.Bg)) {
		t.Errorf("BgAlt %q should be lighter than Bg %q", bar.BgAlt, bar.Bg)
	}
	if bar.Text != "#ffffff" {
		t.Errorf("Text = %q, want the theme fg", bar.Text)
	}
}

func TestBarPassesThroughNamedColors(t *testing.T) {
	bar := NewPalette(darkTheme()).Bar("red")
	if bar.Bg != "red" || bar.BgAlt != "red" || bar.BgPast != "red" {
		t.Fatalf("Bar(red) = %+v", bar)
	}
}

func TestModalColorsFallBack(t *testing.T) {
	base := darkTheme()
	p := NewPalette(base)

	if p.Modal.Bg != lipgloss.Color(base.BgHighlight) {
		t.Errorf("Modal.Bg = %q, want %q", p.Modal.Bg, base.BgHighlight)
	}
	if p.Modal.Border.Dark != base.Accent {
		t.Errorf("Modal.Border = %q, want %q", p.Modal.Border.Dark, base.Accent)
	}
	if p.Modal.Backdrop != lipgloss.Color(base.BgSelection) {
		t.Errorf("Modal.Backdrop = %q, want %q", p.Modal.Backdrop, base.BgSelection)
	}
	if base.Modal.Bg != "" {
		t.Error("NewPalette must not modify the theme it is given")
	}
}

func TestLightThemeLightensBars(t *testing.T) {
	base := &Theme{
		Bg:          "#f5f5f5",
		BgHighlight: "#eeeeee",
		BgSelection: "#e0e0e0",
		Fg:          "#222222",
		FgMuted:     "#555555",
		Accent:      "#2f6feb",
		Today:       "#c97b00",
		Preview:     "#1d8a8a",
		Warning:     "#c2410c",
	}
	p := NewPalette(base)
	tag := "#2f8f2f"

	if got := luminance(string(p.Bar(tag).Bg)); got <= luminance(tag) {
		t.Errorf("bar luminance %f should exceed tag luminance %f", got, luminance(tag))
	}
	if got := luminance(string(p.PreviewBg)); got <= luminance(base.Preview) {
		t.Errorf("preview luminance %f should exceed %f", got, luminance(base.Preview))
	}
	if p.TextOnToday != lipgloss.Color(base.Fg) && p.TextOnToday != lipgloss.Color(base.Bg) {
		t.Errorf("TextOnToday = %q, want bg or fg", p.TextOnToday)
	}
}

func TestRGB(t *testing.T) {
	c, ok := parseRGB("#FF8000")
	if !ok || c != (rgb{255, 128, 0}) {
		t.Fatalf("parseRGB = %+v, %v", c, ok)
	}
	if got := c.hex(); got != "#ff8000" {
		t.Errorf("hex() = %q", got)
	}
	if got := c.mix(rgb{}, 2).hex(); got != "#000000" {
		t.Errorf("mix clamps: got %q", got)
	}
	for _, bad := range []string{"", "ff8000", "#ff80", "#gg0000"} {
		if _, ok := parseRGB(bad); ok {
			t.Errorf("parseRGB(%q) should fail", bad)
		}
	}
}

func TestContrastPrefersReadableText(t *testing.T) {
	if contrast("#f0f0f0", "#111111") <= contrast("#f0f0f0", "#ffffff") {
		t.Fatal("dark text should contrast more with a light background")
	}
}
