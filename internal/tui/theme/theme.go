// Package theme loads the board color themes and derives the palette the
// styles are built from.
package theme

import (
	"embed"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

// DefaultName is used when no theme or an unknown theme is requested.
const DefaultName = "mocha"

//go:embed embedded/*.toml
var themeFiles embed.FS

var names = []string{"mocha", "latte"}

// Theme is one color scheme as stored in a theme file.
type Theme struct {
	Name string `toml:"name"`

	Bg          string `toml:"bg"`
	BgHighlight string `toml:"bg_highlight"` // header and task name column
	BgSelection string `toml:"bg_selection"` // cursor cell
	Fg          string `toml:"fg"`
	FgMuted     string `toml:"fg_muted"`
	Accent      string `toml:"accent"` // title, borders

	Today    string `toml:"today"`
	Weekend  string `toml:"weekend"`
	Preview  string `toml:"preview"`  // days covered by a drag
	Conflict string `toml:"conflict"` // dragged days that are already taken
	Warning  string `toml:"warning"`
	Success  string `toml:"success"`

	Modal ModalTheme `toml:"modal"`
}

// ModalTheme holds the optional modal overrides. Empty values fall back
// to the base colors.
type ModalTheme struct {
	Bg        string `toml:"bg"`
	Border    string `toml:"border"`
	Text      string `toml:"text"`
	Muted     string `toml:"muted"`
	Highlight string `toml:"highlight"`
}

// Color converts a hex string to a lipgloss color.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load reads the named theme. Unknown names load DefaultName.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(name)
	if !IsAvailable(name) {
		name = DefaultName
	}

	data, err := themeFiles.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.fill()
	return &t, nil
}

// fill resolves every optional color against the base ones.
func (t *Theme) fill() {
	for _, f := range []struct {
		dst      *string
		fallback []string
	}{
		{&t.Weekend, []string{t.BgHighlight}},
		{&t.Preview, []string{t.Accent}},
		{&t.Conflict, []string{t.Warning}},
		{&t.Success, []string{t.Accent}},
		{&t.Modal.Bg, []string{t.BgHighlight, t.Bg}},
		{&t.Modal.Border, []string{t.Accent}},
		{&t.Modal.Text, []string{t.Fg}},
		{&t.Modal.Muted, []string{t.FgMuted}},
		{&t.Modal.Highlight, []string{t.BgSelection, t.Accent}},
	} {
		*f.dst = firstSet(append([]string{*f.dst}, f.fallback...)...)
	}
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available lists the bundled theme names.
func Available() []string {
	return slices.Clone(names)
}

// IsAvailable reports whether name is a bundled theme, ignoring case.
func IsAvailable(name string) bool {
	return slices.Contains(names, strings.ToLower(name))
}
