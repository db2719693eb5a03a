// Package tui provides the terminal user interface for gantt.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/gantt/internal/tui/theme"
)

const (
	modalWidth      = 72
	modalInputWidth = 48
	modalLabelWidth = 8
)

// Styles holds every lipgloss style the board uses, built from one theme.
type Styles struct {
	palette *theme.Palette

	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color

	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style

	// Name column
	NameHeaderStyle   lipgloss.Style
	NameStyle         lipgloss.Style
	NameCursorStyle   lipgloss.Style
	NameEmptyStyle    lipgloss.Style
	NameEditStyle     lipgloss.Style
	NameSeparator     lipgloss.Style
	NameEditTextStyle lipgloss.Style

	// Timeline header
	MonthStyle      lipgloss.Style
	DayStyle        lipgloss.Style
	DayWeekendStyle lipgloss.Style
	DayTodayStyle   lipgloss.Style

	// Timeline cells
	EmptyCellStyle   lipgloss.Style
	WeekendCellStyle lipgloss.Style
	TodayCellStyle   lipgloss.Style
	CursorCellStyle  lipgloss.Style
	PreviewStyle     lipgloss.Style
	ConflictStyle    lipgloss.Style
	SelectionStyle   lipgloss.Style

	// Footer
	StatusStyle lipgloss.Style
	InfoStyle   lipgloss.Style
	HelpStyle   lipgloss.Style
	LegendStyle lipgloss.Style

	// Modals
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalSectionTitleStyle lipgloss.Style
	ModalTagStyle          lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalInputStyle        lipgloss.Style
	ModalInputFocusedStyle lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalHintStyle         lipgloss.Style
	ModalErrorStyle        lipgloss.Style
	TagInactiveStyle       lipgloss.Style

	AppStyle lipgloss.Style
}

// NewStyles builds the styles for t.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)
	s := &Styles{
		palette:          p,
		colorBg:          p.Bg,
		colorBgHighlight: p.BgHighlight,
		ModalBgColor:     p.Modal.Bg,
		AppStyle:         lipgloss.NewStyle().Background(p.Bg),
	}
	s.buildBoard(p)
	s.buildFooter(p)
	s.buildModal(p)
	return s
}

// paint returns a style with the given colors.
func paint(fg lipgloss.TerminalColor, bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(fg).Background(bg)
}

func (s *Styles) buildBoard(p *theme.Palette) {
	s.TitleStyle = paint(p.Accent, p.Bg).Bold(true)
	s.SubtitleStyle = paint(p.FgMuted, p.Bg)

	s.NameHeaderStyle = s.TitleStyle
	s.NameStyle = paint(p.Fg, p.Bg)
	s.NameCursorStyle = paint(p.Accent, p.BgSelection).Bold(true)
	s.NameEmptyStyle = paint(p.FgMuted, p.Bg).Italic(true)
	s.NameEditStyle = paint(p.Fg, p.BgHighlight)
	s.NameEditTextStyle = s.NameEditStyle
	s.NameSeparator = paint(p.BgSelection, p.Bg)

	s.MonthStyle = s.TitleStyle
	s.DayStyle = s.NameStyle
	s.DayWeekendStyle = paint(p.FgMuted, p.Weekend)
	s.DayTodayStyle = paint(p.TextOnToday, p.Today).Bold(true)

	s.EmptyCellStyle = paint(p.FgMuted, p.Bg)
	s.WeekendCellStyle = s.DayWeekendStyle
	s.TodayCellStyle = paint(p.Today, p.Bg)
	s.CursorCellStyle = s.NameCursorStyle
	s.PreviewStyle = paint(p.TextOnPreview, p.PreviewBg).Bold(true)
	s.ConflictStyle = paint(p.TextOnConflict, p.ConflictBg).Bold(true)
	s.SelectionStyle = paint(p.TextOnAccent, p.Accent).Bold(true)
}

func (s *Styles) buildFooter(p *theme.Palette) {
	s.StatusStyle = paint(p.Warning, p.Bg).Bold(true)
	s.InfoStyle = paint(p.Success, p.Bg).Bold(true)
	s.HelpStyle = paint(p.FgMuted, p.Bg)
	s.LegendStyle = paint(p.Fg, p.Bg)
}

func (s *Styles) buildModal(p *theme.Palette) {
	m := p.Modal
	text := paint(m.Text, m.Bg)
	muted := paint(m.Muted, m.Bg)
	input := text.
		Border(lipgloss.NormalBorder()).
		Padding(0, 1).
		Width(modalInputWidth)

	s.ModalStyle = text.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Border).
		Padding(1, 1).
		Width(modalWidth).
		Align(lipgloss.Left)
	s.ModalHeaderStyle = text.Bold(true).Padding(0, 1).Align(lipgloss.Center)
	s.ModalFooterStyle = lipgloss.NewStyle().Background(m.Bg).Padding(0, 1)
	s.ModalTitleStyle = text.Bold(true)
	s.ModalBodyStyle = text
	s.ModalSectionTitleStyle = text.Bold(true).PaddingLeft(1)
	s.ModalTagStyle = text.Background(m.Panel).Bold(true).Padding(0, 1)
	s.ModalLabelStyle = text.Bold(true).Width(modalLabelWidth)

	s.ModalInputStyle = input.BorderForeground(m.Border)
	s.ModalInputFocusedStyle = input.BorderForeground(m.Highlight).Background(m.Panel)
	s.ModalInputTextStyle = text
	s.ModalInputCursorStyle = lipgloss.NewStyle().Foreground(m.ReverseText).Background(m.Highlight)
	s.ModalPlaceholderStyle = muted
	s.ModalHintStyle = muted
	s.ModalErrorStyle = paint(p.Warning, m.Bg).Bold(true)

	s.ModalButtonStyle = lipgloss.NewStyle().Foreground(m.Text).Background(m.Panel).Padding(0, 2)
	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Foreground(m.ReverseText).
		Background(m.Highlight).
		Padding(0, 2).
		Underline(true)
	s.TagInactiveStyle = muted.Padding(0, 1)
}

// BarStyles holds the styles for one tag's period bars.
type BarStyles struct {
	Bar     lipgloss.Style
	Focused lipgloss.Style
	Past    lipgloss.Style
}

// Bar returns the bar styles for a tag color.
func (s *Styles) Bar(tagHex string) BarStyles {
	sh := s.palette.Bar(tagHex)
	return BarStyles{
		Bar:     paint(sh.Text, sh.Bg),
		Focused: paint(sh.Text, sh.BgAlt).Bold(true),
		Past:    paint(sh.TextPast, sh.BgPast),
	}
}

// TagChipStyle returns the selected chip style for a tag in the period form.
func (s *Styles) TagChipStyle(tagHex string) lipgloss.Style {
	sh := s.palette.Bar(tagHex)
	return paint(sh.Text, sh.Bg).Bold(true).Padding(0, 1)
}
