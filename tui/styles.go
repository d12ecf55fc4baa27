package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/s0up4200/marquee/settings"
	"github.com/s0up4200/marquee/viewer"
)

type palette struct {
	text      lipgloss.Color
	muted     lipgloss.Color
	accent    lipgloss.Color
	highlight lipgloss.Color
	border    lipgloss.Color
	err       lipgloss.Color
}

var (
	lightPalette = palette{
		text:      lipgloss.Color("#0F172A"),
		muted:     lipgloss.Color("#475569"),
		accent:    lipgloss.Color("#4F46E5"),
		highlight: lipgloss.Color("#E0E7FF"),
		border:    lipgloss.Color("#CBD5E1"),
		err:       lipgloss.Color("#B91C1C"),
	}
	darkPalette = palette{
		text:      lipgloss.Color("#F1F5F9"),
		muted:     lipgloss.Color("#94A3B8"),
		accent:    lipgloss.Color("#A5B4FC"),
		highlight: lipgloss.Color("#312E81"),
		border:    lipgloss.Color("#334155"),
		err:       lipgloss.Color("#FCA5A5"),
	}
)

// Styles are the lipgloss styles of one theme
type Styles struct {
	App        lipgloss.Style
	TopBar     lipgloss.Style
	Brand      lipgloss.Style
	Headline   lipgloss.Style
	Subtitle   lipgloss.Style
	Heading    lipgloss.Style
	Label      lipgloss.Style
	Muted      lipgloss.Style
	Error      lipgloss.Style
	Card       lipgloss.Style
	CardActive lipgloss.Style
	CardTitle  lipgloss.Style
	Status     lipgloss.Style

	List viewer.Styles
}

// NewStyles builds the styles of a theme
func NewStyles(theme settings.Theme) Styles {
	p := lightPalette
	if theme == settings.ThemeDark {
		p = darkPalette
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Padding(0, 1)

	return Styles{
		App:        lipgloss.NewStyle().Foreground(p.text).Padding(0, 1),
		TopBar:     lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(p.border).MarginBottom(1),
		Brand:      lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Headline:   lipgloss.NewStyle().Bold(true).Foreground(p.text),
		Subtitle:   lipgloss.NewStyle().Foreground(p.muted).MarginBottom(1),
		Heading:    lipgloss.NewStyle().Bold(true).Foreground(p.text),
		Label:      lipgloss.NewStyle().Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(p.muted),
		Error:      lipgloss.NewStyle().Foreground(p.err),
		Card:       card,
		CardActive: card.BorderForeground(p.accent).Background(p.highlight),
		CardTitle:  lipgloss.NewStyle().Bold(true),
		Status:     lipgloss.NewStyle().Foreground(p.muted).MarginTop(1),

		List: viewer.Styles{
			Heading:    lipgloss.NewStyle().Bold(true).Foreground(p.text).MarginBottom(1),
			Loading:    lipgloss.NewStyle().Foreground(p.muted),
			Error:      lipgloss.NewStyle().Foreground(p.err),
			Empty:      lipgloss.NewStyle().Foreground(p.muted).Italic(true),
			Affordance: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		},
	}
}
