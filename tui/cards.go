package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/s0up4200/marquee/catalog"
	"github.com/s0up4200/marquee/viewer"
)

const cardMinWidth = 22

func cardStyle(styles *Styles, selected bool, width int) func(...string) string {
	style := styles.Card
	if selected {
		style = styles.CardActive
	}
	// the border takes one cell on each side
	return style.Width(max(1, width-2)).Render
}

func fit(s string, width int) string {
	return ansi.Truncate(s, max(1, width-4), "…")
}

func yearLabel(t catalog.Title) string {
	if t.ReleaseYear == nil {
		return "—"
	}
	return strconv.Itoa(*t.ReleaseYear)
}

func roleLine(roles []string) string {
	if len(roles) == 0 {
		return "Role not available"
	}
	return strings.Join(roles, ", ")
}

func titleCard(styles *Styles) viewer.RenderFunc[catalog.Title] {
	return func(t catalog.Title, selected bool, width int) string {
		return cardStyle(styles, selected, width)(
			styles.CardTitle.Render(fit(t.Name, width)) + "\n" +
				styles.Muted.Render(yearLabel(t)),
		)
	}
}

func contributorCard(styles *Styles) viewer.RenderFunc[catalog.Contributor] {
	return func(c catalog.Contributor, selected bool, width int) string {
		return cardStyle(styles, selected, width)(
			styles.CardTitle.Render(fit(c.Name, width)) + "\n" +
				styles.Muted.Render(fit(roleLine(c.Roles), width)),
		)
	}
}

func contributorTitleCard(styles *Styles) viewer.RenderFunc[catalog.ContributorTitle] {
	return func(t catalog.ContributorTitle, selected bool, width int) string {
		return cardStyle(styles, selected, width)(
			styles.CardTitle.Render(fit(t.Name, width)) + "\n" +
				styles.Muted.Render(fit(yearLabel(t.Title)+" · "+roleLine(t.Roles), width)),
		)
	}
}
