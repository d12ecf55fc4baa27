package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/s0up4200/marquee/catalog"
	"github.com/s0up4200/marquee/detail"
	"github.com/s0up4200/marquee/viewer"
)

const detailHeaderHeight = 4

// titleScreen shows a title and its contributors
type titleScreen struct {
	ctrl         detail.TitleController
	contributors *viewer.List[catalog.Contributor]
}

func newTitleScreen(styles *Styles) *titleScreen {
	return &titleScreen{
		contributors: viewer.New(contributorCard(styles),
			viewer.WithHeading("Contributors"),
			viewer.WithMinItemWidth(cardMinWidth),
			viewer.WithStyles(styles.List),
		),
	}
}

func (s *titleScreen) sync() {
	s.contributors.SetLoading(s.ctrl.Status() == detail.StatusLoading)
	if err := s.ctrl.Err(); err != nil {
		s.contributors.SetError(err.Error())
	} else {
		s.contributors.SetError("")
	}

	var items []catalog.Contributor
	if d := s.ctrl.Data(); d != nil {
		items = d.Contributors
	}
	s.contributors.SetItems(items)
}

func (s *titleScreen) view(styles *Styles) string {
	name := "Movie Page"
	var meta []string
	genres := ""

	if d := s.ctrl.Data(); d != nil {
		name = d.Name
		if d.ReleaseYear != nil {
			meta = append(meta, yearLabel(d.Title))
		}
		if d.MediaType != "" {
			meta = append(meta, d.MediaType)
		}
		if ref := d.ReferenceID(); ref != "" {
			meta = append(meta, ref)
		}
		if len(d.Genres) > 0 {
			genres = strings.Join(d.Genres, ", ")
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Headline.Render(name),
		styles.Muted.Render(strings.Join(meta, " · ")),
		styles.Muted.Render(genres),
		"",
		s.contributors.View(),
	)
}

// contributorScreen shows a contributor and the titles they worked on
type contributorScreen struct {
	ctrl   detail.ContributorController
	titles *viewer.List[catalog.ContributorTitle]
}

func newContributorScreen(styles *Styles) *contributorScreen {
	return &contributorScreen{
		titles: viewer.New(contributorTitleCard(styles),
			viewer.WithHeading("Movies worked on"),
			viewer.WithMinItemWidth(cardMinWidth),
			viewer.WithStyles(styles.List),
		),
	}
}

func (s *contributorScreen) sync() {
	s.titles.SetLoading(s.ctrl.Status() == detail.StatusLoading)
	if err := s.ctrl.Err(); err != nil {
		s.titles.SetError(err.Error())
	} else {
		s.titles.SetError("")
	}

	var items []catalog.ContributorTitle
	if d := s.ctrl.Data(); d != nil {
		items = d.Titles
	}
	s.titles.SetItems(items)
}

// contributions is the distinct role summary
func (s *contributorScreen) contributions() string {
	d := s.ctrl.Data()
	if d == nil {
		return "Not available"
	}
	roles := detail.DistinctRoles(d.Titles)
	if len(roles) == 0 {
		return "Not available"
	}
	return strings.Join(roles, ", ")
}

func (s *contributorScreen) view(styles *Styles) string {
	name := "Contributor Page"
	if d := s.ctrl.Data(); d != nil {
		name = d.Name
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Headline.Render(name),
		styles.Label.Render("Contributions:")+" "+s.contributions(),
		"",
		s.titles.View(),
	)
}
