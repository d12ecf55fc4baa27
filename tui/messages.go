package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/s0up4200/marquee/browse"
	"github.com/s0up4200/marquee/catalog"
	"github.com/s0up4200/marquee/detail"
	"github.com/s0up4200/marquee/settings"
)

type browseMsg struct {
	result browse.Result
}

type titleMsg struct {
	result detail.Result[catalog.TitleDetails]
}

type contributorMsg struct {
	result detail.Result[catalog.ContributorDetails]
}

type themeSavedMsg struct {
	theme settings.Theme
	err   error
}

func fetchBrowse(ctx context.Context, api catalog.API, tickets ...browse.Ticket) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(tickets))
	for _, t := range tickets {
		cmds = append(cmds, func() tea.Msg {
			return browseMsg{result: browse.Fetch(ctx, api, t)}
		})
	}
	return tea.Batch(cmds...)
}

func fetchTitle(ctx context.Context, api catalog.API, ctrl *detail.TitleController, t detail.Ticket) tea.Cmd {
	return func() tea.Msg {
		return titleMsg{result: ctrl.Fetch(ctx, api.GetTitleDetails, t)}
	}
}

func fetchContributor(ctx context.Context, api catalog.API, ctrl *detail.ContributorController, t detail.Ticket) tea.Cmd {
	return func() tea.Msg {
		return contributorMsg{result: ctrl.Fetch(ctx, api.GetContributorDetails, t)}
	}
}

func saveTheme(store settings.Store, theme settings.Theme) tea.Cmd {
	return func() tea.Msg {
		return themeSavedMsg{theme: theme, err: settings.SaveTheme(store, theme)}
	}
}
