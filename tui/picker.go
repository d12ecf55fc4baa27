package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/s0up4200/marquee/catalog"
)

type pickerKind int

const (
	pickerYear pickerKind = iota
	pickerGenre
)

// pickerItem is one option; value zero is the "all" entry
type pickerItem struct {
	label string
	value int
}

func (i pickerItem) Title() string       { return i.label }
func (i pickerItem) Description() string { return "" }
func (i pickerItem) FilterValue() string { return i.label }

// picker is a filterable single-choice list for the release year and genre filters
type picker struct {
	kind pickerKind
	list list.Model
}

func newYearPicker(years []int, selected, width, height int) *picker {
	items := make([]list.Item, 0, len(years)+1)
	items = append(items, pickerItem{label: "All years"})
	for _, y := range years {
		items = append(items, pickerItem{label: strconv.Itoa(y), value: y})
	}
	return newPicker(pickerYear, "Release Year", items, selected, width, height)
}

func newGenrePicker(genres []catalog.GenreOption, selected, width, height int) *picker {
	items := make([]list.Item, 0, len(genres)+1)
	items = append(items, pickerItem{label: "All genres"})
	for _, g := range genres {
		items = append(items, pickerItem{label: g.Name, value: g.ID})
	}
	return newPicker(pickerGenre, "Genre", items, selected, width, height)
}

func newPicker(kind pickerKind, title string, items []list.Item, selected, width, height int) *picker {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, width, height)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	for i, item := range items {
		if item.(pickerItem).value == selected {
			l.Select(i)
			break
		}
	}

	return &picker{kind: kind, list: l}
}

func (p *picker) setSize(width, height int) {
	p.list.SetSize(width, height)
}

// update handles a key. done is true when the picker should close;
// chosen is true when value was picked.
func (p *picker) update(msg tea.KeyMsg) (done, chosen bool, value int, cmd tea.Cmd) {
	if p.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "enter":
			item, ok := p.list.SelectedItem().(pickerItem)
			if !ok {
				return true, false, 0, nil
			}
			return true, true, item.value, nil
		case "esc":
			if p.list.FilterState() == list.FilterApplied {
				p.list.ResetFilter()
				return false, false, 0, nil
			}
			return true, false, 0, nil
		}
	}

	p.list, cmd = p.list.Update(msg)
	return false, false, 0, cmd
}

func (p *picker) view() string {
	return p.list.View()
}
