// Package tui implements the interactive card review screen: the proposed
// segments are shown as a checklist and the user picks which ones become
// cards before the pipeline runs.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tranminhduc4802/cardflow/internal/segment"
	"github.com/tranminhduc4802/cardflow/internal/transcript"
)

// previewWords caps how much card text shows in the list.
const previewWords = 12

type item struct {
	index     int
	title     string
	timestamp string
	selected  bool
}

func (i item) FilterValue() string { return i.title }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 2 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	checkbox := "☐"
	if i.selected {
		checkbox = "◼"
	}

	str := fmt.Sprintf("%s %s", checkbox, i.title)
	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprintf(w, "%s\n%s\n", timestampStyle.Render(i.timestamp), fn(str))
}

type model struct {
	list      list.Model
	segs      []segment.Segment
	confirmed bool
	quitting  bool
}

func newModel(segs []segment.Segment, cards []segment.Card) model {
	items := make([]list.Item, len(cards))
	for i, c := range cards {
		items[i] = item{
			index:     i,
			title:     preview(c.Text),
			timestamp: transcript.Clock(c.Start) + " - " + transcript.Clock(c.End),
			selected:  true,
		}
	}

	l := list.New(items, itemDelegate{}, 72, 18)
	l.Title = "Select highlight cards"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)
	l.SetShowPagination(false)
	l.Styles.Title = titleStyle
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle")),
			key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
		}
	}

	return model{list: l, segs: segs}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter", " ":
			items := m.list.Items()
			idx := m.list.Index()
			if idx >= 0 && idx < len(items) {
				if i, ok := items[idx].(item); ok {
					i.selected = !i.selected
					items[idx] = i
					m.list.SetItems(items)
				}
			}
			return m, nil

		case "g":
			for _, listItem := range m.list.Items() {
				if i, ok := listItem.(item); ok && i.selected {
					m.confirmed = true
					return m, tea.Quit
				}
			}
			return m, nil
		}

		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting || m.confirmed {
		return ""
	}
	return m.list.View() + "\n" + helpStyle.Render("space: toggle  g: generate  q: quit")
}

// kept returns the segments still selected, in order.
func (m model) kept() []segment.Segment {
	var out []segment.Segment
	for _, listItem := range m.list.Items() {
		if i, ok := listItem.(item); ok && i.selected {
			out = append(out, m.segs[i.index])
		}
	}
	return out
}

// Review shows the checklist and returns the segments the user kept, or nil
// when the user aborted.
func Review(segs []segment.Segment, cards []segment.Card) ([]segment.Segment, error) {
	final, err := tea.NewProgram(newModel(segs, cards)).Run()
	if err != nil {
		return nil, fmt.Errorf("run review ui: %w", err)
	}

	m, ok := final.(model)
	if !ok || !m.confirmed {
		return nil, nil
	}
	return m.kept(), nil
}

func preview(text string) string {
	words := strings.Fields(text)
	if len(words) > previewWords {
		return strings.Join(words[:previewWords], " ") + "..."
	}
	return text
}
