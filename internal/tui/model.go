package tui

import (
	"composectl/internal/compose"
	"composectl/internal/tui/styles"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 20
)

// entry adapts a compose.Item to list.DefaultItem and remembers its
// position in the caller's slice, which survives filtering.
type entry struct {
	index int
	item  compose.Item
}

func (e entry) Title() string       { return e.item.Label }
func (e entry) Description() string { return e.item.Description }
func (e entry) FilterValue() string { return e.item.Label + " " + e.item.Description }

// Model is a single-choice picker over a list of items. It quits once the
// user chooses an item or dismisses the prompt.
type Model struct {
	list   list.Model
	choice int
	done   bool
}

// NewModel builds a picker titled with prompt.
func NewModel(prompt string, items []compose.Item) *Model {
	entries := make([]list.Item, len(items))
	for i, it := range items {
		entries[i] = entry{index: i, item: it}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(styles.Theme.Selected.GetForeground())
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(styles.Theme.Unselected.GetForeground())
	delegate.Styles.NormalDesc = delegate.Styles.NormalDesc.Foreground(styles.Theme.Description.GetForeground())

	l := list.New(entries, delegate, defaultWidth, defaultHeight)
	l.Title = prompt
	l.Styles.Title = styles.Theme.Title
	l.SetShowStatusBar(len(items) > 1)
	l.SetStatusBarItemName("item", "items")

	return &Model{list: l, choice: -1}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := styles.Theme.App.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.dismiss()
		}
		// While filtering, keys belong to the filter input
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if e, ok := m.list.SelectedItem().(entry); ok {
				m.choice = e.index
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		case "esc":
			if m.list.FilterState() == list.FilterApplied {
				break
			}
			return m.dismiss()
		case "q":
			return m.dismiss()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) dismiss() (tea.Model, tea.Cmd) {
	m.choice = -1
	m.done = true
	return m, tea.Quit
}

// View implements tea.Model
func (m *Model) View() string {
	if m.done {
		return ""
	}
	return styles.Theme.App.Render(m.list.View())
}

// Choice returns the index of the chosen item, and false when nothing was
// chosen.
func (m *Model) Choice() (int, bool) {
	return m.choice, m.choice >= 0
}

// Cursor returns the index of the highlighted item.
func (m *Model) Cursor() int {
	if e, ok := m.list.SelectedItem().(entry); ok {
		return e.index
	}
	return -1
}
