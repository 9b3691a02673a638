package picker

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type item struct {
	path     string
	selected bool
}

func (i item) Title() string {
	marker := "[ ]"
	if i.selected {
		marker = "[x]"
	}
	return fmt.Sprintf("%s %s", marker, filepath.Base(i.path))
}

func (i item) Description() string { return i.path }
func (i item) FilterValue() string { return filepath.Base(i.path) }

// Model is the Bubbletea model for the file selector
type Model struct {
	list      list.Model
	confirmed bool
	quitting  bool
}

// NewModel creates a selector over the given file paths
func NewModel(files []string) Model {
	items := make([]list.Item, 0, len(files))
	for _, f := range files {
		items = append(items, item{path: f})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("205")).
		BorderForeground(lipgloss.Color("205"))

	l := list.New(items, delegate, 0, 0)
	l.Title = "Select files to clean (space: toggle, enter: confirm)"
	l.SetShowStatusBar(false)

	return Model{list: l}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Don't intercept keys while the user is filtering.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit

		case " ":
			if it, ok := m.list.SelectedItem().(item); ok {
				it.selected = !it.selected
				return m, m.list.SetItem(m.list.Index(), it)
			}

		case "enter":
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View()
}

// Selected returns the confirmed file paths. When the user confirmed
// on a highlighted item without toggling any, that item is returned.
func (m Model) Selected() []string {
	if !m.confirmed {
		return nil
	}

	var files []string
	for _, li := range m.list.Items() {
		if it, ok := li.(item); ok && it.selected {
			files = append(files, it.path)
		}
	}

	if len(files) == 0 {
		if it, ok := m.list.SelectedItem().(item); ok {
			files = append(files, it.path)
		}
	}

	return files
}

func runSelector(files []string) ([]string, error) {
	p := tea.NewProgram(NewModel(files), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running file selector: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected selector model type")
	}

	return m.Selected(), nil
}
