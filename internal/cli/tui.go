package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// roomTypeModel is the bubbletea model for interactive room-type selection.
type roomTypeModel struct {
	types    []string
	cursor   int
	selected string
	quit     bool
}

func (m roomTypeModel) Init() tea.Cmd { return nil }

func (m roomTypeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.types)-1 {
			m.cursor++
		}
	case "enter":
		m.selected = m.types[m.cursor]
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.quit = true
		return m, tea.Quit
	}
	return m, nil
}

func (m roomTypeModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Select a room type") + "\n\n")
	for i, t := range m.types {
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render("> "+t) + "\n")
			continue
		}
		b.WriteString(listNormalStyle.Render("  "+t) + "\n")
	}
	b.WriteString("\n" + listDimStyle.Render("↑/↓ move · enter select · q quit") + "\n")
	return b.String()
}

// pickRoomType runs the interactive room-type picker and returns the choice.
func pickRoomType(types []string) (string, error) {
	final, err := tea.NewProgram(roomTypeModel{types: types}).Run()
	if err != nil {
		return "", fmt.Errorf("room type selection: %w", err)
	}
	m := final.(roomTypeModel)
	if m.quit || m.selected == "" {
		return "", fmt.Errorf("no room type selected")
	}
	return m.selected, nil
}
