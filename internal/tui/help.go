package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the static help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	sections := []struct {
		title string
		keys  [][2]string
	}{
		{
			title: "Navigation",
			keys: [][2]string{
				{"1", "Predictions screen"},
				{"2", "Workouts screen"},
				{"3", "Profiles screen"},
				{"?", "This help"},
				{"esc", "Back / cancel form"},
				{"q", "Quit"},
			},
		},
		{
			title: "Predictions",
			keys: [][2]string{
				{"e", "Edit personal record and athlete type"},
				{"r", "Recompute predictions"},
				{"j/k", "Scroll"},
			},
		},
		{
			title: "Workouts",
			keys: [][2]string{
				{"a", "Add a workout"},
				{"e/enter", "Edit selected workout"},
				{"d", "Delete selected workout"},
			},
		},
		{
			title: "Profiles",
			keys: [][2]string{
				{"s", "Save current input as a named profile"},
				{"enter", "Load selected profile"},
				{"d", "Delete selected profile"},
			},
		},
	}

	var lines []string
	lines = append(lines, "")
	lines = append(lines, cardTitleStyle.Render("Help"))

	for _, s := range sections {
		lines = append(lines, sectionStyle.Render(s.title))
		for _, k := range s.keys {
			lines = append(lines, "  "+RenderKeyHelp(padKey(k[0]), k[1]))
		}
		lines = append(lines, "")
	}

	lines = append(lines, mutedStyle.Render("  Predictions blend a Riegel baseline from your PR with a"))
	lines = append(lines, mutedStyle.Render("  curve synthesized from recent interval workouts. More and"))
	lines = append(lines, mutedStyle.Render("  fresher workouts shift weight toward the workout curve."))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func padKey(key string) string {
	for len(key) < 8 {
		key += " "
	}
	return key
}
