package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pacecast/internal/service"
)

// ProfilesModel is the saved profiles screen model
type ProfilesModel struct {
	planner *service.PlannerService
	input   service.PredictionInput

	summaries []service.ProfileSummary
	cursor    int
	loading   bool
	err       error

	// Save-as form
	naming  bool
	name    textinput.Model
	formErr string
}

// NewProfilesModel creates a new profiles model
func NewProfilesModel(planner *service.PlannerService, input service.PredictionInput) ProfilesModel {
	return ProfilesModel{
		planner: planner,
		input:   input,
		loading: true,
	}
}

// Init initializes the profiles screen
func (m ProfilesModel) Init() tea.Cmd {
	return m.loadProfiles
}

type profilesLoadedMsg struct {
	summaries []service.ProfileSummary
	err       error
}

func (m ProfilesModel) loadProfiles() tea.Msg {
	summaries, err := m.planner.ListProfiles()
	return profilesLoadedMsg{summaries: summaries, err: err}
}

// Update handles messages
func (m ProfilesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profilesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.summaries = msg.summaries
		if m.cursor >= len(m.summaries) && m.cursor > 0 {
			m.cursor = len(m.summaries) - 1
		}

	case tea.KeyMsg:
		if m.naming {
			return m.updateNameForm(msg)
		}
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.summaries)-1 {
				m.cursor++
			}
		case "s":
			return m.startNaming(), nil
		case "enter":
			return m.loadSelected()
		case "d":
			return m.deleteSelected()
		}
	}

	return m, nil
}

// startNaming opens the save-as prompt
func (m ProfilesModel) startNaming() ProfilesModel {
	name := textinput.New()
	name.CharLimit = 40
	name.Width = 30
	name.Placeholder = "Spring build"
	name.Focus()

	m.name = name
	m.naming = true
	m.formErr = ""
	return m
}

func (m ProfilesModel) updateNameForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.naming = false
		return m, nil

	case "enter":
		name := strings.TrimSpace(m.name.Value())
		if name == "" {
			m.formErr = "name cannot be empty"
			return m, nil
		}

		if _, err := m.planner.SaveProfile(name, m.input, time.Now()); err != nil {
			m.formErr = fmt.Sprintf("save failed: %v", err)
			return m, nil
		}

		m.naming = false
		m.loading = true
		notify := func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Saved profile %q", name)}
		}
		return m, tea.Batch(notify, m.loadProfiles)
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m ProfilesModel) loadSelected() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.summaries) {
		return m, nil
	}

	s := m.summaries[m.cursor]
	loaded, name, err := m.planner.LoadProfile(s.ID)
	if err != nil {
		m.err = err
		return m, nil
	}

	m.input = loaded
	notify := func() tea.Msg {
		return inputChangedMsg{input: loaded, status: fmt.Sprintf("Loaded profile %q", name)}
	}
	return m, notify
}

func (m ProfilesModel) deleteSelected() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.summaries) {
		return m, nil
	}

	if err := m.planner.DeleteProfile(m.summaries[m.cursor].ID); err != nil {
		m.err = err
		return m, nil
	}

	m.loading = true
	return m, m.loadProfiles
}

// View renders the profiles screen
func (m ProfilesModel) View() string {
	if m.naming {
		return m.renderNameForm()
	}

	var lines []string

	lines = append(lines, "")
	lines = append(lines, cardTitleStyle.Render("Saved Profiles"))

	switch {
	case m.loading:
		lines = append(lines, mutedStyle.Render("  Loading profiles..."))

	case m.err != nil:
		lines = append(lines, errorStyle.Render(fmt.Sprintf("  Error: %v", m.err)))

	case len(m.summaries) == 0:
		lines = append(lines, mutedStyle.Render("  No saved profiles. Press 's' to save the current"))
		lines = append(lines, mutedStyle.Render("  PR and workouts as a named snapshot."))

	default:
		header := fmt.Sprintf("  %-20s %-18s %-20s %8s %14s",
			"Name", "Type", "PR", "Workouts", "Updated")
		lines = append(lines, tableHeaderStyle.Render(header))

		for i, s := range m.summaries {
			row := fmt.Sprintf("  %-20s %-18s %-20s %8d %14s",
				s.Name, s.TypeLabel, s.PRLabel, s.WorkoutCount, s.UpdatedAgo)
			if i == m.cursor {
				lines = append(lines, tableSelectedStyle.Render(row))
			} else {
				lines = append(lines, row)
			}
		}
	}

	lines = append(lines, "")
	lines = append(lines, statusStyle.Render("  j/k: move  s: save current  enter: load  d: delete"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m ProfilesModel) renderNameForm() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, cardTitleStyle.Render("Save Profile"))
	lines = append(lines, "  "+formLabelStyle.Render("Name")+m.name.View())
	lines = append(lines, "")
	if m.formErr != "" {
		lines = append(lines, "  "+errorStyle.Render(m.formErr))
		lines = append(lines, "")
	}
	lines = append(lines, statusStyle.Render("  enter: save  esc: cancel"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
