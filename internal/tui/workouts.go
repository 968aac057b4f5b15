package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pacecast/internal/analysis"
	"pacecast/internal/service"
)

// Workout form field indexes
const (
	wkFieldReps = iota
	wkFieldDistance
	wkFieldTime
	wkFieldRest
	wkFieldDate
	wkFieldCount
)

// WorkoutsModel is the interval workout history screen model
type WorkoutsModel struct {
	planner *service.PlannerService
	input   service.PredictionInput

	cursor int
	width  int
	height int

	// Edit form
	editing bool
	editID  string
	inputs  [wkFieldCount]textinput.Model
	focus   int
	formErr string
}

// NewWorkoutsModel creates a new workouts model
func NewWorkoutsModel(planner *service.PlannerService, input service.PredictionInput, width, height int) WorkoutsModel {
	return WorkoutsModel{
		planner: planner,
		input:   input,
		width:   width,
		height:  height,
	}
}

// Init initializes the workouts screen
func (m WorkoutsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m WorkoutsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.editing {
			return m.updateForm(msg)
		}
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.input.Workouts)-1 {
				m.cursor++
			}
		case "a":
			return m.addWorkout()
		case "d":
			return m.deleteWorkout()
		case "enter", "e":
			if m.cursor < len(m.input.Workouts) {
				return m.startEditing(m.input.Workouts[m.cursor]), nil
			}
		}
	}

	return m, nil
}

func (m WorkoutsModel) addWorkout() (tea.Model, tea.Cmd) {
	w := m.planner.NewWorkout(time.Now())

	updated := m.input
	updated.Workouts = append(append([]analysis.Workout{}, m.input.Workouts...), w)
	m.input = updated
	m.cursor = len(updated.Workouts) - 1

	next := m.startEditing(w)
	notify := func() tea.Msg {
		return inputChangedMsg{input: updated, status: "Workout added"}
	}
	return next, notify
}

func (m WorkoutsModel) deleteWorkout() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.input.Workouts) {
		return m, nil
	}

	id := m.input.Workouts[m.cursor].ID
	updated := m.input
	updated.Workouts = service.RemoveWorkout(m.input.Workouts, id)
	m.input = updated
	if m.cursor >= len(updated.Workouts) && m.cursor > 0 {
		m.cursor--
	}

	notify := func() tea.Msg {
		return inputChangedMsg{input: updated, status: "Workout removed"}
	}
	return m, notify
}

// startEditing opens the edit form pre-filled from the given workout
func (m WorkoutsModel) startEditing(w analysis.Workout) WorkoutsModel {
	reps := textinput.New()
	reps.CharLimit = 3
	reps.Width = 10
	reps.SetValue(strconv.Itoa(w.RepCount))

	distance := textinput.New()
	distance.CharLimit = 6
	distance.Width = 10
	distance.SetValue(strconv.FormatFloat(w.RepMeters, 'f', -1, 64))

	repTime := textinput.New()
	repTime.CharLimit = 10
	repTime.Width = 10
	repTime.SetValue(w.RepTime)
	repTime.Placeholder = "75.0"

	rest := textinput.New()
	rest.CharLimit = 5
	rest.Width = 10
	rest.SetValue(strconv.FormatFloat(w.RestSeconds, 'f', -1, 64))

	date := textinput.New()
	date.CharLimit = 10
	date.Width = 12
	date.SetValue(w.Date.Format("2006-01-02"))

	m.inputs = [wkFieldCount]textinput.Model{reps, distance, repTime, rest, date}
	m.editing = true
	m.editID = w.ID
	m.focus = wkFieldReps
	m.formErr = ""
	m.inputs[wkFieldReps].Focus()
	return m
}

func (m WorkoutsModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		return m, nil

	case "enter":
		return m.submitForm()

	case "tab", "down":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % wkFieldCount
		m.inputs[m.focus].Focus()
		return m, nil

	case "shift+tab", "up":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + wkFieldCount - 1) % wkFieldCount
		m.inputs[m.focus].Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submitForm validates the form and swaps the edited workout in without
// mutating the previous slice.
func (m WorkoutsModel) submitForm() (tea.Model, tea.Cmd) {
	reps, err := strconv.Atoi(strings.TrimSpace(m.inputs[wkFieldReps].Value()))
	if err != nil || reps <= 0 {
		m.formErr = "reps must be a positive whole number"
		return m, nil
	}

	distance, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[wkFieldDistance].Value()), 64)
	if err != nil || distance <= 0 {
		m.formErr = "rep distance must be a positive number of meters"
		return m, nil
	}

	repTime := strings.TrimSpace(m.inputs[wkFieldTime].Value())
	if _, err := analysis.ParseDuration(repTime); err != nil {
		m.formErr = "rep time must look like 75.0 or 3:15"
		return m, nil
	}

	rest, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[wkFieldRest].Value()), 64)
	if err != nil || rest < 0 {
		m.formErr = "rest must be zero or more seconds"
		return m, nil
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(m.inputs[wkFieldDate].Value()))
	if err != nil {
		m.formErr = "date must look like 2026-08-01"
		return m, nil
	}

	w := analysis.Workout{
		ID:          m.editID,
		RepCount:    reps,
		RepMeters:   distance,
		RepTime:     repTime,
		RestSeconds: rest,
		Date:        date,
	}

	updated := m.input
	updated.Workouts = service.ReplaceWorkout(m.input.Workouts, w)
	m.input = updated
	m.editing = false

	notify := func() tea.Msg {
		return inputChangedMsg{input: updated, status: "Workout saved"}
	}
	return m, notify
}

// View renders the workouts screen
func (m WorkoutsModel) View() string {
	if m.editing {
		return m.renderForm()
	}

	var lines []string

	lines = append(lines, "")
	lines = append(lines, cardTitleStyle.Render("Interval Workouts"))

	if len(m.input.Workouts) == 0 {
		lines = append(lines, mutedStyle.Render("  No workouts yet. Press 'a' to add one."))
		lines = append(lines, "")
		lines = append(lines, mutedStyle.Render("  Short fast reps feed speed proxies; longer reps feed"))
		lines = append(lines, mutedStyle.Render("  the threshold proxy. Recent workouts count the most."))
	} else {
		header := fmt.Sprintf("  %-22s %8s %8s %12s", "Session", "Rest", "Date", "Freshness")
		lines = append(lines, tableHeaderStyle.Render(header))

		now := time.Now()
		for i, w := range m.input.Workouts {
			session := fmt.Sprintf("%dx%.0fm @ %s", w.RepCount, w.RepMeters, w.RepTime)
			rest := fmt.Sprintf("%.0fs", w.RestSeconds)
			decay := analysis.DecayWeight(w.Date, now, analysis.DefaultHalfLifeDays)
			row := fmt.Sprintf("  %-22s %8s %8s %11.0f%%",
				session, rest, w.Date.Format("Jan 02"), decay*100)

			if i == m.cursor {
				lines = append(lines, tableSelectedStyle.Render(row))
			} else {
				lines = append(lines, row)
			}
		}
	}

	lines = append(lines, "")
	lines = append(lines, statusStyle.Render("  j/k: move  a: add  e/enter: edit  d: delete"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m WorkoutsModel) renderForm() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, cardTitleStyle.Render("Edit Workout"))

	labels := []string{"Reps", "Rep distance (m)", "Rep time", "Rest (s)", "Date"}
	for i, label := range labels {
		rendered := formLabelStyle.Render(label)
		if i == m.focus {
			rendered = formFocusStyle.Render(fmt.Sprintf("%-16s", label))
		}
		lines = append(lines, "  "+rendered+m.inputs[i].View())
	}

	lines = append(lines, "")
	if m.formErr != "" {
		lines = append(lines, "  "+errorStyle.Render(m.formErr))
		lines = append(lines, "")
	}
	lines = append(lines, statusStyle.Render("  tab: next field  enter: save  esc: cancel"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
