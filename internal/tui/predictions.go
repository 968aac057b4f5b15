package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"pacecast/internal/analysis"
	"pacecast/internal/service"
)

// PR form field indexes
const (
	prFieldDistance = iota
	prFieldTime
	prFieldDate
	prFieldType
	prFieldCount
)

// PredictionsModel is the race predictions screen model
type PredictionsModel struct {
	planner *service.PlannerService
	units   Units
	input   service.PredictionInput

	data     *service.PredictionsData
	viewport viewport.Model
	loading  bool
	err      error
	width    int
	height   int
	ready    bool

	// PR entry form
	editing bool
	inputs  [3]textinput.Model // distance, time, date
	typeIdx int
	focus   int
	formErr string
}

// NewPredictionsModel creates a new predictions model
func NewPredictionsModel(planner *service.PlannerService, units Units, input service.PredictionInput, width, height int) PredictionsModel {
	m := PredictionsModel{
		planner: planner,
		units:   units,
		input:   input,
		loading: true,
		width:   width,
		height:  height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.ready = true
	}

	return m
}

// Init initializes the predictions screen
func (m PredictionsModel) Init() tea.Cmd {
	return m.loadPredictions
}

type predictionsLoadedMsg struct {
	data *service.PredictionsData
	err  error
}

func (m PredictionsModel) loadPredictions() tea.Msg {
	data, err := m.planner.BuildPredictions(m.input, time.Now())
	return predictionsLoadedMsg{data: data, err: err}
}

// Update handles messages
func (m PredictionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case predictionsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.data != nil {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.KeyMsg:
		if m.editing {
			return m.updateForm(msg)
		}
		switch msg.String() {
		case "e":
			return m.startEditing(), nil
		case "r":
			m.loading = true
			return m, m.loadPredictions
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// startEditing opens the PR form pre-filled from the current input
func (m PredictionsModel) startEditing() PredictionsModel {
	distance := textinput.New()
	distance.CharLimit = 8
	distance.Width = 12
	if m.input.PRDistanceMeters > 0 {
		distance.SetValue(strconv.FormatFloat(m.input.PRDistanceMeters, 'f', -1, 64))
	}
	distance.Placeholder = "1500"

	timeField := textinput.New()
	timeField.CharLimit = 10
	timeField.Width = 12
	timeField.SetValue(m.input.PRTime)
	timeField.Placeholder = "4:00.0"

	date := textinput.New()
	date.CharLimit = 10
	date.Width = 12
	if !m.input.PRDate.IsZero() {
		date.SetValue(m.input.PRDate.Format("2006-01-02"))
	}
	date.Placeholder = "2026-08-01"

	m.inputs = [3]textinput.Model{distance, timeField, date}
	m.typeIdx = 0
	for i, t := range analysis.AthleteTypes {
		if t.Key == m.input.AthleteType {
			m.typeIdx = i
		}
	}

	m.editing = true
	m.focus = prFieldDistance
	m.formErr = ""
	m.inputs[prFieldDistance].Focus()
	return m
}

func (m PredictionsModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		return m, nil

	case "enter":
		return m.submitForm()

	case "tab", "down":
		return m.moveFocus(1), nil

	case "shift+tab", "up":
		return m.moveFocus(-1), nil

	case "left":
		if m.focus == prFieldType {
			m.typeIdx = (m.typeIdx + len(analysis.AthleteTypes) - 1) % len(analysis.AthleteTypes)
			return m, nil
		}

	case "right":
		if m.focus == prFieldType {
			m.typeIdx = (m.typeIdx + 1) % len(analysis.AthleteTypes)
			return m, nil
		}
	}

	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m PredictionsModel) moveFocus(delta int) PredictionsModel {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + delta + prFieldCount) % prFieldCount
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
	return m
}

// submitForm validates the form and, when valid, reports the new input
// upstream and recomputes.
func (m PredictionsModel) submitForm() (tea.Model, tea.Cmd) {
	distance, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[prFieldDistance].Value()), 64)
	if err != nil || distance <= 0 {
		m.formErr = "distance must be a positive number of meters"
		return m, nil
	}

	timeText := strings.TrimSpace(m.inputs[prFieldTime].Value())
	if _, err := analysis.ParseDuration(timeText); err != nil {
		m.formErr = "time must look like 65.0, 4:19.6 or 1:02:03"
		return m, nil
	}

	prDate := time.Now()
	if dateText := strings.TrimSpace(m.inputs[prFieldDate].Value()); dateText != "" {
		prDate, err = time.Parse("2006-01-02", dateText)
		if err != nil {
			m.formErr = "date must look like 2026-08-01"
			return m, nil
		}
	}

	// Build a fresh input value; the previous one is never mutated
	updated := m.input
	updated.PRDistanceMeters = distance
	updated.PRTime = timeText
	updated.PRDate = prDate
	updated.AthleteType = analysis.AthleteTypes[m.typeIdx].Key

	m.input = updated
	m.editing = false
	m.loading = true

	notify := func() tea.Msg {
		return inputChangedMsg{input: updated, status: "PR updated"}
	}
	return m, tea.Batch(notify, m.loadPredictions)
}

// View renders the predictions screen
func (m PredictionsModel) View() string {
	if m.editing {
		return m.renderForm()
	}

	if m.loading {
		return "\n  Computing predictions..."
	}

	if m.err != nil {
		if errors.Is(m.err, service.ErrInvalidPR) {
			return m.renderEmptyState()
		}
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  j/k or arrows: scroll  e: edit PR  r: recompute")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m PredictionsModel) renderEmptyState() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, cardTitleStyle.Render("Race Time Predictions"))
	lines = append(lines, "")
	lines = append(lines, mutedStyle.Render("  No personal record entered yet."))
	lines = append(lines, "")
	lines = append(lines, mutedStyle.Render("  Press 'e' to enter a PR distance and time. Add interval"))
	lines = append(lines, mutedStyle.Render("  workouts on the Workouts screen to sharpen the model."))
	lines = append(lines, "")

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m PredictionsModel) renderForm() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, cardTitleStyle.Render("Personal Record"))

	labels := []string{"Distance (m)", "Time", "Date", "Athlete type"}
	for i, label := range labels {
		rendered := formLabelStyle.Render(label)
		if i == m.focus {
			rendered = formFocusStyle.Render(fmt.Sprintf("%-16s", label))
		}

		var value string
		if i < len(m.inputs) {
			value = m.inputs[i].View()
		} else {
			typ := analysis.AthleteTypes[m.typeIdx]
			value = fmt.Sprintf("← %s →", typ.Label)
		}
		lines = append(lines, "  "+rendered+value)
	}

	lines = append(lines, "")
	if m.formErr != "" {
		lines = append(lines, "  "+errorStyle.Render(m.formErr))
		lines = append(lines, "")
	}
	lines = append(lines, statusStyle.Render("  tab: next field  enter: save  esc: cancel"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m PredictionsModel) renderContent() string {
	if m.data == nil {
		return ""
	}

	var sections []string

	sections = append(sections, "")
	sections = append(sections, cardTitleStyle.Render("Race Time Predictions"))
	sections = append(sections, m.renderSourceInfo())
	sections = append(sections, m.renderSnapshot())
	sections = append(sections, m.renderTable())
	sections = append(sections, m.renderPaceChart())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m PredictionsModel) renderSourceInfo() string {
	var lines []string

	typ := analysis.TypeForKey(m.input.AthleteType)
	sourceLine := fmt.Sprintf("  Based on: %s · %s", m.data.SourceLabel, typ.Label)
	lines = append(lines, mutedStyle.Render(sourceLine))

	if m.data.HasWorkoutData {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf(
			"  Workout curve from %d workout(s), weighted %s", m.data.WorkoutCount, m.data.DataWeightPct)))
	} else {
		lines = append(lines, mutedStyle.Render(
			"  No workout data - workout curve uses guard-rail defaults"))
	}
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

func (m PredictionsModel) renderSnapshot() string {
	var lines []string

	lines = append(lines, sectionStyle.Render("── Fitness Snapshot ─────────────────────────────────"))
	lines = append(lines, "  "+RenderMetric("MAS", m.data.MAS))
	lines = append(lines, "  "+RenderMetric("Threshold", m.data.Threshold))
	lines = append(lines, "  "+RenderMetric("ASR", m.data.ASR))
	lines = append(lines, "  "+RenderMetric("Workout weight", m.data.DataWeightPct))
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

func (m PredictionsModel) renderTable() string {
	var lines []string

	lines = append(lines, sectionStyle.Render("── Predicted Times ──────────────────────────────────"))

	header := fmt.Sprintf("  %-14s %10s %10s %10s %10s", "Event", "Baseline", "Workout", "Blended", "Pace")
	lines = append(lines, tableHeaderStyle.Render(header))

	for _, row := range m.data.Rows {
		pace := m.units.FormatPace(row.BlendedSeconds, row.Meters)
		blended := successStyle.Render(fmt.Sprintf("%10s", row.Blended))
		lines = append(lines, fmt.Sprintf("  %-14s %10s %10s %s %10s",
			row.EventLabel, row.Baseline, row.Workout, blended, pace))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m PredictionsModel) renderPaceChart() string {
	var series []float64
	for _, row := range m.data.Rows {
		pace := m.units.PaceMinutes(row.BlendedSeconds, row.Meters)
		if pace <= 0 {
			return ""
		}
		series = append(series, pace)
	}

	var lines []string
	lines = append(lines, sectionStyle.Render("── Predicted Pace by Event ──────────────────────────"))

	graph := asciigraph.Plot(series,
		asciigraph.Height(8),
		asciigraph.Width(52),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("400m → marathon (%s)", m.units.PaceLabel())),
	)
	lines = append(lines, graph)
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}
