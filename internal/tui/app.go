package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pacecast/internal/config"
	"pacecast/internal/service"
)

// Screen identifiers
type Screen int

const (
	ScreenPredictions Screen = iota
	ScreenWorkouts
	ScreenProfiles
	ScreenHelp
)

// inputChangedMsg is sent by a screen whenever the planner input changed
// (PR edit, workout add/edit/delete, profile load). The App stores the new
// input and rebuilds screens from it on switch.
type inputChangedMsg struct {
	input  service.PredictionInput
	status string
}

// statusMsg updates the footer status line
type statusMsg struct {
	text  string
	isErr bool
}

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	predictions PredictionsModel
	workouts    WorkoutsModel
	profiles    ProfilesModel
	help        HelpModel

	// Shared planner state; screens receive a copy and report edits via
	// inputChangedMsg
	input   service.PredictionInput
	planner *service.PlannerService
	units   Units

	// Window dimensions
	width  int
	height int

	// Status message
	status  string
	isError bool
}

// NewApp creates a new App with all dependencies
func NewApp(planner *service.PlannerService, cfg config.Config) *App {
	units := NewUnits(cfg.Display)
	input := service.PredictionInput{
		AthleteType: cfg.Athlete.Type,
	}

	return &App{
		screen:      ScreenPredictions,
		planner:     planner,
		units:       units,
		input:       input,
		predictions: NewPredictionsModel(planner, units, input, 0, 0),
		workouts:    NewWorkoutsModel(planner, input, 0, 0),
		profiles:    NewProfilesModel(planner, input),
		help:        NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.predictions.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings, suppressed while a screen is in form entry
		if !a.editing() {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				a.screen = ScreenPredictions
				a.predictions = NewPredictionsModel(a.planner, a.units, a.input, a.width, a.height)
				return a, a.predictions.Init()
			case "2":
				a.screen = ScreenWorkouts
				a.workouts = NewWorkoutsModel(a.planner, a.input, a.width, a.height)
				return a, a.workouts.Init()
			case "3":
				a.screen = ScreenProfiles
				a.profiles = NewProfilesModel(a.planner, a.input)
				return a, a.profiles.Init()
			case "?":
				if a.screen != ScreenHelp {
					a.prevScreen = a.screen
					a.screen = ScreenHelp
				}
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case inputChangedMsg:
		a.input = msg.input
		if msg.status != "" {
			a.status = msg.status
			a.isError = false
		}

	case statusMsg:
		a.status = msg.text
		a.isError = msg.isErr
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenPredictions:
		var m tea.Model
		m, cmd = a.predictions.Update(msg)
		a.predictions = m.(PredictionsModel)
	case ScreenWorkouts:
		var m tea.Model
		m, cmd = a.workouts.Update(msg)
		a.workouts = m.(WorkoutsModel)
	case ScreenProfiles:
		var m tea.Model
		m, cmd = a.profiles.Update(msg)
		a.profiles = m.(ProfilesModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// editing reports whether the active screen is capturing text input, in
// which case global navigation keys must pass through.
func (a *App) editing() bool {
	switch a.screen {
	case ScreenPredictions:
		return a.predictions.editing
	case ScreenWorkouts:
		return a.workouts.editing
	case ScreenProfiles:
		return a.profiles.naming
	}
	return false
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenPredictions:
		content = a.predictions.View()
	case ScreenWorkouts:
		content = a.workouts.View()
	case ScreenProfiles:
		content = a.profiles.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Pacecast Race Predictor")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Predictions", ScreenPredictions},
		{"2", "Workouts", ScreenWorkouts},
		{"3", "Profiles", ScreenProfiles},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status == "" {
		return ""
	}
	if a.isError {
		return errorStyle.Render(a.status)
	}
	return statusStyle.Render(a.status)
}
