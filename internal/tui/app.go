// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

// Package tui hosts the Bubble Tea application shell for the Droplist demo.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/janderssonse/droplist/internal/config"
	"github.com/janderssonse/droplist/internal/tui/models"
	"github.com/janderssonse/droplist/internal/tui/styles"
)

// ErrNoTerminal is returned when the TUI is launched in a non-terminal
// environment.
var ErrNoTerminal = errors.New("TUI requires a terminal environment")

// Screen represents different TUI screens.
type Screen int

// Screen constants (use models constants for compatibility).
const (
	DemoScreen Screen = Screen(models.DemoScreen)
	HelpScreen Screen = Screen(models.HelpScreen)
)

// App is the main TUI application following the tree-of-models pattern: a
// persistent header with screen models swapped underneath.
type App struct {
	width         int
	height        int
	styles        *styles.Styles
	currentScreen Screen
	contentModel  tea.Model
	models        map[Screen]tea.Model
}

// NewApp creates the TUI application for the given demo catalog.
func NewApp(catalog *config.Catalog) *App {
	app := &App{
		styles:        styles.New(),
		currentScreen: DemoScreen,
		models:        make(map[Screen]tea.Model),
	}

	demoModel := models.NewDemo(app.styles, catalog)
	app.contentModel = demoModel
	app.models[DemoScreen] = demoModel

	return app
}

// Run starts the TUI application with the provided context.
func (a *App) Run(ctx context.Context) error {
	program := tea.NewProgram(
		a,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI application failed: %w", err)
	}

	return nil
}

// Init implements the tea.Model interface.
func (a *App) Init() tea.Cmd {
	// Pre-create the help model so navigation to it is instant.
	preloadCmd := func() tea.Msg {
		return helpPreloadedMsg{model: models.NewHelp(a.styles)}
	}

	return tea.Batch(a.contentModel.Init(), preloadCmd)
}

// helpPreloadedMsg is sent when help content has been pre-rendered.
type helpPreloadedMsg struct {
	model tea.Model
}

// Update implements the tea.Model interface with global navigation handling.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case helpPreloadedMsg:
		a.models[HelpScreen] = msg.model

		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		var cmd tea.Cmd

		a.contentModel, cmd = a.contentModel.Update(tea.WindowSizeMsg{
			Width:  msg.Width,
			Height: a.contentHeight(),
		})

		return a, cmd

	case models.NavigateMsg:
		return a.handleNavigation(msg)
	}

	var cmd tea.Cmd

	a.contentModel, cmd = a.contentModel.Update(msg)

	return a, cmd
}

// View renders the persistent header above the current screen.
func (a *App) View() string {
	header := a.styles.Header.Render("Droplist")
	content := a.styles.Container.Render(a.contentModel.View())

	return lipgloss.JoinVertical(lipgloss.Left, header, content)
}

func (a *App) handleNavigation(msg models.NavigateMsg) (tea.Model, tea.Cmd) {
	screen := Screen(msg.Screen)

	model, ok := a.models[screen]
	if !ok {
		switch screen {
		case HelpScreen:
			model = models.NewHelp(a.styles)
		case DemoScreen:
			return a, nil
		default:
			return a, nil
		}

		a.models[screen] = model
	}

	a.currentScreen = screen
	a.contentModel = model

	var cmd tea.Cmd

	a.contentModel, cmd = a.contentModel.Update(tea.WindowSizeMsg{
		Width:  a.width,
		Height: a.contentHeight(),
	})

	return a, tea.Batch(model.Init(), cmd)
}

func (a *App) contentHeight() int {
	headerHeight := lipgloss.Height(a.styles.Header.Render("Droplist"))

	height := a.height - headerHeight
	if height < 1 {
		height = 1
	}

	return height
}
