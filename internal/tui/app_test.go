// SPDX-FileCopyrightText: 2025 The Droplist Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janderssonse/droplist/internal/config"
	"github.com/janderssonse/droplist/internal/tui/models"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	catalog, err := config.DefaultCatalog()
	require.NoError(t, err)

	return NewApp(catalog)
}

func TestAppStartsOnDemoScreen(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	assert.Equal(t, DemoScreen, app.currentScreen)
	assert.NotNil(t, app.contentModel)
}

func TestAppNavigatesToHelpAndBack(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	updated, _ := app.Update(models.NavigateMsg{Screen: models.HelpScreen})
	app, ok := updated.(*App)
	require.True(t, ok)
	assert.Equal(t, HelpScreen, app.currentScreen)

	updated, _ = app.Update(models.NavigateMsg{Screen: models.DemoScreen})
	app, ok = updated.(*App)
	require.True(t, ok)
	assert.Equal(t, DemoScreen, app.currentScreen)
}

func TestAppForwardsWindowSize(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	updated, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	app, ok := updated.(*App)
	require.True(t, ok)

	assert.Equal(t, 100, app.width)
	assert.Equal(t, 40, app.height)
	assert.NotEmpty(t, app.View())
}
