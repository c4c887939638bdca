package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sflc/amendments/internal/config"
	"github.com/sflc/amendments/internal/router"
	"github.com/sflc/amendments/internal/screens/home"
	"github.com/sflc/amendments/internal/screens/practice"
	"github.com/sflc/amendments/internal/screens/welcome"
)

func sized(m AppModel) AppModel {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(AppModel)
}

func TestStartsOnWelcome(t *testing.T) {
	m := newAppModel(Options{Config: config.DefaultConfig()})

	_, ok := m.router.Active().(*welcome.WelcomeScreen)
	assert.True(t, ok)
	assert.NotNil(t, m.Init(), "welcome screen starts its animation")
}

func TestSkipSplashStartsOnHome(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SkipSplash = true
	m := newAppModel(Options{Config: cfg})

	_, ok := m.router.Active().(*home.HomeScreen)
	assert.True(t, ok)
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(Options{})

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestHomeToPracticeShowsProgress(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SkipSplash = true
	cfg.Ordered = true
	m := sized(newAppModel(Options{Config: cfg}))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	m.Update(push)

	_, ok = m.router.Active().(*practice.PracticeScreen)
	require.True(t, ok)

	view := m.render()
	assert.Contains(t, view, "0/27 placed")
	assert.Contains(t, view, "Practice")
}

func TestTooSmall(t *testing.T) {
	m := newAppModel(Options{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	assert.Contains(t, updated.(AppModel).render(), "Terminal too small!")
}
