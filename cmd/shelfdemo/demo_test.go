package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/shelf/pkg/shelf"
	"github.com/BrandonKowalski/shelf/pkg/shelf/constants"
	"github.com/BrandonKowalski/shelf/pkg/shelf/termrender"
)

func newTestDemo(t *testing.T) *demo {
	t.Helper()
	cfg := defaultConfig()
	cfg.ScrollTime = 0
	d, err := newDemo(cfg, defaultCatalog(), "en")
	require.NoError(t, err)
	return d
}

func renderDemo(d *demo) {
	d.render(
		termrender.NewContext(cellWidth, cellHeight, termrender.DefaultStyles()),
		termrender.NewContext(cellWidth, cellHeight, termrender.DefaultStyles()),
		0,
	)
}

func TestNewDemo(t *testing.T) {
	d := newTestDemo(t)

	assert.Same(t, d.main, d.focused())
	assert.True(t, d.main.HasFocus())
	assert.Equal(t, 26, d.main.Len())
	assert.Equal(t, 3, d.menu.Len())
	assert.Equal(t, 10, d.main.ItemsPerPage())
	assert.Equal(t, float64(menuWidth+menuGap), d.main.Viewport().X)
	assert.Equal(t, menuID, d.main.Neighbor(constants.DirectionLeft))
}

func TestNewDemo_UnknownKind(t *testing.T) {
	cfg := defaultConfig()
	cfg.Kind = "carousel"
	_, err := newDemo(cfg, defaultCatalog())
	assert.True(t, shelf.IsConfigError(err))
}

func TestDemo_FocusMovesBetweenContainers(t *testing.T) {
	d := newTestDemo(t)

	assert.True(t, d.group.OnDirection(constants.DirectionLeft))
	assert.Same(t, d.menu, d.focused())
	assert.False(t, d.main.HasFocus())

	assert.True(t, d.group.OnDirection(constants.DirectionRight))
	assert.Same(t, d.main, d.focused())
}

func TestDemo_OpenBindsGroup(t *testing.T) {
	d := newTestDemo(t)
	assert.False(t, d.open(), "open only acts on the menu")

	require.True(t, d.group.OnDirection(constants.DirectionLeft))
	require.True(t, d.menu.OnDown())
	require.True(t, d.open())

	assert.Same(t, d.main, d.focused())
	assert.Equal(t, 8, d.main.Len())
	assert.Equal(t, "Mercury", d.main.SelectedItem().Label())

	require.True(t, d.group.Back())
	assert.Same(t, d.menu, d.focused())
}

func TestDemo_JumpAndStatus(t *testing.T) {
	d := newTestDemo(t)

	require.True(t, d.jump('t'))
	assert.Equal(t, "Tango", d.main.SelectedItem().Label())

	renderDemo(d)
	assert.Equal(t, "▲▼ Page 2 of 3  Tango", d.status())
}
