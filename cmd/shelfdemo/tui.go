package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/shelf/pkg/shelf/constants"
	"github.com/BrandonKowalski/shelf/pkg/shelf/termrender"
)

const (
	frameInterval = 16 * time.Millisecond
	cellWidth     = 10
	cellHeight    = rowHeight
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	focusedPaneStyle = paneStyle.BorderForeground(lipgloss.Color("63"))
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingLeft(1)
)

type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// model drives a demo from bubbletea: every frame ticks both containers
// and redraws them into text.
type model struct {
	demo     *demo
	start    time.Time
	now      time.Duration
	menuView *termrender.Context
	mainView *termrender.Context
}

func newModel(d *demo, start time.Time) model {
	m := model{
		demo:     d,
		start:    start,
		menuView: termrender.NewContext(cellWidth, cellHeight, termrender.DefaultStyles()),
		mainView: termrender.NewContext(cellWidth, cellHeight, termrender.DefaultStyles()),
	}
	d.render(m.menuView, m.mainView, 0)
	return m
}

func (m model) Init() tea.Cmd {
	return frame()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.now = time.Time(msg).Sub(m.start)
		m.demo.render(m.menuView, m.mainView, m.now)
		return m, frame()

	case tea.KeyMsg:
		if quit := m.handleKey(msg); quit {
			return m, tea.Quit
		}
		m.demo.render(m.menuView, m.mainView, m.now)
	}
	return m, nil
}

// handleKey applies one key press and reports whether the program should
// exit.
func (m model) handleKey(msg tea.KeyMsg) bool {
	d := m.demo
	switch msg.Type {
	case tea.KeyCtrlC:
		return true
	case tea.KeyEsc:
		return !d.group.Back()
	case tea.KeyUp:
		d.group.OnDirection(constants.DirectionUp)
	case tea.KeyDown:
		d.group.OnDirection(constants.DirectionDown)
	case tea.KeyLeft:
		d.group.OnDirection(constants.DirectionLeft)
	case tea.KeyRight:
		d.group.OnDirection(constants.DirectionRight)
	case tea.KeyPgUp:
		d.pages.Flip(-1)
	case tea.KeyPgDown:
		d.pages.Flip(1)
	case tea.KeyHome:
		d.focused().SelectItem(0)
	case tea.KeyEnd:
		d.focused().SelectItem(d.focused().Len() - 1)
	case tea.KeyEnter:
		d.open()
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			d.jump(msg.Runes[0])
		}
	}
	return false
}

func (m model) View() string {
	menuStyle, mainStyle := paneStyle, focusedPaneStyle
	if m.demo.focused() == m.demo.menu {
		menuStyle, mainStyle = focusedPaneStyle, paneStyle
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		menuStyle.Render(m.menuView.View()),
		mainStyle.Render(m.mainView.View()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, panes, statusStyle.Render(m.demo.status()))
}

func runTUI(d *demo) error {
	_, err := tea.NewProgram(newModel(d, time.Now()), tea.WithAltScreen()).Run()
	return err
}
