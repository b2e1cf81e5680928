// Package tui is the terminal front end: it translates key presses into
// session commands, drives the tick while the simulation runs, and renders
// the session state.
package tui

import (
	"strings"
	"time"
	"unicode"

	"golife/internal/app"
	"golife/internal/core"
	"golife/internal/session"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg advances the simulation. The sequence number lets a restarted
// ticker discard messages from an abandoned one.
type tickMsg struct {
	seq int
}

// Model is the root Bubble Tea model.
type Model struct {
	cfg  *app.Config
	sess *session.Session
	keys KeyMap

	meter *core.RateMeter

	// Inline prompt for naming a pattern saved from the editor.
	nameInput textinput.Model
	naming    bool

	tickSeq  int
	quitting bool

	width  int
	height int
}

// New constructs the root model for the given session.
func New(cfg *app.Config, sess *session.Session) Model {
	ti := textinput.New()
	ti.Prompt = "Name: "
	ti.Placeholder = "pattern name"
	ti.CharLimit = 40
	return Model{
		cfg:       cfg,
		sess:      sess,
		keys:      DefaultKeyMap(),
		meter:     &core.RateMeter{},
		nameInput: ti,
	}
}

// Init starts the simulation ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.Interval, m.tickSeq)
}

func tickCmd(interval time.Duration, seq int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		if msg.seq != m.tickSeq {
			return m, nil
		}
		if m.sess.Mode() != session.ModeRunning || m.sess.Finished() {
			// Waits are unbounded outside Running; the ticker stops and is
			// restarted when the session resumes.
			return m, nil
		}
		m.meter.Tick()
		m.sess.Tick()
		if m.sess.Finished() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.cfg.Interval, m.tickSeq)

	case tea.InterruptMsg:
		// SIGINT is delivered as a message, not a termination.
		return m.quit()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.naming {
		return m.handleNamingKey(msg)
	}

	searching := m.sess.Mode() == session.ModeBrowsing && m.sess.Browse().Searching
	if msg.Type == tea.KeyCtrlC || (!searching && key.Matches(msg, m.keys.Quit)) {
		return m.quit()
	}

	if m.sess.Mode() == session.ModeEditing && key.Matches(msg, m.keys.Enter) {
		m.naming = true
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		return m, textinput.Blink
	}

	before := m.sess.Mode()
	m.sess.Apply(m.translate(msg, searching))
	if m.sess.Finished() {
		m.quitting = true
		return m, tea.Quit
	}
	if before != session.ModeRunning && m.sess.Mode() == session.ModeRunning {
		m.tickSeq++
		return m, tickCmd(m.cfg.Interval, m.tickSeq)
	}
	return m, nil
}

func (m Model) handleNamingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m.quit()
	case key.Matches(msg, m.keys.Cancel):
		m.naming = false
		m.nameInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		m.naming = false
		m.nameInput.Blur()
		if name := strings.TrimSpace(m.nameInput.Value()); name != "" {
			// Errors surface through the session status line.
			_ = m.sess.SavePattern(name)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.sess.Finish()
	m.quitting = true
	return m, tea.Quit
}

// translate maps a key press to a session command. While the pattern search
// is active, printable characters feed the query instead of acting as
// commands.
func (m Model) translate(msg tea.KeyMsg, searching bool) session.Input {
	k := m.keys
	switch {
	case key.Matches(msg, k.Up):
		return session.Key(session.CmdUp)
	case key.Matches(msg, k.Down):
		return session.Key(session.CmdDown)
	case key.Matches(msg, k.Left):
		return session.Key(session.CmdLeft)
	case key.Matches(msg, k.Right):
		return session.Key(session.CmdRight)
	case key.Matches(msg, k.Cancel):
		return session.Key(session.CmdCancel)
	case key.Matches(msg, k.Enter):
		return session.Key(session.CmdEnter)
	case key.Matches(msg, k.Backspace):
		return session.Key(session.CmdBackspace)
	case key.Matches(msg, k.Delete):
		return session.Key(session.CmdDelete)
	}

	if searching {
		if msg.Type == tea.KeySpace {
			return session.Char(' ')
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && unicode.IsPrint(msg.Runes[0]) {
			return session.Char(msg.Runes[0])
		}
		return session.Key(session.CmdNone)
	}

	switch {
	case key.Matches(msg, k.Select):
		return session.Key(session.CmdSelect)
	case key.Matches(msg, k.Pause):
		return session.Key(session.CmdPause)
	case key.Matches(msg, k.Edit):
		return session.Key(session.CmdEdit)
	case key.Matches(msg, k.Library):
		return session.Key(session.CmdPatternMenu)
	case key.Matches(msg, k.Restart):
		if m.sess.Mode() == session.ModePlacing {
			return session.Key(session.CmdRotate)
		}
		return session.Key(session.CmdRestart)
	case key.Matches(msg, k.Torus):
		return session.Key(session.CmdToggleTorus)
	case key.Matches(msg, k.Flip):
		return session.Key(session.CmdFlip)
	case key.Matches(msg, k.Step):
		return session.Key(session.CmdAdvance)
	case key.Matches(msg, k.Search):
		return session.Key(session.CmdSearch)
	}
	return session.Key(session.CmdNone)
}
