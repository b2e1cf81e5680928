package tui

import (
	"testing"
	"time"

	"golife/internal/app"
	"golife/internal/core"
	"golife/internal/pattern"
	"golife/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := app.NewConfig()
	cfg.Rows, cfg.Cols = 10, 10
	cfg.Interval = time.Millisecond
	cfg.KeepAlive = true
	require.NoError(t, cfg.Validate())

	lib, err := pattern.Load(nil)
	require.NoError(t, err)
	sess := session.New(session.Config{
		Rows:             cfg.Rows,
		Cols:             cfg.Cols,
		Density:          0.3,
		KeepAlive:        true,
		HeaderShown:      true,
		StagnationWindow: 0,
	}, lib, core.NewRNG(3))
	return New(cfg, sess)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func TestKeyTranslation(t *testing.T) {
	m := newTestModel(t)
	cases := []struct {
		msg  tea.KeyMsg
		want session.Command
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, session.CmdUp},
		{tea.KeyMsg{Type: tea.KeyDown}, session.CmdDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, session.CmdLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, session.CmdRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, session.CmdSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, session.CmdCancel},
		{tea.KeyMsg{Type: tea.KeyEnter}, session.CmdEnter},
		{runes("p"), session.CmdPause},
		{runes("e"), session.CmdEdit},
		{runes("l"), session.CmdPatternMenu},
		{runes("r"), session.CmdRestart},
		{runes("t"), session.CmdToggleTorus},
		{runes("f"), session.CmdFlip},
		{runes("n"), session.CmdAdvance},
		{runes("/"), session.CmdSearch},
		{runes("z"), session.CmdNone},
	}
	for _, tc := range cases {
		got := m.translate(tc.msg, false)
		assert.Equal(t, tc.want, got.Cmd, "key %q", tc.msg.String())
	}
}

func TestSearchTranslationTreatsPrintablesAsText(t *testing.T) {
	m := newTestModel(t)

	got := m.translate(runes("p"), true)
	assert.Equal(t, session.CmdChar, got.Cmd)
	assert.Equal(t, 'p', got.Char)

	got = m.translate(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, true)
	assert.Equal(t, session.CmdChar, got.Cmd)
	assert.Equal(t, ' ', got.Char)

	got = m.translate(tea.KeyMsg{Type: tea.KeyEnter}, true)
	assert.Equal(t, session.CmdEnter, got.Cmd)
}

func TestRotateKeySharedWithRestart(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, session.CmdRestart, m.translate(runes("r"), false).Cmd)

	m, _ = press(t, m, runes("p"))
	m, _ = press(t, m, runes("l"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	require.Equal(t, session.ModePlacing, m.sess.Mode())
	assert.Equal(t, session.CmdRotate, m.translate(runes("r"), false).Cmd)
}

func TestPauseStopsAndResumeRestartsTicker(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, runes("p"))
	require.Equal(t, session.ModePaused, m.sess.Mode())

	gen := m.sess.Stats().Generation
	m, cmd := press(t, m, tickMsg{seq: m.tickSeq})
	assert.Nil(t, cmd, "ticker must not reschedule while paused")
	assert.Equal(t, gen, m.sess.Stats().Generation)

	m, cmd = press(t, m, runes("p"))
	require.Equal(t, session.ModeRunning, m.sess.Mode())
	assert.NotNil(t, cmd, "resuming must restart the ticker")

	stale := tickMsg{seq: m.tickSeq - 1}
	m, cmd = press(t, m, stale)
	assert.Nil(t, cmd)
	assert.Equal(t, gen, m.sess.Stats().Generation, "stale ticks are discarded")
}

func TestTickAdvancesGeneration(t *testing.T) {
	m := newTestModel(t)
	m, cmd := press(t, m, tickMsg{seq: m.tickSeq})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.sess.Stats().Generation)
}

func TestQuitFinishesSession(t *testing.T) {
	m := newTestModel(t)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.sess.Finished())
}

func TestInterruptFinishesSession(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, tickMsg{seq: m.tickSeq})
	m, _ = press(t, m, tickMsg{seq: m.tickSeq})

	// An external SIGINT arrives as a message, not a termination.
	m, cmd := press(t, m, tea.InterruptMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.sess.Finished())
	assert.Equal(t, 2, m.sess.Stats().MaxGeneration)
}

func TestBoardViewShowsHeader(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	assert.Contains(t, view, "Game 1")
	assert.Contains(t, view, "Generation 0")
	assert.Contains(t, view, "[Keep Alive]")
}

func TestBrowseViewListsPatterns(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, runes("p"))
	m, _ = press(t, m, runes("l"))
	require.Equal(t, session.ModeBrowsing, m.sess.Mode())

	view := m.View()
	assert.Contains(t, view, "Select a pattern")
	assert.Contains(t, view, "beacon")
	assert.Contains(t, view, "[Pattern Library]")
}

func TestPlacingViewShowsInstructions(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, runes("p"))
	m, _ = press(t, m, runes("l"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	require.Equal(t, session.ModePlacing, m.sess.Mode())

	view := m.View()
	assert.Contains(t, view, "Rotate: R")
	assert.Contains(t, view, "[Pattern Placement]")
}

func TestNamingPromptFlow(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, runes("p"))
	m, _ = press(t, m, runes("e"))
	require.Equal(t, session.ModeEditing, m.sess.Mode())

	// Draw one cell so the extracted pattern is not empty.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.naming)

	for _, r := range "dot" {
		m, _ = press(t, m, runes(string(r)))
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.naming)

	_, ok := m.sess.Library().Get("dot")
	assert.True(t, ok)
	assert.Contains(t, m.sess.Status(), "saved")
}

func TestResultsViewContents(t *testing.T) {
	out := ResultsView(session.Stats{Game: 3, MaxGeneration: 42}, "All cells are dead.")
	assert.Contains(t, out, "Game Over")
	assert.Contains(t, out, "Final Game: 3")
	assert.Contains(t, out, "Max Generation: 42")
	assert.Contains(t, out, "All cells are dead.")
}
