package tui

import (
	"fmt"
	"strings"

	"golife/internal/session"

	"github.com/charmbracelet/lipgloss"
)

// View renders the active mode.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.sess.Mode() == session.ModeBrowsing {
		return m.browseView()
	}
	return m.boardView()
}

func (m Model) headerLine() string {
	var parts []string
	cfg := m.cfg
	st := m.sess.Stats()

	if cfg.ShowHeader("mode") {
		if badges := m.modeBadges(); badges != "" {
			parts = append(parts, badges)
		}
	}
	if cfg.ShowHeader("size") {
		parts = append(parts, fmt.Sprintf("Size: %dx%d", cfg.Cols, cfg.Rows))
	}
	if cfg.ShowHeader("interval") {
		parts = append(parts, fmt.Sprintf("Interval: %s", cfg.Interval))
	}
	if cfg.ShowHeader("game") {
		parts = append(parts, fmt.Sprintf("Game %d", st.Game))
	}
	if cfg.ShowHeader("gen") {
		parts = append(parts, fmt.Sprintf("Generation %d", st.Generation))
	}
	if cfg.ShowHeader("alive") {
		alive := fmt.Sprintf("Alive %d", st.Alive)
		if st.Generation > 0 {
			alive += fmt.Sprintf(" (Δ:%+d)", st.AliveDelta)
		}
		parts = append(parts, alive)
	}
	if cfg.ShowHeader("density") {
		parts = append(parts, fmt.Sprintf("Density: %.0f%%", cfg.Density*100))
	}
	if cfg.ShowHeader("fps") {
		parts = append(parts, fmt.Sprintf("FPS: %.1f", m.meter.PerSecond()))
	}
	return strings.Join(parts, " | ")
}

func (m Model) modeBadges() string {
	var badges []string
	switch m.sess.Mode() {
	case session.ModeBrowsing:
		badges = append(badges, "[Pattern Library]")
	case session.ModePlacing:
		badges = append(badges, "[Pattern Placement]")
	case session.ModeEditing:
		badges = append(badges, "[Editing]")
	case session.ModePaused:
		badges = append(badges, "[Paused]")
	}
	if m.cfg.Endless {
		badges = append(badges, "[Endless]")
	}
	if m.cfg.KeepAlive {
		badges = append(badges, "[Keep Alive]")
	}
	if m.sess.Torus() {
		badges = append(badges, "[Torus]")
	}
	if m.cfg.Stagnate > 0 {
		badges = append(badges, fmt.Sprintf("[Stagnate: %d]", m.cfg.Stagnate))
	}
	return strings.Join(badges, " ")
}

func (m Model) boardView() string {
	var b strings.Builder

	header := m.headerLine()
	if header != "" {
		b.WriteString(headerStyle.Render(header))
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("─", lipgloss.Width(header)))
		b.WriteByte('\n')
	}

	mode := m.sess.Mode()
	board := m.sess.Board()

	var cursor session.Point
	hasCursor := false
	switch mode {
	case session.ModeEditing:
		cursor, hasCursor = m.sess.Edit().Cursor, true
	case session.ModePlacing:
		cursor, hasCursor = m.sess.Place().Cursor, true
	}

	// Ghost cells preview where the transformed pattern would land.
	ghost := map[int]bool{}
	if mode == session.ModePlacing {
		for _, cell := range m.sess.PlacingPattern() {
			r, c := cursor.Row+cell.Row, cursor.Col+cell.Col
			if board.InBounds(r, c) {
				ghost[board.Index(r, c)] = true
			}
		}
	}

	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			glyph := m.cfg.DeadCell
			styled := glyph
			switch {
			case board.Get(r, c):
				glyph = m.cfg.LiveCell
				styled = glyph
			case ghost[board.Index(r, c)]:
				glyph = m.cfg.LiveCell
				styled = ghostStyle.Render(glyph)
			}
			if hasCursor && r == cursor.Row && c == cursor.Col {
				styled = cursorStyle.Render(glyph)
			}
			b.WriteString(styled)
		}
		b.WriteByte('\n')
	}

	switch mode {
	case session.ModeEditing:
		if m.naming {
			b.WriteString(m.nameInput.View())
			b.WriteByte('\n')
		}
		b.WriteString(instructionStyle.Render("Move:↑/↓/←/→ | Toggle: Space | Save: Enter | Quit: Esc"))
	case session.ModePlacing:
		b.WriteString(instructionStyle.Render("Move:↑/↓/←/→ | Rotate: R | Flip: F | Place: Space | Cancel: L or Esc"))
	}

	if status := m.sess.Status(); status != "" {
		b.WriteByte('\n')
		b.WriteString(statusStyle.Render(status))
	}
	return b.String()
}

func (m Model) browseView() string {
	var b strings.Builder

	header := m.headerLine()
	sep := 20
	if header != "" {
		b.WriteString(headerStyle.Render(header))
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("─", lipgloss.Width(header)))
		b.WriteByte('\n')
		sep = lipgloss.Width(header)
	}
	b.WriteString(instructionStyle.Render("Select a pattern using ↑/↓ arrows, press Space to place it."))
	b.WriteByte('\n')
	b.WriteString(instructionStyle.Render("Press 'L' or Esc to cancel."))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("─", sep))
	b.WriteByte('\n')

	browse := m.sess.Browse()
	names := m.sess.FilteredNames()

	end := browse.Scroll + m.sess.BrowseViewport()
	if end > len(names) {
		end = len(names)
	}
	for i := browse.Scroll; i < end; i++ {
		if i == browse.Selected {
			b.WriteString("> " + selectedStyle.Render(" "+names[i]+" "))
		} else {
			b.WriteString("  " + names[i])
		}
		b.WriteByte('\n')
	}
	if len(names) == 0 {
		b.WriteString(instructionStyle.Render("  (no patterns match)"))
		b.WriteByte('\n')
	}

	if browse.Searching {
		b.WriteByte('\n')
		b.WriteString("Search: /" + renderQuery(browse.Query, browse.QueryCursor))
	}

	if status := m.sess.Status(); status != "" {
		b.WriteByte('\n')
		b.WriteString(statusStyle.Render(status))
	}
	return b.String()
}

// renderQuery shows the query with a block cursor at the edit position.
func renderQuery(query string, pos int) string {
	runes := []rune(query)
	if pos > len(runes) {
		pos = len(runes)
	}
	cursorChar := " "
	if pos < len(runes) {
		cursorChar = string(runes[pos])
	}
	post := ""
	if pos < len(runes) {
		post = string(runes[pos+1:])
	}
	return string(runes[:pos]) + cursorStyle.Render(cursorChar) + post
}

// ResultsView renders the final statistics box shown after the program
// leaves the alternate screen.
func ResultsView(stats session.Stats, reason string) string {
	rows := []string{
		fmt.Sprintf("Final Game: %d", stats.Game),
		fmt.Sprintf("Max Generation: %d", stats.MaxGeneration),
	}
	width := 0
	for _, row := range rows {
		if w := lipgloss.Width(row); w > width {
			width = w
		}
	}
	content := resultsTitleStyle.Width(width).Render("Game Over") + "\n" + strings.Join(rows, "\n")

	out := resultsBoxStyle.Render(content)
	if reason != "" {
		out = reason + "\n" + out
	}
	return out + "\n"
}
