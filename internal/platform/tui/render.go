package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-chroma/internal/core"
	"github.com/vovakirdan/tui-chroma/internal/games/chroma"
)

const (
	hudHeight    = 4 // Title, timer, feedback and a spacer line
	timeBarWidth = 30
	minCellW     = 2
	minCellH     = 1
	cursorMark   = "◆"
)

// layout returns the on-screen placement of the grid. View and mouse
// hit-testing both use it, so a click always lands on the drawn cell.
// Cells shrink until the grid fits the terminal.
func (m Model) layout() core.GridLayout {
	size := m.gridSize()
	l := core.GridLayout{
		Y:     hudHeight,
		Size:  size,
		CellW: max(m.display.CellWidth, minCellW),
		CellH: max(m.display.CellHeight, minCellH),
		Gap:   max(m.display.Gap, 0),
	}

	availW := m.config.ScreenW
	availH := m.config.ScreenH - hudHeight - 1 - lipgloss.Height(m.renderHelp())

	for l.CellW > minCellW && l.Bounds().W > availW {
		l.CellW--
	}
	for l.CellH > minCellH && l.Bounds().H > availH {
		l.CellH--
	}

	if w := l.Bounds().W; w < availW {
		l.X = (availW - w) / 2
	}
	return l
}

// View renders the current game state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()

	var b strings.Builder
	b.WriteString(m.renderHUD(snap))

	switch snap.State {
	case chroma.StateIdle:
		b.WriteString(m.renderTitle(snap))
	case chroma.StatePlaying:
		b.WriteString(m.renderGrid(snap))
	case chroma.StateEnded:
		b.WriteString(m.renderEnd())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

// renderHUD draws exactly hudHeight lines above the grid.
func (m Model) renderHUD(snap chroma.Snapshot) string {
	sep := m.theme.HUDSeparator.Render("  │  ")
	title := m.theme.HUDTitle.Render("C H R O M A")

	size := snap.GridSize
	if size == 0 {
		size = chroma.GridSize(0)
	}

	stats := strings.Join([]string{
		m.theme.HUDLabel.Render("SCORE ") + m.theme.HUDValue.Render(fmt.Sprintf("%d", snap.Score)),
		m.theme.HUDLabel.Render("BEST ") + m.theme.HUDValue.Render(fmt.Sprintf("%d", snap.HighScore)),
		m.theme.HUDLabel.Render("GRID ") + m.theme.HUDValue.Render(fmt.Sprintf("%dx%d", size, size)),
	}, sep)

	remaining := snap.TimeRemaining
	if snap.State == chroma.StateIdle {
		remaining = m.game.Rules().InitialTime
	}

	lines := []string{
		" " + title + sep + stats,
		" " + m.renderTimeBar(remaining, m.game.Rules().MaxTime),
		" " + m.renderFeedback(snap),
		"",
	}
	return strings.Join(lines, "\n") + "\n"
}

// renderTimeBar draws the clock as a bar scaled to the time cap.
func (m Model) renderTimeBar(remaining, maxTime float64) string {
	frac := 0.0
	if maxTime > 0 {
		frac = core.ClampF(remaining/maxTime, 0, 1)
	}
	filled := int(math.Round(frac * timeBarWidth))

	style := m.theme.TimeHigh
	switch {
	case remaining <= 5:
		style = m.theme.TimeLow
	case remaining <= 10:
		style = m.theme.TimeMid
	}

	return m.theme.HUDLabel.Render("TIME ") +
		style.Render(strings.Repeat("█", filled)) +
		m.theme.TimeEmpty.Render(strings.Repeat("░", timeBarWidth-filled)) +
		m.theme.HUDValue.Render(fmt.Sprintf(" %4.1fs", remaining))
}

// renderFeedback shows the result of the last pick, falling back to the
// difference that was spotted in the previous round.
func (m Model) renderFeedback(snap chroma.Snapshot) string {
	rules := m.game.Rules()
	if m.feedback.ticks > 0 {
		if m.feedback.correct {
			return m.theme.Hit.Render(fmt.Sprintf("✓ +%.1fs", rules.HitBonus))
		}
		return m.theme.Miss.Render(fmt.Sprintf("✗ -%.1fs", rules.MissPenalty))
	}
	if snap.State == chroma.StatePlaying && snap.LastDelta != nil {
		d := snap.LastDelta
		return m.theme.HUDLabel.Render(fmt.Sprintf("last: %s differed by %.0f", d.Channel(), d.Max()))
	}
	return ""
}

// renderGrid draws the colour cells with the cursor marker.
func (m Model) renderGrid(snap chroma.Snapshot) string {
	l := m.layout()
	if len(snap.Cells) != l.Size*l.Size {
		return ""
	}

	pad := strings.Repeat(" ", l.X)
	gapCols := strings.Repeat(" ", l.Gap)
	cursor := m.cursor.Index(l.Size)

	lines := make([]string, 0, l.Bounds().H)
	for row := range l.Size {
		if row > 0 {
			for range l.Gap {
				lines = append(lines, "")
			}
		}
		for y := range l.CellH {
			var line strings.Builder
			line.WriteString(pad)
			for col := range l.Size {
				if col > 0 {
					line.WriteString(gapCols)
				}
				i := row*l.Size + col
				mark := ""
				if i == cursor && y == l.CellH/2 {
					mark = cursorMark
				}
				line.WriteString(m.renderCellLine(snap.Cells[i], l.CellW, mark))
			}
			lines = append(lines, line.String())
		}
	}
	return strings.Join(lines, "\n")
}

// renderCellLine draws one text row of a cell, optionally with a centred mark.
func (m Model) renderCellLine(c chroma.Color, width int, mark string) string {
	bg := lipgloss.Color(c.Hex())
	fill := lipgloss.NewStyle().Background(bg)
	if mark == "" {
		return fill.Render(strings.Repeat(" ", width))
	}

	markStyle := m.theme.MarkOnDark
	if c.L > 55 {
		markStyle = m.theme.MarkOnLight
	}

	markW := lipgloss.Width(mark)
	left := max((width-markW)/2, 0)
	right := max(width-left-markW, 0)
	return fill.Render(strings.Repeat(" ", left)) +
		markStyle.Background(bg).Render(mark) +
		fill.Render(strings.Repeat(" ", right))
}

// renderTitle draws the start screen.
func (m Model) renderTitle(snap chroma.Snapshot) string {
	rules := m.game.Rules()
	body := strings.Join([]string{
		m.theme.OverlayTitle.Render("FIND THE ODD ONE OUT"),
		"",
		m.theme.OverlayText.Render("One cell differs slightly in hue, saturation or lightness."),
		m.theme.OverlayText.Render(fmt.Sprintf("Hits add %.0fs (up to %.0fs), misses cost %.0fs.",
			rules.HitBonus, rules.MaxTime, rules.MissPenalty)),
		m.theme.OverlayText.Render("The grid grows and the difference shrinks as you score."),
		"",
		m.theme.OverlayDim.Render(fmt.Sprintf("Best so far: %d", snap.HighScore)),
		"",
		m.theme.OverlayTitle.Render("Press Enter to start"),
	}, "\n")

	return m.center(m.theme.OverlayBorder.Render(body))
}

// renderEnd draws the session summary.
func (m Model) renderEnd() string {
	report := m.game.Report()

	best := fmt.Sprintf("Best %d", report.HighScore)
	if report.NewBest {
		best += m.theme.Hit.Render("  NEW BEST!")
	}

	lines := []string{
		m.theme.OverlayTitle.Render("TIME UP"),
		"",
		m.theme.OverlayText.Render(fmt.Sprintf("Score %d  ·  %s", report.Score, report.Rank)),
		m.theme.OverlayText.Render(best),
		"",
		m.theme.OverlayDim.Render(fmt.Sprintf("Avg response  %.2fs", report.AvgResponse)),
		m.theme.OverlayDim.Render(fmt.Sprintf("Fastest pick  %.2fs", report.FastestReaction)),
		m.theme.OverlayDim.Render(fmt.Sprintf("Accuracy      %.0f%% (%d hits, %d misses)",
			report.Accuracy*100, report.Hits, report.Misses)),
	}

	if round, ok := m.game.Round(); ok {
		d := round.Base.Delta(round.Odd)
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(round.Base.Hex())).Render("████") +
			" " + lipgloss.NewStyle().Foreground(lipgloss.Color(round.Odd.Hex())).Render("████")
		lines = append(lines,
			"",
			m.theme.OverlayDim.Render(fmt.Sprintf("Missed cell #%d, %s off by %.0f  ",
				round.OddIndex+1, d.Channel(), d.Max()))+swatch,
		)
	}

	if next := nextRank(report.Rank); next != report.Rank {
		lines = append(lines, m.theme.OverlayDim.Render(
			fmt.Sprintf("%s starts at %d", next, chroma.RankMinScore(next))))
	}

	lines = append(lines, "", m.theme.OverlayTitle.Render("Enter or R to play again"))

	return m.center(m.theme.OverlayBorder.Render(strings.Join(lines, "\n")))
}

// nextRank returns the rank above r, or r itself at the top.
func nextRank(r chroma.Rank) chroma.Rank {
	ranks := chroma.AllRanks()
	for i, rank := range ranks {
		if rank == r && i+1 < len(ranks) {
			return ranks[i+1]
		}
	}
	return r
}

func (m Model) renderHelp() string {
	return m.theme.Help.Render(" " + m.help.View(m.keys))
}

// center places a block horizontally in the middle of the screen.
func (m Model) center(block string) string {
	if m.config.ScreenW <= lipgloss.Width(block) {
		return block
	}
	return lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, block)
}
