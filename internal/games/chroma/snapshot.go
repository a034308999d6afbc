package chroma

// Snapshot is the render-facing view of the game.
type Snapshot struct {
	State         State
	Score         int
	HighScore     int
	TimeRemaining float64
	GridSize      int
	Cells         []Color
	OddIndex      int
	LastDelta     *Delta
}

// Snapshot returns a copy of the current state for presentation.
// Before the first Start the grid is empty.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State:         g.state,
		Score:         g.score,
		HighScore:     g.highScore,
		TimeRemaining: g.timeRemaining,
		LastDelta:     g.LastDelta(),
		OddIndex:      -1,
	}
	if g.hasRound {
		snap.GridSize = g.round.GridSize
		snap.Cells = g.round.Cells()
		snap.OddIndex = g.round.OddIndex
	}
	return snap
}
