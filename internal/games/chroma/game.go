// Package chroma implements a colour-discrimination game.
// The player picks the one grid cell whose colour differs slightly from the
// rest, racing a countdown that is topped up on every hit and drained on every
// miss. The package holds pure game logic only: the platform layer drives the
// clock through Tick and forwards clicks through Select.
package chroma

import "math"

// GameID identifies the game in log output.
const GameID = "chroma"

// tickEpsilon absorbs float drift so the tick that lands on zero ends the game.
const tickEpsilon = 1e-9

// State represents the session lifecycle.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StateEnded
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Rules holds the timer parameters of a session, in seconds.
type Rules struct {
	InitialTime float64 // Clock value at start
	HitBonus    float64 // Added on a correct pick
	MissPenalty float64 // Removed on a wrong pick
	MaxTime     float64 // Cap for the clock after a bonus
}

// DefaultRules returns the standard timer rules.
func DefaultRules() Rules {
	return Rules{
		InitialTime: 15.0,
		HitBonus:    2.0,
		MissPenalty: 3.0,
		MaxTime:     30.0,
	}
}

// Round is one instance of the task. It is replaced wholesale on every hit.
type Round struct {
	GridSize int
	Base     Color
	Odd      Color
	OddIndex int
}

// CellCount returns the number of cells in the grid.
func (r Round) CellCount() int {
	return r.GridSize * r.GridSize
}

// ColorAt returns the colour rendered at cell i.
func (r Round) ColorAt(i int) Color {
	if i == r.OddIndex {
		return r.Odd
	}
	return r.Base
}

// Cells returns the colour of every cell in row-major order.
func (r Round) Cells() []Color {
	cells := make([]Color, r.CellCount())
	for i := range cells {
		cells[i] = r.ColorAt(i)
	}
	return cells
}

// StepResult is returned by Tick.
type StepResult struct {
	State   State
	Ended   bool // True only on the tick that ended the session
	Ignored bool // Tick arrived while not playing
}

// SelectResult is returned by Select.
type SelectResult struct {
	Correct bool
	Ignored bool // Select arrived while not playing
}

// Game owns the authoritative session state.
// It is not safe for concurrent use; callers serialise Start, Tick and Select.
type Game struct {
	rules Rules
	rng   RNG

	state         State
	score         int
	highScore     int
	timeRemaining float64
	round         Round
	hasRound      bool
	lastDelta     *Delta

	// Reporting only
	hits        int
	misses      int
	elapsed     float64
	startBest   int
	roundStart  float64
	reactionLog []float64
}

// New creates an idle game using the given rules and random source.
func New(rules Rules, rng RNG) *Game {
	return &Game{
		rules: rules,
		rng:   rng,
		state: StateIdle,
	}
}

// Rules returns the timer rules in effect.
func (g *Game) Rules() Rules {
	return g.rules
}

// Start begins a new session, abandoning any session in progress.
// The high score carries over.
func (g *Game) Start() {
	g.state = StatePlaying
	g.score = 0
	g.timeRemaining = g.rules.InitialTime
	g.lastDelta = nil
	g.hits = 0
	g.misses = 0
	g.elapsed = 0
	g.roundStart = 0
	g.startBest = g.highScore
	g.reactionLog = g.reactionLog[:0]
	g.round = NewRound(g.rng, g.score)
	g.hasRound = true
}

// Tick advances the clock by dt seconds.
// The tick that would take the clock to or below zero clamps it to exactly
// zero and ends the session.
func (g *Game) Tick(dt float64) StepResult {
	if g.state != StatePlaying {
		return StepResult{State: g.state, Ignored: true}
	}
	if dt <= 0 {
		return StepResult{State: g.state}
	}

	if g.timeRemaining-dt <= tickEpsilon {
		g.elapsed += g.timeRemaining
		g.timeRemaining = 0
		g.state = StateEnded
		return StepResult{State: g.state, Ended: true}
	}

	g.timeRemaining -= dt
	g.elapsed += dt
	return StepResult{State: g.state}
}

// Select handles a pick of cell index.
// Out-of-range indices count as a miss. A miss that drains the clock to zero
// leaves the session playing until the next Tick.
func (g *Game) Select(index int) SelectResult {
	if g.state != StatePlaying {
		return SelectResult{Ignored: true}
	}

	if index != g.round.OddIndex {
		g.misses++
		g.timeRemaining = math.Max(0, g.timeRemaining-g.rules.MissPenalty)
		return SelectResult{Correct: false}
	}

	delta := g.round.Base.Delta(g.round.Odd)
	g.lastDelta = &delta

	g.hits++
	g.reactionLog = append(g.reactionLog, g.elapsed-g.roundStart)
	g.roundStart = g.elapsed

	g.score++
	if g.score > g.highScore {
		g.highScore = g.score
	}
	g.timeRemaining = math.Min(g.timeRemaining+g.rules.HitBonus, g.rules.MaxTime)
	g.round = NewRound(g.rng, g.score)

	return SelectResult{Correct: true}
}

// SetHighScore seeds the high score, e.g. from persisted history.
// The high score never decreases.
func (g *Game) SetHighScore(n int) {
	if n > g.highScore {
		g.highScore = n
	}
}

// State returns the current lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score seen by this game.
func (g *Game) HighScore() int {
	return g.highScore
}

// TimeRemaining returns the clock in seconds.
func (g *Game) TimeRemaining() float64 {
	return g.timeRemaining
}

// Round returns the active round and whether one exists.
func (g *Game) Round() (Round, bool) {
	return g.round, g.hasRound
}

// LastDelta returns the colour difference of the last cleared round, or nil.
func (g *Game) LastDelta() *Delta {
	if g.lastDelta == nil {
		return nil
	}
	d := *g.lastDelta
	return &d
}

// AverageResponse estimates seconds per cleared round from the clock alone.
func (g *Game) AverageResponse() float64 {
	if g.score <= 0 {
		return 0
	}
	spent := g.rules.InitialTime + float64(g.score)*g.rules.HitBonus - g.timeRemaining
	return spent / float64(g.score)
}
