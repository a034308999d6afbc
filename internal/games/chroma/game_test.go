package chroma

import (
	"math"
	"math/rand"
	"testing"
)

func newTestGame(seed int64) *Game {
	return New(DefaultRules(), rand.New(rand.NewSource(seed)))
}

func wrongIndex(g *Game) int {
	r, _ := g.Round()
	return (r.OddIndex + 1) % r.CellCount()
}

func hit(g *Game) SelectResult {
	r, _ := g.Round()
	return g.Select(r.OddIndex)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewGameIsIdle(t *testing.T) {
	g := newTestGame(1)

	snap := g.Snapshot()
	if snap.State != StateIdle {
		t.Errorf("state = %v, want idle", snap.State)
	}
	if snap.Score != 0 || snap.Cells != nil || snap.GridSize != 0 {
		t.Errorf("unexpected idle snapshot: %+v", snap)
	}
}

func TestStart(t *testing.T) {
	g := newTestGame(1)
	g.Start()

	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Errorf("state = %v, want playing", snap.State)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, want 0", snap.Score)
	}
	if snap.TimeRemaining != 15.0 {
		t.Errorf("time = %v, want 15", snap.TimeRemaining)
	}
	if snap.GridSize != 2 || len(snap.Cells) != 4 {
		t.Errorf("grid = %d with %d cells, want 2 with 4", snap.GridSize, len(snap.Cells))
	}
	if snap.LastDelta != nil {
		t.Error("last delta should be empty at start")
	}
}

func TestTickCountsDown(t *testing.T) {
	g := newTestGame(1)
	g.Start()

	for i := 0; i < 9; i++ {
		g.Tick(0.1)
	}

	if !approx(g.TimeRemaining(), 14.1) {
		t.Errorf("time = %v, want 14.1", g.TimeRemaining())
	}
	if g.State() != StatePlaying {
		t.Errorf("state = %v, want playing", g.State())
	}
}

func TestTickEndsGameAtZero(t *testing.T) {
	g := newTestGame(1)
	g.Start()

	ticks := 0
	var res StepResult
	for g.State() == StatePlaying && ticks < 1000 {
		res = g.Tick(0.1)
		ticks++
	}

	if ticks != 150 {
		t.Errorf("game ended after %d ticks, want 150", ticks)
	}
	if g.State() != StateEnded {
		t.Fatalf("state = %v, want ended", g.State())
	}
	if !res.Ended {
		t.Error("final tick should report Ended")
	}
	if g.TimeRemaining() != 0 {
		t.Errorf("time = %v, want exactly 0", g.TimeRemaining())
	}

	// Further ticks are ignored.
	if res := g.Tick(0.1); !res.Ignored {
		t.Error("tick after end should be ignored")
	}
	if g.TimeRemaining() != 0 {
		t.Errorf("time moved after end: %v", g.TimeRemaining())
	}
}

func TestTickOvershootClampsToZero(t *testing.T) {
	g := newTestGame(1)
	g.Start()

	g.Tick(14.95)
	res := g.Tick(0.1)
	if !res.Ended || g.TimeRemaining() != 0 {
		t.Errorf("overshooting tick: ended=%v time=%v", res.Ended, g.TimeRemaining())
	}
}

func TestTickIgnoredWhenIdle(t *testing.T) {
	g := newTestGame(1)
	if res := g.Tick(0.1); !res.Ignored || res.State != StateIdle {
		t.Errorf("idle tick = %+v, want ignored", res)
	}
}

func TestSelectCorrect(t *testing.T) {
	g := newTestGame(3)
	g.Start()
	g.Tick(1.0)

	before, _ := g.Round()
	res := hit(g)
	if !res.Correct || res.Ignored {
		t.Fatalf("select odd = %+v, want correct", res)
	}

	if g.Score() != 1 {
		t.Errorf("score = %d, want 1", g.Score())
	}
	if !approx(g.TimeRemaining(), 16.0) {
		t.Errorf("time = %v, want 16", g.TimeRemaining())
	}

	d := g.LastDelta()
	if d == nil {
		t.Fatal("last delta not recorded")
	}
	if *d != before.Base.Delta(before.Odd) {
		t.Errorf("last delta = %+v, want delta of completed round", *d)
	}
	if !approx(d.Max(), PerceptualGap(0)) {
		t.Errorf("last delta max = %v, want %v", d.Max(), PerceptualGap(0))
	}
}

func TestSelectRegeneratesForNewScore(t *testing.T) {
	g := newTestGame(5)
	g.Start()

	hit(g)
	hit(g)

	r, _ := g.Round()
	if r.GridSize != 3 {
		t.Errorf("grid after 2 hits = %d, want 3", r.GridSize)
	}
	gap := r.Base.Delta(r.Odd).Max()
	if !approx(gap, PerceptualGap(2)) {
		t.Errorf("gap after 2 hits = %v, want %v", gap, PerceptualGap(2))
	}
}

func TestSelectWrong(t *testing.T) {
	g := newTestGame(3)
	g.Start()

	before, _ := g.Round()
	res := g.Select(wrongIndex(g))
	if res.Correct || res.Ignored {
		t.Fatalf("select wrong = %+v", res)
	}

	if g.Score() != 0 {
		t.Errorf("score = %d, want 0", g.Score())
	}
	if !approx(g.TimeRemaining(), 12.0) {
		t.Errorf("time = %v, want 12", g.TimeRemaining())
	}
	after, _ := g.Round()
	if after != before {
		t.Error("round changed after a miss")
	}
}

func TestSelectOutOfRangeIsMiss(t *testing.T) {
	g := newTestGame(3)
	g.Start()

	for _, idx := range []int{-1, 4, 1000} {
		if res := g.Select(idx); res.Correct || res.Ignored {
			t.Errorf("Select(%d) = %+v, want miss", idx, res)
		}
	}
	if g.TimeRemaining() != 6.0 {
		t.Errorf("time = %v, want 6", g.TimeRemaining())
	}
}

func TestMissToZeroKeepsPlayingUntilTick(t *testing.T) {
	g := newTestGame(9)
	g.Start()
	g.Tick(13.0)

	if !approx(g.TimeRemaining(), 2.0) {
		t.Fatalf("time = %v, want 2", g.TimeRemaining())
	}

	g.Select(wrongIndex(g))
	if g.TimeRemaining() != 0 {
		t.Errorf("time = %v, want 0", g.TimeRemaining())
	}
	if g.State() != StatePlaying {
		t.Fatalf("state = %v, want playing after miss to zero", g.State())
	}

	res := g.Tick(0.1)
	if !res.Ended || g.State() != StateEnded {
		t.Errorf("next tick should end the game, got %+v", res)
	}
}

func TestHitAtZeroRevives(t *testing.T) {
	g := newTestGame(9)
	g.Start()
	g.Tick(13.0)
	g.Select(wrongIndex(g))

	hit(g)
	if !approx(g.TimeRemaining(), 2.0) {
		t.Errorf("time = %v, want 2", g.TimeRemaining())
	}
	if g.State() != StatePlaying {
		t.Errorf("state = %v, want playing", g.State())
	}
}

func TestTenHitsCapTimer(t *testing.T) {
	g := newTestGame(11)
	g.Start()

	for i := 0; i < 10; i++ {
		if res := hit(g); !res.Correct {
			t.Fatalf("hit %d not correct", i)
		}
	}

	snap := g.Snapshot()
	if snap.Score != 10 {
		t.Errorf("score = %d, want 10", snap.Score)
	}
	if snap.GridSize != 5 {
		t.Errorf("grid = %d, want 5", snap.GridSize)
	}
	if snap.TimeRemaining != 30.0 {
		t.Errorf("time = %v, want 30", snap.TimeRemaining)
	}
}

func TestSelectIgnoredWhenNotPlaying(t *testing.T) {
	g := newTestGame(1)
	if res := g.Select(0); !res.Ignored {
		t.Error("select while idle should be ignored")
	}

	g.Start()
	g.Tick(20)
	if g.State() != StateEnded {
		t.Fatalf("state = %v, want ended", g.State())
	}

	r, _ := g.Round()
	if res := g.Select(r.OddIndex); !res.Ignored {
		t.Error("select after end should be ignored")
	}
	if g.Score() != 0 {
		t.Errorf("score changed after end: %d", g.Score())
	}
}

func TestHighScoreUpdatesMidGame(t *testing.T) {
	g := newTestGame(2)
	g.SetHighScore(2)
	g.Start()

	hit(g)
	hit(g)
	if g.Snapshot().HighScore != 2 {
		t.Errorf("high score = %d, want 2", g.Snapshot().HighScore)
	}

	hit(g)
	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Fatalf("state = %v, want playing", snap.State)
	}
	if snap.HighScore != 3 {
		t.Errorf("high score = %d, want 3 while still playing", snap.HighScore)
	}
}

func TestRestartKeepsHighScore(t *testing.T) {
	g := newTestGame(4)
	g.Start()
	for i := 0; i < 4; i++ {
		hit(g)
	}
	g.Tick(100)

	g.Start()
	snap := g.Snapshot()
	if snap.State != StatePlaying || snap.Score != 0 || snap.TimeRemaining != 15 {
		t.Errorf("restart snapshot = %+v", snap)
	}
	if snap.HighScore != 4 {
		t.Errorf("high score = %d, want 4", snap.HighScore)
	}
	if snap.GridSize != 2 {
		t.Errorf("grid = %d, want 2", snap.GridSize)
	}

	g.SetHighScore(1)
	if g.HighScore() != 4 {
		t.Errorf("SetHighScore lowered high score to %d", g.HighScore())
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)
	g1.Start()
	g2.Start()

	for i := 0; i < 20; i++ {
		if i%3 == 0 {
			g1.Select(wrongIndex(g1))
			g2.Select(wrongIndex(g2))
		} else {
			hit(g1)
			hit(g2)
		}
		g1.Tick(0.1)
		g2.Tick(0.1)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Score != s2.Score || s1.OddIndex != s2.OddIndex || s1.TimeRemaining != s2.TimeRemaining {
		t.Errorf("snapshots diverged: %+v vs %+v", s1, s2)
	}
	for i := range s1.Cells {
		if s1.Cells[i] != s2.Cells[i] {
			t.Fatalf("cell %d differs: %v vs %v", i, s1.Cells[i], s2.Cells[i])
		}
	}
}
