package chroma

import "testing"

func TestRankFor(t *testing.T) {
	tests := []struct {
		score int
		want  Rank
	}{
		{0, RankNovice},
		{9, RankNovice},
		{10, RankApprentice},
		{19, RankApprentice},
		{20, RankArtisan},
		{34, RankArtisan},
		{35, RankMaster},
		{49, RankMaster},
		{50, RankVisionary},
		{500, RankVisionary},
	}

	for _, tt := range tests {
		if got := RankFor(tt.score); got != tt.want {
			t.Errorf("RankFor(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestRankMinScore(t *testing.T) {
	for _, r := range AllRanks() {
		if got := RankFor(RankMinScore(r)); got != r {
			t.Errorf("RankFor(RankMinScore(%v)) = %v", r, got)
		}
	}
}

func TestAverageResponse(t *testing.T) {
	g := newTestGame(8)
	g.Start()
	if g.AverageResponse() != 0 {
		t.Errorf("average with no hits = %v, want 0", g.AverageResponse())
	}

	// 3 hits, 5 seconds of ticks: (15 + 3*2 - 16) / 3
	hit(g)
	g.Tick(2.0)
	hit(g)
	g.Tick(3.0)
	hit(g)

	if !approx(g.TimeRemaining(), 16.0) {
		t.Fatalf("time = %v, want 16", g.TimeRemaining())
	}
	want := (15.0 + 3*2.0 - 16.0) / 3
	if !approx(g.AverageResponse(), want) {
		t.Errorf("average = %v, want %v", g.AverageResponse(), want)
	}
}

func TestReport(t *testing.T) {
	g := newTestGame(6)
	g.SetHighScore(1)
	g.Start()

	hit(g)
	g.Tick(1.5)
	hit(g)
	g.Select(wrongIndex(g))
	g.Tick(0.5)
	hit(g)
	g.Tick(100)

	r := g.Report()
	if r.Score != 3 || r.HighScore != 3 {
		t.Errorf("score/high = %d/%d, want 3/3", r.Score, r.HighScore)
	}
	if r.Hits != 3 || r.Misses != 1 {
		t.Errorf("hits/misses = %d/%d, want 3/1", r.Hits, r.Misses)
	}
	if !approx(r.Accuracy, 0.75) {
		t.Errorf("accuracy = %v, want 0.75", r.Accuracy)
	}
	if !r.NewBest {
		t.Error("expected new best")
	}
	if r.FastestReaction != 0 {
		t.Errorf("fastest = %v, want 0 for the instant first hit", r.FastestReaction)
	}
	if r.Rank != RankNovice {
		t.Errorf("rank = %v, want Novice", r.Rank)
	}
	if !approx(r.AvgResponse, g.AverageResponse()) {
		t.Errorf("report average = %v, want %v", r.AvgResponse, g.AverageResponse())
	}
}
