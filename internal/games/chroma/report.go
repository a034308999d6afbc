package chroma

// Rank classifies a final score.
type Rank int

const (
	RankNovice Rank = iota
	RankApprentice
	RankArtisan
	RankMaster
	RankVisionary
)

// rankThresholds holds the minimum score for each rank above Novice.
var rankThresholds = []struct {
	min  int
	rank Rank
}{
	{50, RankVisionary},
	{35, RankMaster},
	{20, RankArtisan},
	{10, RankApprentice},
}

// RankFor returns the rank earned by score.
func RankFor(score int) Rank {
	for _, t := range rankThresholds {
		if score >= t.min {
			return t.rank
		}
	}
	return RankNovice
}

// RankMinScore returns the lowest score that earns r.
func RankMinScore(r Rank) int {
	for _, t := range rankThresholds {
		if t.rank == r {
			return t.min
		}
	}
	return 0
}

// AllRanks returns every rank from lowest to highest.
func AllRanks() []Rank {
	return []Rank{RankNovice, RankApprentice, RankArtisan, RankMaster, RankVisionary}
}

// String returns the display name of the rank.
func (r Rank) String() string {
	switch r {
	case RankNovice:
		return "Novice"
	case RankApprentice:
		return "Apprentice"
	case RankArtisan:
		return "Artisan"
	case RankMaster:
		return "Master"
	case RankVisionary:
		return "Visionary"
	default:
		return "Unknown"
	}
}

// Report summarises a session for the end screen and score storage.
type Report struct {
	Score           int
	HighScore       int
	Rank            Rank
	AvgResponse     float64 // Seconds per cleared round, from the clock formula
	FastestReaction float64 // Seconds, measured in tick time; 0 without hits
	Hits            int
	Misses          int
	Accuracy        float64 // Hits over total picks, 0..1
	Elapsed         float64 // Tick time consumed by the session
	NewBest         bool    // Score beat the high score held at Start
}

// Report builds the session summary. It is meaningful in any state but
// intended for StateEnded.
func (g *Game) Report() Report {
	r := Report{
		Score:       g.score,
		HighScore:   g.highScore,
		Rank:        RankFor(g.score),
		AvgResponse: g.AverageResponse(),
		Hits:        g.hits,
		Misses:      g.misses,
		Elapsed:     g.elapsed,
		NewBest:     g.score > g.startBest,
	}
	if picks := g.hits + g.misses; picks > 0 {
		r.Accuracy = float64(g.hits) / float64(picks)
	}
	for i, rt := range g.reactionLog {
		if i == 0 || rt < r.FastestReaction {
			r.FastestReaction = rt
		}
	}
	return r
}
