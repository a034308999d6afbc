package chroma

// Difficulty ladder. Grid size steps up with score; the colour gap shrinks by
// one every two points until it reaches MinGap.
const (
	MaxGap = 15.0
	MinGap = 1.0

	baseHueRange   = 360.0
	baseSatMin     = 40.0
	baseSatRange   = 40.0
	baseLightMin   = 40.0
	baseLightRange = 20.0
)

// RNG is the random source used for round generation.
// *math/rand.Rand satisfies it.
type RNG interface {
	Float64() float64
	Intn(n int) int
}

// GridSize returns the grid dimension for the given score.
func GridSize(score int) int {
	switch {
	case score < 2:
		return 2
	case score < 5:
		return 3
	case score < 10:
		return 4
	default:
		return 5
	}
}

// PerceptualGap returns the channel offset applied to the odd cell.
func PerceptualGap(score int) float64 {
	if score < 0 {
		score = 0
	}
	gap := MaxGap - float64(score/2)
	if gap < MinGap {
		return MinGap
	}
	return gap
}

// BaseColor picks a mid-tone, moderately saturated colour.
func BaseColor(rng RNG) Color {
	return Color{
		H: rng.Float64() * baseHueRange,
		S: baseSatMin + rng.Float64()*baseSatRange,
		L: baseLightMin + rng.Float64()*baseLightRange,
	}
}

// OddColor derives the odd cell colour from base by shifting exactly one
// random channel by the gap for score, in a random direction.
func OddColor(rng RNG, base Color, score int) Color {
	ch := Channel(rng.Intn(int(channelCount)))
	sign := 1.0
	if rng.Intn(2) == 0 {
		sign = -1.0
	}
	return base.Shift(ch, PerceptualGap(score)*sign)
}

// NewRound generates a fresh round for the given score.
func NewRound(rng RNG, score int) Round {
	size := GridSize(score)
	base := BaseColor(rng)
	odd := OddColor(rng, base, score)
	return Round{
		GridSize: size,
		Base:     base,
		Odd:      odd,
		OddIndex: rng.Intn(size * size),
	}
}
