package dice_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-sheet-gen/internal/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightedChoice_ScriptedDraws(t *testing.T) {
	tests := []struct {
		name    string
		weights []int
		roll    int
		want    int
	}{
		{
			name:    "equal weights low draw",
			weights: []int{1, 1, 1},
			roll:    1,
			want:    0,
		},
		{
			name:    "equal weights high draw",
			weights: []int{1, 1, 1},
			roll:    3,
			want:    2,
		},
		{
			name:    "skewed weights first bucket boundary",
			weights: []int{5, 2, 2, 1},
			roll:    5,
			want:    0,
		},
		{
			name:    "skewed weights second bucket",
			weights: []int{5, 2, 2, 1},
			roll:    6,
			want:    1,
		},
		{
			name:    "skewed weights last bucket",
			weights: []int{5, 2, 2, 1},
			roll:    10,
			want:    3,
		},
		{
			name:    "zero weight bucket is skipped",
			weights: []int{0, 3},
			roll:    1,
			want:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := dice.NewMockRoller()
			roller.SetRolls([]int{tt.roll})

			got, err := dice.WeightedChoice(roller, tt.weights)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeightedChoice_ZeroTotal(t *testing.T) {
	// No rolls are scripted; if the zero-total path consumed one the mock
	// would error
	roller := dice.NewMockRoller()

	got, err := dice.WeightedChoice(roller, []int{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = dice.WeightedChoice(roller, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestWeightedChoice_EqualWeightsApproximatelyUniform(t *testing.T) {
	roller := dice.NewSeededRoller(1)
	weights := []int{1, 1, 1}

	const trials = 6000
	counts := make([]int, len(weights))
	for i := 0; i < trials; i++ {
		idx, err := dice.WeightedChoice(roller, weights)
		require.NoError(t, err)
		counts[idx]++
	}

	expected := trials / len(weights)
	for i, count := range counts {
		assert.InDelta(t, expected, count, float64(expected)*0.15, "index %d drawn %d times", i, count)
	}
}

func TestWeightedChoice_SkewedWeightsMatchProportions(t *testing.T) {
	roller := dice.NewSeededRoller(7)
	weights := []int{5, 2, 2, 1}

	const trials = 10000
	counts := make([]int, len(weights))
	for i := 0; i < trials; i++ {
		idx, err := dice.WeightedChoice(roller, weights)
		require.NoError(t, err)
		counts[idx]++
	}

	total := 0
	for _, w := range weights {
		total += w
	}

	for i, w := range weights {
		expected := trials * w / total
		assert.InDelta(t, expected, counts[i], float64(trials)*0.03, "index %d drawn %d times", i, counts[i])
	}
}

func TestRandomIncrease_ZeroChance(t *testing.T) {
	roller := dice.NewSeededRoller(3)

	for i := 0; i < 100; i++ {
		assert.Equal(t, 0, dice.RandomIncrease(roller, 0, 10))
	}
}

func TestRandomIncrease_ScriptedDraws(t *testing.T) {
	tests := []struct {
		name   string
		floats []float64
		chance float64
		max    int
		want   int
	}{
		{
			name:   "first draw fails",
			floats: []float64{0.8},
			chance: 0.75,
			max:    10,
			want:   0,
		},
		{
			name:   "one success then failure",
			floats: []float64{0.5, 0.9},
			chance: 0.75,
			max:    10,
			want:   1,
		},
		{
			name:   "second step fails against the decayed probability",
			floats: []float64{0.5, 0.6},
			chance: 0.75,
			max:    10,
			want:   1, // 0.6 < 0.75 but not < 0.75*0.75 = 0.5625
		},
		{
			name:   "two successes under the decayed probability",
			floats: []float64{0.5, 0.5},
			chance: 0.75,
			max:    10,
			want:   2, // exhausted draws fail the third step
		},
		{
			name:   "cap stops the walk",
			floats: []float64{0.0, 0.0, 0.0, 0.0, 0.0},
			chance: 0.75,
			max:    3,
			want:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := dice.NewMockRoller()
			roller.SetFloats(tt.floats)

			assert.Equal(t, tt.want, dice.RandomIncrease(roller, tt.chance, tt.max))
		})
	}
}

func TestRandomIncrease_NearCertainChanceApproachesMax(t *testing.T) {
	roller := dice.NewSeededRoller(11)

	const (
		trials = 500
		max    = 4
	)

	total := 0
	for i := 0; i < trials; i++ {
		result := dice.RandomIncrease(roller, 0.999999, max)
		assert.GreaterOrEqual(t, result, 0)
		assert.LessOrEqual(t, result, max)
		total += result
	}

	// chance/(1-chance) is astronomically larger than max, so the truncated
	// empirical mean should sit at max
	mean := float64(total) / trials
	assert.InDelta(t, float64(max), mean, 0.05)
}

func TestRandomIncrease_AlwaysInBounds(t *testing.T) {
	roller := dice.NewSeededRoller(13)

	for i := 0; i < 1000; i++ {
		result := dice.RandomIncrease(roller, 0.75, 10)
		assert.GreaterOrEqual(t, result, 0)
		assert.LessOrEqual(t, result, 10)
	}
}
