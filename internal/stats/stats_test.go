package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.InDelta(t, 2.0, Mean([]float64{1.0, 2.0, 3.0}), 1e-12)
	assert.InDelta(t, 0.5, Mean([]float64{0.5}), 1e-12)
}

func TestStdDev(t *testing.T) {
	values := []float64{2.0, 4.0, 4.0, 4.0, 5.0, 5.0, 7.0, 9.0}
	m := Mean(values)
	assert.InDelta(t, 2.13808993529939, StdDev(values, m), 1e-9)
}

func TestStdDevSingleSample(t *testing.T) {
	assert.Equal(t, 0.0, StdDev([]float64{1.0}, 1.0))
}

func TestMedianOddCount(t *testing.T) {
	assert.InDelta(t, 2.0, Median([]float64{3.0, 1.0, 2.0}), 1e-12)
}

func TestMedianEvenCount(t *testing.T) {
	// Average of the two central values.
	assert.InDelta(t, 2.5, Median([]float64{4.0, 1.0, 2.0, 3.0}), 1e-12)
}

func TestMinMax(t *testing.T) {
	values := []float64{3.0, 1.0, 4.0, 1.5}
	assert.Equal(t, 1.0, Min(values))
	assert.Equal(t, 4.0, Max(values))
}

func TestModifiedZScoresFlagsSlowFirstRun(t *testing.T) {
	// First sample far above the rest must stand out alone.
	scores := ModifiedZScores([]float64{5.0, 1.0, 1.05, 0.98, 1.02})
	assert.Greater(t, scores[0], OutlierThreshold)
	for _, s := range scores[1:] {
		assert.LessOrEqual(t, s, OutlierThreshold)
	}
}

func TestModifiedZScoresZeroMAD(t *testing.T) {
	// Identical samples have MAD 0; every score must be 0, not NaN.
	scores := ModifiedZScores([]float64{1.0, 1.0, 1.0, 1.0})
	for _, s := range scores {
		assert.Equal(t, 0.0, s)
	}
}

func TestModifiedZScoresSigned(t *testing.T) {
	// A sample far below the median gets a negative score.
	scores := ModifiedZScores([]float64{0.01, 1.0, 1.05, 0.98, 1.02})
	assert.Less(t, scores[0], -OutlierThreshold)
}
