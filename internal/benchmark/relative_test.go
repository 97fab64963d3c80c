package benchmark

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sftfjugg/hyperfine/internal/options"
)

func resultWithMean(name string, mean float64) *Result {
	stddev := 1.0
	return &Result{
		Command: name,
		Mean:    mean,
		Stddev:  &stddev,
		Median:  mean,
		Min:     mean,
		Max:     mean,
	}
}

func TestComputeRelativeSpeed(t *testing.T) {
	results := []*Result{
		resultWithMean("cmd1", 3.0),
		resultWithMean("cmd2", 2.0),
		resultWithMean("cmd3", 5.0),
	}

	annotated := ComputeWithCheck(results, options.SortByCommand)
	require.Len(t, annotated, 3)

	assert.InDelta(t, 1.5, annotated[0].RelativeSpeed, 1e-12)
	assert.InDelta(t, 1.0, annotated[1].RelativeSpeed, 1e-12)
	assert.InDelta(t, 2.5, annotated[2].RelativeSpeed, 1e-12)

	assert.False(t, annotated[0].IsFastest)
	assert.True(t, annotated[1].IsFastest)
	assert.False(t, annotated[2].IsFastest)
}

func TestComputeRelativeSpeedSortedByMean(t *testing.T) {
	results := []*Result{
		resultWithMean("cmd1", 3.0),
		resultWithMean("cmd2", 2.0),
		resultWithMean("cmd3", 5.0),
	}

	annotated := ComputeWithCheck(results, options.SortByMeanTime)
	require.Len(t, annotated, 3)
	assert.Equal(t, "cmd2", annotated[0].Result.Command)
	assert.Equal(t, "cmd1", annotated[1].Result.Command)
	assert.Equal(t, "cmd3", annotated[2].Result.Command)
	// Ratios are against the fastest regardless of ordering.
	assert.InDelta(t, 1.0, annotated[0].RelativeSpeed, 1e-12)
}

func TestComputeRelativeSpeedForZeroTimes(t *testing.T) {
	results := []*Result{
		resultWithMean("cmd1", 1.0),
		resultWithMean("cmd2", 0.0),
	}

	assert.Nil(t, ComputeWithCheck(results, options.SortByCommand))

	annotated := Compute(results, options.SortByCommand)
	require.Len(t, annotated, 2)
	assert.True(t, math.IsInf(annotated[0].RelativeSpeed, 1))
	assert.InDelta(t, 1.0, annotated[1].RelativeSpeed, 1e-12)
	assert.True(t, annotated[1].IsFastest)
}

func TestComputeRelativeSpeedTieGoesToFirst(t *testing.T) {
	results := []*Result{
		resultWithMean("cmd1", 2.0),
		resultWithMean("cmd2", 2.0),
	}

	annotated := ComputeWithCheck(results, options.SortByCommand)
	require.Len(t, annotated, 2)
	assert.True(t, annotated[0].IsFastest)
	assert.False(t, annotated[1].IsFastest)
}

func TestRelativeSpeedStddevPropagation(t *testing.T) {
	results := []*Result{
		resultWithMean("cmd1", 4.0),
		resultWithMean("cmd2", 2.0),
	}

	annotated := ComputeWithCheck(results, options.SortByCommand)
	require.NotNil(t, annotated[0].RelativeSpeedStddev)

	// ratio * sqrt((1/4)^2 + (1/2)^2)
	expected := 2.0 * math.Sqrt(0.25*0.25+0.5*0.5)
	assert.InDelta(t, expected, *annotated[0].RelativeSpeedStddev, 1e-12)
}

func TestRelativeSpeedStddevAbsentWhenUnknown(t *testing.T) {
	withoutStddev := resultWithMean("cmd1", 4.0)
	withoutStddev.Stddev = nil

	annotated := ComputeWithCheck([]*Result{withoutStddev, resultWithMean("cmd2", 2.0)}, options.SortByCommand)
	assert.Nil(t, annotated[0].RelativeSpeedStddev)
}
