package benchmark

import (
	"context"
	"fmt"
	"runtime"

	"github.com/sftfjugg/hyperfine/internal/command"
	"github.com/sftfjugg/hyperfine/internal/options"
	"github.com/sftfjugg/hyperfine/internal/progress"
	"github.com/sftfjugg/hyperfine/internal/stats"
)

// Number of empty-shell runs used to estimate the spawning overhead.
const calibrationRuns = 50

// MeanShellSpawningTime measures the fixed cost of starting the shell
// by timing empty commands and averaging. It runs once per invocation
// of the tool; the result is shared read-only by every benchmark. A
// shell that cannot even run an empty command is a fatal error.
func MeanShellSpawningTime(ctx context.Context, opts *options.Options, sink progress.Sink) (TimingResult, error) {
	sink.Start(calibrationRuns, "Measuring shell spawning time")
	defer sink.Finish()

	timesReal := make([]float64, 0, calibrationRuns)
	timesUser := make([]float64, 0, calibrationRuns)
	timesSystem := make([]float64, 0, calibrationRuns)

	for i := 0; i < calibrationRuns; i++ {
		res, _, err := TimeCommand(ctx, command.New("", ""), opts, options.RaiseError, nil)
		if err != nil {
			shellCmd := opts.Shell + " -c \"\""
			if runtime.GOOS == "windows" {
				shellCmd = opts.Shell + " /C \"\""
			}
			return TimingResult{}, fmt.Errorf(
				"could not measure shell execution time, make sure you can run '%s': %w", shellCmd, err)
		}
		timesReal = append(timesReal, res.TimeReal)
		timesUser = append(timesUser, res.TimeUser)
		timesSystem = append(timesSystem, res.TimeSystem)
		sink.Inc()
	}

	return TimingResult{
		TimeReal:   stats.Mean(timesReal),
		TimeUser:   stats.Mean(timesUser),
		TimeSystem: stats.Mean(timesSystem),
	}, nil
}
