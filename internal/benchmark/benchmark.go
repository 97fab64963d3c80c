package benchmark

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/fatih/color"

	"github.com/sftfjugg/hyperfine/internal/command"
	"github.com/sftfjugg/hyperfine/internal/options"
	"github.com/sftfjugg/hyperfine/internal/progress"
	"github.com/sftfjugg/hyperfine/internal/stats"
	"github.com/sftfjugg/hyperfine/internal/units"
)

const (
	prepareFailedMsg = "The preparation command terminated with a non-zero exit code. " +
		"Append ' || true' to the command if you are sure that this can be ignored."
	cleanupFailedMsg = "The cleanup command terminated with a non-zero exit code. " +
		"Append ' || true' to the command if you are sure that this can be ignored."
)

// runCount determines the total number of timing runs: enough
// iterations to fill the time budget, never fewer than the minimum,
// clamped by the optional maximum.
func runCount(bounds options.RunBounds, minTime, perIteration units.Second) uint64 {
	count := bounds.Min
	if perIteration > 0 {
		if n := uint64(minTime / perIteration); n > count {
			count = n
		}
	}
	if bounds.Max != nil && count > *bounds.Max {
		count = *bounds.Max
	}
	if count < 1 {
		count = 1
	}
	return count
}

// intermediateFor selects the preparation or cleanup command for the
// num-th benchmark: one shared command, or one per command. The
// benchmarked command's parameters are bound in it as well.
func intermediateFor(commands []string, num int, params []command.Parameter) (command.Command, bool) {
	switch len(commands) {
	case 0:
		return command.Command{}, false
	case 1:
		return command.NewParametrized("", commands[0], params), true
	default:
		return command.NewParametrized("", commands[num], params), true
	}
}

// runIntermediate executes a preparation or cleanup command. Failure
// detection is always on for these; the guidance message tells the
// user how to opt out per command.
func runIntermediate(ctx context.Context, cmd command.Command, ok bool, opts *options.Options, guidance string) (TimingResult, error) {
	if !ok {
		return TimingResult{}, nil
	}
	res, _, err := TimeCommand(ctx, cmd, opts, options.RaiseError, nil)
	if err != nil {
		var spawnErr *SpawnError
		if errors.As(err, &spawnErr) {
			return TimingResult{}, err
		}
		return TimingResult{}, errors.New(guidance)
	}
	return res, nil
}

// RunBenchmark executes the full measurement protocol for one command:
// preparation, warmup, an initial calibration run that sizes the
// sampling loop, the sampling loop itself, and cleanup. All
// measurements are corrected for the calibrated shell spawning
// overhead.
func RunBenchmark(
	ctx context.Context,
	num int,
	cmd command.Command,
	overhead TimingResult,
	opts *options.Options,
	sink progress.Sink,
) (*Result, error) {
	name := cmd.Name()
	if opts.OutputStyle != options.StyleDisabled {
		bold := color.New(color.Bold)
		fmt.Fprintf(color.Output, "%s: %s\n", bold.Sprintf("Benchmark #%d", num+1), name)
	}

	prepareCmd, hasPrepare := intermediateFor(opts.PreparationCommands, num, cmd.Parameters())

	// Warmup phase
	if opts.WarmupCount > 0 {
		sink.Start(int64(opts.WarmupCount), "Performing warmup runs")
		for i := uint64(0); i < opts.WarmupCount; i++ {
			if _, err := runIntermediate(ctx, prepareCmd, hasPrepare, opts, prepareFailedMsg); err != nil {
				return nil, err
			}
			if _, _, err := TimeCommand(ctx, cmd, opts, opts.FailureAction, nil); err != nil {
				return nil, err
			}
			sink.Inc()
		}
		sink.Finish()
	}

	sink.Start(int64(opts.Runs.Min), "Initial time measurement")

	prepareRes, err := runIntermediate(ctx, prepareCmd, hasPrepare, opts, prepareFailedMsg)
	if err != nil {
		return nil, err
	}

	// Initial timing run; its corrected time plus the preparation and
	// spawning cost estimates the cost of one full iteration.
	res, code, err := TimeCommand(ctx, cmd, opts, opts.FailureAction, &overhead)
	if err != nil {
		return nil, err
	}

	perIteration := res.TimeReal + prepareRes.TimeReal + overhead.TimeReal
	count := runCount(opts.Runs, opts.MinTimeSec, perIteration)

	timesReal := make([]units.Second, 0, count)
	timesUser := make([]units.Second, 0, count)
	timesSystem := make([]units.Second, 0, count)
	exitCodes := make([]*int, 0, count)
	allSucceeded := true

	record := func(r TimingResult, c *int) {
		timesReal = append(timesReal, r.TimeReal)
		timesUser = append(timesUser, r.TimeUser)
		timesSystem = append(timesSystem, r.TimeSystem)
		exitCodes = append(exitCodes, c)
		if c == nil || *c != 0 {
			allSucceeded = false
		}
	}
	record(res, code)

	sink.SetTotal(int64(count))
	sink.Inc()

	// Sampling loop
	for i := uint64(1); i < count; i++ {
		if _, err := runIntermediate(ctx, prepareCmd, hasPrepare, opts, prepareFailedMsg); err != nil {
			return nil, err
		}

		sink.SetMessage("Current estimate: " +
			color.GreenString(units.FormatDuration(stats.Mean(timesReal), opts.TimeUnit)))

		res, code, err := TimeCommand(ctx, cmd, opts, opts.FailureAction, &overhead)
		if err != nil {
			return nil, err
		}
		record(res, code)
		sink.Inc()
	}
	sink.Finish()

	tMean := stats.Mean(timesReal)
	tStddev := stats.StdDev(timesReal, tMean)
	tMedian := stats.Median(timesReal)
	tMin := stats.Min(timesReal)
	tMax := stats.Max(timesReal)
	userMean := stats.Mean(timesUser)
	systemMean := stats.Mean(timesSystem)

	if opts.OutputStyle != options.StyleDisabled {
		unit := units.Resolve(tMean, opts.TimeUnit)
		fmtu := func(v units.Second) string { return unit.Format(v) + " " + unit.ShortName() }

		fmt.Fprintf(color.Output, "  Time (%s ± %s):\t%s ± %s\t[User: %s, System: %s]\n",
			color.GreenString("mean"), color.GreenString("σ"),
			color.GreenString(fmtu(tMean)), color.GreenString(fmtu(tStddev)),
			color.CyanString(fmtu(userMean)), color.CyanString(fmtu(systemMean)))
		fmt.Fprintf(color.Output, "  Range (%s … %s):\t%s … %s\t%s\n",
			color.CyanString("min"), color.RedString("max"),
			color.CyanString(fmtu(tMin)), color.RedString(fmtu(tMax)),
			color.HiBlackString("%d runs", len(timesReal)))
		fmt.Fprintln(color.Output)
	}

	for _, w := range deriveWarnings(timesReal, allSucceeded) {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", color.YellowString("Warning"), w)
	}

	// Cleanup failure is reported but does not invalidate the samples
	// already collected.
	cleanupCmd, hasCleanup := intermediateFor(opts.CleanupCommands, num, cmd.Parameters())
	if _, err := runIntermediate(ctx, cleanupCmd, hasCleanup, opts, cleanupFailedMsg); err != nil {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", color.YellowString("Warning"), err)
	}

	result := &Result{
		Command:    name,
		Mean:       tMean,
		Median:     tMedian,
		User:       userMean,
		System:     systemMean,
		Min:        tMin,
		Max:        tMax,
		Times:      timesReal,
		ExitCodes:  exitCodes,
		Parameters: cmd.ParameterMap(),
	}
	if len(timesReal) > 1 {
		result.Stddev = &tStddev
	}
	return result, nil
}

// deriveWarnings classifies the collected samples. A first sample that
// alone is an outlier points at cold caches and takes priority over
// the generic outlier warning.
func deriveWarnings(timesReal []units.Second, allSucceeded bool) []Warning {
	var warnings []Warning

	for _, t := range timesReal {
		if t < MinExecutionTime {
			warnings = append(warnings, FastExecutionTime{})
			break
		}
	}

	if !allSucceeded {
		warnings = append(warnings, NonZeroExitCode{})
	}

	scores := stats.ModifiedZScores(timesReal)
	if scores[0] > stats.OutlierThreshold {
		warnings = append(warnings, SlowInitialRun{FirstRunTime: timesReal[0]})
	} else {
		for _, s := range scores {
			if math.Abs(s) > stats.OutlierThreshold {
				warnings = append(warnings, OutliersDetected{})
				break
			}
		}
	}
	return warnings
}
