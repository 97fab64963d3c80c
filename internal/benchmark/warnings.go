package benchmark

import (
	"fmt"

	"github.com/sftfjugg/hyperfine/internal/units"
)

// Warning flags a quality problem with a command's collected samples.
// The set is closed; the runner derives them after sampling completes
// and they never influence the process outcome.
type Warning interface {
	fmt.Stringer
	warning()
}

// SlowInitialRun means the first sample alone was an outlier, most
// commonly because the program filled disk caches on its first run.
type SlowInitialRun struct {
	FirstRunTime units.Second
}

func (SlowInitialRun) warning() {}

func (w SlowInitialRun) String() string {
	return fmt.Sprintf(
		"The first benchmarking run for this command was significantly slower than the rest (%s). "+
			"This could be caused by (filesystem) caches that were not filled until after the first run. "+
			"You should consider using the '--warmup' option to fill those caches before the actual benchmark. "+
			"Alternatively, use the '--prepare' option to clear the caches before each timing run.",
		units.FormatDuration(w.FirstRunTime, nil))
}

// OutliersDetected means at least one sample was a statistical
// outlier.
type OutliersDetected struct{}

func (OutliersDetected) warning() {}

func (OutliersDetected) String() string {
	return "Statistical outliers were detected. Consider re-running this benchmark on a quiet PC " +
		"without any interferences from other programs. It might help to use the '--warmup' or '--prepare' options."
}

// FastExecutionTime means at least one sample ran faster than the
// measurement can reliably resolve.
type FastExecutionTime struct{}

func (FastExecutionTime) warning() {}

func (FastExecutionTime) String() string {
	return fmt.Sprintf("Command took less than %.0f ms to complete. Results might be inaccurate.",
		MinExecutionTime*1e3)
}

// NonZeroExitCode means at least one run exited non-zero while failures
// were being ignored.
type NonZeroExitCode struct{}

func (NonZeroExitCode) warning() {}

func (NonZeroExitCode) String() string {
	return "Ignoring non-zero exit code."
}
