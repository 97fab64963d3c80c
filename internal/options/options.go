// Package options holds the benchmark configuration assembled by the
// command line frontend and validated before anything is executed.
package options

import (
	"fmt"
	"runtime"

	"github.com/sftfjugg/hyperfine/internal/units"
)

// FailureAction decides what happens when a benchmarked command exits
// non-zero.
type FailureAction int

const (
	// RaiseError aborts the whole benchmark run.
	RaiseError FailureAction = iota

	// Ignore records the exit code and keeps sampling.
	Ignore
)

// OutputStyle selects how much console output the run produces.
type OutputStyle int

const (
	// StyleFull enables colors and the progress bar.
	StyleFull OutputStyle = iota

	// StyleBasic disables colors and interactive elements.
	StyleBasic

	// StyleNoColor keeps the progress bar but drops coloring.
	StyleNoColor

	// StyleDisabled suppresses all benchmark output.
	StyleDisabled
)

// ParseStyle maps a --style argument to an OutputStyle. "auto" picks
// the full style on a terminal and the basic style otherwise.
func ParseStyle(name string, stdoutIsTerminal bool) (OutputStyle, error) {
	switch name {
	case "auto":
		if stdoutIsTerminal {
			return StyleFull, nil
		}
		return StyleBasic, nil
	case "full":
		return StyleFull, nil
	case "basic":
		return StyleBasic, nil
	case "nocolor":
		return StyleNoColor, nil
	case "none":
		return StyleDisabled, nil
	}
	return StyleFull, fmt.Errorf("unknown output style: %q", name)
}

// SortOrder controls the ordering of the relative speed comparison.
type SortOrder int

const (
	// SortByCommand keeps the command declaration order.
	SortByCommand SortOrder = iota

	// SortByMeanTime orders by ascending mean run time.
	SortByMeanTime
)

// RunBounds are the lower and optional upper bound on the number of
// timing runs per command.
type RunBounds struct {
	Min uint64
	Max *uint64
}

// Options is the full benchmark configuration.
type Options struct {
	// WarmupCount runs are executed and discarded before measurement.
	WarmupCount uint64

	Runs RunBounds

	// MinTimeSec is the time budget driving the adaptive run count.
	MinTimeSec units.Second

	FailureAction FailureAction

	// PreparationCommands holds either one shared preparation command
	// or exactly one per benchmarked command. Empty means none.
	PreparationCommands []string

	// CleanupCommands follows the same cardinality rule.
	CleanupCommands []string

	OutputStyle OutputStyle

	// Shell is the intermediate shell every command is run under.
	Shell string

	// NoShell runs commands directly, without an intermediate shell
	// and without spawning-overhead correction.
	NoShell bool

	// ShowOutput lets the child inherit stdout/stderr instead of
	// discarding them.
	ShowOutput bool

	// TimeUnit forces the display unit; nil selects per value.
	TimeUnit *units.Unit
}

// DefaultShell returns the platform's invocation shell.
func DefaultShell() string {
	if runtime.GOOS == "windows" {
		return "cmd.exe"
	}
	return "/bin/sh"
}

// Default returns the baseline configuration.
func Default() *Options {
	return &Options{
		Runs:          RunBounds{Min: 10},
		MinTimeSec:    3.0,
		FailureAction: RaiseError,
		OutputStyle:   StyleFull,
		Shell:         DefaultShell(),
	}
}

// Validate reports configuration errors before any subprocess is
// spawned.
func (o *Options) Validate(commandCount int) error {
	if o.Runs.Min < 1 {
		return fmt.Errorf("number of minimum runs must be at least 1")
	}
	if o.Runs.Max != nil && *o.Runs.Max < o.Runs.Min {
		return fmt.Errorf("maximum number of runs (%d) cannot be below the minimum (%d)", *o.Runs.Max, o.Runs.Min)
	}
	if n := len(o.PreparationCommands); n > 1 && n != commandCount {
		return fmt.Errorf("'--prepare' must be specified once, or once for each command: %d given for %d commands", n, commandCount)
	}
	if n := len(o.CleanupCommands); n > 1 && n != commandCount {
		return fmt.Errorf("'--cleanup' must be specified once, or once for each command: %d given for %d commands", n, commandCount)
	}
	return nil
}
