package benchmark

import "github.com/sftfjugg/hyperfine/internal/units"

// Result is the aggregated outcome of benchmarking one command. It is
// created once when the sampling loop completes and not modified
// afterwards; exporters consume it as-is.
//
// Invariants: Min <= Median <= Max, Min <= Mean <= Max, and the times
// and exit code sequences have one entry per run.
type Result struct {
	// Command is the display name of the benchmarked command.
	Command string `json:"command"`

	// Mean is the average wall clock time in seconds.
	Mean units.Second `json:"mean"`

	// Stddev is the sample standard deviation of the wall clock
	// times; nil when only a single run was measured.
	Stddev *units.Second `json:"stddev"`

	// Median is the middle wall clock time.
	Median units.Second `json:"median"`

	// User is the mean user-mode CPU time.
	User units.Second `json:"user"`

	// System is the mean kernel-mode CPU time.
	System units.Second `json:"system"`

	// Min and Max bound the wall clock times.
	Min units.Second `json:"min"`
	Max units.Second `json:"max"`

	// Times holds every raw wall clock sample in run order. May be
	// dropped before export to shrink the output.
	Times []units.Second `json:"times,omitempty"`

	// ExitCodes holds one entry per run; nil entries mean the code
	// could not be determined.
	ExitCodes []*int `json:"exit_codes"`

	// Parameters maps parameter names to the values bound for this
	// expansion of the command template.
	Parameters map[string]string `json:"parameters,omitempty"`
}
