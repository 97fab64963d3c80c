// Package benchmark contains the measurement engine: spawning and
// timing shell commands, calibrating shell startup overhead, the
// adaptive sampling loop, and the relative speed comparison.
package benchmark

import "github.com/sftfjugg/hyperfine/internal/units"

// TimingResult holds the measurements of a single command execution.
type TimingResult struct {
	// TimeReal is the elapsed wall clock time.
	TimeReal units.Second

	// TimeUser is the CPU time spent in user mode.
	TimeUser units.Second

	// TimeSystem is the CPU time spent in kernel mode.
	TimeSystem units.Second
}

// subtractOverhead corrects a raw measurement for shell spawning time.
// A measurement below the overhead clamps to zero instead of going
// negative.
func subtractOverhead(time, overhead units.Second) units.Second {
	if time < overhead {
		return 0
	}
	return time - overhead
}
