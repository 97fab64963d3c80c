package benchmark

import (
	"os/exec"

	"github.com/sftfjugg/hyperfine/internal/units"
)

// processTimer runs a single prepared command to completion and
// records the CPU time it consumed. Implementations are per platform;
// on Windows the whole process tree is accounted through a job object,
// elsewhere the kernel's child accounting already includes waited-for
// descendants.
type processTimer interface {
	// Run starts the command and waits for it. A non-zero exit is
	// returned as the *exec.ExitError from Wait; CPU times are still
	// recorded in that case.
	Run(cmd *exec.Cmd) error

	UserTime() units.Second
	SystemTime() units.Second
}
