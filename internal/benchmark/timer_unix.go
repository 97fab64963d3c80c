//go:build !windows

package benchmark

import (
	"os"
	"os/exec"
	"syscall"

	"github.com/sftfjugg/hyperfine/internal/units"
)

type unixTimer struct {
	user   units.Second
	system units.Second
}

func newProcessTimer() processTimer {
	return &unixTimer{}
}

func (t *unixTimer) Run(cmd *exec.Cmd) error {
	err := cmd.Run()
	// The rusage reported by wait4 covers the shell and every
	// descendant it waited for, which is exactly the cost of the
	// benchmarked command line.
	if state := cmd.ProcessState; state != nil {
		t.user = state.UserTime().Seconds()
		t.system = state.SystemTime().Seconds()
	}
	return err
}

func (t *unixTimer) UserTime() units.Second { return t.user }

func (t *unixTimer) SystemTime() units.Second { return t.system }

// exitCode maps a finished process to the exit code recorded in the
// result samples. A process killed by signal s reports 128+s, the
// common shell convention. nil means the code could not be determined.
func exitCode(state *os.ProcessState) *int {
	if state == nil {
		return nil
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok {
		if ws.Exited() {
			c := ws.ExitStatus()
			return &c
		}
		if ws.Signaled() {
			c := 128 + int(ws.Signal())
			return &c
		}
		return nil
	}
	c := state.ExitCode()
	if c < 0 {
		return nil
	}
	return &c
}
