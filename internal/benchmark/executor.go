package benchmark

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/google/shlex"

	"github.com/sftfjugg/hyperfine/internal/command"
	"github.com/sftfjugg/hyperfine/internal/options"
	"github.com/sftfjugg/hyperfine/internal/units"
)

// MinExecutionTime is the wall time below which a measurement is
// considered dominated by spawning overhead.
const MinExecutionTime units.Second = 5e-3

// SpawnError reports that the shell (or, in no-shell mode, the command
// binary) could not be started at all, as opposed to running and
// exiting non-zero.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %q: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// commandLine translates the shell text into the argv actually
// spawned.
func commandLine(opts *options.Options, script string) (string, []string, error) {
	if opts.NoShell {
		parts, err := shlex.Split(script)
		if err != nil {
			return "", nil, fmt.Errorf("cannot parse command %q: %w", script, err)
		}
		if len(parts) == 0 {
			return "", nil, errors.New("empty command")
		}
		return parts[0], parts[1:], nil
	}
	if runtime.GOOS == "windows" {
		return opts.Shell, []string{"/C", script}, nil
	}
	return opts.Shell, []string{"-c", script}, nil
}

// TimeCommand spawns the given command once and measures it. Wall time
// is taken with the monotonic clock around spawn and wait; user/system
// time comes from the platform's process accounting. When an overhead
// is supplied, every component is corrected for it before being
// returned.
//
// The returned exit code is nil if it could not be determined. Under
// RaiseError any unsuccessful exit becomes an error; a process that
// could not be spawned at all always surfaces as a *SpawnError.
func TimeCommand(
	ctx context.Context,
	cmd command.Command,
	opts *options.Options,
	action options.FailureAction,
	overhead *TimingResult,
) (TimingResult, *int, error) {
	name, args, err := commandLine(opts, cmd.ShellCommand())
	if err != nil {
		return TimingResult{}, nil, err
	}

	c := exec.CommandContext(ctx, name, args...)
	if opts.ShowOutput {
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
	}

	timer := newProcessTimer()
	start := time.Now()
	runErr := timer.Run(c)
	timeReal := units.Second(time.Since(start).Seconds())

	var exitErr *exec.ExitError
	if runErr != nil && !errors.As(runErr, &exitErr) {
		return TimingResult{}, nil, &SpawnError{Command: name, Err: runErr}
	}

	state := c.ProcessState
	switch action {
	case options.Ignore:
	case options.RaiseError:
		if state == nil || !state.Success() {
			detail := "The process has been terminated by a signal"
			if state != nil && state.Exited() {
				detail = fmt.Sprintf("Command terminated with non-zero exit code: %d", state.ExitCode())
			}
			return TimingResult{}, nil, fmt.Errorf(
				"%s. Use the '-i'/'--ignore-failure' option if you want to ignore this. "+
					"Alternatively, use the '--show-output' option to debug what went wrong", detail)
		}
	}

	res := TimingResult{
		TimeReal:   timeReal,
		TimeUser:   timer.UserTime(),
		TimeSystem: timer.SystemTime(),
	}
	if overhead != nil {
		res.TimeReal = subtractOverhead(res.TimeReal, overhead.TimeReal)
		res.TimeUser = subtractOverhead(res.TimeUser, overhead.TimeUser)
		res.TimeSystem = subtractOverhead(res.TimeSystem, overhead.TimeSystem)
	}
	return res, exitCode(state), nil
}
