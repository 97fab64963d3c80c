//go:build windows

package benchmark

import (
	"os"
	"os/exec"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/sftfjugg/hyperfine/internal/units"
)

// GetProcessTimes only covers a single process, but a shell spawns
// children. Accounting therefore goes through a job object that the
// suspended child is assigned to before it runs.
type windowsTimer struct {
	user   units.Second
	system units.Second
}

const (
	jobObjectBasicAccountingInformation = 1
	hundredNSTicks                      = 100
)

type jobBasicAndIOAccountingInformation struct {
	TotalUserTime             int64
	TotalKernelTime           int64
	ThisPeriodTotalUserTime   int64
	ThisPeriodTotalKernelTime int64
	TotalPageFaultCount       uint32
	TotalProcesses            uint32
	ActiveProcesses           uint32
	TotalTerminatedProcesses  uint32
}

func newProcessTimer() processTimer {
	return &windowsTimer{}
}

func (t *windowsTimer) Run(cmd *exec.Cmd) error {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP | windows.CREATE_SUSPENDED,
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	pid := uint32(cmd.Process.Pid)

	job, err := windows.CreateJobObject(nil, nil)
	if err != nil {
		return err
	}
	defer windows.CloseHandle(job)

	hProcess, err := windows.OpenProcess(windows.SPECIFIC_RIGHTS_ALL, false, pid)
	if err != nil {
		return err
	}
	if err := windows.AssignProcessToJobObject(job, hProcess); err != nil {
		windows.CloseHandle(hProcess)
		return err
	}
	windows.CloseHandle(hProcess)

	hThread, err := mainThreadOfPID(pid)
	if err != nil {
		return err
	}
	windows.ResumeThread(hThread)
	windows.CloseHandle(hThread)

	waitErr := cmd.Wait()

	var info jobBasicAndIOAccountingInformation
	if err := windows.QueryInformationJobObject(job,
		jobObjectBasicAccountingInformation,
		uintptr(unsafe.Pointer(&info)),
		uint32(unsafe.Sizeof(info)), nil); err == nil {
		t.user = units.Second(info.TotalUserTime*hundredNSTicks) * 1e-9
		t.system = units.Second(info.TotalKernelTime*hundredNSTicks) * 1e-9
	}
	return waitErr
}

func (t *windowsTimer) UserTime() units.Second { return t.user }

func (t *windowsTimer) SystemTime() units.Second { return t.system }

// mainThreadOfPID retrieves a handle on the process's initial thread,
// which is the one CREATE_SUSPENDED left suspended.
func mainThreadOfPID(pid uint32) (windows.Handle, error) {
	hSnapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPTHREAD, 0)
	if err != nil {
		return windows.InvalidHandle, err
	}
	defer windows.CloseHandle(hSnapshot)

	var entry windows.ThreadEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	for err = windows.Thread32First(hSnapshot, &entry); err == nil; err = windows.Thread32Next(hSnapshot, &entry) {
		if entry.OwnerProcessID == pid {
			return windows.OpenThread(windows.THREAD_SUSPEND_RESUME, false, entry.ThreadID)
		}
	}
	return windows.InvalidHandle, err
}

// exitCode maps a finished process to the exit code recorded in the
// result samples. nil means the code could not be determined.
func exitCode(state *os.ProcessState) *int {
	if state == nil {
		return nil
	}
	c := state.ExitCode()
	if c < 0 {
		return nil
	}
	return &c
}
