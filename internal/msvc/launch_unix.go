//go:build unix

package msvc

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

func forwardedSignals() []os.Signal {
	return []os.Signal{os.Interrupt, syscall.SIGTERM}
}

// forwardSignal delivers the termination signal to the child so it gets a
// chance to clean up before the launcher exits.
func forwardSignal(p *os.Process, sig os.Signal) error {
	s, ok := sig.(syscall.Signal)
	if !ok {
		s = syscall.SIGINT
	}
	return unix.Kill(p.Pid, unix.Signal(s))
}

// exitStatusCode maps a finished child to the launcher's exit code:
// the child's own code on normal exit, 128+signal when signal-terminated.
func exitStatusCode(st *os.ProcessState) int {
	if ws, ok := st.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	if code := st.ExitCode(); code >= 0 {
		return code
	}
	return fallbackExitCode
}
