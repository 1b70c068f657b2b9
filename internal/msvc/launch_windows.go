//go:build windows

package msvc

import "os"

func forwardedSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}

// forwardSignal is a no-op on Windows: console control events are delivered
// to every process attached to the console, the child included.
func forwardSignal(p *os.Process, sig os.Signal) error {
	return nil
}

// exitStatusCode maps a finished child to the launcher's exit code. Windows
// has no signal-termination concept, so anything without a code falls back
// to a fixed value.
func exitStatusCode(st *os.ProcessState) int {
	if code := st.ExitCode(); code >= 0 {
		return code
	}
	return fallbackExitCode
}
