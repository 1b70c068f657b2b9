package msvc

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"sync"
)

// fallbackExitCode is used when the child terminated without a
// representable exit code.
const fallbackExitCode = 127

// ApplyDiff exports every diff entry into the current process environment,
// normalizing path-list variables first. This is the only place the tool
// mutates process-wide state besides spawning the child.
func ApplyDiff(diff map[string]string) error {
	for _, name := range SortedNames(diff) {
		value := diff[name]
		if IsPathListVariable(name) {
			value = NormalizePathList(value)
		}
		if err := os.Setenv(name, value); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}
	return nil
}

// childSlot shares the spawned process between the wait path and the
// asynchronous signal handler. Written once before waiting begins.
type childSlot struct {
	mu   sync.Mutex
	proc *os.Process
}

func (s *childSlot) set(p *os.Process) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.proc = p
}

func (s *childSlot) get() *os.Process {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.proc
}

func (s *childSlot) forward(sig os.Signal, logf func(format string, a ...any)) {
	p := s.get()
	if p == nil {
		return
	}
	if err := forwardSignal(p, sig); err != nil && logf != nil {
		// Forwarding failures must not stop us from waiting for the child.
		logf("forward %v to child: %v", sig, err)
	}
}

// Launch spawns the program with inherited stdio and the current (already
// updated) environment, forwards termination signals to it, and returns the
// exit code the launcher should propagate. Signal-terminated children map to
// 128+signal where the platform reports signals.
func Launch(program string, args []string, logf func(format string, a ...any)) (int, error) {
	exe, err := resolveExecutable(program)
	if err != nil {
		return 0, err
	}

	cmd := exec.Command(exe, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	slot := &childSlot{}
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, forwardedSignals()...)
	defer signal.Stop(sigCh)
	go func() {
		for sig := range sigCh {
			slot.forward(sig, logf)
		}
	}()

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("unable to spawn %s: %w", exe, err)
	}
	slot.set(cmd.Process)

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitStatusCode(exitErr.ProcessState), nil
		}
		return 0, fmt.Errorf("unable to wait for %s: %w", exe, err)
	}
	return 0, nil
}
