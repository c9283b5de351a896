package core

import (
	"errors"
	"os/exec"
	"strings"
)

// Runner executes an external command and blocks until it exits. There is
// deliberately no timeout: a hung child hangs the caller, which interactive
// callers guard against by running operations off the UI loop.
type Runner interface {
	Run(name string, args ...string) error
}

// ExecRunner runs commands via os/exec. Exit status is the sole failure
// signal; stdout and stderr are discarded, never parsed.
type ExecRunner struct{}

func (ExecRunner) Run(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// IsExitError reports whether err means the command launched but exited
// unsuccessfully, as opposed to failing to launch at all.
func IsExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

// CommandLine formats a command invocation for error messages.
func CommandLine(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
