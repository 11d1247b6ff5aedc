package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
)

// ErrLaunch is returned when the runtime process cannot be started.
var ErrLaunch = errors.New("runner: cannot launch runtime")

// Runner executes a generated program.
type Runner interface {
	Run(ctx context.Context, path string) error
}

// Exec runs a program through an external runtime such as node. Only a
// failure to start the runtime is reported; the program's own exit status is
// logged and otherwise ignored.
type Exec struct {
	Command string
	Args    []string
	Dir     string

	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

func NewExec(command string, args ...string) *Exec {
	return &Exec{
		Command: command,
		Args:    args,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

func (r *Exec) Run(ctx context.Context, path string) error {
	args := append(append([]string{}, r.Args...), path)
	cmd := exec.CommandContext(ctx, r.Command, args...)
	cmd.Dir = r.Dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w %q: %w", ErrLaunch, r.Command, err)
	}

	err := cmd.Wait()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		r.logf("%s %s exited with status %d", r.Command, path, exitErr.ExitCode())
	default:
		r.logf("%s %s: %v", r.Command, path, err)
	}
	return nil
}

func (r *Exec) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}
