// Package launcher runs a child command with inherited standard streams and
// reports how it ended.
package launcher

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"

	"github.com/arthur-debert/envctl/pkg/errors"
	"github.com/arthur-debert/envctl/pkg/logging"
)

// Command is a child process to run.
type Command struct {
	Name string
	Args []string
	// Env is the complete child environment. Nil inherits the parent's.
	Env []string
}

// Launcher starts a command and waits for it.
type Launcher interface {
	Run(ctx context.Context, cmd Command) error
}

// Exec runs commands with os/exec.
type Exec struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExec returns a launcher wired to the process's own standard streams.
func NewExec() *Exec {
	return &Exec{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts cmd and blocks until it exits.
//
// A command that cannot be started yields ErrSpawn. A command that exits
// non-zero yields ErrChildExit carrying the exit status in DetailExitCode.
func (e *Exec) Run(ctx context.Context, cmd Command) error {
	if cmd.Name == "" {
		return errors.New(errors.ErrInvalidInput, "exec requires a command")
	}

	logger := logging.GetLogger("launcher.exec")

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Env = cmd.Env
	c.Stdin = e.Stdin
	c.Stdout = e.Stdout
	c.Stderr = e.Stderr

	logger.Debug().
		Str("command", cmd.Name).
		Strs("args", cmd.Args).
		Msg("Starting child process")

	if err := c.Start(); err != nil {
		return errors.Wrapf(err, errors.ErrSpawn, "failed to start %s", cmd.Name).
			WithDetail(errors.DetailCommand, cmd.Name)
	}

	err := c.Wait()
	if err == nil {
		logger.Debug().Str("command", cmd.Name).Msg("Child process exited")
		return nil
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		logger.Debug().
			Str("command", cmd.Name).
			Int("exitCode", exitErr.ExitCode()).
			Msg("Child process failed")
		return errors.Wrapf(err, errors.ErrChildExit, "%s exited with status %d", cmd.Name, exitErr.ExitCode()).
			WithDetail(errors.DetailCommand, cmd.Name).
			WithDetail(errors.DetailExitCode, exitErr.ExitCode())
	}
	return errors.Wrapf(err, errors.ErrSpawn, "failed waiting for %s", cmd.Name).
		WithDetail(errors.DetailCommand, cmd.Name)
}
