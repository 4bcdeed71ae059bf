package adapters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"youi-build/internal/ports"
	"youi-build/internal/types"
)

type ProcessRunnerAdapter struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func NewProcessRunnerAdapter() ProcessRunnerAdapter {
	return ProcessRunnerAdapter{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (a ProcessRunnerAdapter) Run(ctx context.Context, cmd types.ExternalCommand) error {
	if err := validateCommand(cmd); err != nil {
		return err
	}
	return runInDir(cmd, func() error {
		child := a.command(ctx, cmd)
		child.Stdout = a.Stdout
		child.Stderr = a.Stderr
		log.Ctx(ctx).Debug().Str("command", cmd.String()).Str("dir", cmd.Dir).Msg("running")
		return classifyExecError(ctx, cmd, child.Run())
	})
}

func (a ProcessRunnerAdapter) Output(ctx context.Context, cmd types.ExternalCommand) (string, error) {
	if err := validateCommand(cmd); err != nil {
		return "", err
	}
	var output []byte
	err := runInDir(cmd, func() error {
		child := a.command(ctx, cmd)
		child.Stderr = a.Stderr
		log.Ctx(ctx).Debug().Str("command", cmd.String()).Msg("capturing output")
		var runErr error
		output, runErr = child.Output()
		return classifyExecError(ctx, cmd, runErr)
	})
	return string(output), err
}

func (a ProcessRunnerAdapter) command(ctx context.Context, cmd types.ExternalCommand) *exec.Cmd {
	child := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...)
	child.Stdin = a.Stdin
	if !cmd.ChangeDir && strings.TrimSpace(cmd.Dir) != "" {
		child.Dir = cmd.Dir
	}
	return child
}

func validateCommand(cmd types.ExternalCommand) error {
	if len(cmd.Args) == 0 || strings.TrimSpace(cmd.Args[0]) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("command is empty")
	}
	return nil
}

// runInDir enters cmd.Dir when the command asks for it and always returns to
// the previous working directory, whatever fn returns.
func runInDir(cmd types.ExternalCommand, fn func() error) (err error) {
	if !cmd.ChangeDir {
		return fn()
	}
	previous, err := os.Getwd()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read working directory").
			WithCause(err)
	}
	if err := os.Chdir(cmd.Dir); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("failed to enter directory '%s'", cmd.Dir)).
			WithCause(err)
	}
	defer func() {
		if restoreErr := os.Chdir(previous); restoreErr != nil && err == nil {
			err = errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("failed to return to directory '%s'", previous)).
				WithCause(restoreErr)
		}
	}()
	return fn()
}

func classifyExecError(ctx context.Context, cmd types.ExternalCommand, err error) error {
	if err == nil {
		return nil
	}
	step := cmd.Step
	if step == "" {
		step = cmd.Program()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("%s failed with exit status %d", step, exitErr.ExitCode())).
			WithCause(err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("%s interrupted", step)).
			WithCause(ctxErr)
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("%s failed -- could not execute %s. Ensure that it is installed and available in your PATH", step, cmd.Program())).
		WithCause(err)
}

type ToolProbeAdapter struct{}

func NewToolProbeAdapter() ToolProbeAdapter {
	return ToolProbeAdapter{}
}

func (ToolProbeAdapter) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

var (
	_ ports.ProcessRunnerPort = ProcessRunnerAdapter{}
	_ ports.ToolProbePort     = ToolProbeAdapter{}
)
