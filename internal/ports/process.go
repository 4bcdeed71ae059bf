package ports

import (
	"context"

	"youi-build/internal/types"
)

// ProcessRunnerPort executes synthesized commands synchronously.
type ProcessRunnerPort interface {
	// Run streams the child's output to the terminal and waits for it.
	Run(ctx context.Context, cmd types.ExternalCommand) error
	// Output waits for the child and returns its standard output.
	Output(ctx context.Context, cmd types.ExternalCommand) (string, error)
}

// ToolProbePort answers whether a host tool can be found on PATH.
type ToolProbePort interface {
	LookPath(name string) (string, error)
}
