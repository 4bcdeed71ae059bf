package testutil

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"youi-build/internal/types"
)

// RecordedCall is one command seen by a RecordingRunner.
type RecordedCall struct {
	Command types.ExternalCommand
	// WorkDir is the process working directory at the time of the call.
	WorkDir string
}

// RecordingRunner records every command instead of executing it. Errors and
// outputs are keyed by the command's step name.
type RecordingRunner struct {
	mu      sync.Mutex
	Calls   []RecordedCall
	Errors  map[string]error
	Outputs map[string]string
}

func NewRecordingRunner() *RecordingRunner {
	return &RecordingRunner{Errors: map[string]error{}, Outputs: map[string]string{}}
}

func (r *RecordingRunner) Run(_ context.Context, cmd types.ExternalCommand) error {
	return r.record(cmd)
}

func (r *RecordingRunner) Output(_ context.Context, cmd types.ExternalCommand) (string, error) {
	if err := r.record(cmd); err != nil {
		return "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Outputs[cmd.Step], nil
}

func (r *RecordingRunner) record(cmd types.ExternalCommand) error {
	wd, _ := os.Getwd()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, RecordedCall{Command: cmd, WorkDir: wd})
	return r.Errors[cmd.Step]
}

// Steps returns the step names in call order.
func (r *RecordingRunner) Steps() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	steps := make([]string, 0, len(r.Calls))
	for _, call := range r.Calls {
		steps = append(steps, call.Command.Step)
	}
	return steps
}

// CommandLines returns each recorded command rendered as a shell line.
func (r *RecordingRunner) CommandLines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines := make([]string, 0, len(r.Calls))
	for _, call := range r.Calls {
		lines = append(lines, call.Command.String())
	}
	return lines
}

// StaticProbe reports the listed tools as present on PATH.
type StaticProbe map[string]string

func (p StaticProbe) LookPath(name string) (string, error) {
	if path, ok := p[name]; ok {
		return path, nil
	}
	return "", os.ErrNotExist
}

// WriteFile creates parent directories and writes content, failing the test on error.
func WriteFile(t testing.TB, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// StaticEngine resolves every project to the same engine directory.
type StaticEngine struct {
	Dir string
	Err error
	// Resolved counts Resolve calls.
	Resolved int
}

func (e *StaticEngine) Locate(candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if candidate == e.Dir {
			return e.Dir, true
		}
	}
	return "", false
}

func (e *StaticEngine) Resolve(_ context.Context, _ string, _ string) (string, error) {
	e.Resolved++
	if e.Err != nil {
		return "", e.Err
	}
	return e.Dir, nil
}
