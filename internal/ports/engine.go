package ports

import "context"

// EngineLocatorPort finds an installed engine/SDK tree.
type EngineLocatorPort interface {
	// Locate returns the first candidate that looks like an engine root.
	Locate(candidates []string) (string, bool)
	// Resolve walks the full discovery order for a project rooted at sourceDir.
	Resolve(ctx context.Context, sourceDir string, hint string) (string, error)
}
