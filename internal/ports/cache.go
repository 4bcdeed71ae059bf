package ports

import "youi-build/internal/types"

type CMakeCachePort interface {
	ReadCache(buildDir string) (types.CMakeCacheFacts, error)
	HasCache(buildDir string) bool
}
