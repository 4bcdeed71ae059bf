package adapters

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"youi-build/internal/ports"
)

type PackageManifestAdapter struct{}

func NewPackageManifestAdapter() PackageManifestAdapter {
	return PackageManifestAdapter{}
}

type packageManifest struct {
	Dependencies map[string]string `json:"dependencies"`
}

func (a PackageManifestAdapter) EngineVersion(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to read %s", path)).
			WithCause(err)
	}
	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return "", true, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse %s", path)).
			WithCause(err)
	}
	return strings.TrimSpace(manifest.Dependencies[engineDependency]), true, nil
}

var _ ports.DependencyManifestPort = PackageManifestAdapter{}
