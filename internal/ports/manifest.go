package ports

// DependencyManifestPort reads the engine version a JS project depends on.
type DependencyManifestPort interface {
	// EngineVersion returns found=false when the manifest does not exist.
	EngineVersion(path string) (version string, found bool, err error)
}
