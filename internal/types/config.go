package types

// JSBundleOptions controls the optional local JS bundling step run before generation.
type JSBundleOptions struct {
	Local            bool
	Inline           bool
	Dev              bool
	Minify           bool
	Iterate          bool
	EntryFile        string
	EntryDirectory   string
	WorkingDirectory string
	OutputDirectory  string
	AssetsDirectory  string
}

// Enabled reports whether a bundle has to be produced at all.
func (o JSBundleOptions) Enabled() bool {
	return o.Local || o.Inline
}

type GenerateConfig struct {
	Platform        Platform
	Generator       string
	SourceDirectory string
	BuildDirectory  string
	Defines         map[string]string
	URLScheme       string
	EngineHint      string
	JSBundle        JSBundleOptions
}

// BuildType returns the CMAKE_BUILD_TYPE define, empty when unset.
func (c GenerateConfig) BuildType() string {
	return c.Defines[DefineBuildType]
}

type BuildConfig struct {
	SourceDirectory string
	BuildDirectory  string
	Configuration   Configuration
	Target          string
	Args            []string
}

// PackageIdentity carries the install-time overrides of the reinstall tool.
type PackageIdentity struct {
	AppName        string
	PackageName    string
	Flavor         string
	Device         string
	UninstallFirst bool
	Start          bool
}

// ReinstallConfig is a validated reinstall request with the build directory
// made absolute and the configuration defaulted.
type ReinstallConfig struct {
	SourceDirectory string
	BuildDirectory  string
	Configuration   Configuration
	Package         PackageIdentity
	TizenSDKHome    string
}

const (
	DefineBuildType       = "CMAKE_BUILD_TYPE"
	DefineToolchainFile   = "CMAKE_TOOLCHAIN_FILE"
	DefineURLScheme       = "YI_BUNDLE_URL_SCHEME"
	DefineLocalJS         = "YI_LOCAL_JS"
	DefineLocalJSInline   = "YI_LOCAL_JS_INLINE"
	DefineBundledAssets   = "YI_BUNDLED_ASSETS_DEST"
	DefineOutputDirectory = "YI_OUTPUT_DIR"
)
