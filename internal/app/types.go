package app

import (
	"youi-build/internal/core"
	"youi-build/internal/types"
)

type GenerateRequest struct {
	core.GenerateInput
}

// GeneratePlan is everything generate will run, in order.
type GeneratePlan struct {
	Config  types.GenerateConfig
	Engine  string
	Bundle  *types.ExternalCommand
	Command types.ExternalCommand
}

type BuildRequest struct {
	SourceDirectory string
	BuildDirectory  string
	Configuration   types.Configuration
	Target          string
	Args            []string
}

type BuildPlan struct {
	Config  types.BuildConfig
	Command types.ExternalCommand
}

type ReinstallRequest struct {
	SourceDirectory string
	BuildDirectory  string
	Configuration   types.Configuration
	Package         types.PackageIdentity
	TizenSDKHome    string
}

type ReinstallResult struct {
	Platform    types.Platform
	PackageName string
	Device      string
}
