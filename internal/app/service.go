package app

import (
	"io"
	"os"

	"youi-build/internal/adapters"
	"youi-build/internal/core"
	"youi-build/internal/ports"
)

type Service struct {
	Runner      ports.ProcessRunnerPort
	Tools       ports.ToolProbePort
	Engine      ports.EngineLocatorPort
	Cache       ports.CMakeCachePort
	Synthesizer core.CommandSynthesizer
	Hints       io.Writer
}

func NewService(engineInstallDir string) Service {
	if engineInstallDir == "" {
		engineInstallDir = adapters.DefaultEngineInstallDir()
	}
	return Service{
		Runner:      adapters.NewProcessRunnerAdapter(),
		Tools:       adapters.NewToolProbeAdapter(),
		Engine:      adapters.NewEngineLocatorAdapter(engineInstallDir, adapters.NewPackageManifestAdapter()),
		Cache:       adapters.NewCMakeCacheAdapter(),
		Synthesizer: core.NewCommandSynthesizer(),
		Hints:       os.Stderr,
	}
}
