package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"youi-build/internal/core"
	"youi-build/internal/shared"
	"youi-build/internal/types"
)

// PlanBuild picks the Gradle or CMake backend for the build directory and
// synthesizes the build command.
func (s Service) PlanBuild(ctx context.Context, req BuildRequest) (BuildPlan, error) {
	cfg, err := compileBuildConfig(req)
	if err != nil {
		return BuildPlan{}, err
	}
	emitHints(s.Hints, checkBuildHints(req))

	if projectDir, ok := s.Synthesizer.GradleProject(cfg.BuildDirectory); ok {
		cfg.BuildDirectory = projectDir
		return BuildPlan{
			Config:  cfg,
			Command: s.Synthesizer.GradleTask(projectDir, "assemble"+string(cfg.Configuration)),
		}, nil
	}

	facts, err := s.Cache.ReadCache(cfg.BuildDirectory)
	if err != nil {
		return BuildPlan{}, err
	}
	cmakePath := ""
	if core.IsPS4Cache(facts) {
		engineDir, err := s.Engine.Resolve(ctx, cfg.SourceDirectory, "")
		if err != nil {
			return BuildPlan{}, err
		}
		cmakePath = core.BundledCMake(engineDir)
		log.Ctx(ctx).Debug().Str("cmake", cmakePath).Msg("using the engine's bundled CMake for PS4")
	}
	return BuildPlan{
		Config:  cfg,
		Command: s.Synthesizer.BuildCommand(ctx, cfg, cmakePath),
	}, nil
}

func (s Service) RunBuild(ctx context.Context, plan BuildPlan) error {
	return s.Runner.Run(ctx, plan.Command)
}

// Build plans and runs in one step; reinstall uses it before deploying.
func (s Service) Build(ctx context.Context, req BuildRequest) (BuildPlan, error) {
	plan, err := s.PlanBuild(ctx, req)
	if err != nil {
		return BuildPlan{}, err
	}
	return plan, s.RunBuild(ctx, plan)
}

func (p BuildPlan) Plan() types.Plan {
	return types.Plan{
		Tool:  "build",
		Steps: []types.PlanStep{types.NewPlanStep(p.Command, false)},
	}
}

func compileBuildConfig(req BuildRequest) (types.BuildConfig, error) {
	buildDir, err := requireBuildDirectory(req.BuildDirectory, "The project must be generated before building. See generate.")
	if err != nil {
		return types.BuildConfig{}, err
	}
	sourceDir, err := shared.AbsPath(req.SourceDirectory)
	if err != nil {
		return types.BuildConfig{}, err
	}
	config := req.Configuration
	if config == "" {
		config = types.ConfigurationDebug
	}
	return types.BuildConfig{
		SourceDirectory: sourceDir,
		BuildDirectory:  buildDir,
		Configuration:   config,
		Target:          strings.TrimSpace(req.Target),
		Args:            req.Args,
	}, nil
}

func requireBuildDirectory(dir string, remedy string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("missing argument: --build_directory")
	}
	if !shared.IsDir(dir) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("the given build directory '%s' does not exist. %s", dir, remedy))
	}
	return shared.AbsPath(dir)
}
