package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"youi-build/internal/core"
	"youi-build/internal/types"
)

// PlanGenerate validates the request, locates the engine and synthesizes the
// bundling and generation commands without running anything.
func (s Service) PlanGenerate(ctx context.Context, req GenerateRequest) (GeneratePlan, error) {
	if err := requireProjectSource(req.SourceDirectory); err != nil {
		return GeneratePlan{}, err
	}
	cfg, err := core.CompileGenerateConfig(ctx, req.GenerateInput, s.Tools)
	if err != nil {
		return GeneratePlan{}, err
	}
	emitHints(s.Hints, checkGenerateHints(req, cfg, s.Tools))

	engineDir, err := s.Engine.Resolve(ctx, cfg.SourceDirectory, cfg.EngineHint)
	if err != nil {
		return GeneratePlan{}, err
	}
	plan := GeneratePlan{Engine: engineDir}
	if cfg.JSBundle.Enabled() {
		bundle := core.BundleCommand(cfg, engineDir)
		plan.Bundle = &bundle
	}
	cfg = core.WithToolchain(cfg, engineDir)
	plan.Config = cfg
	plan.Command = s.Synthesizer.GenerateCommand(ctx, cfg, engineDir)
	return plan, nil
}

// RunGenerate executes a plan produced by PlanGenerate.
func (s Service) RunGenerate(ctx context.Context, plan GeneratePlan) error {
	if plan.Bundle != nil {
		if !plan.Config.JSBundle.Iterate {
			if err := os.RemoveAll(plan.Config.JSBundle.OutputDirectory); err != nil {
				return errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg(fmt.Sprintf("failed to clear JS bundle directory %s", plan.Config.JSBundle.OutputDirectory)).
					WithCause(err)
			}
		}
		if err := s.Runner.Run(ctx, *plan.Bundle); err != nil {
			return err
		}
	}
	if err := s.Runner.Run(ctx, plan.Command); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Str("build_directory", plan.Config.BuildDirectory).Msg("project generated")
	return nil
}

// Plan renders the steps for dry-run output.
func (p GeneratePlan) Plan() types.Plan {
	out := types.Plan{
		Tool:      "generate",
		Platform:  string(p.Config.Platform),
		Generator: p.Config.Generator,
		Defines:   p.Config.Defines,
	}
	if p.Bundle != nil {
		out.Steps = append(out.Steps, types.NewPlanStep(*p.Bundle, false))
	}
	out.Steps = append(out.Steps, types.NewPlanStep(p.Command, false))
	return out
}

func requireProjectSource(sourceDir string) error {
	if sourceDir == "" {
		sourceDir = "."
	}
	if _, err := os.Stat(filepath.Join(sourceDir, "CMakeLists.txt")); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("the directory '%s' does not contain a CMakeLists.txt file", sourceDir)).
			WithCause(err)
	}
	return nil
}
