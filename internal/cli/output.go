package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"youi-build/internal/app"
	"youi-build/internal/core"
	"youi-build/internal/types"
)

var bannerRule = "#" + strings.Repeat("=", 78)

func printGenerateBanner(w io.Writer, plan app.GeneratePlan) {
	fmt.Fprintln(w, bannerRule)
	fmt.Fprintln(w, "CMake Generator command line:")
	fmt.Fprintf(w, "  %s\n\n", plan.Command.String())
	fmt.Fprintf(w, "Platform:  %s\n", plan.Config.Platform)
	fmt.Fprintf(w, "Generator: %s\n", plan.Config.Generator)
	fmt.Fprintf(w, "Engine:    %s\n", plan.Engine)
	fmt.Fprintln(w, "Defines:")
	for _, key := range core.SortedDefines(plan.Config.Defines) {
		fmt.Fprintf(w, "  - %s: %s\n", key, plan.Config.Defines[key])
	}
	fmt.Fprintln(w, bannerRule)
}

func printBuildBanner(w io.Writer, plan app.BuildPlan) {
	fmt.Fprintln(w, bannerRule)
	fmt.Fprintln(w, "Build command:")
	fmt.Fprintf(w, "  %s\n\n", plan.Command.String())
	fmt.Fprintf(w, "Build Directory: %s\n", plan.Config.BuildDirectory)
	fmt.Fprintf(w, "Configuration:   %s\n", plan.Config.Configuration)
	fmt.Fprintln(w, bannerRule)
}

func writePlan(w io.Writer, plan types.Plan) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(plan); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write plan").
			WithCause(err)
	}
	return encoder.Close()
}
