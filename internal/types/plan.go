package types

// Plan is the dry-run rendering of what a tool would execute.
type Plan struct {
	Tool      string            `yaml:"tool"`
	Platform  string            `yaml:"platform,omitempty"`
	Generator string            `yaml:"generator,omitempty"`
	Defines   map[string]string `yaml:"defines,omitempty"`
	Steps     []PlanStep        `yaml:"steps"`
}

type PlanStep struct {
	Name       string `yaml:"name"`
	Command    string `yaml:"command"`
	Directory  string `yaml:"directory,omitempty"`
	BestEffort bool   `yaml:"best_effort,omitempty"`
}

func NewPlanStep(cmd ExternalCommand, bestEffort bool) PlanStep {
	step := PlanStep{Name: cmd.Step, Command: cmd.String(), BestEffort: bestEffort}
	if cmd.ChangeDir {
		step.Directory = cmd.Dir
	}
	return step
}
