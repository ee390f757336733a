package config

// Config is the top-level structure parsed from lintgate YAML.
type Config struct {
	Lint Lint `yaml:"lint"`
}

// Lint defines the linted project: where tool paths are resolved from,
// where run results are stored, and which tools run.
type Lint struct {
	Name        string          `yaml:"name"`
	WorkingRoot string          `yaml:"working_root"`
	DatabaseURL string          `yaml:"database_url"`
	Defaults    ToolDefaults    `yaml:"defaults"`
	Tools       map[string]Tool `yaml:"tools"`
}

// ToolDefaults holds values applied to tools that don't specify their own.
type ToolDefaults struct {
	Timeout string `yaml:"timeout"`
}

// Tool defines one lint tool: the command to run and the format key that
// selects how its output is parsed.
type Tool struct {
	Command string `yaml:"command"`
	Format  string `yaml:"format"`
	Timeout string `yaml:"timeout"`
}
