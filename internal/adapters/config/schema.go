package config

// Fixfile is the structure of the fixgen.yaml configuration file.
type Fixfile struct {
	Version                string            `yaml:"version"`
	Tool                   ToolDTO           `yaml:"tool"`
	SourceExtension        string            `yaml:"source_extension"`
	ImportPathEnv          string            `yaml:"import_path_env"`
	Resolver               ResolverDTO       `yaml:"resolver"`
	InterpreterConstraints []string          `yaml:"interpreter_constraints"`
	ExtraEnv               map[string]string `yaml:"extra_env"`
	Parallelism            int               `yaml:"parallelism"`
}

// ToolDTO configures the discovery tool sandbox.
type ToolDTO struct {
	Requirements []string `yaml:"requirements"`
	ConfigNames  []string `yaml:"config_names"`
}

// ResolverDTO configures the external lockfile resolver.
type ResolverDTO struct {
	Command   []string `yaml:"command"`
	Delimiter string   `yaml:"delimiter"`
}
