package config

// Buildfile represents the structure of the winebuild.yaml configuration file.
type Buildfile struct {
	Version     string             `yaml:"version"`
	Layout      LayoutDTO          `yaml:"layout"`
	Environment EnvironmentDTO     `yaml:"environment"`
	Steps       map[string]StepDTO `yaml:"steps"`
}

// LayoutDTO describes the workspace directories.
type LayoutDTO struct {
	Build string `yaml:"build"`
	Dist  string `yaml:"dist"`
	Cache string `yaml:"cache"`
}

// EnvironmentDTO describes the reproducibility environment exported to every
// collaborator script.
type EnvironmentDTO struct {
	HashSeed   string            `yaml:"hashSeed"`
	WinePrefix string            `yaml:"winePrefix"`
	PipCache   string            `yaml:"pipCache"`
	Extra      map[string]string `yaml:"extra"`
}

// StepDTO represents a step definition in the configuration. A step either
// runs a collaborator script or, with Normalize set, rewrites timestamps
// under the directory the pattern resolves to inside the Wine prefix.
type StepDTO struct {
	Script      string            `yaml:"script"`
	Normalize   string            `yaml:"normalize"`
	Environment map[string]string `yaml:"environment"`
	DependsOn   []string          `yaml:"dependsOn"`
}
