package domain

import "sort"

// Environment names for the reproducibility settings inherited by every
// collaborator script.
const (
	EnvHashSeed   = "PYTHONHASHSEED"
	EnvWinePrefix = "WINEPREFIX"
	EnvPipCache   = "PIP_CACHE_DIR"
)

// Environment is the explicit configuration passed to each collaborator
// invocation. It replaces the ambient process-global exports of the original
// shell pipeline with a value that is rendered per invocation.
type Environment struct {
	// HashSeed disables per-process hash randomization in the emulated
	// Python toolchain so container iteration order is stable across builds.
	HashSeed string

	// WinePrefix is the root of the isolated Wine filesystem tree the
	// Windows-targeted build tools run inside.
	WinePrefix string

	// PipCacheDir is the package-download cache consumed by the environment
	// preparation and application build scripts.
	PipCacheDir string

	// Extra holds additional variables from configuration.
	Extra map[string]string
}

// DefaultEnvironment mirrors the values of the original build pipeline.
func DefaultEnvironment() Environment {
	return Environment{
		HashSeed:   "22",
		WinePrefix: "/opt/wine64",
	}
}

// Render returns the environment as sorted "KEY=VALUE" strings suitable for
// process execution. Empty fields are omitted.
func (e Environment) Render() []string {
	vars := make(map[string]string, len(e.Extra)+3)
	for k, v := range e.Extra {
		vars[k] = v
	}
	if e.HashSeed != "" {
		vars[EnvHashSeed] = e.HashSeed
	}
	if e.WinePrefix != "" {
		vars[EnvWinePrefix] = e.WinePrefix
	}
	if e.PipCacheDir != "" {
		vars[EnvPipCache] = e.PipCacheDir
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rendered := make([]string, 0, len(keys))
	for _, k := range keys {
		rendered = append(rendered, k+"="+vars[k])
	}
	return rendered
}
