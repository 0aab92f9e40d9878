// Package config provides the configuration loader for winebuild.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/winebuild/internal/core/domain"
	"go.trai.ch/winebuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path and returns the build plan.
// When the file does not exist, the built-in default plan is returned with
// the file's directory as workspace root.
func (l *Loader) Load(path string) (*domain.Plan, error) {
	root := filepath.Dir(path)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if l.logger != nil {
				l.logger.Info("no configuration file found, using the default pipeline")
			}
			return DefaultPlan(root)
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var buildfile Buildfile
	if err := yaml.Unmarshal(data, &buildfile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	return assemble(root, &buildfile)
}

// DefaultPlan reproduces the original four-stage pipeline: native crypto
// library build, Wine environment preparation, timestamp normalization under
// the emulated Python installation, application build.
func DefaultPlan(root string) (*domain.Plan, error) {
	buildfile := &Buildfile{
		Steps: map[string]StepDTO{
			"secp256k1": {
				Script: "./build-secp256k1.sh",
			},
			"prepare-wine": {
				Script:    "./prepare-wine.sh",
				DependsOn: []string{"secp256k1"},
			},
			"normalize-timestamps": {
				Normalize: "drive_c/python*",
				DependsOn: []string{"prepare-wine"},
			},
			"build-app": {
				Script:    "./build-app.sh",
				DependsOn: []string{"normalize-timestamps"},
			},
		},
	}
	return assemble(root, buildfile)
}

func assemble(root string, buildfile *Buildfile) (*domain.Plan, error) {
	layout := layoutFromDTO(root, buildfile.Layout)
	env := environmentFromDTO(layout, buildfile.Environment)

	pipeline := domain.NewPipeline()
	stepNames := make(map[string]bool, len(buildfile.Steps))
	for name := range buildfile.Steps {
		stepNames[name] = true
	}

	for name, dto := range buildfile.Steps {
		step, err := stepFromDTO(name, dto, stepNames)
		if err != nil {
			return nil, err
		}
		if err := pipeline.AddStep(step); err != nil {
			return nil, err
		}
	}

	return &domain.Plan{
		Pipeline:    pipeline,
		Environment: env,
		Layout:      layout,
	}, nil
}

func stepFromDTO(name string, dto StepDTO, stepNames map[string]bool) (*domain.Step, error) {
	if dto.Script == "" && dto.Normalize == "" {
		return nil, zerr.With(zerr.New("step defines neither script nor normalize"), "step", name)
	}
	if dto.Script != "" && dto.Normalize != "" {
		return nil, zerr.With(zerr.New("step defines both script and normalize"), "step", name)
	}

	for _, dep := range dto.DependsOn {
		if !stepNames[dep] {
			err := zerr.With(zerr.Wrap(domain.ErrMissingDependency, "reading step"), "step", name)
			return nil, zerr.With(err, "dependency", dep)
		}
	}

	kind := domain.KindScript
	if dto.Normalize != "" {
		kind = domain.KindNormalize
	}

	return &domain.Step{
		Name:        domain.NewInternedString(name),
		Kind:        kind,
		Script:      domain.NewInternedString(dto.Script),
		Pattern:     domain.NewInternedString(dto.Normalize),
		Environment: dto.Environment,
		DependsOn:   internStrings(dto.DependsOn),
	}, nil
}

func layoutFromDTO(root string, dto LayoutDTO) domain.Layout {
	layout := domain.DefaultLayout(root)
	if dto.Build != "" {
		layout.BuildDir = dto.Build
	}
	if dto.Dist != "" {
		layout.DistDir = dto.Dist
	}
	if dto.Cache != "" {
		layout.CacheDir = dto.Cache
	}
	return layout
}

func environmentFromDTO(layout domain.Layout, dto EnvironmentDTO) domain.Environment {
	env := domain.DefaultEnvironment()
	if dto.HashSeed != "" {
		env.HashSeed = dto.HashSeed
	}
	if dto.WinePrefix != "" {
		env.WinePrefix = dto.WinePrefix
	}
	env.PipCacheDir = layout.Resolve(layout.CacheDir)
	if dto.PipCache != "" {
		env.PipCacheDir = layout.Resolve(dto.PipCache)
	}
	env.Extra = dto.Extra
	return env
}

func internStrings(strs []string) []domain.InternedString {
	res := make([]domain.InternedString, len(strs))
	for i, s := range strs {
		res[i] = domain.NewInternedString(s)
	}
	return res
}
