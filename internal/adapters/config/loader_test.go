package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/winebuild/internal/adapters/config"
	"go.trai.ch/winebuild/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "winebuild.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load_FullConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `version: "1"
layout:
  build: out/build
  dist: out/dist
  cache: pkgcache
environment:
  hashSeed: "7"
  winePrefix: /srv/wine
  extra:
    LANG: C
steps:
  secp256k1:
    script: ./build-secp256k1.sh
  prepare-wine:
    script: ./prepare-wine.sh
    dependsOn: [secp256k1]
  normalize-timestamps:
    normalize: drive_c/python*
    dependsOn: [prepare-wine]
  build-app:
    script: ./build-app.sh
    environment:
      BUILD_FLAVOR: release
    dependsOn: [normalize-timestamps]
`)

	loader := config.NewLoader(nil)
	plan, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, dir, plan.Layout.Root)
	assert.Equal(t, "out/build", plan.Layout.BuildDir)
	assert.Equal(t, "out/dist", plan.Layout.DistDir)
	assert.Equal(t, "7", plan.Environment.HashSeed)
	assert.Equal(t, "/srv/wine", plan.Environment.WinePrefix)
	assert.Equal(t, filepath.Join(dir, "pkgcache"), plan.Environment.PipCacheDir)
	assert.Equal(t, "C", plan.Environment.Extra["LANG"])

	require.Equal(t, 4, plan.Pipeline.StepCount())

	normalize, err := plan.Pipeline.Step(domain.NewInternedString("normalize-timestamps"))
	require.NoError(t, err)
	assert.Equal(t, domain.KindNormalize, normalize.Kind)
	assert.Equal(t, "drive_c/python*", normalize.Pattern.String())

	buildApp, err := plan.Pipeline.Step(domain.NewInternedString("build-app"))
	require.NoError(t, err)
	assert.Equal(t, domain.KindScript, buildApp.Kind)
	assert.Equal(t, "release", buildApp.Environment["BUILD_FLAVOR"])

	require.NoError(t, plan.Pipeline.Validate())
}

func TestLoader_Load_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	loader := config.NewLoader(nil)
	plan, err := loader.Load(filepath.Join(dir, "winebuild.yaml"))
	require.NoError(t, err)

	assert.Equal(t, dir, plan.Layout.Root)
	assert.Equal(t, "22", plan.Environment.HashSeed)
	assert.Equal(t, "/opt/wine64", plan.Environment.WinePrefix)
	assert.Equal(t, 4, plan.Pipeline.StepCount())
	require.NoError(t, plan.Pipeline.Validate())

	// Default pipeline is a chain ending in the application build.
	var last string
	for s := range plan.Pipeline.Walk() {
		last = s.Name.String()
	}
	assert.Equal(t, "build-app", last)
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "steps: [not a map")

	loader := config.NewLoader(nil)
	_, err := loader.Load(path)
	assert.Error(t, err)
}

func TestLoader_Load_MissingDependency(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `steps:
  build-app:
    script: ./build-app.sh
    dependsOn: [prepare-wine]
`)

	loader := config.NewLoader(nil)
	_, err := loader.Load(path)
	assert.True(t, errors.Is(err, domain.ErrMissingDependency), "got %v", err)
}

func TestLoader_Load_StepWithoutAction(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `steps:
  mystery: {}
`)

	loader := config.NewLoader(nil)
	_, err := loader.Load(path)
	assert.Error(t, err)
}

func TestLoader_Load_StepWithBothActions(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `steps:
  confused:
    script: ./x.sh
    normalize: drive_c/python*
`)

	loader := config.NewLoader(nil)
	_, err := loader.Load(path)
	assert.Error(t, err)
}
