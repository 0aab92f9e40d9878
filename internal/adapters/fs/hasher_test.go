package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/winebuild/internal/adapters/fs"
	"go.trai.ch/winebuild/internal/core/domain"
)

func scriptStep(t *testing.T, root, name, content string) *domain.Step {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o700)) //nolint:gosec // test script must be executable
	return &domain.Step{
		Name:   domain.NewInternedString("secp256k1"),
		Kind:   domain.KindScript,
		Script: domain.NewInternedString("./" + name),
	}
}

func TestHasher_Fingerprint_Stable(t *testing.T) {
	root := t.TempDir()
	step := scriptStep(t, root, "build.sh", "#!/bin/sh\nexit 0\n")
	env := []string{"PYTHONHASHSEED=22"}

	hasher := fs.NewHasher(fs.NewWalker())
	first, err := hasher.Fingerprint(step, env, root)
	require.NoError(t, err)

	second, err := hasher.Fingerprint(step, env, root)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestHasher_Fingerprint_ChangesWithScript(t *testing.T) {
	root := t.TempDir()
	step := scriptStep(t, root, "build.sh", "#!/bin/sh\nexit 0\n")
	env := []string{"PYTHONHASHSEED=22"}

	hasher := fs.NewHasher(fs.NewWalker())
	before, err := hasher.Fingerprint(step, env, root)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "build.sh"), []byte("#!/bin/sh\nexit 1\n"), 0o700)) //nolint:gosec // test script

	after, err := hasher.Fingerprint(step, env, root)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}

func TestHasher_Fingerprint_ChangesWithEnvironment(t *testing.T) {
	root := t.TempDir()
	step := scriptStep(t, root, "build.sh", "#!/bin/sh\nexit 0\n")

	hasher := fs.NewHasher(fs.NewWalker())
	before, err := hasher.Fingerprint(step, []string{"PYTHONHASHSEED=22"}, root)
	require.NoError(t, err)

	after, err := hasher.Fingerprint(step, []string{"PYTHONHASHSEED=23"}, root)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}

func TestHasher_Fingerprint_NormalizeStepNeedsNoScript(t *testing.T) {
	step := &domain.Step{
		Name:    domain.NewInternedString("normalize-timestamps"),
		Kind:    domain.KindNormalize,
		Pattern: domain.NewInternedString("drive_c/python*"),
	}

	hasher := fs.NewHasher(fs.NewWalker())
	fingerprint, err := hasher.Fingerprint(step, nil, t.TempDir())
	require.NoError(t, err)
	assert.NotEmpty(t, fingerprint)
}

func TestHasher_Fingerprint_MissingScript(t *testing.T) {
	step := &domain.Step{
		Name:   domain.NewInternedString("secp256k1"),
		Kind:   domain.KindScript,
		Script: domain.NewInternedString("./missing.sh"),
	}

	hasher := fs.NewHasher(fs.NewWalker())
	_, err := hasher.Fingerprint(step, nil, t.TempDir())
	assert.Error(t, err)
}

func TestHasher_TreeHash(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), []byte("b"), 0o600))

	hasher := fs.NewHasher(fs.NewWalker())
	first, err := hasher.TreeHash(root)
	require.NoError(t, err)

	second, err := hasher.TreeHash(root)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), []byte("changed"), 0o600))
	third, err := hasher.TreeHash(root)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestHasher_TreeHash_UnreadableSubtree(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	root := t.TempDir()
	locked := filepath.Join(root, "a-locked")
	require.NoError(t, os.MkdirAll(locked, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "z.txt"), []byte("z"), 0o600))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o750) })

	hasher := fs.NewHasher(fs.NewWalker())
	_, err := hasher.TreeHash(root)
	assert.Error(t, err, "a truncated tree must not produce a fingerprint")
}
