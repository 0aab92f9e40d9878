package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/winebuild/internal/core/domain"
	"go.trai.ch/winebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes provenance fingerprints for pipeline steps.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// Fingerprint computes a stable hash over the step definition, the
// collaborator script bytes, and the rendered environment. Two runs with the
// same fingerprint invoked the exact same work.
func (h *Hasher) Fingerprint(step *domain.Step, env []string, root string) (string, error) {
	digest := xxhash.New()

	hashStepDefinition(step, digest)

	// env is already rendered in sorted order
	for _, entry := range env {
		_, _ = digest.WriteString(entry)
		_, _ = digest.Write([]byte{0})
	}
	_, _ = digest.Write([]byte{0})

	if step.Kind == domain.KindScript {
		script := step.Script.String()
		if !filepath.IsAbs(script) {
			script = filepath.Join(root, script)
		}
		if err := h.hashFile(script, digest); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

// FileHash computes the xxhash of a single file's content.
func (h *Hasher) FileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // best effort close in defer

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return digest.Sum64(), nil
}

// TreeHash computes a combined hash over every file under root, in lexical
// walk order, folding in the relative paths. Used to audit output trees for
// reproducibility. Walk errors abort the hash: a truncated tree must not
// produce a fingerprint.
func (h *Hasher) TreeHash(root string) (string, error) {
	digest := xxhash.New()

	err := h.walker.Files(root, func(path string) error {
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		_, _ = digest.WriteString(rel)
		_, _ = digest.Write([]byte{0})

		return h.hashFile(path, digest)
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

func (h *Hasher) hashFile(path string, digest io.Writer) error {
	sum, err := h.FileHash(path)
	if err != nil {
		return err
	}
	if err := binary.Write(digest, binary.LittleEndian, sum); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}

func hashStepDefinition(step *domain.Step, digest *xxhash.Digest) {
	_, _ = digest.WriteString(step.Name.String())
	_, _ = digest.Write([]byte{0})
	_, _ = digest.WriteString(string(step.Kind))
	_, _ = digest.Write([]byte{0})
	_, _ = digest.WriteString(step.Script.String())
	_, _ = digest.Write([]byte{0})
	_, _ = digest.WriteString(step.Pattern.String())
	_, _ = digest.Write([]byte{0})

	for _, dep := range step.DependsOn {
		_, _ = digest.WriteString(dep.String())
		_, _ = digest.Write([]byte{0})
	}
	_, _ = digest.Write([]byte{0})
}
