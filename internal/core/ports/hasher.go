package ports

import "go.trai.ch/winebuild/internal/core/domain"

// Hasher computes provenance fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint computes a stable hash over the step definition, its
	// collaborator script bytes, and the rendered environment. root is the
	// directory relative script paths resolve against.
	Fingerprint(step *domain.Step, env []string, root string) (string, error)

	// TreeHash computes a combined hash over every file under root, used to
	// audit output trees for reproducibility.
	TreeHash(root string) (string, error)
}
