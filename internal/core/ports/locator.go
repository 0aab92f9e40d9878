package ports

// Locator resolves wildcard patterns against the filesystem.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type Locator interface {
	// ResolveOne resolves pattern relative to root and enforces that exactly
	// one directory matches. Zero matches yield domain.ErrNoMatch, several
	// yield domain.ErrAmbiguousMatch with the matches attached.
	ResolveOne(root, pattern string) (string, error)
}
