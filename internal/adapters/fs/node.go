package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/winebuild/internal/core/ports"
)

// Node IDs for the filesystem adapter Graft nodes.
const (
	WalkerNodeID     graft.ID = "adapter.fs.walker"
	LocatorNodeID    graft.ID = "adapter.fs.locator"
	NormalizerNodeID graft.ID = "adapter.fs.normalizer"
	HasherNodeID     graft.ID = "adapter.fs.hasher"
)

func init() {
	// Concrete walker, shared by the normalizer and the hasher.
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Locator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Locator, error) {
			return NewLocator(), nil
		},
	})

	graft.Register(graft.Node[ports.TimestampNormalizer]{
		ID:        NormalizerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.TimestampNormalizer, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewNormalizer(walker), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Hasher, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(walker), nil
		},
	})
}
