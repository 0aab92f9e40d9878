package sequencer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/winebuild/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/winebuild/internal/adapters/report"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/winebuild/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/winebuild/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/winebuild/internal/core/ports"
)

// NodeID is the unique identifier for the sequencer Graft node.
const NodeID graft.ID = "engine.sequencer"

func init() {
	graft.Register(graft.Node[*Sequencer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.LocatorNodeID,
			fs.NormalizerNodeID,
			fs.HasherNodeID,
			report.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Sequencer, error) {
			runner, err := graft.Dep[ports.ScriptRunner](ctx)
			if err != nil {
				return nil, err
			}

			locator, err := graft.Dep[ports.Locator](ctx)
			if err != nil {
				return nil, err
			}

			normalizer, err := graft.Dep[ports.TimestampNormalizer](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ReportStore](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewSequencer(runner, locator, normalizer, hasher, store, telemetry), nil
		},
	})
}
