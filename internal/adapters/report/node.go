package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/winebuild/internal/core/ports"
)

// NodeID is the unique identifier for the report store Graft node.
const NodeID graft.ID = "adapter.report_store"

func init() {
	graft.Register(graft.Node[ports.ReportStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReportStore, error) {
			// Relative to the working directory: the store is built before
			// any configuration, and with it any workspace root, is known.
			return NewStore(DefaultFilename)
		},
	})
}
