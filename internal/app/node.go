package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/winebuild/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/winebuild/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/winebuild/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/winebuild/internal/adapters/report"    //nolint:depguard // Wired in app layer
	"go.trai.ch/winebuild/internal/adapters/workspace" //nolint:depguard // Wired in app layer
	"go.trai.ch/winebuild/internal/core/ports"
	"go.trai.ch/winebuild/internal/engine/sequencer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			workspace.NodeID,
			sequencer.NodeID,
			report.NodeID,
			fs.HasherNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			ws, err := graft.Dep[ports.Workspace](ctx)
			if err != nil {
				return nil, err
			}

			seq, err := graft.Dep[*sequencer.Sequencer](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ReportStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, ws, seq, store, hasher, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}
