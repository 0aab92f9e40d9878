// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/winebuild/internal/adapters/config"
	_ "go.trai.ch/winebuild/internal/adapters/fs"
	_ "go.trai.ch/winebuild/internal/adapters/logger"
	_ "go.trai.ch/winebuild/internal/adapters/report"
	_ "go.trai.ch/winebuild/internal/adapters/shell"
	_ "go.trai.ch/winebuild/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/winebuild/internal/adapters/workspace"
	// Register app and engine nodes.
	_ "go.trai.ch/winebuild/internal/app"
	_ "go.trai.ch/winebuild/internal/engine/sequencer"
)
