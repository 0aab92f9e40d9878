// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/winebuild/internal/core/domain"

// ConfigLoader loads the build plan from configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns the build plan.
	// A missing file yields the built-in default plan rather than an error.
	Load(path string) (*domain.Plan, error)
}
