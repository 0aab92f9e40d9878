package ports

import "go.trai.ch/winebuild/internal/core/domain"

// ReportStore persists per-step run records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReportStore interface {
	// Get retrieves the report for a given step name.
	// Returns nil, nil if not found.
	Get(stepName string) (*domain.StepReport, error)

	// Put stores the report.
	Put(report domain.StepReport) error
}
