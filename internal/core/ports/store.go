package ports

import "go.trai.ch/trim/internal/core/domain"

// ReportStore defines the interface for storing and retrieving module reports.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReportStore interface {
	// Get retrieves the report for a given module name.
	// Returns nil, nil if not found.
	Get(module string) (*domain.ModuleReport, error)

	// Put stores the report.
	Put(report domain.ModuleReport) error
}
