package ports

import "go.trai.ch/trim/internal/core/domain"

// VariantSource exposes the variant matrix of a module's graph.
//
//go:generate mockgen -destination=mocks/variants_mock.go -package=mocks -source=variants.go
type VariantSource interface {
	// Variants returns the finalized variant matrix. Calling it before the
	// graph has settled is an error: the matrix does not exist yet.
	Variants() ([]domain.Variant, error)
}
