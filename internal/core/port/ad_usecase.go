package port

import (
	"context"

	"ads-board/internal/core/domain"
)

// AdUseCase defines the business operations exposed by the ads board. This
// interface represents the primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
type AdUseCase interface {
	// CreateAd hashes the owner and stores a new ad. The returned ad
	// carries the generated id and creation time.
	CreateAd(ctx context.Context, in CreateAdInput) (*domain.Ad, error)

	// GetAd returns a stored ad or domain.ErrAdNotFound.
	GetAd(ctx context.Context, id int64) (*domain.Ad, error)

	// UpdateAd applies a partial update. A present owner is hashed before
	// it reaches storage.
	UpdateAd(ctx context.Context, id int64, patch domain.AdPatch) (*domain.Ad, error)

	// DeleteAd removes an ad or returns domain.ErrAdNotFound.
	DeleteAd(ctx context.Context, id int64) error

	// Ping reports whether the service can reach storage.
	Ping(ctx context.Context) error
}

// CreateAdInput carries validated fields for a new ad. Owner is plaintext
// here and is hashed by the use case.
type CreateAdInput struct {
	Name        string
	Description string
	Owner       string
}
