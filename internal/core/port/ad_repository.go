package port

import (
	"context"

	"ads-board/internal/core/domain"
)

// AdRepository defines the persistence layer for ads. It is an outbound
// port in hexagonal architecture. Every method runs as exactly one
// transaction against storage and returns domain.ErrAdNotFound when the
// id does not resolve. Implementations must be safe for concurrent use.
type AdRepository interface {
	// Create inserts ad and fills in the storage generated ID and
	// CreationTime.
	Create(ctx context.Context, ad *domain.Ad) error
	// Get returns the ad with the given id.
	Get(ctx context.Context, id int64) (*domain.Ad, error)
	// Update loads the ad, applies patch and saves it in one transaction.
	// It returns the ad as stored after the update.
	Update(ctx context.Context, id int64, patch domain.AdPatch) (*domain.Ad, error)
	// Delete removes the ad with the given id.
	Delete(ctx context.Context, id int64) error
	// Ping checks that storage is reachable.
	Ping(ctx context.Context) error
}

// Hasher produces one-way salted hashes of owner values.
type Hasher interface {
	Hash(plain string) (string, error)
}
