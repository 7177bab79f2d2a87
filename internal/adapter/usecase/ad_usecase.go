package usecase

import (
	"context"
	"fmt"

	"ads-board/internal/core/domain"
	"ads-board/internal/core/port"
)

// AdUseCase provides business logic for the ads board. It orchestrates the
// repository and the owner hasher to implement the port.AdUseCase
// interface.
type AdUseCase struct {
	repo   port.AdRepository
	hasher port.Hasher
}

// NewAdUseCase creates a new usecase with the provided repository and
// hasher.
func NewAdUseCase(repo port.AdRepository, hasher port.Hasher) *AdUseCase {
	return &AdUseCase{repo: repo, hasher: hasher}
}

// CreateAd hashes the submitted owner and inserts a new ad. Storage
// assigns the id and creation time.
func (u *AdUseCase) CreateAd(ctx context.Context, in port.CreateAdInput) (*domain.Ad, error) {
	owner, err := u.hasher.Hash(in.Owner)
	if err != nil {
		return nil, err
	}
	ad := &domain.Ad{
		Name:        in.Name,
		Description: in.Description,
		Owner:       owner,
	}
	if err = u.repo.Create(ctx, ad); err != nil {
		return nil, fmt.Errorf("create ad: %w", err)
	}
	return ad, nil
}

// GetAd returns the ad with the given id.
func (u *AdUseCase) GetAd(ctx context.Context, id int64) (*domain.Ad, error) {
	return u.repo.Get(ctx, id)
}

// UpdateAd applies the present fields of patch. The owner, when given, is
// hashed so plaintext never reaches storage.
func (u *AdUseCase) UpdateAd(ctx context.Context, id int64, patch domain.AdPatch) (*domain.Ad, error) {
	if patch.Owner != nil {
		owner, err := u.hasher.Hash(*patch.Owner)
		if err != nil {
			return nil, err
		}
		patch.Owner = &owner
	}
	return u.repo.Update(ctx, id, patch)
}

// DeleteAd removes the ad with the given id.
func (u *AdUseCase) DeleteAd(ctx context.Context, id int64) error {
	return u.repo.Delete(ctx, id)
}

// Ping checks storage connectivity.
func (u *AdUseCase) Ping(ctx context.Context) error {
	return u.repo.Ping(ctx)
}
