package postgres

import (
	"context"
	"errors"
	"fmt"

	"ads-board/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
// Each method is a single transaction on a connection borrowed from the
// pool.
type AdRepository struct {
	pool *pgxpool.Pool
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

// Create inserts an ad and scans back the generated id and creation time.
func (r *AdRepository) Create(ctx context.Context, ad *domain.Ad) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	err = tx.QueryRow(ctx,
		`INSERT INTO ads (name, description, owner) VALUES ($1, $2, $3) RETURNING id, creation_time`,
		ad.Name, ad.Description, ad.Owner,
	).Scan(&ad.ID, &ad.CreationTime)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Get returns an ad by id.
func (r *AdRepository) Get(ctx context.Context, id int64) (*domain.Ad, error) {
	var ad *domain.Ad
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		ad, err = getAd(ctx, tx, id, false)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ad, nil
}

// Update locks the row, applies patch and writes the result back.
func (r *AdRepository) Update(ctx context.Context, id int64, patch domain.AdPatch) (*domain.Ad, error) {
	var ad *domain.Ad
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		ad, err = getAd(ctx, tx, id, true)
		if err != nil {
			return err
		}
		if patch.Empty() {
			return nil
		}
		patch.Apply(ad)
		_, err = tx.Exec(ctx,
			`UPDATE ads SET name = $1, description = $2, owner = $3 WHERE id = $4`,
			ad.Name, ad.Description, ad.Owner, ad.ID,
		)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ad, nil
}

// Delete removes an ad by id.
func (r *AdRepository) Delete(ctx context.Context, id int64) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM ads WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrAdNotFound
		}
		return nil
	})
}

// Ping checks that a pooled connection can reach the server.
func (r *AdRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func getAd(ctx context.Context, tx pgx.Tx, id int64, forUpdate bool) (*domain.Ad, error) {
	query := `SELECT id, name, description, creation_time, owner FROM ads WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var ad domain.Ad
	err := tx.QueryRow(ctx, query, id).
		Scan(&ad.ID, &ad.Name, &ad.Description, &ad.CreationTime, &ad.Owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAdNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select ad %d: %w", id, err)
	}
	return &ad, nil
}
