package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ads-board/internal/core/domain"
)

// AdRepository implements port.AdRepository on a database/sql handle opened
// with the modernc.org/sqlite driver. creation_time is stored as integer
// epoch seconds.
type AdRepository struct {
	db *sql.DB
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(db *sql.DB) *AdRepository {
	return &AdRepository{db: db}
}

// Create inserts an ad and scans back the generated id and creation time.
func (r *AdRepository) Create(ctx context.Context, ad *domain.Ad) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		var created int64
		err := tx.QueryRowContext(ctx,
			`INSERT INTO ads (name, description, owner) VALUES (?, ?, ?) RETURNING id, creation_time`,
			ad.Name, ad.Description, ad.Owner,
		).Scan(&ad.ID, &created)
		if err != nil {
			return err
		}
		ad.CreationTime = time.Unix(created, 0).UTC()
		return nil
	})
}

// Get returns an ad by id.
func (r *AdRepository) Get(ctx context.Context, id int64) (*domain.Ad, error) {
	var ad *domain.Ad
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		ad, err = getAd(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ad, nil
}

// Update loads the ad, applies patch and writes the result back.
func (r *AdRepository) Update(ctx context.Context, id int64, patch domain.AdPatch) (*domain.Ad, error) {
	var ad *domain.Ad
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		ad, err = getAd(ctx, tx, id)
		if err != nil {
			return err
		}
		if patch.Empty() {
			return nil
		}
		patch.Apply(ad)
		_, err = tx.ExecContext(ctx,
			`UPDATE ads SET name = ?, description = ?, owner = ? WHERE id = ?`,
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
	return r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM ads WHERE id = ?`, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrAdNotFound
		}
		return nil
	})
}

// Ping checks that the database file is reachable.
func (r *AdRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// inTx runs fn in a transaction, committing on success and rolling back
// otherwise.
func (r *AdRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func getAd(ctx context.Context, tx *sql.Tx, id int64) (*domain.Ad, error) {
	var (
		ad      domain.Ad
		created int64
	)
	err := tx.QueryRowContext(ctx,
		`SELECT id, name, description, creation_time, owner FROM ads WHERE id = ?`, id,
	).Scan(&ad.ID, &ad.Name, &ad.Description, &created, &ad.Owner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAdNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select ad %d: %w", id, err)
	}
	ad.CreationTime = time.Unix(created, 0).UTC()
	return &ad, nil
}
