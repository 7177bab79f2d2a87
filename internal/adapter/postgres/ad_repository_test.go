package postgres

import (
	"context"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ads-board/db/migrations"
	"ads-board/internal/config/configs"
	"ads-board/internal/core/domain"
	"ads-board/internal/db"
)

// testAddrEnv names a disposable database; the tests are skipped without it.
const testAddrEnv = "PSQL_TEST_ADDRESS"

func newRepo(t *testing.T) *AdRepository {
	t.Helper()
	addr := os.Getenv(testAddrEnv)
	if addr == "" {
		t.Skipf("%s not set", testAddrEnv)
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)

	require.NoError(t, db.Migrate(migrations.Postgres, addr))

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `DELETE FROM ads`)
	require.NoError(t, err)
	return NewAdRepository(pool)
}

func strPtr(s string) *string { return &s }

func TestAdRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	ad := &domain.Ad{Name: "Test_name", Description: "Test_description", Owner: "hash"}
	require.NoError(t, repo.Create(ctx, ad))
	assert.Positive(t, ad.ID)
	assert.False(t, ad.CreationTime.IsZero())

	got, err := repo.Get(ctx, ad.ID)
	require.NoError(t, err)
	assert.Equal(t, ad.Name, got.Name)
	assert.True(t, ad.CreationTime.Equal(got.CreationTime))

	updated, err := repo.Update(ctx, ad.ID, domain.AdPatch{Name: strPtr("Test_name_upd")})
	require.NoError(t, err)
	assert.Equal(t, "Test_name_upd", updated.Name)
	assert.Equal(t, "Test_description", updated.Description)
	assert.True(t, ad.CreationTime.Equal(updated.CreationTime))

	require.NoError(t, repo.Delete(ctx, ad.ID))
	_, err = repo.Get(ctx, ad.ID)
	assert.ErrorIs(t, err, domain.ErrAdNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, ad.ID), domain.ErrAdNotFound)

	next := &domain.Ad{Name: "n", Description: "d", Owner: "h"}
	require.NoError(t, repo.Create(ctx, next))
	assert.Greater(t, next.ID, ad.ID)
}

func TestPing(t *testing.T) {
	repo := newRepo(t)
	assert.NoError(t, repo.Ping(context.Background()))
}
