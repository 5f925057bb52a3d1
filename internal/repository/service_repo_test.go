package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"pawsome-backend/internal/database"
	"pawsome-backend/internal/model"
)

// These tests exercise the real transaction behavior and need a scratch
// Postgres database. They truncate the services table, so point
// TEST_DATABASE_URL at a disposable database only.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.New(ctx, url, database.PoolSettings{
		MaxConns:        4,
		MinConns:        1,
		MaxConnLifetime: 5 * time.Minute,
		MaxConnIdleTime: time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.EnsureSchema(ctx))

	_, err = db.Pool.Exec(ctx, `TRUNCATE services RESTART IDENTITY`)
	require.NoError(t, err)

	return db.Pool
}

func seedServices(t *testing.T, repo *ServiceRepository, names ...string) []int64 {
	t.Helper()

	ids := make([]int64, 0, len(names))
	for _, name := range names {
		created, err := repo.Create(context.Background(), model.CreateServiceRequest{Name: name})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}
	return ids
}

func positionsByID(t *testing.T, repo *ServiceRepository) map[int64]int {
	t.Helper()

	services, err := repo.List(context.Background())
	require.NoError(t, err)

	positions := map[int64]int{}
	for _, s := range services {
		positions[s.ID] = s.SortPosition
	}
	return positions
}

func TestReorderAssignsIndexPositions(t *testing.T) {
	repo := NewServiceRepository(testPool(t))
	ids := seedServices(t, repo, "Walking", "Grooming", "Boarding")

	order := []int64{ids[2], ids[0], ids[1]}
	require.NoError(t, repo.Reorder(context.Background(), order))

	positions := positionsByID(t, repo)
	require.Equal(t, 0, positions[ids[2]])
	require.Equal(t, 1, positions[ids[0]])
	require.Equal(t, 2, positions[ids[1]])
}

func TestReorderIsIdempotent(t *testing.T) {
	repo := NewServiceRepository(testPool(t))
	ids := seedServices(t, repo, "Walking", "Grooming", "Boarding")

	order := []int64{ids[1], ids[0], ids[2]}
	require.NoError(t, repo.Reorder(context.Background(), order))
	first := positionsByID(t, repo)

	require.NoError(t, repo.Reorder(context.Background(), order))
	require.Equal(t, first, positionsByID(t, repo))
}

func TestReorderEmptyInputWritesNothing(t *testing.T) {
	repo := NewServiceRepository(testPool(t))
	ids := seedServices(t, repo, "Walking", "Grooming")
	require.NoError(t, repo.Reorder(context.Background(), []int64{ids[1], ids[0]}))
	before := positionsByID(t, repo)

	require.NoError(t, repo.Reorder(context.Background(), []int64{}))
	require.Equal(t, before, positionsByID(t, repo))
}

func TestReorderUnknownIDIsSilentlyIgnored(t *testing.T) {
	repo := NewServiceRepository(testPool(t))
	ids := seedServices(t, repo, "Walking", "Grooming")

	require.NoError(t, repo.Reorder(context.Background(), []int64{ids[1], 999999, ids[0]}))

	positions := positionsByID(t, repo)
	require.Equal(t, 0, positions[ids[1]])
	require.Equal(t, 2, positions[ids[0]])
}

func TestReorderRollsBackOnMidBatchFailure(t *testing.T) {
	pool := testPool(t)
	repo := NewServiceRepository(pool)
	ids := seedServices(t, repo, "a", "b", "c", "d", "e")

	require.NoError(t, repo.Reorder(context.Background(), ids))
	before := positionsByID(t, repo)

	// Forbid position 1 for new writes only: the reversed order assigns
	// it to the second id in the batch, so the batch fails mid-flight.
	ctx := context.Background()
	_, err := pool.Exec(ctx,
		`ALTER TABLE services ADD CONSTRAINT block_position_one CHECK (sort_position <> 1) NOT VALID`)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `ALTER TABLE services DROP CONSTRAINT IF EXISTS block_position_one`)
	})

	reversed := []int64{ids[4], ids[3], ids[2], ids[1], ids[0]}
	require.Error(t, repo.Reorder(ctx, reversed))

	require.Equal(t, before, positionsByID(t, repo))
}

func TestServiceCRUD(t *testing.T) {
	repo := NewServiceRepository(testPool(t))
	ctx := context.Background()

	price := "$25/hr"
	created, err := repo.Create(ctx, model.CreateServiceRequest{Name: "Walking", PriceString: &price})
	require.NoError(t, err)
	require.Equal(t, "Regular", created.Category)

	newName := "Dog Walking"
	updated, err := repo.Update(ctx, created.ID, model.UpdateServiceRequest{Name: &newName})
	require.NoError(t, err)
	require.Equal(t, "Dog Walking", updated.Name)
	require.NotNil(t, updated.PriceString)
	require.Equal(t, "$25/hr", *updated.PriceString)

	_, err = repo.Update(ctx, 999999, model.UpdateServiceRequest{Name: &newName})
	require.ErrorIs(t, err, model.ErrServiceNotFound)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, deleted.ID)

	_, err = repo.Delete(ctx, created.ID)
	require.ErrorIs(t, err, model.ErrServiceNotFound)
}
