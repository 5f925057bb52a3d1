package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pawsome-backend/internal/model"
)

type ServiceRepository struct {
	pool *pgxpool.Pool
}

func NewServiceRepository(pool *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{pool: pool}
}

const serviceColumns = `id, name, price_string, description, category, sort_position, created_at, updated_at`

func scanService(row pgx.Row) (model.Service, error) {
	var s model.Service
	err := row.Scan(&s.ID, &s.Name, &s.PriceString, &s.Description, &s.Category,
		&s.SortPosition, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *ServiceRepository) List(ctx context.Context) ([]model.Service, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+serviceColumns+` FROM services ORDER BY sort_position, id`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	services := make([]model.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *ServiceRepository) FindByID(ctx context.Context, id int64) (model.Service, error) {
	s, err := scanService(r.pool.QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Service{}, model.ErrServiceNotFound
	}
	if err != nil {
		return model.Service{}, fmt.Errorf("find service by id: %w", err)
	}
	return s, nil
}

func (r *ServiceRepository) Create(ctx context.Context, req model.CreateServiceRequest) (model.Service, error) {
	category := "Regular"
	if req.Category != nil && strings.TrimSpace(*req.Category) != "" {
		category = strings.TrimSpace(*req.Category)
	}

	s, err := scanService(r.pool.QueryRow(ctx,
		`INSERT INTO services (name, price_string, description, category, sort_position)
		 VALUES ($1, $2, $3, $4, COALESCE((SELECT MAX(sort_position) + 1 FROM services), 0))
		 RETURNING `+serviceColumns,
		req.Name, req.PriceString, req.Description, category))
	if err != nil {
		return model.Service{}, fmt.Errorf("create service: %w", err)
	}
	return s, nil
}

// Update applies only the fields present in the request, building the SET
// clause from the provided columns.
func (r *ServiceRepository) Update(ctx context.Context, id int64, req model.UpdateServiceRequest) (model.Service, error) {
	setClauses := []string{}
	args := []any{}
	arg := 1

	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", arg))
		args = append(args, *req.Name)
		arg++
	}
	if req.PriceString != nil {
		setClauses = append(setClauses, fmt.Sprintf("price_string = $%d", arg))
		args = append(args, *req.PriceString)
		arg++
	}
	if req.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", arg))
		args = append(args, *req.Description)
		arg++
	}
	if req.Category != nil {
		setClauses = append(setClauses, fmt.Sprintf("category = $%d", arg))
		args = append(args, *req.Category)
		arg++
	}

	if len(setClauses) == 0 {
		return model.Service{}, model.ErrInvalidInput
	}

	setClauses = append(setClauses, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE services SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setClauses, ", "), arg, serviceColumns)

	s, err := scanService(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Service{}, model.ErrServiceNotFound
	}
	if err != nil {
		return model.Service{}, fmt.Errorf("update service: %w", err)
	}
	return s, nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) (model.Service, error) {
	s, err := scanService(r.pool.QueryRow(ctx,
		`DELETE FROM services WHERE id = $1 RETURNING `+serviceColumns, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Service{}, model.ErrServiceNotFound
	}
	if err != nil {
		return model.Service{}, fmt.Errorf("delete service: %w", err)
	}
	return s, nil
}

// Reorder rewrites sort_position so the id at index i gets position i.
// The per-id updates are queued into one batch and pipelined on the
// transaction's connection; every result is drained before commit, so
// either the whole new order lands or none of it does. Ids that match no
// row update zero rows and do not fail the batch. The deferred rollback
// is a no-op after a successful commit and guarantees the pooled
// connection is released on every path.
func (r *ServiceRepository) Reorder(ctx context.Context, orderedIDs []int64) error {
	if len(orderedIDs) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin reorder transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for position, id := range orderedIDs {
		batch.Queue(
			`UPDATE services SET sort_position = $1, updated_at = now() WHERE id = $2`,
			position, id)
	}

	results := tx.SendBatch(ctx, batch)
	for range orderedIDs {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("reorder position update: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close reorder batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit reorder transaction: %w", err)
	}

	return nil
}
