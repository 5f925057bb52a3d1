package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"pawsome-backend/internal/model"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, req model.ContactRequest) (model.ContactSubmission, error) {
	var sub model.ContactSubmission
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, phone, service, preferred_date, message)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, name, email, phone, service, preferred_date, message, created_at`,
		req.Name, req.Email, req.Phone, req.Service, req.PreferredDate, req.Message).
		Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Phone, &sub.Service,
			&sub.PreferredDate, &sub.Message, &sub.CreatedAt)
	if err != nil {
		return model.ContactSubmission{}, fmt.Errorf("create contact submission: %w", err)
	}
	return sub, nil
}

func (r *ContactRepository) ListRecent(ctx context.Context, limit int) ([]model.ContactSubmission, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, service, preferred_date, message, created_at
		 FROM contact_submissions ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()

	subs := make([]model.ContactSubmission, 0)
	for rows.Next() {
		var sub model.ContactSubmission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Phone, &sub.Service,
			&sub.PreferredDate, &sub.Message, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact submission: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
