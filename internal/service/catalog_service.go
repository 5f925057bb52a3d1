package service

import (
	"context"
	"net/http"
	"strings"

	"pawsome-backend/internal/model"
	"pawsome-backend/pkg/apierror"
)

type catalogStore interface {
	List(ctx context.Context) ([]model.Service, error)
	Create(ctx context.Context, req model.CreateServiceRequest) (model.Service, error)
	Update(ctx context.Context, id int64, req model.UpdateServiceRequest) (model.Service, error)
	Delete(ctx context.Context, id int64) (model.Service, error)
	Reorder(ctx context.Context, orderedIDs []int64) error
}

type CatalogService struct {
	store catalogStore
}

func NewCatalogService(store catalogStore) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) List(ctx context.Context) ([]model.Service, error) {
	return s.store.List(ctx)
}

func (s *CatalogService) Create(ctx context.Context, req model.CreateServiceRequest) (model.Service, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return model.Service{}, apierror.New("BAD_REQUEST", "service name is required", http.StatusBadRequest)
	}

	return s.store.Create(ctx, req)
}

func (s *CatalogService) Update(ctx context.Context, id int64, req model.UpdateServiceRequest) (model.Service, error) {
	if req.Empty() {
		return model.Service{}, apierror.New("BAD_REQUEST",
			"no fields provided for update; supply at least one of name, price_string, description, category",
			http.StatusBadRequest)
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return model.Service{}, apierror.New("BAD_REQUEST", "service name cannot be empty", http.StatusBadRequest)
	}

	return s.store.Update(ctx, id, req)
}

func (s *CatalogService) Delete(ctx context.Context, id int64) (model.Service, error) {
	return s.store.Delete(ctx, id)
}

// Reorder assigns each id its zero-based index in the submitted sequence
// as the new sort position. An empty sequence is "nothing requested" and
// succeeds without touching storage.
func (s *CatalogService) Reorder(ctx context.Context, orderedIDs []int64) error {
	if len(orderedIDs) == 0 {
		return nil
	}

	return s.store.Reorder(ctx, orderedIDs)
}
