package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"pawsome-backend/internal/model"
	"pawsome-backend/pkg/apierror"
)

type stubCatalogStore struct {
	services     []model.Service
	created      []model.CreateServiceRequest
	updated      []model.UpdateServiceRequest
	reorderCalls [][]int64
	err          error
}

func (s *stubCatalogStore) List(_ context.Context) ([]model.Service, error) {
	return s.services, s.err
}

func (s *stubCatalogStore) Create(_ context.Context, req model.CreateServiceRequest) (model.Service, error) {
	s.created = append(s.created, req)
	return model.Service{ID: 1, Name: req.Name}, s.err
}

func (s *stubCatalogStore) Update(_ context.Context, id int64, req model.UpdateServiceRequest) (model.Service, error) {
	s.updated = append(s.updated, req)
	return model.Service{ID: id}, s.err
}

func (s *stubCatalogStore) Delete(_ context.Context, id int64) (model.Service, error) {
	return model.Service{ID: id}, s.err
}

func (s *stubCatalogStore) Reorder(_ context.Context, orderedIDs []int64) error {
	s.reorderCalls = append(s.reorderCalls, orderedIDs)
	return s.err
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.HTTPStatus)
}

func TestCatalogServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("requires a non-blank name", func(t *testing.T) {
		store := &stubCatalogStore{}
		svc := NewCatalogService(store)

		_, err := svc.Create(context.Background(), model.CreateServiceRequest{Name: "   "})
		requireStatus(t, err, http.StatusBadRequest)
		require.Empty(t, store.created)
	})

	t.Run("trims the name before storing", func(t *testing.T) {
		store := &stubCatalogStore{}
		svc := NewCatalogService(store)

		created, err := svc.Create(context.Background(), model.CreateServiceRequest{Name: "  Dog Walking  "})
		require.NoError(t, err)
		require.Equal(t, "Dog Walking", created.Name)
	})
}

func TestCatalogServiceUpdate(t *testing.T) {
	t.Parallel()

	name := "Grooming"
	empty := "   "

	t.Run("rejects an update with no fields", func(t *testing.T) {
		store := &stubCatalogStore{}
		svc := NewCatalogService(store)

		_, err := svc.Update(context.Background(), 1, model.UpdateServiceRequest{})
		requireStatus(t, err, http.StatusBadRequest)
		require.Empty(t, store.updated)
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		store := &stubCatalogStore{}
		svc := NewCatalogService(store)

		_, err := svc.Update(context.Background(), 1, model.UpdateServiceRequest{Name: &empty})
		requireStatus(t, err, http.StatusBadRequest)
		require.Empty(t, store.updated)
	})

	t.Run("forwards a partial update", func(t *testing.T) {
		store := &stubCatalogStore{}
		svc := NewCatalogService(store)

		_, err := svc.Update(context.Background(), 1, model.UpdateServiceRequest{Name: &name})
		require.NoError(t, err)
		require.Len(t, store.updated, 1)
	})
}

func TestCatalogServiceReorder(t *testing.T) {
	t.Parallel()

	t.Run("empty input succeeds without touching storage", func(t *testing.T) {
		store := &stubCatalogStore{}
		svc := NewCatalogService(store)

		require.NoError(t, svc.Reorder(context.Background(), nil))
		require.NoError(t, svc.Reorder(context.Background(), []int64{}))
		require.Empty(t, store.reorderCalls)
	})

	t.Run("forwards the id sequence unchanged", func(t *testing.T) {
		store := &stubCatalogStore{}
		svc := NewCatalogService(store)

		require.NoError(t, svc.Reorder(context.Background(), []int64{5, 2, 9}))
		require.Equal(t, [][]int64{{5, 2, 9}}, store.reorderCalls)
	})
}
