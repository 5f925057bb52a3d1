package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"pawsome-backend/internal/model"
)

type stubContactStore struct {
	created []model.ContactRequest
	err     error
}

func (s *stubContactStore) Create(_ context.Context, req model.ContactRequest) (model.ContactSubmission, error) {
	s.created = append(s.created, req)
	return model.ContactSubmission{ID: 42, Name: req.Name, Email: req.Email, Message: req.Message}, s.err
}

func (s *stubContactStore) ListRecent(_ context.Context, _ int) ([]model.ContactSubmission, error) {
	return nil, s.err
}

type stubNotifier struct {
	sent []model.ContactSubmission
	ctxs []context.Context
	err  error
}

func (s *stubNotifier) SendContactNotification(ctx context.Context, sub model.ContactSubmission) error {
	s.sent = append(s.sent, sub)
	s.ctxs = append(s.ctxs, ctx)
	return s.err
}

func validContactRequest() model.ContactRequest {
	return model.ContactRequest{
		Name:    "Jordan",
		Email:   "jordan@example.com",
		Message: "Can you walk my dog on Tuesdays?",
	}
}

func TestContactSubmit(t *testing.T) {
	t.Parallel()

	t.Run("persists and notifies", func(t *testing.T) {
		store := &stubContactStore{}
		notifier := &stubNotifier{}
		svc := NewContactService(store, notifier)

		sub, err := svc.Submit(context.Background(), validContactRequest())
		require.NoError(t, err)
		require.Equal(t, int64(42), sub.ID)
		require.Len(t, store.created, 1)
		require.Len(t, notifier.sent, 1)
	})

	t.Run("rejects a missing email before storage", func(t *testing.T) {
		store := &stubContactStore{}
		svc := NewContactService(store, &stubNotifier{})

		req := validContactRequest()
		req.Email = ""

		_, err := svc.Submit(context.Background(), req)
		requireStatus(t, err, http.StatusBadRequest)
		require.Empty(t, store.created)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		store := &stubContactStore{}
		svc := NewContactService(store, &stubNotifier{})

		req := validContactRequest()
		req.Email = "not-an-address"

		_, err := svc.Submit(context.Background(), req)
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("rejects a whitespace-only message", func(t *testing.T) {
		store := &stubContactStore{}
		svc := NewContactService(store, &stubNotifier{})

		req := validContactRequest()
		req.Message = "   "

		_, err := svc.Submit(context.Background(), req)
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("the request context reaches the notifier", func(t *testing.T) {
		store := &stubContactStore{}
		notifier := &stubNotifier{}
		svc := NewContactService(store, notifier)

		type ctxKey struct{}
		ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

		_, err := svc.Submit(ctx, validContactRequest())
		require.NoError(t, err)
		require.Len(t, notifier.ctxs, 1)
		require.Equal(t, "marker", notifier.ctxs[0].Value(ctxKey{}))
	})

	t.Run("a notification failure does not fail the submission", func(t *testing.T) {
		store := &stubContactStore{}
		notifier := &stubNotifier{err: errors.New("provider down")}
		svc := NewContactService(store, notifier)

		sub, err := svc.Submit(context.Background(), validContactRequest())
		require.NoError(t, err)
		require.Equal(t, int64(42), sub.ID)
	})

	t.Run("a nil notifier disables notifications only", func(t *testing.T) {
		store := &stubContactStore{}
		svc := NewContactService(store, nil)

		_, err := svc.Submit(context.Background(), validContactRequest())
		require.NoError(t, err)
		require.Len(t, store.created, 1)
	})
}
