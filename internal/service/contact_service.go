package service

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"pawsome-backend/internal/model"
	"pawsome-backend/pkg/apierror"
)

type contactStore interface {
	Create(ctx context.Context, req model.ContactRequest) (model.ContactSubmission, error)
	ListRecent(ctx context.Context, limit int) ([]model.ContactSubmission, error)
}

// ContactNotifier is the outbound email boundary; nil disables
// notifications without disabling submissions.
type ContactNotifier interface {
	SendContactNotification(ctx context.Context, sub model.ContactSubmission) error
}

type ContactService struct {
	store    contactStore
	notifier ContactNotifier
	validate *validator.Validate
}

func NewContactService(store contactStore, notifier ContactNotifier) *ContactService {
	return &ContactService{
		store:    store,
		notifier: notifier,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Submit validates, persists, then notifies. The notification is a
// single attempt: a provider failure is logged and the stored submission
// is still reported as accepted, since losing the record over a mail
// blip would be worse than a missed email.
func (s *ContactService) Submit(ctx context.Context, req model.ContactRequest) (model.ContactSubmission, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if err := s.validate.Struct(req); err != nil {
		return model.ContactSubmission{}, apierror.New("BAD_REQUEST",
			"name, a valid email, and a message are required", http.StatusBadRequest)
	}

	sub, err := s.store.Create(ctx, req)
	if err != nil {
		return model.ContactSubmission{}, err
	}

	if s.notifier != nil {
		if err := s.notifier.SendContactNotification(ctx, sub); err != nil {
			slog.Error("contact notification email failed", "submission_id", sub.ID, "error", err)
		}
	}

	return sub, nil
}

func (s *ContactService) ListRecent(ctx context.Context, limit int) ([]model.ContactSubmission, error) {
	return s.store.ListRecent(ctx, limit)
}
