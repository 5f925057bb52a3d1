package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pawsome-backend/internal/model"
)

func TestRenderContactNotification(t *testing.T) {
	t.Parallel()

	t.Run("includes all provided fields", func(t *testing.T) {
		body, err := renderContactNotification(model.ContactSubmission{
			Name:          "Jordan",
			Email:         "jordan@example.com",
			Phone:         "555-0100",
			Service:       "Dog Walking",
			PreferredDate: "next Tuesday",
			Message:       "Twice a week please",
			CreatedAt:     time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		require.Contains(t, body, "Jordan")
		require.Contains(t, body, "jordan@example.com")
		require.Contains(t, body, "555-0100")
		require.Contains(t, body, "Dog Walking")
		require.Contains(t, body, "next Tuesday")
		require.Contains(t, body, "Twice a week please")
	})

	t.Run("omits empty optional rows", func(t *testing.T) {
		body, err := renderContactNotification(model.ContactSubmission{
			Name:    "Jordan",
			Email:   "jordan@example.com",
			Message: "Hello",
		})
		require.NoError(t, err)

		require.NotContains(t, body, "Phone")
		require.NotContains(t, body, "Preferred date")
	})

	t.Run("escapes HTML in user content", func(t *testing.T) {
		body, err := renderContactNotification(model.ContactSubmission{
			Name:    "<script>alert(1)</script>",
			Email:   "jordan@example.com",
			Message: "Hello",
		})
		require.NoError(t, err)

		require.NotContains(t, body, "<script>")
	})
}
