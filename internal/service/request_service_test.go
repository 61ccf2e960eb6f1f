package service

import (
	"context"
	"testing"
	"time"

	"pushpull/studio-admin/internal/domain"
	"pushpull/studio-admin/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListRequestViews(t *testing.T) {
	customer := &domain.User{DisplayName: "Alice", Email: "alice@example.com", Role: domain.RoleCustomer}
	userRepo := newMockUserRepo(customer)
	requestRepo := &mockRequestRepo{}
	svc := NewRequestService(requestRepo, userRepo, newMockSuggestionRepo())

	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"oldest", "middle", "newest"} {
		_, err := requestRepo.Create(context.Background(), &domain.Request{
			Title:      title,
			Type:       "scheduling",
			CustomerID: customer.ID,
			DateTime:   base.AddDate(0, 0, i),
		})
		require.NoError(t, err)
	}

	views, err := svc.ListRequestViews(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, "newest", views[0].Title)
	assert.Equal(t, "oldest", views[2].Title)
	assert.Equal(t, "Alice", views[0].CustomerName)
}

func TestGetRequestDetail(t *testing.T) {
	customer := &domain.User{DisplayName: "Alice", Email: "alice@example.com", Role: domain.RoleCustomer, PasswordHash: "hash"}
	userRepo := newMockUserRepo(customer)
	requestRepo := &mockRequestRepo{}
	suggestionRepo := newMockSuggestionRepo()
	svc := NewRequestService(requestRepo, userRepo, suggestionRepo)

	id, err := requestRepo.Create(context.Background(), &domain.Request{
		Title:      "Morning slots?",
		Type:       "scheduling",
		CustomerID: customer.ID,
		DateTime:   time.Now(),
	})
	require.NoError(t, err)

	t.Run("bare request", func(t *testing.T) {
		detail, err := svc.GetRequestDetail(context.Background(), id)
		require.NoError(t, err)

		assert.Equal(t, "Morning slots?", detail.Request.Title)
		require.NotNil(t, detail.Customer)
		assert.Equal(t, "Alice", detail.Customer.DisplayName)
		assert.Empty(t, detail.Customer.PasswordHash)

		// Missing suggestion data degrades to empty fields.
		assert.Empty(t, detail.Suggestions)
		assert.Nil(t, detail.AcceptedSuggestion)
		assert.Empty(t, detail.MoreSuggestions)
	})

	t.Run("with suggestion history", func(t *testing.T) {
		_, err := svc.AddSuggestion(context.Background(), id, domain.Suggestion{
			Message: "How about Tuesday?",
			Slot:    "morning",
			Trainer: "Tom",
		})
		require.NoError(t, err)

		require.NoError(t, suggestionRepo.SetAccepted(context.Background(), &domain.AcceptedSuggestion{
			CustomerID: customer.ID,
			Slot:       "morning",
		}))
		require.NoError(t, svc.SetMoreSuggestionsStatus(context.Background(), id, domain.MoreSuggestionsRequested))

		detail, err := svc.GetRequestDetail(context.Background(), id)
		require.NoError(t, err)

		require.Len(t, detail.Suggestions, 1)
		assert.Equal(t, customer.ID, detail.Suggestions[0].CustomerID)
		require.NotNil(t, detail.AcceptedSuggestion)
		assert.Equal(t, domain.MoreSuggestionsRequested, detail.MoreSuggestions)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := svc.GetRequestDetail(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(t, err, ErrRequestNotFound)
	})
}

func TestUpdateRequestStatus(t *testing.T) {
	requestRepo := &mockRequestRepo{}
	svc := NewRequestService(requestRepo, newMockUserRepo(), newMockSuggestionRepo())

	id, err := requestRepo.Create(context.Background(), &domain.Request{
		Title:      "Morning slots?",
		CustomerID: primitive.NewObjectID(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), id, domain.RequestAccepted))
	assert.Equal(t, domain.RequestAccepted, requestRepo.requests[0].Status)

	err = svc.UpdateStatus(context.Background(), primitive.NewObjectID(), domain.RequestAccepted)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestAddSuggestionValidation(t *testing.T) {
	requestRepo := &mockRequestRepo{}
	svc := NewRequestService(requestRepo, newMockUserRepo(), newMockSuggestionRepo())

	_, err := svc.AddSuggestion(context.Background(), primitive.NewObjectID(), domain.Suggestion{})
	assert.ErrorIs(t, err, ErrMissingRequired)

	_, err = svc.AddSuggestion(context.Background(), primitive.NewObjectID(), domain.Suggestion{
		Message: "How about Tuesday?",
		Slot:    "morning",
		Trainer: "Tom",
	})
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestListRequestViewsUnknownCustomer(t *testing.T) {
	requestRepo := &mockRequestRepo{}
	svc := NewRequestService(requestRepo, newMockUserRepo(), newMockSuggestionRepo())

	_, err := requestRepo.Create(context.Background(), &domain.Request{
		Title:      "orphaned",
		CustomerID: primitive.NewObjectID(),
	})
	require.NoError(t, err)

	views, err := svc.ListRequestViews(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, view.Unknown, views[0].CustomerName)
}
