package service

import (
	"context"
	"errors"

	"pushpull/studio-admin/internal/domain"
	"pushpull/studio-admin/internal/repository"
	"pushpull/studio-admin/internal/view"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrRequestNotFound = errors.New("request not found")
)

// RequestDetail is everything the request detail page shows: the request,
// its customer and the customer's scheduling proposals.
type RequestDetail struct {
	Request            domain.Request             `json:"request"`
	Customer           *domain.User               `json:"customer,omitempty"`
	Suggestions        []domain.Suggestion        `json:"suggestions"`
	AcceptedSuggestion *domain.AcceptedSuggestion `json:"acceptedSuggestion,omitempty"`
	MoreSuggestions    string                     `json:"moreSuggestionsStatus,omitempty"`
}

// RequestService lists and resolves customer requests and manages the
// scheduling proposals hanging off them.
type RequestService interface {
	ListRequestViews(ctx context.Context) ([]view.RequestView, error)
	GetRequestDetail(ctx context.Context, id primitive.ObjectID) (*RequestDetail, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.RequestStatus) error
	AddSuggestion(ctx context.Context, requestID primitive.ObjectID, suggestion domain.Suggestion) (*domain.Suggestion, error)
	SetMoreSuggestionsStatus(ctx context.Context, requestID primitive.ObjectID, status string) error
}

// requestService implements the RequestService interface.
type requestService struct {
	requestRepo    repository.RequestRepository
	userRepo       repository.UserRepository
	suggestionRepo repository.SuggestionRepository
}

// NewRequestService creates a new instance of requestService.
func NewRequestService(
	requestRepo repository.RequestRepository,
	userRepo repository.UserRepository,
	suggestionRepo repository.SuggestionRepository,
) RequestService {
	return &requestService{
		requestRepo:    requestRepo,
		userRepo:       userRepo,
		suggestionRepo: suggestionRepo,
	}
}

// ListRequestViews returns all requests with customer names resolved,
// newest first.
func (s *requestService) ListRequestViews(ctx context.Context) ([]view.RequestView, error) {
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return view.ResolveRequests(requests, users), nil
}

// GetRequestDetail assembles the request detail page. A missing customer
// or missing suggestion data degrades to empty fields, matching the
// not-found policy of the views.
func (s *requestService) GetRequestDetail(ctx context.Context, id primitive.ObjectID) (*RequestDetail, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	detail := &RequestDetail{
		Request:     *request,
		Suggestions: []domain.Suggestion{},
	}

	if customer, err := s.userRepo.GetByID(ctx, request.CustomerID); err == nil {
		customer.PasswordHash = ""
		detail.Customer = customer
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	suggestions, err := s.suggestionRepo.ListByCustomerID(ctx, request.CustomerID)
	if err != nil {
		return nil, err
	}
	detail.Suggestions = suggestions

	if accepted, err := s.suggestionRepo.GetAccepted(ctx, request.CustomerID); err == nil {
		detail.AcceptedSuggestion = accepted
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if status, err := s.suggestionRepo.GetMoreStatus(ctx, request.CustomerID); err == nil {
		detail.MoreSuggestions = status
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	return detail, nil
}

// UpdateStatus moves a request through its lifecycle.
func (s *requestService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.RequestStatus) error {
	if err := s.requestRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRequestNotFound
		}
		return err
	}
	return nil
}

// AddSuggestion records a scheduling proposal for the request's customer.
func (s *requestService) AddSuggestion(ctx context.Context, requestID primitive.ObjectID, suggestion domain.Suggestion) (*domain.Suggestion, error) {
	if suggestion.Message == "" || suggestion.Slot == "" || suggestion.Trainer == "" {
		return nil, ErrMissingRequired
	}

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	suggestion.CustomerID = request.CustomerID
	id, err := s.suggestionRepo.Add(ctx, &suggestion)
	if err != nil {
		return nil, err
	}
	suggestion.ID = id
	return &suggestion, nil
}

// SetMoreSuggestionsStatus updates the customer's "more suggestions"
// marker via the request it surfaced on.
func (s *requestService) SetMoreSuggestionsStatus(ctx context.Context, requestID primitive.ObjectID, status string) error {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRequestNotFound
		}
		return err
	}
	return s.suggestionRepo.SetMoreStatus(ctx, request.CustomerID, status)
}
