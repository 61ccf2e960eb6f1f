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
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscriptionQuery narrows and orders the subscription list.
type SubscriptionQuery struct {
	SearchTerm string
	Active     *bool
	Sort       view.SortState
}

// SubscriptionService covers subscription CRUD and the joined list the
// dashboard table renders.
type SubscriptionService interface {
	CreateSubscription(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)
	GetSubscriptionView(ctx context.Context, id primitive.ObjectID) (*view.SubscriptionView, error)
	ListSubscriptionViews(ctx context.Context, query SubscriptionQuery) ([]view.SubscriptionView, error)
	UpdateSubscription(ctx context.Context, sub *domain.Subscription) error
	DeleteSubscription(ctx context.Context, id primitive.ObjectID) error
}

// subscriptionService implements the SubscriptionService interface.
type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	packageRepo      repository.PackageRepository
	userRepo         repository.UserRepository
}

// NewSubscriptionService creates a new instance of subscriptionService.
func NewSubscriptionService(
	subscriptionRepo repository.SubscriptionRepository,
	packageRepo repository.PackageRepository,
	userRepo repository.UserRepository,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		packageRepo:      packageRepo,
		userRepo:         userRepo,
	}
}

// CreateSubscription validates and stores a new subscription plan.
func (s *subscriptionService) CreateSubscription(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	if sub.Name == "" || sub.Type == "" {
		return nil, ErrMissingRequired
	}

	id, err := s.subscriptionRepo.Create(ctx, sub)
	if err != nil {
		return nil, err
	}
	sub.ID = id
	return sub, nil
}

// GetSubscriptionView fetches one subscription with its linked customers.
func (s *subscriptionService) GetSubscriptionView(ctx context.Context, id primitive.ObjectID) (*view.SubscriptionView, error) {
	sub, err := s.subscriptionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}

	pkgs, err := s.packageRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := view.ResolveSubscriptions([]domain.Subscription{*sub}, pkgs, users)
	return &views[0], nil
}

// ListSubscriptionViews assembles the joined subscription list, filtered
// and sorted per the query.
func (s *subscriptionService) ListSubscriptionViews(ctx context.Context, query SubscriptionQuery) ([]view.SubscriptionView, error) {
	subs, err := s.subscriptionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	pkgs, err := s.packageRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := view.ResolveSubscriptions(subs, pkgs, users)
	views = view.FilterSubscriptions(views, query.SearchTerm, query.Active)
	if query.Sort.Key != "" {
		view.SortSubscriptions(views, query.Sort)
	}
	return views, nil
}

// UpdateSubscription replaces the mutable fields of a subscription.
func (s *subscriptionService) UpdateSubscription(ctx context.Context, sub *domain.Subscription) error {
	if err := s.subscriptionRepo.Update(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSubscriptionNotFound
		}
		return err
	}
	return nil
}

// DeleteSubscription removes a subscription plan.
func (s *subscriptionService) DeleteSubscription(ctx context.Context, id primitive.ObjectID) error {
	if err := s.subscriptionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSubscriptionNotFound
		}
		return err
	}
	return nil
}
