package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pushpull/studio-admin/internal/domain"
	"pushpull/studio-admin/internal/repository"
	"pushpull/studio-admin/internal/view"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrPackageNotFound     = errors.New("package not found")
	ErrTrainerNotFound     = errors.New("trainer user not found")
	ErrCustomerNotFound    = errors.New("customer user not found")
	ErrSubscriptionInvalid = errors.New("referenced subscription not found")
)

// Welcome messages seeded into the trainer/customer chat when a package
// is created.
const (
	welcomeMessage      = "Hello! Welcome to Push and Pull Fitness App."
	welcomeTrialMessage = "Hello! Welcome to your free 1-week trial at Push and Pull Fitness App."
)

// PackageInput carries the fields of the package creation form.
type PackageInput struct {
	CustomerID            primitive.ObjectID
	TrainerID             primitive.ObjectID
	Title                 string
	CustomerGoal          string
	Height                int
	Weight                int
	Plans                 []domain.Plan
	IsFreeTrial           bool
	SubscriptionID        *primitive.ObjectID
	SubscriptionStartDate *time.Time
	SubscriptionEndDate   *time.Time
}

// PackageService creates training packages and assembles the denormalized
// package list.
type PackageService interface {
	CreatePackage(ctx context.Context, input PackageInput) (*domain.Package, error)
	ListPackageViews(ctx context.Context, searchTerm string) ([]view.PackageView, error)
	GetPackage(ctx context.Context, id primitive.ObjectID) (*domain.Package, error)
	UpdatePackage(ctx context.Context, pkg *domain.Package) error
	DeletePackage(ctx context.Context, id primitive.ObjectID) error
}

// packageService implements the PackageService interface.
type packageService struct {
	packageRepo      repository.PackageRepository
	userRepo         repository.UserRepository
	subscriptionRepo repository.SubscriptionRepository
	chatRepo         repository.ChatRepository
	notifications    NotificationService
	now              func() time.Time
}

// NewPackageService creates a new instance of packageService.
func NewPackageService(
	packageRepo repository.PackageRepository,
	userRepo repository.UserRepository,
	subscriptionRepo repository.SubscriptionRepository,
	chatRepo repository.ChatRepository,
	notifications NotificationService,
) PackageService {
	return &packageService{
		packageRepo:      packageRepo,
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		chatRepo:         chatRepo,
		notifications:    notifications,
		now:              time.Now,
	}
}

// CreatePackage validates the form, stores the package and performs the
// creation side effects: marking the customer's free trial, notifying the
// customer and seeding the first chat message. Side-effect failures are
// logged by their owners and never roll the package back.
func (s *packageService) CreatePackage(ctx context.Context, input PackageInput) (*domain.Package, error) {
	if input.Title == "" || input.CustomerGoal == "" || input.Height == 0 || input.Weight == 0 {
		return nil, ErrMissingRequired
	}

	trainer, err := s.userRepo.GetByID(ctx, input.TrainerID)
	if err != nil || !trainer.IsTrainer() {
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, ErrTrainerNotFound
	}

	customer, err := s.userRepo.GetByID(ctx, input.CustomerID)
	if err != nil || !customer.IsCustomer() {
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, ErrCustomerNotFound
	}

	var sub *domain.Subscription
	if input.SubscriptionID != nil {
		sub, err = s.subscriptionRepo.GetByID(ctx, *input.SubscriptionID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrSubscriptionInvalid
			}
			return nil, err
		}
	}

	pkg := &domain.Package{
		CustomerID:            input.CustomerID,
		CustomerName:          customer.DisplayName,
		Title:                 input.Title,
		CustomerGoal:          input.CustomerGoal,
		Height:                input.Height,
		Weight:                input.Weight,
		TrainerID:             input.TrainerID,
		Plans:                 input.Plans,
		IsFreeTrial:           input.IsFreeTrial,
		SubscriptionID:        input.SubscriptionID,
		SubscriptionStartDate: input.SubscriptionStartDate,
		SubscriptionEndDate:   input.SubscriptionEndDate,
	}

	id, err := s.packageRepo.Create(ctx, pkg)
	if err != nil {
		return nil, err
	}
	pkg.ID = id

	if input.IsFreeTrial {
		if err := s.userRepo.MarkFreeTrial(ctx, customer.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	title := "New Package Created"
	content := fmt.Sprintf("Package %q has been created for you.", pkg.Title)
	welcome := welcomeMessage
	if input.IsFreeTrial {
		title = "New Free Trial Package Created"
		content = fmt.Sprintf("Free Trial Package %q has been created for you. Valid for 1 week from today.", pkg.Title)
		welcome = welcomeTrialMessage
	}

	s.notifications.NotifyCustomer(ctx, customer.ID, trainer.ID, domain.NotificationPackageCreated, title, content)

	if sub != nil {
		s.notifications.NotifyCustomer(ctx, customer.ID, trainer.ID, domain.NotificationSubscriptionCreated,
			"New Subscription Added",
			fmt.Sprintf("You have been subscribed to %q.", sub.Name))
	}

	// Seed the conversation so the customer's chat is never empty.
	_, _ = s.chatRepo.Append(ctx, &domain.ChatMessage{
		TrainerID:  trainer.ID,
		CustomerID: customer.ID,
		SenderID:   trainer.ID,
		Text:       welcome,
		Timestamp:  s.now().UTC(),
	})

	return pkg, nil
}

// ListPackageViews assembles the denormalized package list, optionally
// narrowed by a free-text search term.
func (s *packageService) ListPackageViews(ctx context.Context, searchTerm string) ([]view.PackageView, error) {
	pkgs, err := s.packageRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := s.subscriptionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := view.ResolvePackages(pkgs, users, subs, s.now())
	return view.FilterPackages(views, searchTerm), nil
}

// GetPackage fetches a single package.
func (s *packageService) GetPackage(ctx context.Context, id primitive.ObjectID) (*domain.Package, error) {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

// UpdatePackage replaces the mutable fields of a package.
func (s *packageService) UpdatePackage(ctx context.Context, pkg *domain.Package) error {
	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPackageNotFound
		}
		return err
	}
	return nil
}

// DeletePackage removes a package.
func (s *packageService) DeletePackage(ctx context.Context, id primitive.ObjectID) error {
	if err := s.packageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPackageNotFound
		}
		return err
	}
	return nil
}
