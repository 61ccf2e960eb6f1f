package service

import (
	"context"
	"errors"
	"time"

	"pushpull/studio-admin/internal/domain"
	"pushpull/studio-admin/internal/repository"
	"pushpull/studio-admin/internal/view"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrainerCalendar is the month view for one trainer: the trainer header
// plus the padded week grid.
type TrainerCalendar struct {
	Trainer domain.User    `json:"trainer"`
	Year    int            `json:"year"`
	Month   time.Month     `json:"month"`
	Days    []view.DayCell `json:"days"`
}

// CalendarService builds the trainer calendar month view.
type CalendarService interface {
	TrainerMonth(ctx context.Context, trainerID primitive.ObjectID, year int, month time.Month) (*TrainerCalendar, error)
}

// calendarService implements the CalendarService interface.
type calendarService struct {
	userRepo         repository.UserRepository
	packageRepo      repository.PackageRepository
	subscriptionRepo repository.SubscriptionRepository
	location         *time.Location
	now              func() time.Time
}

// NewCalendarService creates a new instance of calendarService. Grid days
// are computed in the given location; nil means server local time.
func NewCalendarService(
	userRepo repository.UserRepository,
	packageRepo repository.PackageRepository,
	subscriptionRepo repository.SubscriptionRepository,
	location *time.Location,
) CalendarService {
	if location == nil {
		location = time.Local
	}
	return &calendarService{
		userRepo:         userRepo,
		packageRepo:      packageRepo,
		subscriptionRepo: subscriptionRepo,
		location:         location,
		now:              time.Now,
	}
}

// TrainerMonth fetches the trainer's packages plus the users and
// subscriptions backing them and aggregates everything into the padded
// calendar grid.
func (s *calendarService) TrainerMonth(ctx context.Context, trainerID primitive.ObjectID, year int, month time.Month) (*TrainerCalendar, error) {
	trainer, err := s.userRepo.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	if !trainer.IsTrainer() {
		return nil, ErrNotATrainer
	}
	trainer.PasswordHash = ""

	pkgs, err := s.packageRepo.ListByTrainerID(ctx, trainerID)
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
	slots := view.SlotSuggestions(users)

	return &TrainerCalendar{
		Trainer: *trainer,
		Year:    year,
		Month:   month,
		Days:    view.MonthGrid(year, month, s.location, views, slots),
	}, nil
}
