package service

import (
	"context"
	"errors"
	"time"

	"pushpull/studio-admin/internal/domain"
	"pushpull/studio-admin/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrNotATrainer     = errors.New("user found but is not a trainer")
	ErrNotACustomer    = errors.New("user found but is not a customer")
	ErrMissingRequired = errors.New("required fields are missing")
)

// TrainerInput carries the fields of a trainer create/update form.
type TrainerInput struct {
	DisplayName    string
	Email          string
	Mobile         string
	Specialization string
	Password       string // required on create, ignored on update
}

// UserService covers trainer CRUD and customer listing for the dashboard.
type UserService interface {
	CreateTrainer(ctx context.Context, input TrainerInput) (*domain.User, error)
	UpdateTrainer(ctx context.Context, id primitive.ObjectID, input TrainerInput) (*domain.User, error)
	DeleteTrainer(ctx context.Context, id primitive.ObjectID) error
	GetUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	ListTrainers(ctx context.Context) ([]domain.User, error)
	ListCustomers(ctx context.Context) ([]domain.User, error)
}

// userService implements the UserService interface.
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// CreateTrainer registers a new trainer account for the studio.
func (s *userService) CreateTrainer(ctx context.Context, input TrainerInput) (*domain.User, error) {
	if input.DisplayName == "" || input.Email == "" || input.Specialization == "" || input.Password == "" {
		return nil, ErrMissingRequired
	}

	if _, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	trainer := &domain.User{
		DisplayName:    input.DisplayName,
		Email:          input.Email,
		Mobile:         input.Mobile,
		Specialization: input.Specialization,
		PasswordHash:   string(hashed),
		Role:           domain.RoleTrainer,
	}

	id, err := s.userRepo.Create(ctx, trainer)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	trainer.ID = id
	trainer.PasswordHash = ""
	return trainer, nil
}

// UpdateTrainer applies a partial merge of the editable trainer fields.
func (s *userService) UpdateTrainer(ctx context.Context, id primitive.ObjectID, input TrainerInput) (*domain.User, error) {
	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !existing.IsTrainer() {
		return nil, ErrNotATrainer
	}

	fields := map[string]any{}
	if input.DisplayName != "" {
		fields["displayName"] = input.DisplayName
	}
	if input.Email != "" {
		fields["email"] = input.Email
	}
	if input.Mobile != "" {
		fields["mobile"] = input.Mobile
	}
	if input.Specialization != "" {
		fields["specialization"] = input.Specialization
	}

	if err := s.userRepo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	updated, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated.PasswordHash = ""
	return updated, nil
}

// DeleteTrainer removes a trainer. Packages created by the trainer keep
// their dangling trainerId; views degrade it to "Unknown Trainer".
func (s *userService) DeleteTrainer(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !existing.IsTrainer() {
		return ErrNotATrainer
	}
	return s.userRepo.Delete(ctx, id)
}

// GetUser fetches a single user of either role.
func (s *userService) GetUser(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// ListTrainers retrieves all trainer accounts.
func (s *userService) ListTrainers(ctx context.Context) ([]domain.User, error) {
	trainers, err := s.userRepo.ListByRole(ctx, domain.RoleTrainer)
	if err != nil {
		return nil, err
	}
	for i := range trainers {
		trainers[i].PasswordHash = ""
	}
	return trainers, nil
}

// CustomerSummary is a customer row with the derived free-trial state.
type CustomerSummary struct {
	domain.User

	FreeTrialDaysLeft int  `json:"freeTrialDaysLeft"`
	FreeTrialExpired  bool `json:"freeTrialExpired"`
}

// ListCustomers retrieves all customer accounts.
func (s *userService) ListCustomers(ctx context.Context) ([]domain.User, error) {
	customers, err := s.userRepo.ListByRole(ctx, domain.RoleCustomer)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		customers[i].PasswordHash = ""
	}
	return customers, nil
}

// SummarizeCustomer derives free-trial state for a customer row at now.
func SummarizeCustomer(customer domain.User, now time.Time) CustomerSummary {
	summary := CustomerSummary{User: customer}
	if customer.FreeTrial && customer.FreeTrialDate != nil {
		summary.FreeTrialDaysLeft = domain.RemainingFreeTrialDays(*customer.FreeTrialDate, now)
		summary.FreeTrialExpired = summary.FreeTrialDaysLeft == 0
	}
	return summary
}
