package service

import (
	"context"
	"time"

	"pushpull/studio-admin/internal/domain"
	"pushpull/studio-admin/internal/logger"
	"pushpull/studio-admin/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// NotificationService appends structured entries to per-recipient
// notification lists and reads them back. Dispatch is fire-and-forget
// from the caller's perspective: a failed append is logged, never
// propagated into the operation that triggered it.
type NotificationService interface {
	NotifyCustomer(ctx context.Context, customerID, trainerID primitive.ObjectID, kind, title, content string)
	NotifyTrainer(ctx context.Context, trainerID, customerID primitive.ObjectID, kind, message string, packageID *primitive.ObjectID)
	ListForCustomer(ctx context.Context, customerID primitive.ObjectID) ([]domain.Notification, error)
	ListForTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Notification, error)
	MarkRead(ctx context.Context, audience domain.Role, recipientID primitive.ObjectID, notifID string) error
}

// notificationService implements the NotificationService interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new instance of notificationService.
func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

// NotifyCustomer appends an entry to the customer's notification list.
func (s *notificationService) NotifyCustomer(ctx context.Context, customerID, trainerID primitive.ObjectID, kind, title, content string) {
	notification := &domain.Notification{
		NotifID:     uuid.NewString(),
		RecipientID: customerID,
		Message:     content,
		Read:        false,
		Timestamp:   time.Now().UTC(),
		TrainerID:   trainerID,
		Type:        kind,
		Details: domain.NotificationDetails{
			Title:   title,
			Content: content,
		},
	}

	if err := s.notificationRepo.Append(ctx, domain.RoleCustomer, notification); err != nil {
		logger.Log.Error("customer notification dispatch failed",
			zap.String("customerId", customerID.Hex()),
			zap.String("type", kind),
			zap.Error(err),
		)
	}
}

// NotifyTrainer appends an entry to the trainer's notification list.
func (s *notificationService) NotifyTrainer(ctx context.Context, trainerID, customerID primitive.ObjectID, kind, message string, packageID *primitive.ObjectID) {
	notification := &domain.Notification{
		NotifID:     uuid.NewString(),
		RecipientID: trainerID,
		Message:     message,
		Read:        false,
		Timestamp:   time.Now().UTC(),
		TrainerID:   trainerID,
		CustomerID:  &customerID,
		Type:        kind,
		Details: domain.NotificationDetails{
			Title:   kind,
			Content: message,
		},
		PackageID: packageID,
	}

	if err := s.notificationRepo.Append(ctx, domain.RoleTrainer, notification); err != nil {
		logger.Log.Error("trainer notification dispatch failed",
			zap.String("trainerId", trainerID.Hex()),
			zap.String("type", kind),
			zap.Error(err),
		)
	}
}

func (s *notificationService) ListForCustomer(ctx context.Context, customerID primitive.ObjectID) ([]domain.Notification, error) {
	return s.notificationRepo.ListByRecipient(ctx, domain.RoleCustomer, customerID)
}

func (s *notificationService) ListForTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Notification, error) {
	return s.notificationRepo.ListByRecipient(ctx, domain.RoleTrainer, trainerID)
}

func (s *notificationService) MarkRead(ctx context.Context, audience domain.Role, recipientID primitive.ObjectID, notifID string) error {
	return s.notificationRepo.MarkRead(ctx, audience, recipientID, notifID)
}
