package service

import (
	"context"
	"testing"

	"pushpull/studio-admin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNotifyCustomer(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewNotificationService(repo)

	customerID := primitive.NewObjectID()
	trainerID := primitive.NewObjectID()

	svc.NotifyCustomer(context.Background(), customerID, trainerID, domain.NotificationPackageCreated, "New Package Created", "Package \"x\" has been created for you.")

	require.Len(t, repo.appended, 1)
	entry := repo.appended[0]
	assert.Equal(t, domain.RoleCustomer, entry.Audience)
	assert.Equal(t, customerID, entry.Notification.RecipientID)
	assert.Equal(t, trainerID, entry.Notification.TrainerID)
	assert.NotEmpty(t, entry.Notification.NotifID)
	assert.False(t, entry.Notification.Read)
	assert.False(t, entry.Notification.Timestamp.IsZero())
	assert.Equal(t, "New Package Created", entry.Notification.Details.Title)

	// Each dispatch mints a fresh stable id.
	svc.NotifyCustomer(context.Background(), customerID, trainerID, domain.NotificationProgressUpdate, "Progress", "msg")
	require.Len(t, repo.appended, 2)
	assert.NotEqual(t, repo.appended[0].Notification.NotifID, repo.appended[1].Notification.NotifID)
}

func TestNotifyTrainer(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewNotificationService(repo)

	customerID := primitive.NewObjectID()
	trainerID := primitive.NewObjectID()
	packageID := primitive.NewObjectID()

	svc.NotifyTrainer(context.Background(), trainerID, customerID, domain.NotificationProgressUpdate, "Alice logged a workout.", &packageID)

	require.Len(t, repo.appended, 1)
	entry := repo.appended[0]
	assert.Equal(t, domain.RoleTrainer, entry.Audience)
	assert.Equal(t, trainerID, entry.Notification.RecipientID)
	require.NotNil(t, entry.Notification.CustomerID)
	assert.Equal(t, customerID, *entry.Notification.CustomerID)
	require.NotNil(t, entry.Notification.PackageID)
	assert.Equal(t, packageID, *entry.Notification.PackageID)
}

func TestMarkRead(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewNotificationService(repo)

	customerID := primitive.NewObjectID()
	svc.NotifyCustomer(context.Background(), customerID, primitive.NewObjectID(), domain.NotificationPackageCreated, "t", "c")
	require.Len(t, repo.appended, 1)

	notifID := repo.appended[0].Notification.NotifID
	require.NoError(t, svc.MarkRead(context.Background(), domain.RoleCustomer, customerID, notifID))

	notifications, err := svc.ListForCustomer(context.Background(), customerID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.True(t, notifications[0].Read)
}
