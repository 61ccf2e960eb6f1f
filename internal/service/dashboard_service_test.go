package service

import (
	"context"
	"testing"

	"pushpull/studio-admin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDashboardStats(t *testing.T) {
	userRepo := newMockUserRepo(
		&domain.User{Email: "tom@studio.test", Role: domain.RoleTrainer},
		&domain.User{Email: "alice@example.com", Role: domain.RoleCustomer},
		&domain.User{Email: "bob@example.com", Role: domain.RoleCustomer},
	)
	packageRepo := &mockPackageRepo{pkgs: []domain.Package{
		{ID: primitive.NewObjectID()},
	}}
	requestRepo := &mockRequestRepo{requests: []domain.Request{
		{ID: primitive.NewObjectID()},
		{ID: primitive.NewObjectID()},
	}}

	svc := NewDashboardService(userRepo, packageRepo, requestRepo)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalPackages)
	assert.Equal(t, 2, stats.TotalCustomers)
	assert.Equal(t, 1, stats.TotalTrainers)
	assert.Equal(t, 2, stats.TotalRequests)
}
