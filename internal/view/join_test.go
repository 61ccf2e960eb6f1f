package view

import (
	"testing"
	"time"

	"pushpull/studio-admin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestResolvePackages(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	trainerID := primitive.NewObjectID()
	customerID := primitive.NewObjectID()
	subID := primitive.NewObjectID()
	trialStart := now.AddDate(0, 0, -2)

	users := []domain.User{
		{ID: trainerID, DisplayName: "Tom", Role: domain.RoleTrainer, Specialization: "Strength"},
		{ID: customerID, DisplayName: "Alice", Email: "alice@example.com", Role: domain.RoleCustomer,
			FreeTrial: true, FreeTrialDate: &trialStart},
	}
	subs := []domain.Subscription{
		{ID: subID, Name: "Gold", Type: "monthly"},
	}
	pkgs := []domain.Package{
		{TrainerID: trainerID, CustomerID: customerID, SubscriptionID: &subID, IsFreeTrial: true},
	}

	views := ResolvePackages(pkgs, users, subs, now)
	require.Len(t, views, 1)

	v := views[0]
	assert.Equal(t, "Tom", v.TrainerName)
	assert.Equal(t, "Strength", v.TrainerSpecialization)
	assert.Equal(t, "Alice", v.CustomerDisplayName)
	assert.Equal(t, "alice@example.com", v.CustomerEmail)
	assert.Equal(t, "Gold", v.SubscriptionName)
	assert.Equal(t, "monthly", v.SubscriptionType)
	assert.True(t, v.FreeTrialActive)
	assert.Equal(t, 5, v.FreeTrialDaysLeft)
	assert.False(t, v.FreeTrialExpired)
}

func TestResolvePackagesDanglingReferences(t *testing.T) {
	now := time.Now()
	subID := primitive.NewObjectID()

	pkgs := []domain.Package{
		{TrainerID: primitive.NewObjectID(), CustomerID: primitive.NewObjectID(), SubscriptionID: &subID},
	}

	views := ResolvePackages(pkgs, nil, nil, now)
	require.Len(t, views, 1)

	assert.Equal(t, UnknownTrainer, views[0].TrainerName)
	assert.Equal(t, UnknownCustomer, views[0].CustomerDisplayName)
	assert.Equal(t, Unknown, views[0].SubscriptionName)
	assert.False(t, views[0].FreeTrialActive)
}

func TestResolvePackagesTrainerRoleRequired(t *testing.T) {
	// A user referenced as trainer but carrying the customer role must not
	// resolve; the name stays a placeholder.
	impostorID := primitive.NewObjectID()
	users := []domain.User{
		{ID: impostorID, DisplayName: "Carl", Role: domain.RoleCustomer},
	}
	pkgs := []domain.Package{
		{TrainerID: impostorID, CustomerID: primitive.NewObjectID()},
	}

	views := ResolvePackages(pkgs, users, nil, time.Now())
	require.Len(t, views, 1)
	assert.Equal(t, UnknownTrainer, views[0].TrainerName)
}

func TestResolvePackagesPreservesOrder(t *testing.T) {
	pkgs := []domain.Package{
		{Title: "first"},
		{Title: "second"},
		{Title: "third"},
	}

	views := ResolvePackages(pkgs, nil, nil, time.Now())
	require.Len(t, views, 3)
	assert.Equal(t, "first", views[0].Title)
	assert.Equal(t, "second", views[1].Title)
	assert.Equal(t, "third", views[2].Title)
}

func TestResolveSubscriptions(t *testing.T) {
	subID := primitive.NewObjectID()
	otherSubID := primitive.NewObjectID()
	aliceID := primitive.NewObjectID()

	users := []domain.User{
		{ID: aliceID, DisplayName: "Alice", Email: "alice@example.com", Role: domain.RoleCustomer},
	}
	subs := []domain.Subscription{
		{ID: subID, Name: "Gold"},
		{ID: otherSubID, Name: "Silver"},
	}
	pkgs := []domain.Package{
		{CustomerID: aliceID, SubscriptionID: &subID},
	}

	views := ResolveSubscriptions(subs, pkgs, users)
	require.Len(t, views, 2)

	require.Len(t, views[0].Customers, 1)
	assert.Equal(t, "Alice", views[0].Customers[0].DisplayName)
	assert.Equal(t, "alice@example.com", views[0].Customers[0].Email)

	// Unreferenced subscription gets an empty list, not nil.
	assert.NotNil(t, views[1].Customers)
	assert.Empty(t, views[1].Customers)
}

func TestResolveSubscriptionsSkipsNonCustomers(t *testing.T) {
	subID := primitive.NewObjectID()
	trainerID := primitive.NewObjectID()
	ghostID := primitive.NewObjectID()

	users := []domain.User{
		{ID: trainerID, DisplayName: "Tom", Role: domain.RoleTrainer},
	}
	subs := []domain.Subscription{{ID: subID, Name: "Gold"}}
	pkgs := []domain.Package{
		{CustomerID: trainerID, SubscriptionID: &subID},
		{CustomerID: ghostID, SubscriptionID: &subID},
		{CustomerID: ghostID}, // no subscription link at all
	}

	views := ResolveSubscriptions(subs, pkgs, users)
	require.Len(t, views, 1)
	assert.Empty(t, views[0].Customers)
}

func TestResolveRequestsNewestFirst(t *testing.T) {
	customerID := primitive.NewObjectID()
	users := []domain.User{
		{ID: customerID, DisplayName: "Alice", Role: domain.RoleCustomer},
	}

	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	requests := []domain.Request{
		{Title: "oldest", CustomerID: customerID, DateTime: base},
		{Title: "newest", CustomerID: primitive.NewObjectID(), DateTime: base.AddDate(0, 0, 2)},
		{Title: "middle", CustomerID: customerID, DateTime: base.AddDate(0, 0, 1)},
	}

	views := ResolveRequests(requests, users)
	require.Len(t, views, 3)

	assert.Equal(t, "newest", views[0].Title)
	assert.Equal(t, "middle", views[1].Title)
	assert.Equal(t, "oldest", views[2].Title)

	assert.Equal(t, Unknown, views[0].CustomerName)
	assert.Equal(t, "Alice", views[1].CustomerName)
}
