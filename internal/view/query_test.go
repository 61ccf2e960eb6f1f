package view

import (
	"testing"
	"time"

	"pushpull/studio-admin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortStateSelect(t *testing.T) {
	var state SortState

	state.Select(SortByName)
	assert.Equal(t, SortState{Key: SortByName, Descending: false}, state)

	// Re-selecting the same key flips direction.
	state.Select(SortByName)
	assert.Equal(t, SortState{Key: SortByName, Descending: true}, state)

	state.Select(SortByName)
	assert.Equal(t, SortState{Key: SortByName, Descending: false}, state)

	// A new key always resets to ascending, even from descending.
	state.Select(SortByName)
	state.Select(SortByDate)
	assert.Equal(t, SortState{Key: SortByDate, Descending: false}, state)
}

func TestMatchesTerm(t *testing.T) {
	assert.True(t, MatchesTerm("", "anything"))
	assert.True(t, MatchesTerm("", ""))
	assert.True(t, MatchesTerm("ali", "Alice", "Bob"))
	assert.True(t, MatchesTerm("ALICE", "alice@example.com"))
	assert.True(t, MatchesTerm("lic", "Alice"))
	assert.False(t, MatchesTerm("carol", "Alice", "Bob"))
	assert.False(t, MatchesTerm("x", ""))
}

func subsFixture() []SubscriptionView {
	return []SubscriptionView{
		{
			Subscription: domain.Subscription{Name: "Gold", Description: "Full access", Type: "monthly", Active: true},
			Customers:    []LinkedCustomer{{DisplayName: "Alice", Email: "alice@example.com"}},
		},
		{
			Subscription: domain.Subscription{Name: "Silver", Description: "Gym only", Type: "weekly", Active: false},
			Customers:    []LinkedCustomer{},
		},
		{
			Subscription: domain.Subscription{Name: "Bronze", Description: "Off-peak", Type: "monthly", Active: true},
			Customers:    []LinkedCustomer{{DisplayName: "Bob", Email: "bob@example.com"}},
		},
	}
}

func TestFilterSubscriptions(t *testing.T) {
	subs := subsFixture()
	active := true
	inactive := false

	t.Run("empty term keeps everything in order", func(t *testing.T) {
		out := FilterSubscriptions(subs, "", nil)
		require.Len(t, out, 3)
		assert.Equal(t, "Gold", out[0].Name)
		assert.Equal(t, "Silver", out[1].Name)
		assert.Equal(t, "Bronze", out[2].Name)
	})

	t.Run("term matches customer fields", func(t *testing.T) {
		out := FilterSubscriptions(subs, "alice", nil)
		require.Len(t, out, 1)
		assert.Equal(t, "Gold", out[0].Name)
	})

	t.Run("active flag alone", func(t *testing.T) {
		out := FilterSubscriptions(subs, "", &inactive)
		require.Len(t, out, 1)
		assert.Equal(t, "Silver", out[0].Name)
	})

	t.Run("term and flag combine with AND", func(t *testing.T) {
		out := FilterSubscriptions(subs, "monthly", &active)
		require.Len(t, out, 2)

		out = FilterSubscriptions(subs, "monthly", &inactive)
		assert.Empty(t, out)
	})
}

func TestSortSubscriptions(t *testing.T) {
	names := func(subs []SubscriptionView) []string {
		out := make([]string, len(subs))
		for i, s := range subs {
			out[i] = s.Name
		}
		return out
	}

	t.Run("by name ascending ignores case", func(t *testing.T) {
		subs := []SubscriptionView{
			{Subscription: domain.Subscription{Name: "silver"}},
			{Subscription: domain.Subscription{Name: "Bronze"}},
			{Subscription: domain.Subscription{Name: "gold"}},
		}
		SortSubscriptions(subs, SortState{Key: SortByName})
		assert.Equal(t, []string{"Bronze", "gold", "silver"}, names(subs))
	})

	t.Run("by name descending", func(t *testing.T) {
		subs := subsFixture()
		SortSubscriptions(subs, SortState{Key: SortByName, Descending: true})
		assert.Equal(t, []string{"Silver", "Gold", "Bronze"}, names(subs))
	})

	t.Run("by date uses creation timestamps", func(t *testing.T) {
		base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		subs := []SubscriptionView{
			{Subscription: domain.Subscription{Name: "second", CreatedAt: base.AddDate(0, 1, 0)}},
			{Subscription: domain.Subscription{Name: "third", CreatedAt: base.AddDate(0, 2, 0)}},
			{Subscription: domain.Subscription{Name: "first", CreatedAt: base}},
		}
		SortSubscriptions(subs, SortState{Key: SortByDate})
		assert.Equal(t, []string{"first", "second", "third"}, names(subs))

		SortSubscriptions(subs, SortState{Key: SortByDate, Descending: true})
		assert.Equal(t, []string{"third", "second", "first"}, names(subs))
	})
}

func TestFilterPackages(t *testing.T) {
	pkgs := []PackageView{
		{
			Package:             domain.Package{CustomerGoal: "weight loss"},
			CustomerDisplayName: "Alice",
			CustomerEmail:       "alice@example.com",
			SubscriptionName:    "Gold",
		},
		{
			Package:             domain.Package{CustomerGoal: "muscle gain"},
			CustomerDisplayName: "Bob",
			CustomerMobile:      "555-0101",
			SubscriptionType:    "weekly",
		},
	}

	assert.Len(t, FilterPackages(pkgs, ""), 2)

	out := FilterPackages(pkgs, "gold")
	require.Len(t, out, 1)
	assert.Equal(t, "Alice", out[0].CustomerDisplayName)

	out = FilterPackages(pkgs, "555")
	require.Len(t, out, 1)
	assert.Equal(t, "Bob", out[0].CustomerDisplayName)

	out = FilterPackages(pkgs, "muscle")
	require.Len(t, out, 1)
	assert.Equal(t, "Bob", out[0].CustomerDisplayName)

	assert.Empty(t, FilterPackages(pkgs, "nosuch"))
}
