package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Plan is a single training plan entry embedded in a Package. Plans have
// no identity of their own and live and die with the owning package.
type Plan struct {
	Title       string `bson:"title" json:"title"`
	Type        string `bson:"type" json:"type"`
	Description string `bson:"description" json:"description"`
	Date        string `bson:"date" json:"date"`
}

// Package is a training package a trainer created for a customer.
// CustomerName is denormalized at creation time; CustomerID, TrainerID and
// SubscriptionID are plain references with no integrity enforcement, so a
// deleted user or subscription leaves a dangling id that view assembly
// degrades to an "Unknown" placeholder.
type Package struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID   primitive.ObjectID `bson:"customerId" json:"customerId"`
	CustomerName string             `bson:"customerName" json:"customerName"`
	Title        string             `bson:"title" json:"title"`
	CustomerGoal string             `bson:"customerGoal" json:"customerGoal"`
	Height       int                `bson:"height" json:"height"`
	Weight       int                `bson:"weight" json:"weight"`
	TrainerID    primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	Plans        []Plan             `bson:"plans" json:"plans"`
	IsFreeTrial  bool               `bson:"isFreeTrial" json:"isFreeTrial"`

	SubscriptionID        *primitive.ObjectID `bson:"subscriptionId,omitempty" json:"subscriptionId,omitempty"`
	SubscriptionStartDate *time.Time          `bson:"subscriptionStartDate,omitempty" json:"subscriptionStartDate,omitempty"`
	SubscriptionEndDate   *time.Time          `bson:"subscriptionEndDate,omitempty" json:"subscriptionEndDate,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ActiveOn reports whether the package's subscription period contains the
// given calendar day, inclusive at both ends. Comparison happens at local
// midnight granularity; packages without a subscription period are never
// active.
func (p *Package) ActiveOn(day time.Time) bool {
	if p.SubscriptionStartDate == nil || p.SubscriptionEndDate == nil {
		return false
	}
	d := DayOf(day)
	start := DayOf(*p.SubscriptionStartDate)
	end := DayOf(*p.SubscriptionEndDate)
	return !d.Before(start) && !d.After(end)
}

// DayOf truncates a time to its local midnight.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
