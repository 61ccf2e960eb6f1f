// Package view assembles read-only display structures from independently
// fetched collections: cross-collection joins, the trainer calendar grid
// and list filtering/sorting. Everything here is a pure function of its
// inputs; missing references degrade to placeholder values instead of
// failing the view.
package view

import (
	"sort"
	"time"

	"pushpull/studio-admin/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Placeholder names used when a referenced entity cannot be resolved.
const (
	UnknownTrainer  = "Unknown Trainer"
	UnknownCustomer = "Unknown Customer"
	Unknown         = "Unknown"
)

// UserIndex builds an id → user lookup map.
func UserIndex(users []domain.User) map[primitive.ObjectID]domain.User {
	index := make(map[primitive.ObjectID]domain.User, len(users))
	for _, u := range users {
		index[u.ID] = u
	}
	return index
}

// SubscriptionIndex builds an id → subscription lookup map.
func SubscriptionIndex(subs []domain.Subscription) map[primitive.ObjectID]domain.Subscription {
	index := make(map[primitive.ObjectID]domain.Subscription, len(subs))
	for _, s := range subs {
		index[s.ID] = s
	}
	return index
}

// PackageView is a package enriched with the names behind its trainer,
// customer and subscription references for display.
type PackageView struct {
	domain.Package

	TrainerName           string `json:"trainerName"`
	TrainerSpecialization string `json:"trainerSpecialization,omitempty"`
	CustomerDisplayName   string `json:"customerDisplayName"`
	CustomerEmail         string `json:"customerEmail,omitempty"`
	CustomerMobile        string `json:"customerMobile,omitempty"`
	SubscriptionName      string `json:"subscriptionName,omitempty"`
	SubscriptionType      string `json:"subscriptionType,omitempty"`

	// Free-trial state derived from the customer record at assembly time.
	FreeTrialActive   bool `json:"freeTrialActive"`
	FreeTrialDaysLeft int  `json:"freeTrialDaysLeft"`
	FreeTrialExpired  bool `json:"freeTrialExpired"`
}

// ResolvePackages joins packages against users and subscriptions into
// display records. Output order follows the input package order; dangling
// references never fail, they resolve to the Unknown placeholders.
func ResolvePackages(pkgs []domain.Package, users []domain.User, subs []domain.Subscription, now time.Time) []PackageView {
	userIdx := UserIndex(users)
	subIdx := SubscriptionIndex(subs)

	views := make([]PackageView, 0, len(pkgs))
	for _, pkg := range pkgs {
		v := PackageView{
			Package:             pkg,
			TrainerName:         UnknownTrainer,
			CustomerDisplayName: UnknownCustomer,
		}

		if trainer, ok := userIdx[pkg.TrainerID]; ok && trainer.IsTrainer() {
			v.TrainerName = trainer.DisplayName
			v.TrainerSpecialization = trainer.Specialization
		}

		if customer, ok := userIdx[pkg.CustomerID]; ok {
			v.CustomerDisplayName = customer.DisplayName
			v.CustomerEmail = customer.Email
			v.CustomerMobile = customer.Mobile

			trial := pkg.IsFreeTrial || customer.FreeTrial
			if trial && customer.FreeTrialDate != nil {
				v.FreeTrialActive = true
				v.FreeTrialDaysLeft = domain.RemainingFreeTrialDays(*customer.FreeTrialDate, now)
				v.FreeTrialExpired = v.FreeTrialDaysLeft == 0
			}
		}

		if pkg.SubscriptionID != nil {
			if sub, ok := subIdx[*pkg.SubscriptionID]; ok {
				v.SubscriptionName = sub.Name
				v.SubscriptionType = sub.Type
			} else {
				v.SubscriptionName = Unknown
			}
		}

		views = append(views, v)
	}
	return views
}

// LinkedCustomer is a customer reachable from a subscription through a
// package.
type LinkedCustomer struct {
	ID          primitive.ObjectID `json:"id"`
	DisplayName string             `json:"displayName"`
	Email       string             `json:"email"`
}

// SubscriptionView is a subscription enriched with the customers whose
// packages reference it.
type SubscriptionView struct {
	domain.Subscription

	Customers []LinkedCustomer `json:"customers"`
}

// ResolveSubscriptions attaches linked customers to each subscription. A
// customer is linked when a package carries both a customer id resolving
// to a customer-role user and this subscription's id. Output order follows
// the input subscription order.
func ResolveSubscriptions(subs []domain.Subscription, pkgs []domain.Package, users []domain.User) []SubscriptionView {
	userIdx := UserIndex(users)

	linked := make(map[primitive.ObjectID][]LinkedCustomer)
	for _, pkg := range pkgs {
		if pkg.SubscriptionID == nil {
			continue
		}
		user, ok := userIdx[pkg.CustomerID]
		if !ok || user.IsTrainer() {
			continue
		}
		linked[*pkg.SubscriptionID] = append(linked[*pkg.SubscriptionID], LinkedCustomer{
			ID:          user.ID,
			DisplayName: user.DisplayName,
			Email:       user.Email,
		})
	}

	views := make([]SubscriptionView, 0, len(subs))
	for _, sub := range subs {
		customers := linked[sub.ID]
		if customers == nil {
			customers = []LinkedCustomer{}
		}
		views = append(views, SubscriptionView{Subscription: sub, Customers: customers})
	}
	return views
}

// RequestView is a request with its customer's name resolved.
type RequestView struct {
	domain.Request

	CustomerName string `json:"customerName"`
}

// ResolveRequests joins requests against users and sorts the result newest
// first by datetime.
func ResolveRequests(requests []domain.Request, users []domain.User) []RequestView {
	userIdx := UserIndex(users)

	views := make([]RequestView, 0, len(requests))
	for _, req := range requests {
		name := Unknown
		if customer, ok := userIdx[req.CustomerID]; ok {
			name = customer.DisplayName
		}
		views = append(views, RequestView{Request: req, CustomerName: name})
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].DateTime.After(views[j].DateTime)
	})
	return views
}
