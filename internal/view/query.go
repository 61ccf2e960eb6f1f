package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator used for text sort keys. Case differences are ignored so the
// ordering matches what the tables display.
var textCollator = collate.New(language.English, collate.IgnoreCase)

// SortKey selects which column a list is ordered by.
type SortKey string

const (
	SortByName SortKey = "name"
	SortByType SortKey = "type"
	SortByDate SortKey = "date"
)

// SortState holds the current sort column and direction.
type SortState struct {
	Key        SortKey `json:"key"`
	Descending bool    `json:"descending"`
}

// Select applies a column click: re-selecting the current key flips the
// direction, selecting a new key always resets to ascending.
func (s *SortState) Select(key SortKey) {
	if s.Key == key {
		s.Descending = !s.Descending
		return
	}
	s.Key = key
	s.Descending = false
}

// MatchesTerm reports whether any of the fields contains the term,
// case-insensitively. An empty term matches everything; absent fields
// should be passed as empty strings and simply never match.
func MatchesTerm(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// FilterSubscriptions narrows subscription views by a free-text term over
// name, description, type and linked customer name/email, plus an
// optional active flag. Filters combine with AND; order is preserved.
func FilterSubscriptions(subs []SubscriptionView, term string, active *bool) []SubscriptionView {
	out := make([]SubscriptionView, 0, len(subs))
	for _, sub := range subs {
		if active != nil && sub.Active != *active {
			continue
		}
		fields := []string{sub.Name, sub.Description, sub.Type}
		for _, c := range sub.Customers {
			fields = append(fields, c.DisplayName, c.Email)
		}
		if !MatchesTerm(term, fields...) {
			continue
		}
		out = append(out, sub)
	}
	return out
}

// SortSubscriptions orders subscription views in place according to the
// sort state. Name and type compare with locale-aware collation, date
// compares creation timestamps numerically. The sort is stable.
func SortSubscriptions(subs []SubscriptionView, state SortState) {
	sort.SliceStable(subs, func(i, j int) bool {
		a, b := subs[i], subs[j]
		if state.Descending {
			a, b = b, a
		}
		switch state.Key {
		case SortByType:
			return textCollator.CompareString(a.Type, b.Type) < 0
		case SortByDate:
			return a.CreatedAt.Before(b.CreatedAt)
		default: // SortByName
			return textCollator.CompareString(a.Name, b.Name) < 0
		}
	})
}

// FilterPackages narrows package views by a free-text term over customer
// name, email, mobile, goal and subscription name/type.
func FilterPackages(pkgs []PackageView, term string) []PackageView {
	out := make([]PackageView, 0, len(pkgs))
	for _, pkg := range pkgs {
		if !MatchesTerm(term,
			pkg.CustomerDisplayName,
			pkg.CustomerEmail,
			pkg.CustomerMobile,
			pkg.CustomerGoal,
			pkg.SubscriptionName,
			pkg.SubscriptionType,
		) {
			continue
		}
		out = append(out, pkg)
	}
	return out
}
