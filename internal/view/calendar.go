package view

import (
	"time"

	"pushpull/studio-admin/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SlotSuggestion is a scheduling preference attached to calendar days.
// It is derived from each customer's preferredSlot profile field rather
// than a separate suggestion table.
type SlotSuggestion struct {
	CustomerID   primitive.ObjectID `json:"customerId"`
	CustomerName string             `json:"customerName"`
	Slot         string             `json:"slot"`
	Message      string             `json:"message"`
}

// DayCell is one cell of the trainer calendar grid.
type DayCell struct {
	Date           time.Time        `json:"date"`
	InMonth        bool             `json:"inMonth"`
	ActivePackages []PackageView    `json:"activePackages"`
	Suggestions    []SlotSuggestion `json:"suggestions"`
}

// SlotSuggestions derives one SlotSuggestion per customer-role user with a
// preferred slot set.
func SlotSuggestions(users []domain.User) []SlotSuggestion {
	var slots []SlotSuggestion
	for _, u := range users {
		if !u.IsCustomer() || u.PreferredSlot == "" {
			continue
		}
		slots = append(slots, SlotSuggestion{
			CustomerID:   u.ID,
			CustomerName: u.DisplayName,
			Slot:         u.PreferredSlot,
			Message:      "Preferred slot from user profile",
		})
	}
	return slots
}

// MonthGrid builds the calendar grid for a trainer's month: whole weeks,
// Sunday first, padded with trailing days of the previous month and
// leading days of the next month so the cell count is a multiple of 7.
//
// A package appears in a cell when its subscription period contains the
// cell's day. A slot suggestion appears only when its customer has an
// active package that day; a customer with a slot preference but no
// active package contributes nothing.
func MonthGrid(year int, month time.Month, loc *time.Location, pkgs []PackageView, slots []SlotSuggestion) []DayCell {
	if loc == nil {
		loc = time.Local
	}

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	prevMonthDays := time.Date(year, month, 0, 0, 0, 0, 0, loc).Day()
	leading := int(firstDay.Weekday())

	var cells []DayCell

	// Trailing days of the previous month. Day-of-month arithmetic relies
	// on time.Date normalizing out-of-range days (day 0 of month M is the
	// last day of M-1).
	for i := leading - 1; i >= 0; i-- {
		day := time.Date(year, month-1, prevMonthDays-i, 0, 0, 0, 0, loc)
		cells = append(cells, buildCell(day, false, pkgs, slots))
	}

	for d := 1; d <= daysInMonth; d++ {
		day := time.Date(year, month, d, 0, 0, 0, 0, loc)
		cells = append(cells, buildCell(day, true, pkgs, slots))
	}

	// Leading days of the next month until the grid is whole weeks.
	total := ((len(cells) + 6) / 7) * 7
	for next := 1; len(cells) < total; next++ {
		day := time.Date(year, month+1, next, 0, 0, 0, 0, loc)
		cells = append(cells, buildCell(day, false, pkgs, slots))
	}

	return cells
}

func buildCell(day time.Time, inMonth bool, pkgs []PackageView, slots []SlotSuggestion) DayCell {
	cell := DayCell{
		Date:           day,
		InMonth:        inMonth,
		ActivePackages: []PackageView{},
		Suggestions:    []SlotSuggestion{},
	}

	active := make(map[primitive.ObjectID]bool)
	for _, pkg := range pkgs {
		if pkg.ActiveOn(day) {
			cell.ActivePackages = append(cell.ActivePackages, pkg)
			active[pkg.CustomerID] = true
		}
	}

	for _, slot := range slots {
		if active[slot.CustomerID] {
			cell.Suggestions = append(cell.Suggestions, slot)
		}
	}

	return cell
}
