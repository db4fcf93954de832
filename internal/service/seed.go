package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/duetapp/duet/internal/models"
)

// SeedLists returns the starter list collection every fresh session begins
// with, mirroring the screens' initial state.
func SeedLists() []models.List {
	now := time.Now()
	return []models.List{
		{
			ID:        uuid.New().String(),
			Title:     "Grocery Shopping",
			Kind:      models.KindGrocery,
			UpdatedAt: now,
			Items: []models.Item{
				{ID: uuid.New().String(), Title: "Milk", Completed: true, AssignedTo: models.Partner},
				{ID: uuid.New().String(), Title: "Eggs", Completed: true, AssignedTo: models.You},
				{ID: uuid.New().String(), Title: "Bread", Completed: true, AssignedTo: models.You},
				{ID: uuid.New().String(), Title: "Apples", Completed: false, AssignedTo: models.Partner},
				{ID: uuid.New().String(), Title: "Bananas", Completed: false, AssignedTo: models.Unassigned},
				{ID: uuid.New().String(), Title: "Chicken", Completed: false, AssignedTo: models.You},
				{ID: uuid.New().String(), Title: "Pasta", Completed: false, AssignedTo: models.Unassigned},
				{ID: uuid.New().String(), Title: "Tomatoes", Completed: false, AssignedTo: models.Partner},
			},
		},
		{
			ID:        uuid.New().String(),
			Title:     "Weekend Tasks",
			Kind:      models.KindTodo,
			UpdatedAt: now.AddDate(0, 0, -1),
			Items: []models.Item{
				{ID: uuid.New().String(), Title: "Clean bathroom", Completed: true, AssignedTo: models.You},
				{ID: uuid.New().String(), Title: "Vacuum living room", Completed: false, AssignedTo: models.Partner},
				{ID: uuid.New().String(), Title: "Pick up laundry", Completed: false, AssignedTo: models.Unassigned},
				{ID: uuid.New().String(), Title: "Call plumber", Completed: false, AssignedTo: models.You},
			},
		},
		{
			ID:        uuid.New().String(),
			Title:     "Home Maintenance",
			Kind:      models.KindMaintenance,
			UpdatedAt: now.AddDate(0, 0, -4),
			Items: []models.Item{
				{ID: uuid.New().String(), Title: "Fix leak under sink", Completed: false, AssignedTo: models.Partner},
				{ID: uuid.New().String(), Title: "Replace light bulbs", Completed: false, AssignedTo: models.You},
				{ID: uuid.New().String(), Title: "Clean air filters", Completed: false, AssignedTo: models.Unassigned},
			},
		},
	}
}

// SeedExpenses returns the starter ledger, most recent first.
func SeedExpenses() []models.Expense {
	day := func(daysAgo int) time.Time {
		d := time.Now().AddDate(0, 0, -daysAgo)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	}
	return []models.Expense{
		{ID: uuid.New().String(), Title: "Grocery Shopping", Amount: 8750, Date: day(0), Category: models.CategoryGroceries, PaidBy: models.PaidByYou},
		{ID: uuid.New().String(), Title: "Dinner Date", Amount: 6520, Date: day(2), Category: models.CategoryFood, PaidBy: models.PaidByPartner},
		{ID: uuid.New().String(), Title: "Netflix Subscription", Amount: 1499, Date: day(4), Category: models.CategorySubscriptions, PaidBy: models.PaidByYou},
		{ID: uuid.New().String(), Title: "Electricity Bill", Amount: 8950, Date: day(8), Category: models.CategoryUtilities, PaidBy: models.PaidByYou},
		{ID: uuid.New().String(), Title: "Movie Tickets", Amount: 2600, Date: day(11), Category: models.CategoryEntertainment, PaidBy: models.PaidByPartner},
	}
}
