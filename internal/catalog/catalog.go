// Package catalog holds the fixed category vocabulary and the title
// suggestions used for validation and synthetic data generation. The data is
// process-wide and immutable after init.
package catalog

import "math/rand"

const FallbackTitle = "Miscellaneous"

// Names is the fixed set of categories, in display order.
var Names = []string{
	"Food",
	"Entertainment",
	"Health",
	"Utilities",
	"Transport",
	"Shopping",
	"Other",
}

var titles = map[string][]string{
	"Food": {
		"Groceries", "Restaurant", "Coffee", "Lunch", "Dinner", "Snacks", "Takeout",
	},
	"Entertainment": {
		"Movie Night", "Netflix", "Concert", "Theme Park", "Gaming", "Books", "Music",
	},
	"Health": {
		"Gym Membership", "Medical Checkup", "Pharmacy", "Dental Visit", "Vitamins", "Fitness",
	},
	"Utilities": {
		"Internet Bill", "Phone Bill", "Electricity Bill", "Water Bill", "Gas Bill", "Maintenance",
	},
	"Transport": {
		"Uber Ride", "Gas Station", "Bus Ticket", "Train Pass", "Car Maintenance", "Parking", "Taxi",
	},
	"Shopping": {
		"Clothing", "Electronics", "Home Decor", "Books", "Accessories", "Beauty",
	},
	"Other": {
		"Miscellaneous", "Office Supplies", "Gift", "Donation", "Insurance", "Taxes",
	},
}

// Titles returns the suggestion list for a category, nil for unknown ones.
func Titles(category string) []string {
	return titles[category]
}

func IsValid(category string) bool {
	_, ok := titles[category]
	return ok
}

func RandomCategory() string {
	return Names[rand.Intn(len(Names))]
}

// RandomTitle picks a suggestion for the category, falling back to a generic
// title when the category has no suggestions.
func RandomTitle(category string) string {
	list := titles[category]
	if len(list) == 0 {
		return FallbackTitle
	}
	return list[rand.Intn(len(list))]
}
