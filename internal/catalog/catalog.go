// Package catalog holds the fixed reference list of bookable services. The
// catalog is a read-only dataset; stores take copies and never mutate entries
// in place.
package catalog

import "fitbook/internal/models"

var services = []models.Service{
	{
		ID:          "1",
		Name:        "Gym Membership Consultation",
		Duration:    "30 mins",
		Price:       499,
		Description: "Get personalized guidance on your gym membership and workout plan.",
	},
	{
		ID:          "2",
		Name:        "Personal Training Session",
		Duration:    "60 mins",
		Price:       999,
		Description: "One-on-one training session with a certified personal trainer.",
	},
	{
		ID:          "3",
		Name:        "Diet Planning Call",
		Duration:    "45 mins",
		Price:       799,
		Description: "Consult with a nutritionist to create a custom diet plan.",
	},
	{
		ID:          "4",
		Name:        "Yoga & Meditation Session",
		Duration:    "50 mins",
		Price:       599,
		Description: "Relax your mind and body with guided yoga and meditation exercises.",
	},
	{
		ID:          "5",
		Name:        "Physiotherapy Consultation",
		Duration:    "40 mins",
		Price:       699,
		Description: "Assess and treat musculoskeletal issues with a certified physiotherapist.",
	},
	{
		ID:          "6",
		Name:        "Online Fitness Workshop",
		Duration:    "90 mins",
		Price:       899,
		Description: "Interactive online session covering fitness techniques and routines.",
	},
	{
		ID:          "7",
		Name:        "Body Composition Analysis",
		Duration:    "30 mins",
		Price:       499,
		Description: "Get insights into your body composition with professional assessment tools.",
	},
	{
		ID:          "8",
		Name:        "Posture & Ergonomics Review",
		Duration:    "35 mins",
		Price:       599,
		Description: "Learn proper posture and ergonomic tips to avoid injuries and strain.",
	},
}

// Services returns a fresh copy of the reference catalog
func Services() []models.Service {
	out := make([]models.Service, len(services))
	copy(out, services)
	return out
}
