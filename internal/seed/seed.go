// Package seed loads the built-in catalogue of admin-curated ideas.
package seed

import (
	"context"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/services"
)

type Idea struct {
	Title       string
	Description string
	Category    string
	Tags        []string
}

var Catalogue = []Idea{
	{"Neighbourhood Tool Library", "Members borrow power tools and garden equipment instead of buying them, paying a monthly fee.", "services", []string{"sharing", "subscription", "local"}},
	{"Meal Prep for Shift Workers", "Weekly boxes of balanced meals timed for night and rotating shifts at hospitals and factories.", "food-beverage", []string{"meal-prep", "health"}},
	{"Bookkeeping for Market Traders", "A phone-first ledger and monthly reconciliation service for stall holders and street vendors.", "finance", []string{"fintech", "small-business"}},
	{"Refurbished Laptop Store", "Buys office laptops in bulk, refurbishes them and sells with a one-year warranty to students.", "retail", []string{"circular", "electronics", "students"}},
	{"After-School Coding Club", "Small-group programming classes run in rented classrooms for ages 9 to 15.", "education", []string{"coding", "kids"}},
	{"Urban Microgreens Farm", "Vertical racks in a rented unit supplying restaurants with fresh microgreens twice a week.", "agriculture", []string{"farming", "b2b", "restaurants"}},
	{"Home Care Coordination App", "Families schedule and track visiting carers, medication and notes for elderly relatives.", "health-wellness", []string{"eldercare", "app"}},
	{"Pop-Up Escape Rooms", "Portable escape-room sets rented to events, schools and corporate team days.", "entertainment", []string{"events", "rental"}},
}

// Result counts what a Run did.
type Result struct {
	Created int
	Skipped int
}

// Run creates every catalogue idea whose title is not already present as an admin idea.
func Run(ctx context.Context, ideas *services.IdeaService, featured bool) (Result, error) {
	var res Result
	for _, item := range Catalogue {
		exists, err := ideas.ExistsByTitle(ctx, item.Title)
		if err != nil {
			return res, fmt.Errorf("checking %q: %w", item.Title, err)
		}
		if exists {
			res.Skipped++
			continue
		}

		req := dto.CreateIdeaRequest{
			IdeaFields: dto.IdeaFields{
				Title:       item.Title,
				Description: item.Description,
				Category:    item.Category,
				Tags:        item.Tags,
			},
			IsAdmin:    true,
			IsFeatured: featured,
		}
		if _, err := ideas.Create(ctx, &req, nil, true); err != nil {
			return res, fmt.Errorf("creating %q: %w", item.Title, err)
		}
		res.Created++
	}
	return res, nil
}
