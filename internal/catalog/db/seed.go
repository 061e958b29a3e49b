package db

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"ms-booking/internal/models"
)

// Seed loads the storefront catalog. The descriptions and slot grid
// match the demo dataset the storefront launched with.
func Seed(ctx context.Context, bunDB *bun.DB) error {
	count, err := bunDB.NewSelect().Model((*models.Experience)(nil)).Count(ctx)
	if err != nil {
		return fmt.Errorf("count experiences: %w", err)
	}
	if count > 0 {
		return nil
	}

	experiences := []models.Experience{
		{
			ID:          "1",
			Name:        "Kayaking",
			Location:    "Udupi",
			Description: "Curated small-group experience. Certified guide. Safety first with gear included.",
			Image:       "/kayaking.jpg",
			Price:       999,
			About:       "Scenic routes, trained guides, and safety briefing. Minimum age 10. Helmet and Life jackets along with an expert will accompany in kayaking.",
		},
		{
			ID:          "2",
			Name:        "Nandi Hills Sunrise",
			Location:    "Bangalore",
			Description: "Curated small-group experience. Certified guide. Safety first with gear included.",
			Image:       "/nandi_hills_sunrise.jpg",
			Price:       899,
			About:       "Experience the breathtaking sunrise from Nandi Hills with our guided tour.",
		},
		{
			ID:          "3",
			Name:        "Coffee Trail",
			Location:    "Coorg",
			Description: "Curated small-group experience. Certified guide. Safety first with gear included.",
			Image:       "/coffee_trail.jpg",
			Price:       1299,
			About:       "Walk through lush coffee plantations and learn about coffee cultivation.",
		},
		{
			ID:          "4",
			Name:        "Kayaking",
			Location:    "Udupi, Karnataka",
			Description: "Curated small-group experience. Certified guide. Safety first with gear included.",
			Image:       "/kayaking_udupi.jpg",
			Price:       999,
			About:       "Explore serene waters with professional guides and all safety equipment provided.",
		},
		{
			ID:          "5",
			Name:        "Nandi Hills Sunrise",
			Location:    "Bangalore",
			Description: "Curated small-group experience. Certified guide. Safety first with gear included.",
			Image:       "/nandi_hills_sunrise_bangalore.jpg",
			Price:       899,
			About:       "Catch the stunning sunrise views from the hilltop with our expert guides.",
		},
		{
			ID:          "6",
			Name:        "Boat Cruise",
			Location:    "Sunderban",
			Description: "Curated small-group experience. Certified guide. Safety first with gear included.",
			Image:       "/boat_cruise.jpg",
			Price:       999,
			About:       "Navigate through the mangrove forests of Sunderban on a guided boat cruise.",
		},
		{
			ID:          "7",
			Name:        "Bunjee Jumping",
			Location:    "Manali",
			Description: "Curated small-group experience. Certified guide. Safety first with gear included.",
			Image:       "/bunjee_jumping.jpg",
			Price:       999,
			About:       "Experience the ultimate adrenaline rush with our professional bungee jumping setup.",
		},
		{
			ID:          "8",
			Name:        "Coffee Trail",
			Location:    "Coorg",
			Description: "Curated small-group experience. Certified guide. Safety first with gear included.",
			Image:       "/coffee_trail_coorg.jpg",
			Price:       1299,
			About:       "Immerse yourself in the coffee culture with plantation tours and tasting sessions.",
		},
	}

	slots := []models.Slot{
		{ID: "s1-1", ExperienceID: "1", Date: "2025-10-22", Time: "07:00 am", Available: 4, Total: 10},
		{ID: "s1-2", ExperienceID: "1", Date: "2025-10-22", Time: "09:00 am", Available: 2, Total: 10},
		{ID: "s1-3", ExperienceID: "1", Date: "2025-10-22", Time: "11:00 am", Available: 5, Total: 10},
		{ID: "s1-4", ExperienceID: "1", Date: "2025-10-22", Time: "01:00 pm", Available: 0, Total: 10},
		{ID: "s1-5", ExperienceID: "1", Date: "2025-10-23", Time: "07:00 am", Available: 8, Total: 10},
		{ID: "s1-6", ExperienceID: "1", Date: "2025-10-24", Time: "07:00 am", Available: 6, Total: 10},
		{ID: "s1-7", ExperienceID: "1", Date: "2025-10-25", Time: "07:00 am", Available: 7, Total: 10},
		{ID: "s1-8", ExperienceID: "1", Date: "2025-10-26", Time: "07:00 am", Available: 9, Total: 10},
		{ID: "s2-1", ExperienceID: "2", Date: "2025-10-22", Time: "05:00 am", Available: 3, Total: 8},
		{ID: "s2-2", ExperienceID: "2", Date: "2025-10-23", Time: "05:00 am", Available: 5, Total: 8},
		{ID: "s2-3", ExperienceID: "2", Date: "2025-10-24", Time: "05:00 am", Available: 2, Total: 8},
		{ID: "s3-1", ExperienceID: "3", Date: "2025-10-22", Time: "09:00 am", Available: 6, Total: 12},
		{ID: "s3-2", ExperienceID: "3", Date: "2025-10-23", Time: "09:00 am", Available: 4, Total: 12},
		{ID: "s4-1", ExperienceID: "4", Date: "2025-10-22", Time: "08:00 am", Available: 5, Total: 10},
		{ID: "s5-1", ExperienceID: "5", Date: "2025-10-22", Time: "05:00 am", Available: 2, Total: 8},
		{ID: "s6-1", ExperienceID: "6", Date: "2025-10-22", Time: "10:00 am", Available: 7, Total: 15},
		{ID: "s7-1", ExperienceID: "7", Date: "2025-10-22", Time: "11:00 am", Available: 3, Total: 6},
		{ID: "s8-1", ExperienceID: "8", Date: "2025-10-22", Time: "02:00 pm", Available: 8, Total: 12},
	}

	if _, err := bunDB.NewInsert().Model(&experiences).Exec(ctx); err != nil {
		return fmt.Errorf("seed experiences: %w", err)
	}
	if _, err := bunDB.NewInsert().Model(&slots).Exec(ctx); err != nil {
		return fmt.Errorf("seed slots: %w", err)
	}
	return nil
}
