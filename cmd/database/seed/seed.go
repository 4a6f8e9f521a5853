package seed

import (
	"FoodShare-Backend/entities"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var categoryNames = []string{
	"Fruits",
	"Vegetables",
	"Grains",
	"Dairy",
	"Meat",
	"Seafood",
	"Snacks",
	"Beverages",
	"Canned Goods",
	"Leftovers",
}

var donationCenters = []entities.DonationCenter{
	{
		Name:          "Butuan City Food Bank",
		Address:       "J.C. Aquino Avenue, Butuan City",
		Latitude:      8.9475,
		Longitude:     125.5406,
		ContactNumber: "+63 85 342 5678",
		Email:         "contact@butuanfoodbank.ph",
	},
	{
		Name:          "Agusan Community Kitchen",
		Address:       "Montilla Boulevard, Butuan City",
		Latitude:      8.9512,
		Longitude:     125.5281,
		ContactNumber: "+63 85 815 1234",
		Email:         "kitchen@agusancommunity.ph",
	},
	{
		Name:          "Caraga Relief Center",
		Address:       "A.D. Curato Street, Butuan City",
		Latitude:      8.9431,
		Longitude:     125.5363,
		ContactNumber: "+63 85 342 9012",
		Email:         "relief@caragacenter.ph",
	},
	{
		Name:          "Libertad Parish Pantry",
		Address:       "Libertad, Butuan City",
		Latitude:      8.9573,
		Longitude:     125.5214,
		ContactNumber: "+63 85 815 3456",
		Email:         "pantry@libertadparish.ph",
	},
	{
		Name:          "Ampayon Barangay Pantry",
		Address:       "Ampayon, Butuan City",
		Latitude:      8.9559,
		Longitude:     125.5977,
		ContactNumber: "+63 85 342 7890",
		Email:         "ampayon.pantry@gmail.com",
	},
	{
		Name:          "Baan Community Shelter",
		Address:       "Baan Riverside, Butuan City",
		Latitude:      8.9663,
		Longitude:     125.5492,
		ContactNumber: "+63 85 815 5678",
		Email:         "shelter@baancommunity.ph",
	},
}

// Seed inserts the default food categories and donation centers. Re-running is
// safe, existing rows are left untouched.
func Seed(db *gorm.DB) error {
	for _, name := range categoryNames {
		category := entities.FoodCategory{Name: name}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&category).Error; err != nil {
			return fmt.Errorf("seeding category %q: %w", name, err)
		}
	}

	for _, center := range donationCenters {
		var count int64
		if err := db.Model(&entities.DonationCenter{}).
			Where("name = ?", center.Name).
			Count(&count).Error; err != nil {
			return fmt.Errorf("seeding center %q: %w", center.Name, err)
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&center).Error; err != nil {
			return fmt.Errorf("seeding center %q: %w", center.Name, err)
		}
	}

	fmt.Println("Database seeding complete")
	return nil
}
