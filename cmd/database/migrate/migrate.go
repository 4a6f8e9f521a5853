package migration

import (
	entities2 "FoodShare-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// Setup PostgreSQL extensions for geographical calculations
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"earthdistance\" CASCADE;")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"cube\";")

	if err := db.AutoMigrate(&entities2.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.FoodCategory{}); err != nil {
		log.Fatalf("Error migrating food category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.FoodLog{}); err != nil {
		log.Fatalf("Error migrating food log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.DonationCenter{}); err != nil {
		log.Fatalf("Error migrating donation center database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.DonationRecord{}); err != nil {
		log.Fatalf("Error migrating donation record database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.WasteLog{}); err != nil {
		log.Fatalf("Error migrating waste log database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
