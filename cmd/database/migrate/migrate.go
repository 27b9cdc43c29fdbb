package migration

import (
	"ZWH-Backend/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	// referenced tables first
	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"product", &entities.Product{}},
		{"product category", &entities.ProductCategory{}},
		{"fridge holding", &entities.FridgeHolding{}},
		{"pantry holding", &entities.PantryHolding{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			log.Errorf("Error migrating %s database: %v", m.name, err)
			return err
		}
	}

	log.Info("Database migration complete")
	return nil
}
