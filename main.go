package main

import (
	"ZWH-Backend/cmd/config"
	migration "ZWH-Backend/cmd/database/migrate"
	"ZWH-Backend/internal/utils"
	"flag"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "run database migrations and exit")
	flag.Parse()

	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal(err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if *migrateOnly {
		return
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatal(err)
	}

	log.Fatal(app.Listen(":" + utils.GetConfig("APP_PORT")))
}
