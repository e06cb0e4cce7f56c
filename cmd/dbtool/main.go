package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"flight-route-service/internal/adapters/repositories"
	"flight-route-service/internal/config"
	"flight-route-service/internal/platform/db"
)

// dbtool initializes the schema and loads the airport CSV and airspace
// GeoJSON reference datasets. Run it once before starting the server
// and again whenever the upstream data is refreshed.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	airportsCSV := config.Get("AIRPORTS_CSV", "data/airports.csv")
	airspacesGeoJSON := config.Get("AIRSPACES_GEOJSON", "data/airspaces_ch.geojson")

	if err := initAndSeed(database, airportsCSV, airspacesGeoJSON); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(database *sql.DB, airportsCSV, airspacesGeoJSON string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(database); err != nil {
		return fmt.Errorf("schema initialization: %w", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding airports...")
	if err := repositories.SeedAirportsFromCSV(database, airportsCSV); err != nil {
		return fmt.Errorf("airport seeding: %w", err)
	}

	log.Println("Seeding airspaces...")
	if err := repositories.SeedAirspacesFromGeoJSON(database, airspacesGeoJSON); err != nil {
		return fmt.Errorf("airspace seeding: %w", err)
	}
	log.Println("Seeding complete.")

	return nil
}
