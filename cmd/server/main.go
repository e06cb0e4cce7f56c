package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"flight-route-service/internal/adapters/cache"
	"flight-route-service/internal/adapters/elevation"
	"flight-route-service/internal/adapters/repositories"
	"flight-route-service/internal/adapters/weather"
	"flight-route-service/internal/airports"
	"flight-route-service/internal/api"
	"flight-route-service/internal/config"
	"flight-route-service/internal/platform/db"
	"flight-route-service/internal/ports"
	"flight-route-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, OpenTopography,
// OpenWeatherMap) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := config.Get("PORT", "8080")

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	// The airport index is immutable after load; a data refresh means
	// restarting with a reseeded database.
	airportRepo := repositories.NewPostgresAirportRepository(database)
	all, err := airportRepo.ListAirports(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	index := airports.NewIndex(all)
	log.Printf("airport index ready airports=%d", index.Len())

	airspaceRepo := repositories.NewPostgresAirspaceRepository(database)

	// Elevation lookups go through a persistent Redis cache when
	// configured; the DEM data never changes, so cold misses are the
	// only external calls.
	var elevationCache *cache.RedisElevationCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		elevationCache = cache.NewRedisElevationCache(client, 0)
	} else {
		log.Println("REDIS_ADDR not set, elevation cache disabled")
	}
	elevationProvider := elevation.NewOpenTopoProvider(elevationCache)

	var weatherProvider ports.WeatherProvider
	if key := os.Getenv("OPENWEATHERMAP_API_KEY"); key != "" {
		weatherProvider, err = weather.NewOpenWeatherProvider(key)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		log.Println("OPENWEATHERMAP_API_KEY not set, weather endpoint disabled")
	}

	policy := policyFromEnv()
	assembler := services.NewRouteAssembler(index, airspaceRepo, elevationProvider, policy)

	router := api.NewRouter(index, assembler, airspaceRepo, elevationProvider, weatherProvider)

	// Timeouts are tuned for cold-cache terrain profiles (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func policyFromEnv() services.Policy {
	p := services.DefaultPolicy()
	p.TerrainMarginFt = config.GetFloat("TERRAIN_MARGIN_FT", p.TerrainMarginFt)
	p.CorridorRadiusNM = config.GetFloat("CORRIDOR_RADIUS_NM", p.CorridorRadiusNM)
	p.AirspaceClearanceNM = config.GetFloat("AIRSPACE_CLEARANCE_NM", p.AirspaceClearanceNM)
	p.AirspaceRetryCap = config.GetInt("AIRSPACE_RETRY_CAP", p.AirspaceRetryCap)
	p.MagneticVariationDeg = config.GetFloat("MAGNETIC_VARIATION_DEG", p.MagneticVariationDeg)
	p.ElevationSampleNM = config.GetFloat("ELEVATION_SAMPLE_NM", p.ElevationSampleNM)
	p.LegConcurrency = config.GetInt("LEG_CONCURRENCY", p.LegConcurrency)
	return p
}
