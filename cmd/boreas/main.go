package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/fortuna/boreas/internal/cache"
	"github.com/fortuna/boreas/internal/ingest/bio"
	"github.com/fortuna/boreas/internal/ingest/nhl"
	"github.com/fortuna/boreas/internal/schedule"
	"github.com/fortuna/boreas/internal/store"
)

const (
	appName    = "boreas"
	appVersion = "1.0.0"
)

func main() {
	log.Printf("=== %s v%s ===", appName, appVersion)

	var (
		year   int
		month  int
		dsn    string
		season string
	)
	flag.IntVar(&year, "y", 0, "Year to process (whole year unless -m is also given)")
	flag.IntVar(&year, "year", 0, "Year to process (whole year unless --month is also given)")
	flag.IntVar(&month, "m", 0, "Month to process (requires -y)")
	flag.IntVar(&month, "month", 0, "Month to process (requires --year)")
	flag.StringVar(&dsn, "dsn", "", "Database DSN (overrides DB_* environment assembly)")
	flag.StringVar(&season, "season", getEnv("NHL_SEASON", "20112012"), "Season code for the play-by-play feed")
	flag.Parse()

	config := loadConfig()

	if dsn == "" {
		var err error
		dsn, err = store.BuildDSN(config.Engine, config.Host, config.Database,
			config.User, config.Password, config.Schema)
		if err != nil {
			log.Fatalf("Invalid database configuration: %v", err)
		}
	}

	dates, err := schedule.Resolve(year, month)
	if err != nil {
		log.Fatalf("Invalid schedule selection: %v", err)
	}

	db, err := store.NewDatabase(dsn)
	if err != nil {
		log.Fatalf("Cannot connect to database: %v", err)
	}
	defer db.Close()

	log.Println("✓ Connected to database")

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	client := nhl.NewClientWithBaseURLs(config.ScoreboardBase, config.GameDataBase)

	if config.RedisURL != "" {
		feedCache, err := cache.NewFeedCache(config.RedisURL)
		if err != nil {
			log.Printf("⚠️  Feed cache unavailable: %v (continuing without)", err)
		} else {
			defer feedCache.Close()
			client.UseCache(feedCache)
			log.Println("✓ Feed cache connected")
		}
	}

	ctx := context.Background()
	ingester := nhl.NewIngesterWithClient(db, season, client)

	gamesProcessed := 0
	for _, date := range dates {
		gamesProcessed += ingester.IngestDate(ctx, date)
	}

	bioClient := bio.NewClientWithBaseURL(config.PlayerBase)
	if config.BioRender {
		if err := bioClient.EnableBrowser(); err != nil {
			log.Printf("⚠️  Headless browser unavailable: %v (static fetch only)", err)
		}
	}

	enricher := bio.NewEnricherWithClient(db, bioClient)
	defer enricher.Close()

	playersEnriched := enricher.EnrichAll(ctx, ingester.Roster().IDs())

	log.Printf("✓ Run complete: %d dates, %d games, %d players enriched",
		len(dates), gamesProcessed, playersEnriched)
}

// Config carries the externally supplied connection and feed parameters
type Config struct {
	Engine   string
	Host     string
	Database string
	User     string
	Password string
	Schema   string

	RedisURL       string
	ScoreboardBase string
	GameDataBase   string
	PlayerBase     string
	BioRender      bool
}

func loadConfig() Config {
	return Config{
		Engine:         getEnv("DB_ENGINE", "postgres"),
		Host:           getEnv("DB_HOST", ""),
		Database:       getEnv("DB_NAME", ""),
		User:           getEnv("DB_USER", ""),
		Password:       getEnv("DB_PASSWORD", ""),
		Schema:         getEnv("DB_SCHEMA", ""),
		RedisURL:       getEnv("REDIS_URL", ""),
		ScoreboardBase: getEnv("SCOREBOARD_BASE", nhl.ScoreboardBaseURL),
		GameDataBase:   getEnv("GAMEDATA_BASE", nhl.GameDataBaseURL),
		PlayerBase:     getEnv("PLAYER_BASE", bio.ProfileBaseURL),
		BioRender:      getEnv("BIO_RENDER", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
