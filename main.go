package main

import (
	"fmt"
	"os"
	"strings"

	"saminams/app/config"
	"saminams/app/logger"
	"saminams/app/repositories"
	"saminams/app/routes"
	"saminams/app/services"
	"saminams/app/storage"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		fmt.Println(helpText())
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		fmt.Println(helpText())
	case "version":
		fmt.Printf("saminams version %s\n", cliVersion)
	case "serve":
		serve()
	case "seed":
		seed()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		fmt.Println(helpText())
		os.Exit(1)
	}
}

func helpText() string {
	return `Usage: saminams <command>
Commands:
  help       Display this help message.
  version    Show version information.
  serve      Run the blog HTTP service.
  seed       Insert the sample post into an empty blog and exit.

Configuration is read from the environment (and .env when present):
  BLOG_ADDR      listen address        (default ":8080")
  BLOG_DATA_DIR  badger data directory (default "data/badger")
  LOG_LEVEL      debug|info|warn|error (default "info")
  ENV            development|production (default "production")`
}

// serve wires storage -> repository -> editor -> router and blocks on the
// HTTP server.
func serve() {
	cfg := config.Load()
	log := logger.New(cfg)

	db, err := storage.Open(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("failed to open database")
	}
	defer db.Close()

	repo := repositories.NewContentRepository(storage.NewBadgerStore(db, log))
	editor := services.NewEditorService(repo)
	router := routes.SetupRoutes(repo, editor, log)

	log.Info().Str("addr", cfg.Addr).Msg("starting blog service")
	if err := routes.StartServer(cfg.Addr, router); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// seed inserts the starter post when the store is empty.
func seed() {
	cfg := config.Load()
	log := logger.New(cfg)

	db, err := storage.Open(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("failed to open database")
	}
	defer db.Close()

	repo := repositories.NewContentRepository(storage.NewBadgerStore(db, log))
	if post := repo.SeedSample(); post != nil {
		log.Info().Str("id", post.ID).Str("slug", post.Slug).Msg("sample post created")
		return
	}
	log.Info().Msg("posts already exist, nothing seeded")
}
