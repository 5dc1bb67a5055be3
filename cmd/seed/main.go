// Command seed fills the posts table with development sample data.
package main

import (
	"flag"
	"log"

	"redator/internal/config"
	"redator/internal/database"
	"redator/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	numPosts := flag.Int("posts", 20, "Number of posts to create")
	shouldClean := flag.Bool("clean", false, "Clean the posts table before seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using process environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *shouldClean {
		if err := seed.Clean(db); err != nil {
			log.Fatalf("Failed to clean posts table: %v", err)
		}
	}

	if err := seed.Posts(db, *numPosts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
