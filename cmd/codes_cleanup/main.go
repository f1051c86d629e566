package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"homelet/internal/database"
	"homelet/internal/repository"
)

// Removes expired verification codes. Meant to run from cron.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	removed, err := repository.NewVerificationCodeRepository(db).DeleteExpired(context.Background())
	if err != nil {
		log.Fatalf("cleanup verification_codes failed: %v", err)
	}

	log.Printf("cleanup completed: verification_codes=%d", removed)
}
