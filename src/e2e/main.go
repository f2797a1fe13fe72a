package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {

	// .env is optional - compose/CI normally injects the variables directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	baseURL := os.Getenv("AI_SERVICE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	log.Printf("Running smoke check against %s", baseURL)

	if err := runSmokeCheck(baseURL); err != nil {
		log.Fatalf("Smoke check failed: %v", err)
	}

	log.Println("Smoke check passed!")
}
