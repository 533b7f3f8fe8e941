package main

import (
	"log"

	"github.com/joho/godotenv"

	"inovitaz_backend/internal/app"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
