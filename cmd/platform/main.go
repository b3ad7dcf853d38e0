package main

import (
	"log"

	"github.com/bettoyou/bettoyou/internal/platform/app"
)

func main() {
	application, err := app.New(app.LoadConfig())
	if err != nil {
		log.Fatalf("platform: failed to initialize: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("platform: %v", err)
	}
}
