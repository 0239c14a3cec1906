package main

import (
	"log"
	"os"

	"github.com/jo-hoe/calendaricon/internal/core"
)

func main() {
	config, err := core.LoadDefaultConfig()
	if err != nil {
		log.Printf("failed to load icon configuration: %v", err)
		panic(err)
	}

	iconService, err := core.NewIconService(config, os.Stdout)
	if err != nil {
		log.Printf("failed to initialize icon service: %v", err)
		panic(err)
	}

	if _, err := iconService.GenerateAll(); err != nil {
		log.Printf("icon generation failed: %v", err)
		panic(err)
	}
}
