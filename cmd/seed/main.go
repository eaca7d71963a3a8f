package main

import (
	"log"
	"os"

	"github.com/gitsish/aaishop-ibm-project/internal/config"
	"github.com/gitsish/aaishop-ibm-project/internal/seed"
	"github.com/gitsish/aaishop-ibm-project/internal/storage"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	store := storage.OpenFile(cfg.StorePath, logger)

	if err := seed.Apply(store, logger); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
