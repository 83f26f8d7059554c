package main

import (
	"github.com/dilmax12/HeroForgeNew-sub004/internal/config"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/logging"
	"github.com/dilmax12/HeroForgeNew-sub004/internal/storage"
)

func loadContentOrExit(path string) *config.Content {
	content, err := config.LoadContent(path)
	if err != nil {
		logging.Fatal("Missing or invalid content configuration", err, logging.Fields{
			"config_path": path,
			"hint":        "create a heroforge_config.json with 'skill_list' and 'archetype_list' arrays",
		})
	}
	return content
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
