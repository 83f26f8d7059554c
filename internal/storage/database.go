package storage

import (
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/game"
)

// OpenAndMigrate opens the SQLite database at the given path and keeps the
// schema updated via AutoMigrate. The parent directory is created when
// missing so a fresh checkout can start without setup.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	if dir := filepath.Dir(dataSourceName); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&game.Hero{},
		&game.Match{},
		&game.RatingRecord{},
		&game.DuelHistoryEvent{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
