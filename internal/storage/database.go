package storage

import (
	"github.com/novusx/novusx-server/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Keep the schema updated via AutoMigrate; the DB file is disposable
	// and can be removed whenever a clean rebuild is wanted.
	if err := db.AutoMigrate(&game.Match{}, &game.MatchPlayer{}, &game.User{}); err != nil {
		return nil, err
	}
	return db, nil
}
