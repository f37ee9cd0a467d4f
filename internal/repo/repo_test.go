package repo

import (
	"fmt"
	"strings"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория.
// У каждого теста своя база, чтобы списки не пересекались.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: fmt.Sprintf("file:%s?mode=memory&cache=shared", name)}
	db, err := InitDB(dial)
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// backends возвращает обе реализации хранилища для контрактных тестов.
func backends(t *testing.T) map[string]func(t *testing.T) (ItemRepository, MatchRepository) {
	t.Helper()
	return map[string]func(t *testing.T) (ItemRepository, MatchRepository){
		"gorm": func(t *testing.T) (ItemRepository, MatchRepository) {
			db := newTestDB(t)
			return NewItemRepository(db), NewMatchRepository(db)
		},
		"memory": func(t *testing.T) (ItemRepository, MatchRepository) {
			return NewMemoryItemRepository(), NewMemoryMatchRepository()
		},
	}
}
