package repo

import (
	"LostFound/internal/model"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// Repositories - набор хранилищ, выбранный один раз при старте процесса.
type Repositories struct {
	Items   ItemRepository
	Matches MatchRepository
	// Backend - имя реализации для логов: memory, sqlite или postgres.
	Backend string

	close func() error
}

// Close освобождает соединение с БД (для memory ничего не делает).
func (r *Repositories) Close() error {
	if r == nil || r.close == nil {
		return nil
	}
	return r.close()
}

// Open выбирает реализацию хранилища по DSN:
// пустая строка - in-memory, "sqlite:<path>" / "file:..." / *.db - SQLite,
// всё остальное - PostgreSQL.
func Open(dsn string) (*Repositories, error) {
	if strings.TrimSpace(dsn) == "" {
		return &Repositories{
			Items:   NewMemoryItemRepository(),
			Matches: NewMemoryMatchRepository(),
			Backend: "memory",
		}, nil
	}

	backend, dial := dialectorFor(dsn)
	db, err := InitDB(dial)
	if err != nil {
		return nil, fmt.Errorf("init %s: %w", backend, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	return &Repositories{
		Items:   NewItemRepository(db),
		Matches: NewMatchRepository(db),
		Backend: backend,
		close:   sqlDB.Close,
	}, nil
}

func dialectorFor(dsn string) (string, gorm.Dialector) {
	switch {
	case strings.HasPrefix(dsn, "sqlite:"):
		return "sqlite", gormsqlite.Dialector{DriverName: "sqlite", DSN: strings.TrimPrefix(dsn, "sqlite:")}
	case strings.HasPrefix(dsn, "file:"), strings.HasSuffix(dsn, ".db"):
		return "sqlite", gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	default:
		return "postgres", postgres.Open(dsn)
	}
}

// InitDB открывает соединение и накатывает схему для items и matches.
func InitDB(dial gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dial, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.Item{}, &model.MatchResult{}); err != nil {
		return nil, err
	}
	return db, nil
}
