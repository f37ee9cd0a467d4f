package repo

import (
	"LostFound/internal/model"
	"context"

	"gorm.io/gorm"
)

// MatchRepository - контракт хранилища совпадений (коллекция matches).
// Удаления и изменения нет: записи неизменяемы.
type MatchRepository interface {
	Create(ctx context.Context, m *model.MatchResult) error
	// ListByFoundItem возвращает совпадения, найденные для заявки о находке.
	ListByFoundItem(ctx context.Context, foundItemID string) ([]model.MatchResult, error)
}

type matchRepo struct {
	db *gorm.DB
}

// NewMatchRepository создаёт gorm-реализацию MatchRepository.
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepo{db: db}
}

func (r *matchRepo) Create(ctx context.Context, m *model.MatchResult) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *matchRepo) ListByFoundItem(ctx context.Context, foundItemID string) ([]model.MatchResult, error) {
	var res []model.MatchResult
	err := r.db.WithContext(ctx).
		Where("found_item_id = ?", foundItemID).
		Order("created_at ASC").
		Find(&res).Error
	if err != nil {
		return nil, err
	}
	return res, nil
}
