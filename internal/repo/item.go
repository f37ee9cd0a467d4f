package repo

import (
	"LostFound/internal/model"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound возвращается, когда запись с указанным ID отсутствует.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists возвращается при повторном Create с тем же ID.
var ErrAlreadyExists = errors.New("already exists")

// ItemRepository - контракт хранилища заявок (коллекция items).
type ItemRepository interface {
	// Create сохраняет новую заявку. ID и CreatedAt заполняет вызывающий;
	// занятый ID - ошибка, запись не перезаписывается.
	Create(ctx context.Context, it *model.Item) error

	// GetByID возвращает заявку или ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Item, error)

	// ListByKindStatus возвращает заявки с точным совпадением kind и status.
	ListByKindStatus(ctx context.Context, kind model.Kind, status model.Status) ([]model.Item, error)

	// Delete удаляет заявку. Отсутствие записи ошибкой не считается.
	Delete(ctx context.Context, id string) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт gorm-реализацию ItemRepository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, it *model.Item) error {
	err := r.db.WithContext(ctx).Create(it).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("item %s: %w", it.ID, ErrAlreadyExists)
	}
	return err
}

func (r *itemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) ListByKindStatus(ctx context.Context, kind model.Kind, status model.Status) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Where("status = ?", status).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Item{}).Error
}
