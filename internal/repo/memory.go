package repo

import (
	"LostFound/internal/model"
	"context"
	"fmt"
	"sort"
	"sync"
)

// memoryItemRepo - in-memory хранилище для локальной разработки и тестов.
type memoryItemRepo struct {
	mu    sync.RWMutex
	items map[string]model.Item
}

// NewMemoryItemRepository создаёт пустое in-memory хранилище заявок.
func NewMemoryItemRepository() ItemRepository {
	return &memoryItemRepo{items: make(map[string]model.Item)}
}

func (r *memoryItemRepo) Create(_ context.Context, it *model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[it.ID]; ok {
		return fmt.Errorf("item %s: %w", it.ID, ErrAlreadyExists)
	}
	r.items[it.ID] = *it
	return nil
}

func (r *memoryItemRepo) GetByID(_ context.Context, id string) (*model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &it, nil
}

func (r *memoryItemRepo) ListByKindStatus(_ context.Context, kind model.Kind, status model.Status) ([]model.Item, error) {
	r.mu.RLock()
	res := make([]model.Item, 0, len(r.items))
	for _, it := range r.items {
		if it.Kind == kind && it.Status == status {
			res = append(res, it)
		}
	}
	r.mu.RUnlock()
	// порядок как у gorm-реализации: created_at, затем id
	sort.SliceStable(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.Before(res[j].CreatedAt)
		}
		return res[i].ID < res[j].ID
	})
	return res, nil
}

func (r *memoryItemRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type memoryMatchRepo struct {
	mu      sync.RWMutex
	matches []model.MatchResult
}

// NewMemoryMatchRepository создаёт пустое in-memory хранилище совпадений.
func NewMemoryMatchRepository() MatchRepository {
	return &memoryMatchRepo{}
}

func (r *memoryMatchRepo) Create(_ context.Context, m *model.MatchResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches = append(r.matches, *m)
	return nil
}

func (r *memoryMatchRepo) ListByFoundItem(_ context.Context, foundItemID string) ([]model.MatchResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]model.MatchResult, 0)
	for _, m := range r.matches {
		if m.FoundItemID == foundItemID {
			res = append(res, m)
		}
	}
	return res, nil
}
