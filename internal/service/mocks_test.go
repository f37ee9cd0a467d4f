package service

import (
	"LostFound/internal/ai"
	"LostFound/internal/blob"
	"LostFound/internal/model"
	"LostFound/internal/notify"
	"LostFound/internal/repo"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// Моки для ItemRepository, MatchRepository, Scorer, Describer, Notifier и blob.Store
type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) Create(ctx context.Context, it *model.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}
func (m *mockItemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) ListByKindStatus(ctx context.Context, kind model.Kind, status model.Status) ([]model.Item, error) {
	args := m.Called(ctx, kind, status)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

type mockMatchRepo struct{ mock.Mock }

func (m *mockMatchRepo) Create(ctx context.Context, mr *model.MatchResult) error {
	args := m.Called(ctx, mr)
	return args.Error(0)
}
func (m *mockMatchRepo) ListByFoundItem(ctx context.Context, foundItemID string) ([]model.MatchResult, error) {
	args := m.Called(ctx, foundItemID)
	if v, ok := args.Get(0).([]model.MatchResult); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.MatchRepository = (*mockMatchRepo)(nil)

type mockScorer struct{ mock.Mock }

func (m *mockScorer) Score(ctx context.Context, lost, found model.Item) (float64, error) {
	args := m.Called(ctx, lost, found)
	return args.Get(0).(float64), args.Error(1)
}

var _ ai.Scorer = (*mockScorer)(nil)

type mockDescriber struct{ mock.Mock }

func (m *mockDescriber) DescribeImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	args := m.Called(ctx, data, mimeType)
	return args.String(0), args.Error(1)
}

var _ ai.Describer = (*mockDescriber)(nil)

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) NotifyMatch(ctx context.Context, mt notify.Match) error {
	args := m.Called(ctx, mt)
	return args.Error(0)
}

var _ notify.Notifier = (*mockNotifier)(nil)

type mockBlobStore struct{ mock.Mock }

func (m *mockBlobStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

var _ blob.Store = (*mockBlobStore)(nil)

var fixedNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func lostItem(id, title string) model.Item {
	return model.Item{
		ID:          id,
		Title:       title,
		Kind:        model.KindLost,
		Category:    "Electronics",
		Description: "desc " + title,
		Location:    "Central Park",
		Date:        "2025-03-10",
		OwnerID:     id,
		OwnerName:   "Owner " + id,
		OwnerEmail:  id + "@example.com",
		Status:      model.StatusActive,
		CreatedAt:   fixedNow,
	}
}

func foundItem(id, title string) model.Item {
	it := lostItem(id, title)
	it.Kind = model.KindFound
	return it
}
