package handlers_test

import (
	"LostFound/internal/ai"
	"LostFound/internal/blob"
	"LostFound/internal/config"
	"LostFound/internal/handlers"
	"LostFound/internal/model"
	"LostFound/internal/notify"
	"LostFound/internal/repo"
	"LostFound/internal/service"
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Local light mocks
type hMockLLM struct{ mock.Mock }

func (m *hMockLLM) DescribeImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	args := m.Called(ctx, data, mimeType)
	return args.String(0), args.Error(1)
}
func (m *hMockLLM) Score(ctx context.Context, lost, found model.Item) (float64, error) {
	args := m.Called(ctx, lost, found)
	return args.Get(0).(float64), args.Error(1)
}

var _ ai.Client = (*hMockLLM)(nil)

type hMockNotifier struct{ mock.Mock }

func (m *hMockNotifier) NotifyMatch(ctx context.Context, mt notify.Match) error {
	return m.Called(ctx, mt).Error(0)
}

var _ notify.Notifier = (*hMockNotifier)(nil)

// hMockItemRepo - репозиторий, который умеет падать
type hMockItemRepo struct{ mock.Mock }

func (m *hMockItemRepo) Create(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}
func (m *hMockItemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) ListByKindStatus(ctx context.Context, kind model.Kind, status model.Status) ([]model.Item, error) {
	args := m.Called(ctx, kind, status)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ItemRepository = (*hMockItemRepo)(nil)

type testEnv struct {
	server   *httptest.Server
	router   http.Handler
	items    repo.ItemRepository
	matches  repo.MatchRepository
	llm      *hMockLLM
	notifier *hMockNotifier
	blobDir  string
}

func newTestConfig() *config.Config {
	return &config.Config{
		CORSOrigins: []string{"*"},
		MaxUploadMB: 1,
	}
}

// newTestEnv поднимает полный роутер поверх in-memory хранилищ и локального blob-хранилища.
func newTestEnv(t *testing.T, items repo.ItemRepository) *testEnv {
	t.Helper()
	return newTestEnvWithConfig(t, items, newTestConfig())
}

func newTestEnvWithConfig(t *testing.T, items repo.ItemRepository, cfg *config.Config) *testEnv {
	t.Helper()
	if items == nil {
		items = repo.NewMemoryItemRepository()
	}
	env := &testEnv{
		items:    items,
		matches:  repo.NewMemoryMatchRepository(),
		llm:      new(hMockLLM),
		notifier: new(hMockNotifier),
		blobDir:  t.TempDir(),
	}
	logger := zap.NewNop().Sugar()

	// адрес сервера нужен хранилищу для ссылок на файлы
	mux := http.NewServeMux()
	env.server = httptest.NewServer(mux)
	t.Cleanup(env.server.Close)

	store, err := blob.NewLocalStore(env.blobDir, env.server.URL+"/files")
	require.NoError(t, err)

	matcher := service.NewMatcher(env.items, env.matches, env.llm, env.notifier, logger)
	svc := service.NewItemService(env.items, store, env.llm, matcher, logger)
	h := handlers.NewHandler(svc, logger, cfg, store.Handler())
	env.router = h.Router
	mux.Handle("/", h.Router)
	return env
}

func formFields() map[string]string {
	return map[string]string{
		"title":       "Black Wallet",
		"category":    "Accessories",
		"description": "Leather wallet",
		"location":    "Central Park",
		"date":        "2025-03-10",
		"owner_name":  "Alice",
		"owner_email": "a@x.com",
	}
}

// multipartBody собирает форму; image может быть nil.
func multipartBody(t *testing.T, fields map[string]string, filename string, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if image != nil {
		fw, err := mw.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}
