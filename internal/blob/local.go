package blob

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore хранит объекты в каталоге на диске; раздаются они через Handler.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore создаёт каталог dir при необходимости.
// baseURL - внешний адрес, под которым смонтирован Handler (например, http://host/files).
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("local blob: create dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: baseURL}, nil
}

func (s *LocalStore) Put(ctx context.Context, key string, data []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	rel := filepath.FromSlash(key)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("local blob: invalid key %q", key)
	}
	full := filepath.Join(s.dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("local blob: mkdir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("local blob: write %s: %w", key, err)
	}
	return joinURL(s.baseURL, key), nil
}

// Handler раздаёт сохранённые файлы. Листинг каталогов отключён.
func (s *LocalStore) Handler() http.Handler {
	fs := http.FileServer(http.Dir(s.dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	})
}
