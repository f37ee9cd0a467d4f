// Package blob хранит фотографии заявок и выдаёт публичные ссылки на них.
package blob

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"
)

// Store - хранилище бинарных объектов с публичным доступом на чтение.
type Store interface {
	// Put сохраняет данные по ключу и возвращает публичный URL объекта.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

var unsafeNameRe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ObjectKey строит ключ объекта вида items/{itemID}/{filename}.
// Имя файла от клиента очищается от путей и небезопасных символов.
func ObjectKey(itemID, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = unsafeNameRe.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "image"
	}
	return fmt.Sprintf("items/%s/%s", itemID, name)
}

// joinURL склеивает базовый адрес и ключ ровно через один слеш.
func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
