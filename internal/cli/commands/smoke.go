package commands

import (
	"LostFound/internal/cli/api"
	"LostFound/internal/config"
	"LostFound/internal/model"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"

	"github.com/google/uuid"
)

type smokeCmd struct{}

func (smokeCmd) Name() string { return "smoke" }
func (smokeCmd) Description() string {
	return "Прогнать проверку API: создание, чтение, удаление, ошибки"
}
func (smokeCmd) Usage() string { return "smoke" }

// smokeRun считает результаты шагов проверки
type smokeRun struct {
	run, passed int
}

func (s *smokeRun) check(name string, err error) bool {
	s.run++
	if err != nil {
		fmt.Fprintf(Out, "× %s: %v\n", name, err)
		return false
	}
	s.passed++
	fmt.Fprintf(Out, "✓ %s\n", name)
	return true
}

func (smokeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	c := newClient(cfg)
	s := &smokeRun{}
	fmt.Fprintf(Out, "→ Проверка %s\n", c.BaseURL())

	if _, err := c.Root(ctx); !s.check("API root", err) {
		return fmt.Errorf("server is not reachable")
	}

	_, err := c.ListItems(ctx, model.KindLost)
	s.check("GET lost items", err)
	_, err = c.ListItems(ctx, model.KindFound)
	s.check("GET found items", err)

	imagePath, cleanupImage, err := writeSmokeImage()
	if err != nil {
		return err
	}
	defer cleanupImage()

	var created []string
	defer func() {
		for _, id := range created {
			_, _ = c.DeleteItem(context.WithoutCancel(ctx), id)
		}
	}()

	lost, err := c.CreateItem(ctx, model.KindLost, map[string]string{
		"title":       "Test Lost iPhone",
		"category":    "Electronics",
		"description": "Black iPhone 15 Pro lost in Central Park",
		"location":    "Central Park, NYC",
		"date":        "2024-01-15",
		"owner_name":  "John Doe",
		"owner_email": "john@example.com",
		"owner_phone": "+1234567890",
	}, imagePath)
	if s.check("POST lost item with image", err) {
		created = append(created, lost.ID)

		got, err := c.GetItem(ctx, lost.ID)
		if err == nil && (got.ID != lost.ID || got.Kind != model.KindLost) {
			err = fmt.Errorf("unexpected item %s (%s)", got.ID, got.Kind)
		}
		s.check("GET item by id", err)
	}

	found, err := c.CreateItem(ctx, model.KindFound, map[string]string{
		"title":       "Found iPhone",
		"category":    "Electronics",
		"description": "Found black iPhone near the fountain",
		"location":    "Central Park, NYC",
		"date":        "2024-01-16",
		"owner_name":  "Jane Smith",
		"owner_email": "jane@example.com",
	}, imagePath)
	if s.check("POST found item with image", err) {
		created = append(created, found.ID)
	}

	plain, err := c.CreateItem(ctx, model.KindLost, map[string]string{
		"title":       "Test Lost Wallet",
		"category":    "Accessories",
		"description": "Brown leather wallet",
		"location":    "Times Square",
		"date":        "2024-01-17",
		"owner_name":  "Bob Wilson",
		"owner_email": "bob@example.com",
	}, "")
	if plain != nil {
		created = append(created, plain.ID)
		if plain.ImageURL != nil {
			err = fmt.Errorf("image_url must be empty, got %s", *plain.ImageURL)
		}
	}
	s.check("POST item without image", err)

	_, err = c.CreateItem(ctx, model.KindLost, map[string]string{
		"category":    "Accessories",
		"description": "No title",
		"location":    "Nowhere",
		"date":        "2024-01-17",
		"owner_name":  "Bob Wilson",
		"owner_email": "bob@example.com",
	}, "")
	s.check("POST without title is rejected with 422", expectStatus(err, 422))

	_, err = c.GetItem(ctx, uuid.NewString())
	s.check("GET unknown id is 404", expectNotFound(err))

	if lost != nil {
		_, err = c.DeleteItem(ctx, lost.ID)
		if err == nil {
			_, getErr := c.GetItem(ctx, lost.ID)
			err = expectNotFound(getErr)
		}
		s.check("DELETE item then GET is 404", err)
	}

	_, err = c.DeleteItem(ctx, uuid.NewString())
	s.check("DELETE unknown id succeeds", err)

	fmt.Fprintf(Out, "Итого: %d/%d\n", s.passed, s.run)
	if s.passed != s.run {
		return fmt.Errorf("%d checks failed", s.run-s.passed)
	}
	return nil
}

func expectStatus(err error, code int) error {
	var se *api.StatusError
	if errors.As(err, &se) && se.Code == code {
		return nil
	}
	if err == nil {
		return fmt.Errorf("expected status %d, got success", code)
	}
	return fmt.Errorf("expected status %d, got %v", code, err)
}

func expectNotFound(err error) error {
	if errors.Is(err, api.ErrNotFound) {
		return nil
	}
	if err == nil {
		return fmt.Errorf("expected 404, got success")
	}
	return fmt.Errorf("expected 404, got %v", err)
}

// writeSmokeImage сохраняет во временный файл красный прямоугольник 200x150
func writeSmokeImage() (string, func(), error) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 150))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{R: 255, A: 255}}, image.Point{}, draw.Src)

	f, err := os.CreateTemp("", "lfcli-smoke-*.jpg")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = os.Remove(f.Name()) }
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 85}); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return f.Name(), cleanup, nil
}

func init() { RegisterCmd(smokeCmd{}) }
