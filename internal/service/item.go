package service

import (
	"LostFound/internal/ai"
	"LostFound/internal/blob"
	"LostFound/internal/imaging"
	"LostFound/internal/model"
	"LostFound/internal/repo"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidKind - неизвестный тип заявки.
var ErrInvalidKind = errors.New("invalid item kind")

// Upload - приложенная к заявке фотография.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ItemService инкапсулирует бизнес-логику работы с заявками.
type ItemService struct {
	items     repo.ItemRepository
	blobs     blob.Store
	describer ai.Describer
	matcher   *Matcher
	logger    *zap.SugaredLogger

	now   func() time.Time
	newID func() string
}

func NewItemService(
	items repo.ItemRepository,
	blobs blob.Store,
	describer ai.Describer,
	matcher *Matcher,
	logger *zap.SugaredLogger,
) *ItemService {
	return &ItemService{
		items:     items,
		blobs:     blobs,
		describer: describer,
		matcher:   matcher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

// Submit создаёт заявку. Для находки после сохранения синхронно запускается сопоставление.
// Ошибку возвращают только валидация и сохранение самой заявки.
func (s *ItemService) Submit(ctx context.Context, kind model.Kind, in SubmitInput, up *Upload) (*model.Item, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	// начатая обработка не отменяется, даже если клиент отключился
	ctx = context.WithoutCancel(ctx)

	id := s.newID()
	it := &model.Item{
		ID:          id,
		Title:       strings.TrimSpace(in.Title),
		Kind:        kind,
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		Date:        strings.TrimSpace(in.Date),
		OwnerID:     id,
		OwnerName:   strings.TrimSpace(in.OwnerName),
		OwnerEmail:  strings.TrimSpace(in.OwnerEmail),
		OwnerPhone:  trimmedOrNil(in.OwnerPhone),
		Status:      model.StatusActive,
		CreatedAt:   s.now(),
	}

	if up != nil && len(up.Data) > 0 {
		it.ImageURL, it.ImageDescription = s.handleImage(ctx, id, up)
	}

	if err := s.items.Create(ctx, it); err != nil {
		s.logger.Errorw("Submit: failed to save item", "item_id", id, "kind", kind, "error", err)
		return nil, fmt.Errorf("save item: %w", err)
	}
	s.logger.Infow("Submit: item created", "item_id", id, "kind", kind, "has_image", it.ImageURL != nil)

	if kind == model.KindFound && s.matcher != nil {
		s.matcher.Run(ctx, *it)
	}
	return it, nil
}

// handleImage независимо сохраняет фотографию и получает её описание.
// Неудача любой из операций оставляет соответствующее поле пустым.
func (s *ItemService) handleImage(ctx context.Context, itemID string, up *Upload) (imageURL, description *string) {
	data, mime, filename := up.Data, up.ContentType, up.Filename
	if res, err := imaging.Process(up.Data); err != nil {
		s.logger.Warnw("Submit: image normalisation failed, using original bytes",
			"item_id", itemID, "filename", up.Filename, "error", err)
		if mime == "" || mime == "application/octet-stream" {
			mime = imaging.DetectMIME(up.Data)
		}
	} else {
		data, mime = res.Data, res.MIME
		base := strings.TrimSuffix(filename, path.Ext(filename))
		if base == "" {
			base = "image"
		}
		filename = base + res.Ext
	}

	var g errgroup.Group
	g.Go(func() error {
		url, err := s.blobs.Put(ctx, blob.ObjectKey(itemID, filename), data, mime)
		if err != nil {
			s.logger.Errorw("Submit: error uploading image", "item_id", itemID, "error", err)
			return nil
		}
		imageURL = &url
		return nil
	})
	g.Go(func() error {
		desc, err := s.describer.DescribeImage(ctx, data, mime)
		if err != nil {
			s.logger.Errorw("Submit: error describing image", "item_id", itemID, "error", err)
			return nil
		}
		if desc = strings.TrimSpace(desc); desc != "" {
			description = &desc
		}
		return nil
	})
	_ = g.Wait()
	return imageURL, description
}

// List возвращает активные заявки указанного типа.
func (s *ItemService) List(ctx context.Context, kind model.Kind) ([]model.Item, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}
	items, err := s.items.ListByKindStatus(ctx, kind, model.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list %s items: %w", kind, err)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Get возвращает заявку или repo.ErrNotFound.
func (s *ItemService) Get(ctx context.Context, id string) (*model.Item, error) {
	return s.items.GetByID(ctx, id)
}

// Delete удаляет заявку; повторное удаление не ошибка.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	s.logger.Infow("Delete: item deleted", "item_id", id)
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
