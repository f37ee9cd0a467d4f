package handlers

import (
	"LostFound/internal/config"
	"LostFound/internal/model"
	"LostFound/internal/repo"
	"LostFound/internal/service"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler обрабатывает заявки о потерянных и найденных вещах.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger, Config: cfg}
}

// Root - проверка доступности API
func (h *ItemHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Lost & Found API"})
}

func (h *ItemHandler) CreateLost(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, model.KindLost)
}

func (h *ItemHandler) CreateFound(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, model.KindFound)
}

func (h *ItemHandler) ListLost(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, model.KindLost)
}

func (h *ItemHandler) ListFound(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, model.KindFound)
}

// create принимает multipart/form-data или application/x-www-form-urlencoded.
func (h *ItemHandler) create(w http.ResponseWriter, r *http.Request, kind model.Kind) {
	// Лимит общего тела запроса
	maxBody := int64(h.Config.MaxUploadMB) * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := parseForm(r); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.Logger.Warnw("Create: payload too large", "kind", kind, "limit", maxBody)
			writeDetail(w, http.StatusRequestEntityTooLarge, "payload too large")
			return
		}
		h.Logger.Warnw("Create: invalid form", "kind", kind, "error", err)
		writeDetail(w, http.StatusBadRequest, "invalid form")
		return
	}
	// chi передаёт сюда копию запроса, net/http временные файлы формы за ней не убирает
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	in := service.SubmitInput{
		Title:       r.FormValue("title"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
		Location:    r.FormValue("location"),
		Date:        r.FormValue("date"),
		OwnerName:   r.FormValue("owner_name"),
		OwnerEmail:  r.FormValue("owner_email"),
	}
	if v, ok := r.Form["owner_phone"]; ok && len(v) > 0 {
		phone := v[0]
		in.OwnerPhone = &phone
	}

	upload, err := readUpload(r)
	if err != nil {
		h.Logger.Warnw("Create: failed to read image", "kind", kind, "error", err)
		writeDetail(w, http.StatusBadRequest, "failed to read image")
		return
	}

	it, err := h.ItemService.Submit(r.Context(), kind, in, upload)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			writeValidationError(w, ve)
			return
		}
		h.Logger.Errorw("Create: service error", "kind", kind, "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, it)
}

func (h *ItemHandler) list(w http.ResponseWriter, r *http.Request, kind model.Kind) {
	items, err := h.ItemService.List(r.Context(), kind)
	if err != nil {
		h.Logger.Errorw("List: service error", "kind", kind, "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get возвращает заявку по id
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	it, err := h.ItemService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Item not found")
			return
		}
		h.Logger.Errorw("Get: service error", "id", id, "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// Delete удаляет заявку; отсутствие записи не ошибка
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.ItemService.Delete(r.Context(), id); err != nil {
		h.Logger.Errorw("Delete: service error", "id", id, "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}

func parseForm(r *http.Request) error {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "multipart/form-data" {
		return r.ParseMultipartForm(8 << 20)
	}
	return r.ParseForm()
}

// readUpload достаёт файл из поля image; пустое поле значит, что фото нет.
func readUpload(r *http.Request) (*service.Upload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	f, hdr, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return &service.Upload{
		Filename:    hdr.Filename,
		ContentType: strings.TrimSpace(hdr.Header.Get("Content-Type")),
		Data:        data,
	}, nil
}

type validationDetail struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func writeValidationError(w http.ResponseWriter, ve *service.ValidationError) {
	details := make([]validationDetail, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		details = append(details, validationDetail{
			Loc:  []string{"body", f.Field},
			Msg:  f.Msg,
			Type: f.Type,
		})
	}
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": details})
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
