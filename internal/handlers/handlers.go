package handlers

import (
	"LostFound/internal/config"
	"LostFound/internal/middleware"
	"LostFound/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров.
// files - раздача локального хранилища фотографий; nil, если используется S3.
func NewHandler(
	itemService *service.ItemService,
	logger *zap.SugaredLogger,
	config *config.Config,
	files http.Handler,
) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.WithLogging)
	r.Use(corsHandler(config.CORSOrigins))
	r.Use(middleware.WithGzip)

	itemHandler := NewItemHandler(itemService, logger, config)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", itemHandler.Root)

		r.Post("/items/lost", itemHandler.CreateLost)
		r.Post("/items/found", itemHandler.CreateFound)
		r.Get("/items/lost", itemHandler.ListLost)
		r.Get("/items/found", itemHandler.ListFound)

		r.Get("/items/{id}", itemHandler.Get)
		r.Delete("/items/{id}", itemHandler.Delete)
	})

	if files != nil {
		r.Handle("/files/*", http.StripPrefix("/files", files))
	}

	return &Handler{Router: r}
}

func corsHandler(origins []string) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions, http.MethodHead,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler
}
