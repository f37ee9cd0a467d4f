// Package api - HTTP-клиент LostFound API для CLI.
package api

import (
	"LostFound/internal/model"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrNotFound возвращается, когда сервер ответил 404.
var ErrNotFound = errors.New("not found")

// StatusError - любой другой неуспешный ответ сервера.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed: %s %s (status: %d): %s", e.Method, e.URL, e.Code, strings.TrimSpace(e.Body))
}

type ClientOpts struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	httpClient *resty.Client
	baseURL    string
}

func NewClient(opts ClientOpts) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		// создание находки ждёт сопоставления на сервере
		timeout = 2 * time.Minute
	}
	c := Client{baseURL: strings.TrimRight(opts.BaseURL, "/")}
	c.httpClient = resty.New().
		SetDebug(false).
		SetBaseURL(c.baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &c
}

// BaseURL возвращает адрес сервера без завершающего слеша.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) req(ctx context.Context, result any) *resty.Request {
	request := c.httpClient.R().SetContext(ctx)
	if result != nil {
		request.SetResult(result)
	}
	return request
}

type messageResponse struct {
	Message string `json:"message"`
}

// Root проверяет доступность API и возвращает его приветствие.
func (c *Client) Root(ctx context.Context) (string, error) {
	result := &messageResponse{}
	_, err := handleError(c.req(ctx, result).Get("/api/"))
	return result.Message, err
}

// ListItems возвращает активные заявки типа kind (lost или found).
func (c *Client) ListItems(ctx context.Context, kind model.Kind) ([]model.Item, error) {
	var result []model.Item
	_, err := handleError(c.req(ctx, &result).
		SetPathParam("kind", string(kind)).
		Get("/api/items/{kind}"))
	return result, err
}

func (c *Client) GetItem(ctx context.Context, id string) (*model.Item, error) {
	result := &model.Item{}
	_, err := handleError(c.req(ctx, result).
		SetPathParam("id", id).
		Get("/api/items/{id}"))
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateItem отправляет заявку как multipart-форму. imagePath может быть пустым.
func (c *Client) CreateItem(ctx context.Context, kind model.Kind, fields map[string]string, imagePath string) (*model.Item, error) {
	result := &model.Item{}
	request := c.req(ctx, result).
		SetPathParam("kind", string(kind)).
		SetMultipartFormData(fields)
	if imagePath != "" {
		request.SetFile("image", filepath.Clean(imagePath))
	}
	_, err := handleError(request.Post("/api/items/{kind}"))
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteItem удаляет заявку; сервер отвечает успехом и для несуществующего id.
func (c *Client) DeleteItem(ctx context.Context, id string) (string, error) {
	result := &messageResponse{}
	_, err := handleError(c.req(ctx, result).
		SetPathParam("id", id).
		Delete("/api/items/{id}"))
	return result.Message, err
}

// handleError превращает ответы >399 в ошибки: сам resty их ошибкой не считает.
func handleError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return res, err
	}
	if res.StatusCode() == 404 {
		return res, ErrNotFound
	}
	if res.IsError() {
		return res, &StatusError{
			Method: res.Request.Method,
			URL:    res.Request.URL,
			Code:   res.StatusCode(),
			Body:   res.String(),
		}
	}
	return res, nil
}
