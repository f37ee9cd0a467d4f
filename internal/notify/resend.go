package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const ResendBaseURL = "https://api.resend.com"

// Resend отправляет письма через REST API Resend.
type Resend struct {
	httpClient *resty.Client
	from       string
}

// ResendOpts - параметры клиента Resend.
type ResendOpts struct {
	APIKey  string
	From    string
	BaseURL string
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID string `json:"id"`
}

func NewResend(opts ResendOpts) *Resend {
	base := ResendBaseURL
	if opts.BaseURL != "" {
		base = opts.BaseURL
	}
	c := resty.New().
		SetDebug(false).
		SetBaseURL(base).
		SetTimeout(15 * time.Second).
		SetAuthToken(opts.APIKey).
		SetHeader("Accept", "application/json")
	return &Resend{httpClient: c, from: opts.From}
}

// Send отправляет готовое письмо и возвращает его ID в Resend.
func (r *Resend) Send(ctx context.Context, e Email) (string, error) {
	result := &resendResponse{}
	res, err := r.httpClient.R().
		SetContext(ctx).
		SetBody(resendRequest{From: r.from, To: []string{e.To}, Subject: e.Subject, HTML: e.HTML}).
		SetResult(result).
		Post("/emails")
	if err != nil {
		return "", fmt.Errorf("resend: %w", err)
	}
	// без этой проверки ответ >399 вернулся бы с nil-ошибкой
	if res.IsError() {
		return "", fmt.Errorf("resend: request failed (status: %d): %s", res.StatusCode(), res.String())
	}
	return result.ID, nil
}

// NotifyMatch implements Notifier.
func (r *Resend) NotifyMatch(ctx context.Context, m Match) error {
	e, err := RenderMatchEmail(m)
	if err != nil {
		return err
	}
	_, err = r.Send(ctx, e)
	return err
}
