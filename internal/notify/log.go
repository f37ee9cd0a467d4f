package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogNotifier пишет письмо в лог вместо отправки. Используется без RESEND_API_KEY.
type LogNotifier struct {
	Logger *zap.SugaredLogger
}

func (n LogNotifier) NotifyMatch(_ context.Context, m Match) error {
	e, err := RenderMatchEmail(m)
	if err != nil {
		return err
	}
	n.Logger.Infow("match email (not sent, notifier disabled)",
		"to", e.To,
		"subject", e.Subject,
		"lost_item_id", m.Lost.ID,
		"found_item_id", m.Found.ID,
		"score", m.Score,
	)
	return nil
}
