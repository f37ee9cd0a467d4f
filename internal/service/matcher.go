package service

import (
	"LostFound/internal/ai"
	"LostFound/internal/model"
	"LostFound/internal/notify"
	"LostFound/internal/repo"
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MatchThreshold - минимальная оценка (включительно), с которой пара считается совпадением.
const MatchThreshold = 85.0

// MatchReport - итог одного прогона сопоставления; в HTTP-ответ не попадает.
type MatchReport struct {
	Compared int
	Matched  int
	Notified int
	Failed   int
}

// Matcher сравнивает новую находку со всеми активными потерянными вещами
// и уведомляет владельцев при совпадении.
type Matcher struct {
	items    repo.ItemRepository
	matches  repo.MatchRepository
	scorer   ai.Scorer
	notifier notify.Notifier
	logger   *zap.SugaredLogger

	now   func() time.Time
	newID func() string
}

func NewMatcher(
	items repo.ItemRepository,
	matches repo.MatchRepository,
	scorer ai.Scorer,
	notifier notify.Notifier,
	logger *zap.SugaredLogger,
) *Matcher {
	return &Matcher{
		items:    items,
		matches:  matches,
		scorer:   scorer,
		notifier: notifier,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// Run выполняет сопоставление последовательно, по одному вызову модели на пару.
// Ошибки отдельных пар логируются и не прерывают обход.
func (m *Matcher) Run(ctx context.Context, found model.Item) MatchReport {
	var report MatchReport

	lostItems, err := m.items.ListByKindStatus(ctx, model.KindLost, model.StatusActive)
	if err != nil {
		m.logger.Errorw("Match: failed to list lost items", "found_item_id", found.ID, "error", err)
		return report
	}

	for _, lost := range lostItems {
		report.Compared++
		score := m.score(ctx, lost, found)
		if score < MatchThreshold {
			continue
		}

		match := &model.MatchResult{
			ID:          m.newID(),
			LostItemID:  lost.ID,
			FoundItemID: found.ID,
			Score:       score,
			Notified:    true,
			CreatedAt:   m.now(),
		}
		if err := m.matches.Create(ctx, match); err != nil {
			report.Failed++
			m.logger.Errorw("Match: failed to save match",
				"lost_item_id", lost.ID, "found_item_id", found.ID, "score", score, "error", err)
			continue
		}
		report.Matched++

		if err := m.notifier.NotifyMatch(ctx, notify.Match{Lost: lost, Found: found, Score: score}); err != nil {
			report.Failed++
			m.logger.Errorw("Match: failed to send notification",
				"lost_item_id", lost.ID, "found_item_id", found.ID, "to", lost.OwnerEmail, "error", err)
			continue
		}
		report.Notified++
		m.logger.Infow("Match: notification sent",
			"lost_item_id", lost.ID, "found_item_id", found.ID, "to", lost.OwnerEmail, "score", score)
	}

	m.logger.Infow("Match: scan finished",
		"found_item_id", found.ID,
		"compared", report.Compared,
		"matched", report.Matched,
		"notified", report.Notified,
		"failed", report.Failed,
	)
	return report
}

// score возвращает оценку пары; любая ошибка модели даёт 0.
func (m *Matcher) score(ctx context.Context, lost, found model.Item) float64 {
	score, err := m.scorer.Score(ctx, lost, found)
	if err != nil {
		m.logger.Warnw("Match: scoring failed, treating as 0",
			"lost_item_id", lost.ID, "found_item_id", found.ID, "error", err)
		return 0
	}
	if math.IsNaN(score) {
		return 0
	}
	return min(max(score, 0), 100)
}
