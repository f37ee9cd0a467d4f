package model

import "time"

// MatchResult фиксирует совпадение найденной вещи с потерянной.
// Создаётся только процессом сопоставления и после создания не меняется.
type MatchResult struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	LostItemID  string    `gorm:"not null;index" json:"lost_item_id"`
	FoundItemID string    `gorm:"not null;index" json:"found_item_id"`
	Score       float64   `gorm:"not null" json:"match_score"`
	Notified    bool      `gorm:"not null;default:false" json:"notified"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (MatchResult) TableName() string { return "matches" }
