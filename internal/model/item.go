package model

import "time"

// Kind - тип заявки: потерянная или найденная вещь.
type Kind string

const (
	KindLost  Kind = "lost"
	KindFound Kind = "found"
)

// Valid сообщает, является ли значение известным типом заявки.
func (k Kind) Valid() bool {
	return k == KindLost || k == KindFound
}

// Status - состояние заявки. Сервис создаёт и читает только активные.
type Status string

const StatusActive Status = "active"

// Item - заявка о потерянной или найденной вещи.
type Item struct {
	ID    string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title string `gorm:"not null" json:"title"`
	Kind  Kind   `gorm:"not null;index:idx_items_kind_status" json:"type"`

	Category    string `gorm:"not null" json:"category"`
	Description string `gorm:"not null" json:"description"`
	Location    string `gorm:"not null" json:"location"`
	// Date - дата со слов пользователя, как строка, без разбора.
	Date string `gorm:"not null" json:"date"`

	// OwnerID совпадает с ID: учётных записей нет.
	OwnerID    string  `gorm:"not null" json:"owner_id"`
	OwnerName  string  `gorm:"not null" json:"owner_name"`
	OwnerEmail string  `gorm:"not null" json:"owner_email"`
	OwnerPhone *string `json:"owner_phone"`

	ImageURL         *string `json:"image_url"`
	ImageDescription *string `json:"image_description"`

	Status    Status    `gorm:"not null;index:idx_items_kind_status" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Item) TableName() string { return "items" }
