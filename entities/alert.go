package entities

import "time"

type AlertLog struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	MessageID string `gorm:"index" json:"message_id"`
	FieldID   *uint  `json:"field_id,omitempty"`
	Subject   string `json:"subject"`
	Recipient string `json:"recipient"`
	Status    string `json:"status"` // sent|failed
	Error     string `json:"error,omitempty"`
	CreatedAt time.Time
}
