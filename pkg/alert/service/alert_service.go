package service

import (
	"context"

	"github.com/solvarsaurus/agriculture-programs/entities"
)

type AlertRequest struct {
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	HTML      string `json:"html"` // used when Message is empty
	Recipient string `json:"recipient"`
	FieldID   *uint  `json:"field_id"`
}

// AlertService sends one email per call and logs the attempt. A delivery
// failure is returned as the error together with the failed log entry.
type AlertService interface {
	Send(ctx context.Context, req AlertRequest) (*entities.AlertLog, error)
	Recent(limit int) ([]entities.AlertLog, error)
}
