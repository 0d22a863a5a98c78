package serviceImp

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/solvarsaurus/agriculture-programs/entities"
	"github.com/solvarsaurus/agriculture-programs/pkg/alert"
	repo "github.com/solvarsaurus/agriculture-programs/pkg/alert/repository"
	"github.com/solvarsaurus/agriculture-programs/pkg/alert/service"
)

// Sender is satisfied by *alert.Mailer.
type Sender interface {
	Send(ctx context.Context, msg alert.Message) error
}

type alertSvc struct {
	r      repo.AlertRepository
	sender Sender
}

func New(r repo.AlertRepository, sender Sender) service.AlertService {
	return &alertSvc{r: r, sender: sender}
}

func (s *alertSvc) Send(ctx context.Context, req service.AlertRequest) (*entities.AlertLog, error) {
	body := req.Message
	if strings.TrimSpace(body) == "" && req.HTML != "" {
		txt, err := alert.PlainText(req.HTML)
		if err != nil {
			return nil, err
		}
		body = txt
	}
	if strings.TrimSpace(req.Subject) == "" {
		return nil, errors.New("subject is required")
	}
	if strings.TrimSpace(body) == "" {
		return nil, errors.New("message is required")
	}

	msg := alert.NewMessage(req.Subject, body, req.Recipient)
	entry := &entities.AlertLog{MessageID: msg.ID, FieldID: req.FieldID, Subject: msg.Subject, Recipient: msg.Recipient, Status: "sent"}
	sendErr := s.sender.Send(ctx, msg)
	if sendErr != nil {
		entry.Status = "failed"
		entry.Error = sendErr.Error()
		log.Printf("[alert] %s to %s failed: %v", msg.ID, msg.Recipient, sendErr)
	} else {
		log.Printf("[alert] %s sent to %s: %s", msg.ID, msg.Recipient, msg.Subject)
	}
	if err := s.r.Create(entry); err != nil {
		log.Printf("[alert] log %s: %v", msg.ID, err)
	}
	return entry, sendErr
}

func (s *alertSvc) Recent(limit int) ([]entities.AlertLog, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.r.Recent(limit)
}
