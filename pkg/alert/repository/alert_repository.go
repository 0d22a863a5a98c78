package repository

import "github.com/solvarsaurus/agriculture-programs/entities"

type AlertRepository interface {
	Create(a *entities.AlertLog) error
	Recent(limit int) ([]entities.AlertLog, error)
}
