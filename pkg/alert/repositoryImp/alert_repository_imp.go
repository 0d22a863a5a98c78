package repositoryImp

import (
	"github.com/solvarsaurus/agriculture-programs/entities"
	"github.com/solvarsaurus/agriculture-programs/pkg/alert/repository"
	"gorm.io/gorm"
)

type alertRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AlertRepository { return &alertRepo{db} }

func (r *alertRepo) Create(a *entities.AlertLog) error { return r.db.Create(a).Error }

func (r *alertRepo) Recent(limit int) ([]entities.AlertLog, error) {
	var out []entities.AlertLog
	if err := r.db.Order("id DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
