package repositoryImp

import (
	"time"

	"github.com/solvarsaurus/agriculture-programs/entities"
	"github.com/solvarsaurus/agriculture-programs/pkg/weather/repository"
	"gorm.io/gorm"
)

type weatherRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.WeatherRepository { return &weatherRepo{db} }

func (r *weatherRepo) Create(w *entities.WeatherReading) error { return r.db.Create(w).Error }

func (r *weatherRepo) Recent(fieldID uint, days int) ([]entities.WeatherReading, error) {
	var out []entities.WeatherReading
	cut := time.Now().AddDate(0, 0, -days)
	if err := r.db.Where("field_id = ? AND date >= ?", fieldID, cut).Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
