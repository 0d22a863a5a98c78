package repository

import "github.com/solvarsaurus/agriculture-programs/entities"

type WeatherRepository interface {
	Create(r *entities.WeatherReading) error
	Recent(fieldID uint, days int) ([]entities.WeatherReading, error)
}
