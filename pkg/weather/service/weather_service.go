package service

import (
	"context"
	"time"

	"github.com/solvarsaurus/agriculture-programs/entities"
)

type WeatherService interface {
	// Record classifies and stores a reading. A too-hot reading triggers the
	// heat alert when enabled; a failed alert is logged, the reading is still stored.
	Record(ctx context.Context, fieldID uint, date time.Time, temperature, humidity float64) (*entities.WeatherReading, error)
	Recent(fieldID uint, days int) ([]entities.WeatherReading, error)
}
