package entities

import "time"

type WeatherReading struct {
	ReadingID    uint      `gorm:"primaryKey" json:"reading_id"`
	FieldID      uint      `gorm:"index" json:"field_id"`
	Date         time.Time `json:"date"`
	TemperatureC float64   `json:"temperature_c"`
	HumidityPct  float64   `json:"humidity_pct"`
	Advisory     string    `json:"advisory"` // too_hot|low_humidity|optimal
	AdvisoryText string    `json:"advisory_text"`
	AlertSent    bool      `json:"alert_sent"`
	CreatedAt    time.Time
}
