package serviceImp

import (
	"context"
	"log"
	"time"

	"github.com/solvarsaurus/agriculture-programs/entities"
	alertsvc "github.com/solvarsaurus/agriculture-programs/pkg/alert/service"
	"github.com/solvarsaurus/agriculture-programs/pkg/weather"
	repo "github.com/solvarsaurus/agriculture-programs/pkg/weather/repository"
	"github.com/solvarsaurus/agriculture-programs/pkg/weather/service"
)

type weatherSvc struct {
	r         repo.WeatherRepository
	alerts    alertsvc.AlertService // nil disables heat alerts
	recipient string
}

func New(r repo.WeatherRepository, alerts alertsvc.AlertService, recipient string) service.WeatherService {
	return &weatherSvc{r: r, alerts: alerts, recipient: recipient}
}

func (s *weatherSvc) Record(ctx context.Context, fieldID uint, date time.Time, temperature, humidity float64) (*entities.WeatherReading, error) {
	adv := weather.Classify(temperature, humidity)
	w := &entities.WeatherReading{
		FieldID:      fieldID,
		Date:         date,
		TemperatureC: temperature,
		HumidityPct:  humidity,
		Advisory:     adv.Code,
		AdvisoryText: adv.Text,
	}
	if adv == weather.TooHot && s.alerts != nil {
		fid := fieldID
		_, err := s.alerts.Send(ctx, alertsvc.AlertRequest{
			Subject:   weather.HotAlertSubject,
			Message:   weather.HotAlertMessage,
			Recipient: s.recipient,
			FieldID:   &fid,
		})
		if err != nil {
			log.Printf("[weather] field %d heat alert: %v", fieldID, err)
		}
		w.AlertSent = err == nil
	}
	if err := s.r.Create(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *weatherSvc) Recent(fieldID uint, days int) ([]entities.WeatherReading, error) {
	return s.r.Recent(fieldID, days)
}
