package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/solvarsaurus/agriculture-programs/pkg/weather"
	"github.com/solvarsaurus/agriculture-programs/pkg/weather/service"
)

type WeatherCtrl struct{ s service.WeatherService }

func New(s service.WeatherService) *WeatherCtrl { return &WeatherCtrl{s} }

type readingReq struct {
	Date         string   `json:"date"`
	TemperatureC *float64 `json:"temperature_c"`
	HumidityPct  *float64 `json:"humidity_pct"`
}

func (h *WeatherCtrl) Create(c echo.Context) error {
	fid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var req readingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.TemperatureC == nil || req.HumidityPct == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "temperature_c and humidity_pct are required"})
	}
	d := time.Now()
	if req.Date != "" {
		dd, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		}
		d = dd
	}
	w, err := h.s.Record(c.Request().Context(), uint(fid), d, *req.TemperatureC, *req.HumidityPct)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, w)
}

func (h *WeatherCtrl) List(c echo.Context) error {
	fid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	out, err := h.s.Recent(uint(fid), 30)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *WeatherCtrl) Advise(c echo.Context) error {
	t, errT := strconv.ParseFloat(c.QueryParam("temperature"), 64)
	hu, errH := strconv.ParseFloat(c.QueryParam("humidity"), 64)
	if errT != nil || errH != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "temperature and humidity must be numbers"})
	}
	return c.JSON(http.StatusOK, weather.Classify(t, hu))
}
