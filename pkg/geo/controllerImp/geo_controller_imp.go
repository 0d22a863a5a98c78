package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/solvarsaurus/agriculture-programs/pkg/geo"
)

type GeoCtrl struct {
	distance geo.DistanceFunc
	mode     string
}

// New uses mode ("standard" or "legacy") as the default haversine variant.
func New(mode string) (*GeoCtrl, error) {
	fn, err := geo.Distance(mode)
	if err != nil {
		return nil, err
	}
	if mode == "" {
		mode = "standard"
	}
	return &GeoCtrl{distance: fn, mode: mode}, nil
}

type pointReq struct {
	System geo.System `json:"system"`
	A      float64    `json:"a"`
	B      float64    `json:"b"`
}

func (h *GeoCtrl) Point(c echo.Context) error {
	var req pointReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	p, err := geo.New(req.System, req.A, req.B)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

type latLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type distanceReq struct {
	From    latLon `json:"from"`
	To      latLon `json:"to"`
	Formula string `json:"formula"` // optional override
}

func (h *GeoCtrl) Distance(c echo.Context) error {
	var req distanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	fn, mode := h.distance, h.mode
	if req.Formula != "" {
		var err error
		if fn, err = geo.Distance(req.Formula); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		mode = req.Formula
	}
	p1 := geo.FromGeographic(req.From.Lat, req.From.Lon)
	p2 := geo.FromGeographic(req.To.Lat, req.To.Lon)
	return c.JSON(http.StatusOK, echo.Map{"km": fn(p1, p2), "formula": mode})
}
