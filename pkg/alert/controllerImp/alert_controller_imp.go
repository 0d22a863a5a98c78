package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/solvarsaurus/agriculture-programs/pkg/alert"
	"github.com/solvarsaurus/agriculture-programs/pkg/alert/service"
)

type AlertCtrl struct {
	s                service.AlertService
	defaultRecipient string
}

func New(s service.AlertService, defaultRecipient string) *AlertCtrl {
	return &AlertCtrl{s: s, defaultRecipient: defaultRecipient}
}

func (h *AlertCtrl) Send(c echo.Context) error {
	var req service.AlertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if req.Recipient == "" {
		req.Recipient = h.defaultRecipient
	}
	entry, err := h.s.Send(c.Request().Context(), req)
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, entry)
	case entry == nil, errors.Is(err, alert.ErrInvalidRecipient):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error(), "alert": entry})
	}
}

func (h *AlertCtrl) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.s.Recent(limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
