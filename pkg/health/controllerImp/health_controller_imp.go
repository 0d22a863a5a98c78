package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/solvarsaurus/agriculture-programs/config"
)

var appStart = time.Now()

type HealthCtrl struct {
	db   *gorm.DB
	smtp config.SMTPConfig
}

func NewHealthCtrl(db *gorm.DB, smtp config.SMTPConfig) *HealthCtrl {
	return &HealthCtrl{db: db, smtp: smtp}
}

type sub struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := sub{OK: true}
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			db = sub{Err: "db.DB(): " + err.Error()}
		} else if err := sqlDB.PingContext(ctx); err != nil {
			db = sub{Err: "ping: " + err.Error()}
		}
	} else {
		db = sub{Err: "gorm db is nil"}
	}

	// smtp is not dialed here; only configuration is checked
	mail := sub{OK: h.smtp.Host != "" && h.smtp.Sender != "" &&
		h.smtp.User != "" && h.smtp.Password != ""}
	if !mail.OK {
		mail.Err = "smtp host, sender or credentials not configured"
	}

	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
	}
	resp := map[string]any{
		"status":     map[string]any{"ok": db.OK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": db,
			"smtp":     mail,
		},
		"time": time.Now().Format(time.RFC3339),
	}
	return c.JSON(status, resp)
}
