package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/solvarsaurus/agriculture-programs/config"
	"github.com/solvarsaurus/agriculture-programs/database"
	"github.com/solvarsaurus/agriculture-programs/router"

	// Auth + Health
	authCtrlImp "github.com/solvarsaurus/agriculture-programs/pkg/auth/controllerImp"
	healthCtrlImp "github.com/solvarsaurus/agriculture-programs/pkg/health/controllerImp"

	// Field
	"github.com/solvarsaurus/agriculture-programs/pkg/field"
	fieldCtrlImp "github.com/solvarsaurus/agriculture-programs/pkg/field/controllerImp"
	fieldRepoImp "github.com/solvarsaurus/agriculture-programs/pkg/field/repositoryImp"
	fieldSvcImp "github.com/solvarsaurus/agriculture-programs/pkg/field/serviceImp"

	// Geo
	geoCtrlImp "github.com/solvarsaurus/agriculture-programs/pkg/geo/controllerImp"

	// Alerts
	"github.com/solvarsaurus/agriculture-programs/pkg/alert"
	alertCtrlImp "github.com/solvarsaurus/agriculture-programs/pkg/alert/controllerImp"
	alertRepoImp "github.com/solvarsaurus/agriculture-programs/pkg/alert/repositoryImp"
	alertsvc "github.com/solvarsaurus/agriculture-programs/pkg/alert/service"
	alertSvcImp "github.com/solvarsaurus/agriculture-programs/pkg/alert/serviceImp"

	// Weather
	weatherCtrlImp "github.com/solvarsaurus/agriculture-programs/pkg/weather/controllerImp"
	weatherRepoImp "github.com/solvarsaurus/agriculture-programs/pkg/weather/repositoryImp"
	weatherSvcImp "github.com/solvarsaurus/agriculture-programs/pkg/weather/serviceImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())

	// 4) Alerts
	aSvc := alertSvcImp.New(alertRepoImp.New(db), alert.NewMailer(cfg.SMTP))
	aCtrl := alertCtrlImp.New(aSvc, cfg.AlertRecipient)

	// 5) Fields: the catalog is built once here and shared
	catalog := field.NewCatalog()
	fSvc := fieldSvcImp.NewFieldService(fieldRepoImp.New(db), cfg.BoundaryDir)
	fCtrl := fieldCtrlImp.New(fSvc, catalog)

	// 6) Weather, heat alerts optional
	var hotAlerts alertsvc.AlertService
	if cfg.HotAlertEnabled {
		hotAlerts = aSvc
	}
	wSvc := weatherSvcImp.New(weatherRepoImp.New(db), hotAlerts, cfg.AlertRecipient)
	wCtrl := weatherCtrlImp.New(wSvc)

	// 7) Geo
	gCtrl, err := geoCtrlImp.New(cfg.HaversineMode)
	if err != nil {
		log.Fatalf("geo: %v", err)
	}

	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db, cfg.SMTP)

	// 8) Router
	r := router.New(e, fCtrl, gCtrl, wCtrl, aCtrl, authCtrl, hCtrl)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
