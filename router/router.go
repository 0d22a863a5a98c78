package router

import (
	"github.com/labstack/echo/v4"

	"github.com/solvarsaurus/agriculture-programs/pkg/field/controller"
	"github.com/solvarsaurus/agriculture-programs/pkg/middleware"
)

func New(
	e *echo.Echo,
	fieldCtrl controller.FieldController,
	geoCtrl interface{ Point(echo.Context) error; Distance(echo.Context) error },
	weatherCtrl interface{ Create(echo.Context) error; List(echo.Context) error; Advise(echo.Context) error },
	alertCtrl interface{ Send(echo.Context) error; List(echo.Context) error },
	authCtrl interface{ DevLogin(echo.Context) error; WhoAmI(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	e.GET("/health", healthCtrl.Health)
	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)

	api.POST("/fields", fieldCtrl.Create)
	api.GET("/fields", fieldCtrl.List)
	api.POST("/fields/import", fieldCtrl.Import)
	api.GET("/fields/primary", fieldCtrl.Primary)
	api.GET("/fields/secondary", fieldCtrl.Secondary)
	api.GET("/fields/:id", fieldCtrl.Get)
	api.GET("/fields/:id/contains", fieldCtrl.Contains)
	api.GET("/fields/:id/boundaries", fieldCtrl.Boundaries)

	api.POST("/fields/:id/weather", weatherCtrl.Create)
	api.GET("/fields/:id/weather", weatherCtrl.List)
	api.GET("/weather/advisory", weatherCtrl.Advise)

	api.POST("/geo/point", geoCtrl.Point)
	api.POST("/geo/distance", geoCtrl.Distance)

	api.POST("/alerts", alertCtrl.Send)
	api.GET("/alerts", alertCtrl.List)
	return e
}
