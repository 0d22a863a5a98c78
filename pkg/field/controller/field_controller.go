package controller

import "github.com/labstack/echo/v4"

type FieldController interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	List(c echo.Context) error
	Import(c echo.Context) error
	Contains(c echo.Context) error
	Boundaries(c echo.Context) error
	Primary(c echo.Context) error
	Secondary(c echo.Context) error
}
