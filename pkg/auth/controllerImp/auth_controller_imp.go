package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/solvarsaurus/agriculture-programs/pkg/auth/controller"
	"github.com/solvarsaurus/agriculture-programs/pkg/middleware"
)

type authCtrl struct{}

func NewAuthController() controller.AuthController { return &authCtrl{} }

func (h *authCtrl) DevLogin(c echo.Context) error {
	uid := c.QueryParam("uid")
	if uid == "" {
		uid = middleware.DefaultUID
	}
	c.SetCookie(&http.Cookie{Name: middleware.CookieName, Value: uid, Path: "/"})
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}
