package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	CookieName = "FARM_UID"
	DefaultUID = "U_DEV_DEFAULT"
)

// DevLogin resolves the caller uid from the cookie, then ?uid=, then the default,
// and stores it under "uid" in the echo context.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie(CookieName); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				uid = c.QueryParam("uid")
				if uid == "" {
					uid = DefaultUID
				}
				c.SetCookie(&http.Cookie{Name: CookieName, Value: uid, Path: "/"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
