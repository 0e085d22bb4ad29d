package middleware

import (
	"github.com/labstack/echo/v4"
)

// LocaleContextKey is the echo context key holding the negotiated locale.
const LocaleContextKey = "locale"

// Negotiator picks a supported locale for an Accept-Language header.
type Negotiator interface {
	Negotiate(acceptLanguage string) string
}

// Locale stores the locale negotiated from Accept-Language on the context.
func Locale(n Negotiator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(LocaleContextKey, n.Negotiate(c.Request().Header.Get("Accept-Language")))
			return next(c)
		}
	}
}

// LocaleFrom returns the negotiated locale, or "" when the middleware did not run.
func LocaleFrom(c echo.Context) string {
	locale, _ := c.Get(LocaleContextKey).(string)
	return locale
}
