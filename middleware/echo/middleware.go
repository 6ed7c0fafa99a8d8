package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reoring/jsoncol"
	"github.com/reoring/jsoncol/array"
	"github.com/reoring/jsoncol/middleware"
)

// BuildJSON builds a columnar array from the request body with opt (or
// DefaultParseOpt when zero value), stores it in the request context, and on
// malformed input returns 400 with the error payload.
func BuildJSON(opt jsoncol.ParseOpt) echo.MiddlewareFunc {
	opt = middleware.Resolve(opt)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			a, err := jsoncol.FromReader(req.Context(), req.Body, opt)
			if err != nil {
				if req.Context().Err() != nil {
					return err
				}
				return c.JSON(http.StatusBadRequest, middleware.ErrorPayload(err))
			}
			c.SetRequest(req.WithContext(middleware.ContextWithArray(req.Context(), a)))
			return next(c)
		}
	}
}

// GetArray fetches the built array from echo.Context.
func GetArray(c echo.Context) (array.Array, bool) {
	return middleware.ArrayFromContext(c.Request().Context())
}
