package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reoring/jsoncol"
	"github.com/reoring/jsoncol/array"
	"github.com/reoring/jsoncol/middleware"
)

// BuildJSON builds a columnar array from the request body using opt (or
// DefaultParseOpt when zero value), stores it in the request context, and on
// malformed input aborts with 400 and the error payload.
func BuildJSON(opt jsoncol.ParseOpt) gin.HandlerFunc {
	opt = middleware.Resolve(opt)
	return func(c *gin.Context) {
		a, err := jsoncol.FromReader(c.Request.Context(), c.Request.Body, opt)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, middleware.ErrorPayload(err))
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithArray(c.Request.Context(), a))
		c.Next()
	}
}

// GetArray fetches the built array from gin.Context.
func GetArray(c *gin.Context) (array.Array, bool) {
	return middleware.ArrayFromContext(c.Request.Context())
}
