package middleware

import (
	"giglane/pkg/errutil"

	"github.com/gin-gonic/gin"
)

// Error translates errutil.BaseError values attached via c.Error into
// JSON responses with the kind's HTTP status.
func Error() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		err := c.Errors.Last()
		if err == nil {
			return
		}

		if v, ok := err.Err.(errutil.BaseError); ok {
			c.JSON(v.Code.HTTPStatus(), v.JSON())
			return
		}

		c.JSON(errutil.KindInternal.HTTPStatus(), gin.H{
			"error": gin.H{"code": errutil.KindInternal, "message": err.Error()},
		})
	}
}
