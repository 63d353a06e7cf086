package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/shopapi/internal/server/http/dto"
)

// AbortWithDetail attaches err to the context for the request logger and
// writes {"detail": detail} with the given status.
func AbortWithDetail(c *gin.Context, status int, err error, detail string) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Detail: detail})
}
