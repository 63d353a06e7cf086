package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/shopapi/internal/domain/errors"
	"github.com/polkiloo/shopapi/internal/server/http/middleware"
)

const internalErrorDetail = "internal server error"

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrValidation), errors.Is(err, domainErrors.ErrDuplicateEmail):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes {"detail": ...} and attaches err to the context for the
// request logger. Internal failures never leak their message.
func abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = internalErrorDetail
	}
	middleware.AbortWithDetail(c, status, err, detail)
}

func abortBadRequest(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	middleware.AbortWithDetail(c, http.StatusBadRequest, nil, "invalid request body: "+err.Error())
}

func abortNotFound(c *gin.Context, detail string) {
	middleware.AbortWithDetail(c, http.StatusNotFound, nil, detail)
}
