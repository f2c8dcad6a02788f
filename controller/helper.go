package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/videomotion/video-motion-api/repository"
)

// Every endpoint answers with one of these two envelopes.
type SuccessEnvelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

type ErrorEnvelope struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

func respondSuccess(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, SuccessEnvelope{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

func respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorEnvelope{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
		Errors:     []string{},
	})
}

// respondRepositoryError maps repository sentinels onto status codes;
// anything unexpected is a 500 with a generic message so internals stay
// out of response bodies.
func respondRepositoryError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondError(c, 404, notFoundMessage)
	case errors.Is(err, repository.ErrDuplicate):
		respondError(c, 409, "Resource already exists")
	case errors.Is(err, repository.ErrForbidden):
		respondError(c, 403, "You do not own this resource")
	default:
		respondError(c, 500, "Internal server error")
	}
}
