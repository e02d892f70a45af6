package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/smashcourt/smashcourt-backend/internal/pkg/apperror"
)

// Envelope is the standard wire shape for every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Data sends a success envelope with the given status and payload.
func Data(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

// List sends a success envelope for list endpoints, including the item count.
func List(c *gin.Context, status int, data any, count int) {
	c.JSON(status, Envelope{Success: true, Count: &count, Data: data})
}

// Error sends an error envelope. AppErrors determine the status code;
// anything else is treated as an internal failure.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, Envelope{Success: false, Message: appErr.Message})
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: "internal server error"})
}

// BadRequest sends a 400 error envelope with a literal message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: message})
}
