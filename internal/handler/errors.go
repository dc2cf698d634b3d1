package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: code, Message: message})
}

func respondBadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, "invalid_request", message)
}

// respondServiceError maps a service failure onto the HTTP status the client
// should act on.
func respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrSourceUnavailable) {
		respondError(c, http.StatusBadGateway, "source_unavailable", "activity source unavailable")
		return
	}
	respondError(c, http.StatusInternalServerError, "internal_error", "internal server error")
}
