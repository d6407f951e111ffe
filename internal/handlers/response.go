package handlers

import (
  "net/http"
  "time"
  "github.com/gin-gonic/gin"
  "github.com/growthbridge/growthbridge-backend/internal/apierr"
)

// Envelope is the shared response shape for every endpoint.
type Envelope struct {
  Success   bool      `json:"success"`
  Message   string    `json:"message"`
  Data      any       `json:"data,omitempty"`
  Code      string    `json:"code,omitempty"`
  Timestamp time.Time `json:"timestamp"`
}

func RespondOK(c *gin.Context, message string, data any) {
  c.JSON(http.StatusOK, Envelope{
    Success:   true,
    Message:   message,
    Data:      data,
    Timestamp: time.Now().UTC(),
  })
}

// RespondError maps any error onto the envelope via the apierr taxonomy.
// Free function on purpose; handlers share it without a base type.
func RespondError(c *gin.Context, err error) {
  apiErr := apierr.From(err)
  c.JSON(apiErr.Status, Envelope{
    Success:   false,
    Message:   apiErr.Error(),
    Code:      apiErr.Code,
    Timestamp: time.Now().UTC(),
  })
}
