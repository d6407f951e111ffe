package handlers

import (
  "fmt"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/growthbridge/growthbridge-backend/internal/apierr"
  "github.com/growthbridge/growthbridge-backend/internal/requestdata"
  "github.com/growthbridge/growthbridge-backend/internal/services"
)

type UserHandler struct {
  userService     services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
  return &UserHandler{userService: userService}
}

// GET /profile/me
func (uh *UserHandler) GetMe(c *gin.Context) {
  userID, err := callerID(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  profile, err := uh.userService.GetProfile(c.Request.Context(), userID)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, "Profile retrieved", profile)
}

// PUT /profile/me
func (uh *UserHandler) UpdateMe(c *gin.Context) {
  userID, err := callerID(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  var input services.ProfileInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, apierr.Validation(fmt.Errorf("invalid request body: %w", err)))
    return
  }
  profile, err := uh.userService.UpdateProfile(c.Request.Context(), userID, input)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, "Profile updated", profile)
}

func callerID(c *gin.Context) (uuid.UUID, error) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil {
    return uuid.Nil, apierr.Validation(fmt.Errorf("no authenticated user on request"))
  }
  return rd.UserID, nil
}
