package handlers

import (
  "fmt"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/growthbridge/growthbridge-backend/internal/apierr"
  "github.com/growthbridge/growthbridge-backend/internal/logger"
  "github.com/growthbridge/growthbridge-backend/internal/services"
)

type AssessmentHandler struct {
  log           *logger.Logger
  assessmentSvc services.AssessmentService
}

func NewAssessmentHandler(log *logger.Logger, assessmentSvc services.AssessmentService) *AssessmentHandler {
  return &AssessmentHandler{
    log:           log.With("handler", "AssessmentHandler"),
    assessmentSvc: assessmentSvc,
  }
}

type submitAnswersRequest struct {
  UserID  uuid.UUID               `json:"user_id"`
  Answers []services.AnswerInput  `json:"answers"`
}

// GET /assessment/:user/pending
// List catalog questions the user has not answered yet, in catalog order.
func (h *AssessmentHandler) GetPending(c *gin.Context) {
  userID, err := parseUserParam(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  pending, err := h.assessmentSvc.GetPendingQuestions(c.Request.Context(), userID)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, "Pending questions retrieved", gin.H{
    "pending_count": len(pending),
    "questions":     pending,
  })
}

// POST /assessment/answers
// Save a batch of answers; on completion the aggregate results are
// recomputed and projected inside the same transaction.
func (h *AssessmentHandler) SubmitAnswers(c *gin.Context) {
  var req submitAnswersRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, apierr.Validation(fmt.Errorf("invalid request body: %w", err)))
    return
  }
  outcome, err := h.assessmentSvc.SubmitAnswers(c.Request.Context(), req.UserID, req.Answers)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, "Answers saved", outcome)
}

// GET /assessment/:user/result
// Persisted per-dimension aggregate results; 404 before first completion.
func (h *AssessmentHandler) GetResults(c *gin.Context) {
  userID, err := parseUserParam(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  results, err := h.assessmentSvc.GetResults(c.Request.Context(), userID)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, "Assessment results retrieved", results)
}

func parseUserParam(c *gin.Context) (uuid.UUID, error) {
  raw := c.Param("user")
  userID, err := uuid.Parse(raw)
  if err != nil {
    return uuid.Nil, apierr.Validation(fmt.Errorf("invalid user id %q", raw))
  }
  return userID, nil
}
