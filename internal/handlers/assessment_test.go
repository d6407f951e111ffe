package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/growthbridge/growthbridge-backend/internal/apierr"
	"github.com/growthbridge/growthbridge-backend/internal/logger"
	"github.com/growthbridge/growthbridge-backend/internal/services"
	"github.com/growthbridge/growthbridge-backend/internal/types"
)

type stubAssessmentService struct {
	pending []*types.AssessmentQuestion
	outcome *services.SubmitOutcome
	results []*types.AssessmentResult
	err     error

	gotUserID  uuid.UUID
	gotAnswers []services.AnswerInput
}

func (s *stubAssessmentService) GetPendingQuestions(ctx context.Context, userID uuid.UUID) ([]*types.AssessmentQuestion, error) {
	s.gotUserID = userID
	return s.pending, s.err
}

func (s *stubAssessmentService) SubmitAnswers(ctx context.Context, userID uuid.UUID, answers []services.AnswerInput) (*services.SubmitOutcome, error) {
	s.gotUserID = userID
	s.gotAnswers = answers
	return s.outcome, s.err
}

func (s *stubAssessmentService) GetResults(ctx context.Context, userID uuid.UUID) ([]*types.AssessmentResult, error) {
	s.gotUserID = userID
	return s.results, s.err
}

func newTestRouter(t *testing.T, svc services.AssessmentService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	h := NewAssessmentHandler(log, svc)
	router := gin.New()
	router.GET("/assessment/:user/pending", h.GetPending)
	router.POST("/assessment/answers", h.SubmitAnswers)
	router.GET("/assessment/:user/result", h.GetResults)
	return router
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestGetPendingRejectsInvalidUserID(t *testing.T) {
	stub := &stubAssessmentService{}
	router := newTestRouter(t, stub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/assessment/not-a-uuid/pending", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if body["success"] != false {
		t.Fatal("envelope success must be false on error")
	}
	if body["code"] != apierr.CodeValidation {
		t.Fatalf("code=%v, want %q", body["code"], apierr.CodeValidation)
	}
}

func TestSubmitAnswersRejectsMalformedBody(t *testing.T) {
	stub := &stubAssessmentService{}
	router := newTestRouter(t, stub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/assessment/answers", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", rec.Code)
	}
	if len(stub.gotAnswers) != 0 {
		t.Fatal("service must not be called for a malformed body")
	}
}

func TestSubmitAnswersReturnsOutcomeEnvelope(t *testing.T) {
	userID := uuid.New()
	questionID := uuid.New()
	stub := &stubAssessmentService{outcome: &services.SubmitOutcome{SavedCount: 1, Completed: true}}
	router := newTestRouter(t, stub)

	payload := fmt.Sprintf(`{"user_id":%q,"answers":[{"question_id":%q,"response":4}]}`, userID, questionID)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/assessment/answers", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200: %s", rec.Code, rec.Body.String())
	}
	if stub.gotUserID != userID {
		t.Fatalf("service called with user %s, want %s", stub.gotUserID, userID)
	}
	body := decodeEnvelope(t, rec)
	if body["success"] != true {
		t.Fatal("envelope success must be true")
	}
	if _, ok := body["timestamp"]; !ok {
		t.Fatal("envelope must carry a timestamp")
	}
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("envelope data missing: %v", body)
	}
	if data["saved_count"] != float64(1) || data["completed"] != true {
		t.Fatalf("unexpected outcome payload: %v", data)
	}
}

func TestGetResultsMapsNotFound(t *testing.T) {
	stub := &stubAssessmentService{err: apierr.NotFound(fmt.Errorf("no assessment results"))}
	router := newTestRouter(t, stub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/assessment/"+uuid.NewString()+"/result", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if body["code"] != apierr.CodeNotFound {
		t.Fatalf("code=%v, want %q", body["code"], apierr.CodeNotFound)
	}
}
