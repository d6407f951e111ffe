package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/growthbridge/growthbridge-backend/internal/apierr"
	"github.com/growthbridge/growthbridge-backend/internal/logger"
	"github.com/growthbridge/growthbridge-backend/internal/repos"
	"github.com/growthbridge/growthbridge-backend/internal/types"
)

type assessmentFixture struct {
	db          *gorm.DB
	svc         AssessmentService
	answerRepo  repos.AssessmentAnswerRepo
	resultRepo  repos.AssessmentResultRepo
	profileRepo repos.UserProfileRepo
}

func newAssessmentFixture(t *testing.T) *assessmentFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&types.User{},
		&types.UserProfile{},
		&types.Dimension{},
		&types.AssessmentQuestion{},
		&types.AssessmentAnswer{},
		&types.LevelDescription{},
		&types.AssessmentResult{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}

	questionRepo := repos.NewAssessmentQuestionRepo(db, log)
	answerRepo := repos.NewAssessmentAnswerRepo(db, log)
	descriptionRepo := repos.NewLevelDescriptionRepo(db, log)
	resultRepo := repos.NewAssessmentResultRepo(db, log)
	profileRepo := repos.NewUserProfileRepo(db, log)

	svc := NewAssessmentService(db, log, questionRepo, answerRepo, descriptionRepo, resultRepo, profileRepo)
	return &assessmentFixture{
		db:          db,
		svc:         svc,
		answerRepo:  answerRepo,
		resultRepo:  resultRepo,
		profileRepo: profileRepo,
	}
}

func (f *assessmentFixture) seedDimension(t *testing.T, key string, position, questionCount int) (*types.Dimension, []*types.AssessmentQuestion) {
	t.Helper()
	dimension := &types.Dimension{
		ID:       uuid.New(),
		Key:      key,
		Name:     key,
		Position: position,
	}
	if err := f.db.Create(dimension).Error; err != nil {
		t.Fatalf("create dimension: %v", err)
	}

	questions := make([]*types.AssessmentQuestion, 0, questionCount)
	for i := 0; i < questionCount; i++ {
		q := &types.AssessmentQuestion{
			ID:          uuid.New(),
			DimensionID: dimension.ID,
			Prompt:      fmt.Sprintf("%s question %d", key, i),
			Position:    position*100 + i,
		}
		if err := f.db.Create(q).Error; err != nil {
			t.Fatalf("create question: %v", err)
		}
		questions = append(questions, q)
	}

	for _, level := range []string{types.LevelLow, types.LevelModerate, types.LevelHigh} {
		d := &types.LevelDescription{
			ID:          uuid.New(),
			DimensionID: dimension.ID,
			Level:       level,
			Narrative:   fmt.Sprintf("%s at %s", key, level),
		}
		if err := f.db.Create(d).Error; err != nil {
			t.Fatalf("create level description: %v", err)
		}
	}
	return dimension, questions
}

func (f *assessmentFixture) answerCount(t *testing.T, userID uuid.UUID) int64 {
	t.Helper()
	count, err := f.answerRepo.CountByUserID(context.Background(), nil, userID)
	if err != nil {
		t.Fatalf("count answers: %v", err)
	}
	return count
}

func (f *assessmentFixture) resultCount(t *testing.T, userID uuid.UUID) int64 {
	t.Helper()
	count, err := f.resultRepo.CountByUserID(context.Background(), nil, userID)
	if err != nil {
		t.Fatalf("count results: %v", err)
	}
	return count
}

func TestSubmitAnswersPartialBatch(t *testing.T) {
	f := newAssessmentFixture(t)
	_, questions := f.seedDimension(t, "controller", 0, 2)
	userID := uuid.New()

	outcome, err := f.svc.SubmitAnswers(context.Background(), userID, []AnswerInput{
		{QuestionID: questions[0].ID, Response: 5},
	})
	if err != nil {
		t.Fatalf("SubmitAnswers: %v", err)
	}
	if outcome.Completed {
		t.Fatal("one of two questions answered, submission should not be completed")
	}
	if outcome.SavedCount != 1 {
		t.Fatalf("saved_count=%d, want 1", outcome.SavedCount)
	}
	if got := f.answerCount(t, userID); got != 1 {
		t.Fatalf("answer rows=%d, want 1", got)
	}
	if got := f.resultCount(t, userID); got != 0 {
		t.Fatalf("result rows=%d, want 0 before completion", got)
	}

	pending, err := f.svc.GetPendingQuestions(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetPendingQuestions: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != questions[1].ID {
		t.Fatalf("pending should hold exactly the unanswered question")
	}
}

func TestSubmitAnswersCompletesAndProjects(t *testing.T) {
	f := newAssessmentFixture(t)
	dimension, questions := f.seedDimension(t, "pleaser", 0, 2)
	userID := uuid.New()

	outcome, err := f.svc.SubmitAnswers(context.Background(), userID, []AnswerInput{
		{QuestionID: questions[0].ID, Response: 5},
		{QuestionID: questions[1].ID, Response: 4},
	})
	if err != nil {
		t.Fatalf("SubmitAnswers: %v", err)
	}
	if !outcome.Completed {
		t.Fatal("all catalog questions answered, submission should be completed")
	}

	results, err := f.svc.GetResults(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetResults: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results=%d, want 1", len(results))
	}
	result := results[0]
	if result.DimensionID != dimension.ID {
		t.Fatalf("result dimension=%s, want %s", result.DimensionID, dimension.ID)
	}
	if result.Score != 4.5 {
		t.Fatalf("score=%v, want 4.5", result.Score)
	}
	if result.Level != types.LevelHigh {
		t.Fatalf("level=%q, want %q", result.Level, types.LevelHigh)
	}
	if result.Description == nil || result.Description.Level != types.LevelHigh {
		t.Fatal("result must reference the High description for its dimension")
	}

	profile, err := f.profileRepo.GetByUserID(context.Background(), nil, userID)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if profile == nil || profile.LatestResultID == nil {
		t.Fatal("completion must project a latest result pointer onto the profile")
	}
	if *profile.LatestResultID != result.ID {
		t.Fatalf("profile points at %s, want %s", *profile.LatestResultID, result.ID)
	}
}

func TestSubmitAnswersIdempotentResubmission(t *testing.T) {
	f := newAssessmentFixture(t)
	_, questions := f.seedDimension(t, "avoider", 0, 2)
	userID := uuid.New()
	batch := []AnswerInput{
		{QuestionID: questions[0].ID, Response: 5},
		{QuestionID: questions[1].ID, Response: 4},
	}

	if _, err := f.svc.SubmitAnswers(context.Background(), userID, batch); err != nil {
		t.Fatalf("first submission: %v", err)
	}
	before, err := f.svc.GetResults(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetResults: %v", err)
	}

	outcome, err := f.svc.SubmitAnswers(context.Background(), userID, batch)
	if err != nil {
		t.Fatalf("resubmission: %v", err)
	}
	if !outcome.Completed {
		t.Fatal("resubmission of a complete inventory should still report completed")
	}
	after, err := f.svc.GetResults(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetResults after resubmission: %v", err)
	}

	if got := f.answerCount(t, userID); got != 2 {
		t.Fatalf("answer rows=%d after resubmission, want 2 (upsert, not append)", got)
	}
	if len(after) != len(before) {
		t.Fatalf("result rows changed from %d to %d", len(before), len(after))
	}
	if after[0].ID != before[0].ID || after[0].Score != before[0].Score || after[0].Level != before[0].Level {
		t.Fatal("resubmitting identical answers must leave the aggregate result identical")
	}
}

func TestSubmitAnswersExactMeanModerate(t *testing.T) {
	f := newAssessmentFixture(t)
	_, questions := f.seedDimension(t, "inner_critic", 0, 3)
	userID := uuid.New()

	outcome, err := f.svc.SubmitAnswers(context.Background(), userID, []AnswerInput{
		{QuestionID: questions[0].ID, Response: 3},
		{QuestionID: questions[1].ID, Response: 3},
		{QuestionID: questions[2].ID, Response: 3},
	})
	if err != nil {
		t.Fatalf("SubmitAnswers: %v", err)
	}
	if !outcome.Completed {
		t.Fatal("submission should be completed")
	}

	results, err := f.svc.GetResults(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetResults: %v", err)
	}
	if results[0].Score != 3.0 {
		t.Fatalf("score=%v, want exactly 3.0", results[0].Score)
	}
	if results[0].Level != types.LevelModerate {
		t.Fatalf("level=%q, want %q", results[0].Level, types.LevelModerate)
	}
}

func TestAggregationFailureRollsBackBatch(t *testing.T) {
	f := newAssessmentFixture(t)
	dimension, questions := f.seedDimension(t, "controller", 0, 2)
	userID := uuid.New()

	// Simulate the reference-data gap: drop the description the classifier
	// will resolve for a [5,4] batch.
	if err := f.db.Where("dimension_id = ? AND level = ?", dimension.ID, types.LevelHigh).
		Delete(&types.LevelDescription{}).Error; err != nil {
		t.Fatalf("delete description: %v", err)
	}

	_, err := f.svc.SubmitAnswers(context.Background(), userID, []AnswerInput{
		{QuestionID: questions[0].ID, Response: 5},
		{QuestionID: questions[1].ID, Response: 4},
	})
	if err == nil {
		t.Fatal("missing level description must abort the submission")
	}
	if apiErr := apierr.From(err); apiErr.Code != apierr.CodeConsistency {
		t.Fatalf("error code=%q, want %q", apiErr.Code, apierr.CodeConsistency)
	}

	if got := f.answerCount(t, userID); got != 0 {
		t.Fatalf("answer rows=%d after rollback, want 0 (no partial writes)", got)
	}
	if got := f.resultCount(t, userID); got != 0 {
		t.Fatalf("result rows=%d after rollback, want 0", got)
	}
}

func TestSubmitAnswersValidation(t *testing.T) {
	f := newAssessmentFixture(t)
	_, questions := f.seedDimension(t, "pleaser", 0, 1)
	userID := uuid.New()

	cases := []struct {
		name    string
		userID  uuid.UUID
		answers []AnswerInput
	}{
		{name: "missing_user", userID: uuid.Nil, answers: []AnswerInput{{QuestionID: questions[0].ID, Response: 3}}},
		{name: "empty_batch", userID: userID, answers: nil},
		{name: "response_below_range", userID: userID, answers: []AnswerInput{{QuestionID: questions[0].ID, Response: 0}}},
		{name: "response_above_range", userID: userID, answers: []AnswerInput{{QuestionID: questions[0].ID, Response: 6}}},
		{name: "missing_question_id", userID: userID, answers: []AnswerInput{{Response: 3}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.SubmitAnswers(context.Background(), tc.userID, tc.answers)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if apiErr := apierr.From(err); apiErr.Code != apierr.CodeValidation {
				t.Fatalf("error code=%q, want %q", apiErr.Code, apierr.CodeValidation)
			}
		})
	}

	if got := f.answerCount(t, userID); got != 0 {
		t.Fatalf("validation failures must not write, found %d answer rows", got)
	}
}

func TestGetResultsBeforeCompletion(t *testing.T) {
	f := newAssessmentFixture(t)
	f.seedDimension(t, "avoider", 0, 2)

	_, err := f.svc.GetResults(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected not found before any completion")
	}
	if apiErr := apierr.From(err); apiErr.Code != apierr.CodeNotFound {
		t.Fatalf("error code=%q, want %q", apiErr.Code, apierr.CodeNotFound)
	}
}

func TestResubmissionAfterCompletionRecomputes(t *testing.T) {
	f := newAssessmentFixture(t)
	_, questions := f.seedDimension(t, "hyper_achiever", 0, 2)
	userID := uuid.New()

	if _, err := f.svc.SubmitAnswers(context.Background(), userID, []AnswerInput{
		{QuestionID: questions[0].ID, Response: 5},
		{QuestionID: questions[1].ID, Response: 4},
	}); err != nil {
		t.Fatalf("first submission: %v", err)
	}
	before, err := f.svc.GetResults(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetResults: %v", err)
	}

	// Overwrite one answer after completion; pending stays 0 so the
	// aggregate is recomputed in place.
	outcome, err := f.svc.SubmitAnswers(context.Background(), userID, []AnswerInput{
		{QuestionID: questions[0].ID, Response: 1},
	})
	if err != nil {
		t.Fatalf("overwrite submission: %v", err)
	}
	if !outcome.Completed {
		t.Fatal("inventory is still complete after the overwrite")
	}

	after, err := f.svc.GetResults(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetResults after overwrite: %v", err)
	}
	if after[0].ID != before[0].ID {
		t.Fatal("recomputation must update the existing aggregate row, not insert a new one")
	}
	if after[0].Score != 2.5 {
		t.Fatalf("score=%v after overwrite, want 2.5", after[0].Score)
	}
	if after[0].Level != types.LevelModerate {
		t.Fatalf("level=%q after overwrite, want %q", after[0].Level, types.LevelModerate)
	}
}

func TestProjectionPointsAtLowestPositionDimension(t *testing.T) {
	f := newAssessmentFixture(t)
	first, firstQuestions := f.seedDimension(t, "controller", 0, 1)
	_, secondQuestions := f.seedDimension(t, "pleaser", 1, 1)
	userID := uuid.New()

	if _, err := f.svc.SubmitAnswers(context.Background(), userID, []AnswerInput{
		{QuestionID: firstQuestions[0].ID, Response: 2},
		{QuestionID: secondQuestions[0].ID, Response: 5},
	}); err != nil {
		t.Fatalf("SubmitAnswers: %v", err)
	}

	profile, err := f.profileRepo.GetByUserID(context.Background(), nil, userID)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if profile == nil || profile.LatestResult == nil {
		t.Fatal("profile projection missing after completion")
	}
	if profile.LatestResult.DimensionID != first.ID {
		t.Fatalf("projection points at dimension %s, want lowest-position dimension %s",
			profile.LatestResult.DimensionID, first.ID)
	}
}
