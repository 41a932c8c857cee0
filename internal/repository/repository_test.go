package repository

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/intervue/internal/model"
	"github.com/lshigami/intervue/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createQuestion(t *testing.T, repo TechnicalQuestionRepository, stack, difficulty, qType string, premium bool) *model.TechnicalQuestion {
	t.Helper()
	q := &model.TechnicalQuestion{
		QuestionText:    stack + " " + difficulty + " question",
		QuestionType:    qType,
		TechStack:       stack,
		DifficultyLevel: difficulty,
		IsPremium:       premium,
	}
	require.NoError(t, repo.Create(context.Background(), q))
	return q
}

func TestResumeRepositoryOrderAndQuestions(t *testing.T) {
	ctx := context.Background()
	repo := NewResumeRepository(testutil.NewTestDB(t))

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"b-second", "a-first", "c-third"} {
		require.NoError(t, repo.Create(ctx, &model.Resume{
			ID:       id,
			FileName: id + ".pdf",
			FileType: ".pdf",
			ParsedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	resumes, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, resumes, 3)
	assert.Equal(t, "b-second", resumes[0].ID)
	assert.Equal(t, "a-first", resumes[1].ID)
	assert.Equal(t, "c-third", resumes[2].ID)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.CreateQuestions(ctx, []model.ResumeQuestion{
		{ResumeID: "a-first", Category: "General", Question: "q2", Difficulty: "Medium", Position: 2},
		{ResumeID: "a-first", Category: "React", Question: "q1", Difficulty: "Hard", Position: 1},
	}))
	require.NoError(t, repo.CreateQuestions(ctx, nil))

	questions, err := repo.FindQuestions(ctx, "a-first")
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "q1", questions[0].Question)
	assert.Equal(t, "q2", questions[1].Question)
}

func TestTechnicalQuestionRepositoryFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewTechnicalQuestionRepository(testutil.NewTestDB(t))

	createQuestion(t, repo, "React", model.DifficultyMedium, model.QuestionTypeLongAnswer, false)
	createQuestion(t, repo, "React", model.DifficultyHard, model.QuestionTypeMCQ, true)
	createQuestion(t, repo, "Go", model.DifficultyEasy, model.QuestionTypeMCQ, false)

	all, err := repo.FindAll(ctx, QuestionFilter{IncludePremium: true})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	free, err := repo.FindAll(ctx, QuestionFilter{})
	require.NoError(t, err)
	assert.Len(t, free, 2)

	react, err := repo.FindAll(ctx, QuestionFilter{TechStack: "React", IncludePremium: true})
	require.NoError(t, err)
	assert.Len(t, react, 2)

	hardMCQ, err := repo.FindAll(ctx, QuestionFilter{Difficulty: model.DifficultyHard, Type: model.QuestionTypeMCQ, IncludePremium: true})
	require.NoError(t, err)
	require.Len(t, hardMCQ, 1)
	assert.Equal(t, "React", hardMCQ[0].TechStack)

	stacks, err := repo.DistinctTechStacks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "React"}, stacks)
}

func TestTechnicalQuestionRepositoryDetails(t *testing.T) {
	ctx := context.Background()
	repo := NewTechnicalQuestionRepository(testutil.NewTestDB(t))

	q := &model.TechnicalQuestion{
		QuestionText:    "Worst case of quicksort?",
		QuestionType:    model.QuestionTypeMCQ,
		TechStack:       "Algorithms",
		DifficultyLevel: model.DifficultyHard,
		MCQOptions: []model.MCQOption{
			{OptionLabel: "B", OptionText: "O(n log n)"},
			{OptionLabel: "A", OptionText: "O(n)"},
			{OptionLabel: "C", OptionText: "O(n²)", IsCorrect: true},
		},
	}
	require.NoError(t, repo.Create(ctx, q))

	found, err := repo.FindByIDWithDetails(ctx, q.ID)
	require.NoError(t, err)
	require.Len(t, found.MCQOptions, 3)
	assert.Equal(t, "A", found.MCQOptions[0].OptionLabel)
	assert.Equal(t, "C", found.MCQOptions[2].OptionLabel)
	assert.True(t, found.MCQOptions[2].IsCorrect)
	assert.Nil(t, found.ExpectedAnswer)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserResponseRepository(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	questions := NewTechnicalQuestionRepository(db)
	repo := NewUserResponseRepository(db)

	q := createQuestion(t, questions, "Go", model.DifficultyEasy, model.QuestionTypeShortAnswer, false)

	first := &model.UserResponse{UserID: "demo-user", QuestionID: q.ID, UserAnswer: "first"}
	second := &model.UserResponse{UserID: "demo-user", QuestionID: q.ID, UserAnswer: "second"}
	other := &model.UserResponse{UserID: "someone-else", QuestionID: q.ID, UserAnswer: "other"}
	for _, r := range []*model.UserResponse{first, second, other} {
		require.NoError(t, repo.Create(ctx, r))
	}

	responses, err := repo.FindByUserID(ctx, "demo-user")
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "second", responses[0].UserAnswer)
	assert.Equal(t, "first", responses[1].UserAnswer)
	assert.Equal(t, q.QuestionText, responses[0].Question.QuestionText)

	require.NoError(t, repo.UpdateFeedback(ctx, first.ID, 82, "Solid answer"))
	updated, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.AIScore)
	assert.Equal(t, 82, *updated.AIScore)
	assert.Equal(t, "Solid answer", updated.AIFeedback)

	assert.ErrorIs(t, repo.UpdateFeedback(ctx, 12345, 50, "x"), gorm.ErrRecordNotFound)
}
