package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/lshigami/intervue/internal/apperror"
	"github.com/lshigami/intervue/internal/dto"
	"github.com/lshigami/intervue/internal/model"
	"github.com/lshigami/intervue/internal/repository"
	"github.com/lshigami/intervue/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quicksortQuestion() *model.TechnicalQuestion {
	return &model.TechnicalQuestion{
		QuestionText:    "What is the time complexity of quicksort in the worst case?",
		QuestionType:    model.QuestionTypeMCQ,
		TechStack:       "Algorithms",
		DifficultyLevel: model.DifficultyHard,
		Topic:           "Sorting Algorithms",
		MCQOptions: []model.MCQOption{
			{OptionLabel: "A", OptionText: "O(n)"},
			{OptionLabel: "B", OptionText: "O(n log n)"},
			{OptionLabel: "C", OptionText: "O(n²)", IsCorrect: true},
			{OptionLabel: "D", OptionText: "O(2ⁿ)"},
		},
	}
}

func hooksQuestion() *model.TechnicalQuestion {
	return &model.TechnicalQuestion{
		QuestionText:    "Explain the concept of React hooks and give examples of commonly used hooks.",
		QuestionType:    model.QuestionTypeLongAnswer,
		TechStack:       "React",
		DifficultyLevel: model.DifficultyMedium,
		Topic:           "React Hooks",
		IsPremium:       true,
		ExpectedAnswer: &model.ExpectedAnswer{
			SampleAnswer:    "React hooks are functions that let you use state in functional components.",
			KeyPoints:       []string{"useState", "useEffect"},
			ScoringCriteria: "Understanding of hooks concept, examples, and use cases",
		},
	}
}

func TestCheckMCQ(t *testing.T) {
	options := []model.MCQOption{
		{ID: 7, OptionLabel: "A"},
		{ID: 8, OptionLabel: "B", IsCorrect: true},
		{ID: 9, OptionLabel: "C"},
	}

	ok, correct := CheckMCQ(options, "8")
	assert.True(t, ok)
	require.NotNil(t, correct)
	assert.Equal(t, uint(8), correct.ID)

	for _, selected := range []string{"7", "9", "", "08", "B"} {
		ok, correct = CheckMCQ(options, selected)
		assert.False(t, ok, selected)
		require.NotNil(t, correct)
		assert.Equal(t, "B", correct.OptionLabel)
	}

	ok, correct = CheckMCQ([]model.MCQOption{{ID: 1}, {ID: 2}}, "1")
	assert.False(t, ok)
	assert.Nil(t, correct)
}

func TestTechnicalQuestionServiceList(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewTechnicalQuestionRepository(testutil.NewTestDB(t))
	require.NoError(t, repo.Create(ctx, quicksortQuestion()))
	require.NoError(t, repo.Create(ctx, hooksQuestion()))
	svc := NewTechnicalQuestionService(repo)

	all, err := svc.List(ctx, dto.QuestionListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	noPremium := false
	free, err := svc.List(ctx, dto.QuestionListQuery{IncludePremium: &noPremium})
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, "Algorithms", free[0].TechStack)

	react, err := svc.List(ctx, dto.QuestionListQuery{TechStack: "React", Difficulty: "medium"})
	require.NoError(t, err)
	require.Len(t, react, 1)
	assert.True(t, react[0].IsPremium)

	none, err := svc.List(ctx, dto.QuestionListQuery{TechStack: "Rust"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	stacks, err := svc.TechStacks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Algorithms", "React"}, stacks)
}

func TestTechnicalQuestionServiceDetails(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewTechnicalQuestionRepository(testutil.NewTestDB(t))
	mcq := quicksortQuestion()
	free := hooksQuestion()
	require.NoError(t, repo.Create(ctx, mcq))
	require.NoError(t, repo.Create(ctx, free))
	svc := NewTechnicalQuestionService(repo)

	details, err := svc.Details(ctx, mcq.ID)
	require.NoError(t, err)
	assert.Equal(t, mcq.QuestionText, details.Question.QuestionText)
	require.Len(t, details.MCQOptions, 4)
	assert.Nil(t, details.ExpectedAnswer)

	raw, err := json.Marshal(details)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "is_correct")

	details, err = svc.Details(ctx, free.ID)
	require.NoError(t, err)
	assert.Empty(t, details.MCQOptions)
	require.NotNil(t, details.ExpectedAnswer)
	assert.Equal(t, []string{"useState", "useEffect"}, details.ExpectedAnswer.KeyPoints)

	_, err = svc.Details(ctx, 4242)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}
