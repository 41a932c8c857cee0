package service

import (
	"testing"

	"github.com/lshigami/intervue/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categories(qs []dto.GeneratedQuestion) []string {
	out := make([]string, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.Category)
	}
	return out
}

func TestGenerateQuestionsNoKeywords(t *testing.T) {
	for _, text := range []string{"", "Gardener with ten years of experience"} {
		got := GenerateQuestions(text)
		assert.Equal(t, generalQuestions, got)
	}
}

func TestGenerateQuestionsReact(t *testing.T) {
	got := GenerateQuestions("react")
	require.Len(t, got, 5)
	assert.Equal(t, []string{"React", "React", "General", "Problem Solving", "Best Practices"}, categories(got))
	assert.Equal(t, "What are React Hooks and how do they differ from class components?", got[0].Question)
	assert.Equal(t, "Medium", got[0].Difficulty)
	assert.Equal(t, "Explain the React component lifecycle methods.", got[1].Question)
	assert.Equal(t, "Hard", got[1].Difficulty)
}

func TestGenerateQuestionsCaseInsensitiveAndOrdered(t *testing.T) {
	text := "Senior engineer. Kubernetes, Docker, AWS, PostgreSQL, Python, REACT"
	got := GenerateQuestions(text)
	assert.Equal(t, []string{
		"React", "React",
		"Python", "Python",
		"Database", "Database",
		"Cloud Computing", "AWS",
		"DevOps",
		"DevOps",
		"Leadership", "Architecture",
		"General", "Problem Solving", "Best Practices",
	}, categories(got))
}

func TestGenerateQuestionsSubstringMatching(t *testing.T) {
	// "javascript" contains "java"
	got := GenerateQuestions("JavaScript")
	assert.Equal(t, []string{"JavaScript", "JavaScript", "Java", "Java", "General", "Problem Solving", "Best Practices"}, categories(got))

	// "k8s" and "container" aliases
	got = GenerateQuestions("k8s container")
	assert.Equal(t, []string{"DevOps", "DevOps", "General", "Problem Solving", "Best Practices"}, categories(got))
}

func TestGenerateQuestionsIsPure(t *testing.T) {
	text := "Lead SQL developer using Java and cloud services"
	first := GenerateQuestions(text)
	first[0].Question = "mutated"
	second := GenerateQuestions(text)
	assert.NotEqual(t, "mutated", second[0].Question)
	assert.Equal(t, GenerateQuestions(text), second)
}
