package service

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/lshigami/intervue/internal/model"
)

// Feedback is the scored evaluation of one answer. Scores are percentages.
type Feedback struct {
	Overall           int
	TechnicalAccuracy int
	Completeness      int
	Clarity           int
	Summary           string
	Strengths         []string
	Improvements      []string
}

type FeedbackProvider interface {
	Evaluate(ctx context.Context, question model.TechnicalQuestion, answer string) (Feedback, error)
}

type scoreRange struct{ min, max int }

var (
	technicalAccuracyRange = scoreRange{60, 95}
	completenessRange      = scoreRange{55, 95}
	clarityRange           = scoreRange{65, 95}
)

type cannedFeedback struct {
	strengths    []string
	improvements []string
}

var cannedFeedbackByStack = map[string]cannedFeedback{
	"javascript": {
		strengths: []string{
			"Clear grasp of scoping rules and how they affect variable lifetime.",
			"Good use of concrete examples to illustrate language behavior.",
		},
		improvements: []string{
			"Mention hoisting and the temporal dead zone explicitly.",
			"Discuss how closures interact with block-scoped variables.",
		},
	},
	"react": {
		strengths: []string{
			"Solid understanding of component state and rendering.",
			"Correctly identifies the most commonly used hooks.",
		},
		improvements: []string{
			"Explain the rules of hooks and why call order matters.",
			"Give an example of a custom hook that encapsulates shared logic.",
		},
	},
	"algorithms": {
		strengths: []string{
			"Reasoning about complexity is structured and easy to follow.",
		},
		improvements: []string{
			"Compare best, average and worst case behavior.",
			"Describe how pivot selection changes the outcome.",
		},
	},
	"python": {
		strengths: []string{
			"Idiomatic Python vocabulary and good use of standard library terms.",
		},
		improvements: []string{
			"Show a short code sample to back up the explanation.",
			"Mention performance trade-offs where they apply.",
		},
	},
	"java": {
		strengths: []string{
			"Good understanding of object oriented design in Java.",
		},
		improvements: []string{
			"Reference JVM specifics such as heap generations where relevant.",
			"Contrast the approach with alternatives available since Java 8.",
		},
	},
	"database": {
		strengths: []string{
			"Accurate terminology around transactions and consistency.",
		},
		improvements: []string{
			"Illustrate isolation levels with a concrete anomaly.",
			"Discuss indexing and its effect on query plans.",
		},
	},
}

var defaultCannedFeedback = cannedFeedback{
	strengths: []string{
		"The answer addresses the main point of the question.",
		"Explanation is organized and readable.",
	},
	improvements: []string{
		"Add a concrete example from real project experience.",
		"Cover edge cases and trade-offs in more depth.",
	},
}

// mockFeedbackProvider produces randomized scores and canned sentences.
// It does not look at the answer content.
type mockFeedbackProvider struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewMockFeedbackProvider(rnd *rand.Rand) FeedbackProvider {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &mockFeedbackProvider{rnd: rnd}
}

func (p *mockFeedbackProvider) Evaluate(ctx context.Context, question model.TechnicalQuestion, answer string) (Feedback, error) {
	p.mu.Lock()
	accuracy := p.between(technicalAccuracyRange)
	completeness := p.between(completenessRange)
	clarity := p.between(clarityRange)
	p.mu.Unlock()

	overall := int(math.Round(float64(accuracy+completeness+clarity) / 3))
	canned := cannedFor(question.TechStack)

	return Feedback{
		Overall:           overall,
		TechnicalAccuracy: accuracy,
		Completeness:      completeness,
		Clarity:           clarity,
		Summary:           summaryFor(overall),
		Strengths:         append([]string(nil), canned.strengths...),
		Improvements:      append([]string(nil), canned.improvements...),
	}, nil
}

func (p *mockFeedbackProvider) between(r scoreRange) int {
	return r.min + p.rnd.Intn(r.max-r.min+1)
}

func cannedFor(techStack string) cannedFeedback {
	if c, ok := cannedFeedbackByStack[strings.ToLower(strings.TrimSpace(techStack))]; ok {
		return c
	}
	return defaultCannedFeedback
}

func summaryFor(overall int) string {
	switch {
	case overall >= 85:
		return "Excellent answer with strong technical depth."
	case overall >= 70:
		return "Good answer that covers the key concepts."
	default:
		return "Reasonable attempt, but several key points are missing."
	}
}

// FormatFeedback renders feedback as the text stored on a response.
func FormatFeedback(f Feedback) string {
	var b strings.Builder
	b.WriteString(f.Summary)
	if len(f.Strengths) > 0 {
		b.WriteString("\n\nStrengths:\n")
		for _, s := range f.Strengths {
			b.WriteString("- " + s + "\n")
		}
	}
	if len(f.Improvements) > 0 {
		b.WriteString("\nImprovements:\n")
		for _, s := range f.Improvements {
			b.WriteString("- " + s + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}
