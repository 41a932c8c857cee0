package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/intervue/config"
	"github.com/lshigami/intervue/internal/apperror"
	"github.com/lshigami/intervue/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// textGenerator is the part of *genai.GenerativeModel the provider uses.
type textGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type geminiFeedbackProvider struct {
	client   textGenerator
	fallback FeedbackProvider
}

// NewFeedbackProvider returns the provider selected by FEEDBACK_PROVIDER.
// Gemini without an API key degrades to the mock provider.
func NewFeedbackProvider(cfg *config.Config) (FeedbackProvider, error) {
	mock := NewMockFeedbackProvider(nil)
	if cfg.Feedback.Provider != "gemini" {
		log.Info().Msg("Using mock feedback provider")
		return mock, nil
	}
	if cfg.Feedback.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Falling back to mock feedback provider.")
		return &geminiFeedbackProvider{fallback: mock}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Feedback.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	log.Info().Str("model", cfg.Feedback.GeminiModel).Msg("Using Gemini feedback provider")
	return &geminiFeedbackProvider{client: client.GenerativeModel(cfg.Feedback.GeminiModel), fallback: mock}, nil
}

func (p *geminiFeedbackProvider) Evaluate(ctx context.Context, question model.TechnicalQuestion, answer string) (Feedback, error) {
	if p.client == nil {
		return p.fallback.Evaluate(ctx, question, answer)
	}

	resp, err := p.client.GenerateContent(ctx, genai.Text(buildFeedbackPrompt(question, answer)))
	if err != nil {
		log.Error().Err(err).Uint("question_id", question.ID).Msg("Gemini API error during evaluation")
		return Feedback{}, apperror.Wrap(apperror.KindNetworkFailure, "AI feedback service unavailable", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return Feedback{}, apperror.New(apperror.KindNetworkFailure, "AI feedback service returned an empty response")
	}

	var full strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			full.WriteString(string(txt))
		}
	}

	f, err := parseGeminiFeedback(full.String())
	if err != nil {
		log.Warn().Err(err).Str("raw_response", full.String()).Msg("Failed to parse Gemini feedback")
		return Feedback{}, apperror.Wrap(apperror.KindNetworkFailure, "AI feedback could not be parsed", err)
	}
	return f, nil
}

func buildFeedbackPrompt(q model.TechnicalQuestion, answer string) string {
	var b strings.Builder
	b.WriteString("You are a senior software engineer conducting a technical interview.\n")
	b.WriteString(fmt.Sprintf("Evaluate the candidate's answer to this %s question (%s, difficulty %s).\n\n", q.TechStack, q.QuestionType, q.DifficultyLevel))
	b.WriteString("Question:\n---\n")
	b.WriteString(q.QuestionText)
	b.WriteString("\n---\n\n")
	if q.ExpectedAnswer != nil {
		b.WriteString("Reference answer:\n---\n")
		b.WriteString(q.ExpectedAnswer.SampleAnswer)
		b.WriteString("\n---\n")
		if len(q.ExpectedAnswer.KeyPoints) > 0 {
			b.WriteString("Key points to look for:\n")
			for _, kp := range q.ExpectedAnswer.KeyPoints {
				b.WriteString("- " + kp + "\n")
			}
		}
		if q.ExpectedAnswer.ScoringCriteria != "" {
			b.WriteString("Scoring criteria: " + q.ExpectedAnswer.ScoringCriteria + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString("Candidate's answer:\n---\n")
	b.WriteString(answer)
	b.WriteString("\n---\n\n")
	b.WriteString(`Format your response strictly as:
Score: [overall score from 0 to 100]
Feedback:
[Detailed, constructive feedback: strong points first, then concrete improvements]
`)
	return b.String()
}

// parseGeminiFeedback reads the "Score:"/"Feedback:" layout requested by the prompt.
func parseGeminiFeedback(raw string) (Feedback, error) {
	scoreStr, feedback, err := parseScoreAndFeedback(raw)
	if err != nil {
		return Feedback{}, err
	}
	if i := strings.Index(scoreStr, "/"); i != -1 {
		scoreStr = scoreStr[:i]
	}
	score, err := strconv.ParseFloat(strings.TrimSuffix(scoreStr, "%"), 64)
	if err != nil {
		return Feedback{}, fmt.Errorf("could not parse score value (%q): %w", scoreStr, err)
	}
	overall := int(math.Round(math.Max(0, math.Min(100, score))))
	return Feedback{
		Overall:           overall,
		TechnicalAccuracy: overall,
		Completeness:      overall,
		Clarity:           overall,
		Summary:           feedback,
	}, nil
}

func parseScoreAndFeedback(raw string) (scoreStr string, feedbackStr string, err error) {
	const scorePrefix = "Score:"
	const feedbackPrefix = "Feedback:"

	scoreIndex := strings.Index(raw, scorePrefix)
	if scoreIndex == -1 {
		return "", raw, fmt.Errorf("response does not contain %q prefix", scorePrefix)
	}

	rest := raw[scoreIndex+len(scorePrefix):]
	if nl := strings.Index(rest, "\n"); nl != -1 {
		scoreStr = strings.TrimSpace(rest[:nl])
		rest = rest[nl+1:]
	} else {
		scoreStr = strings.TrimSpace(rest)
		rest = ""
	}
	if parts := strings.Fields(scoreStr); len(parts) > 0 {
		scoreStr = parts[0]
	}

	if fi := strings.Index(rest, feedbackPrefix); fi != -1 {
		feedbackStr = strings.TrimSpace(rest[fi+len(feedbackPrefix):])
	} else {
		feedbackStr = strings.TrimSpace(rest)
	}
	if feedbackStr == "" {
		feedbackStr = "Feedback not found in the expected format after the score."
	}
	return scoreStr, feedbackStr, nil
}
