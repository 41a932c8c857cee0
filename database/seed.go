package database

import (
	_ "embed"
	"fmt"

	"github.com/lshigami/intervue/config"
	"github.com/lshigami/intervue/internal/model"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed seed/questions.yaml
var seedQuestionsYAML []byte

type seedFile struct {
	Questions []seedQuestion `yaml:"questions"`
}

type seedQuestion struct {
	QuestionText    string       `yaml:"question_text"`
	QuestionType    string       `yaml:"question_type"`
	TechStack       string       `yaml:"tech_stack"`
	DifficultyLevel string       `yaml:"difficulty_level"`
	Topic           string       `yaml:"topic"`
	IsPremium       bool         `yaml:"is_premium"`
	Options         []seedOption `yaml:"options"`
	ExpectedAnswer  *seedAnswer  `yaml:"expected_answer"`
}

type seedOption struct {
	Label   string `yaml:"label"`
	Text    string `yaml:"text"`
	Correct bool   `yaml:"correct"`
}

type seedAnswer struct {
	SampleAnswer    string   `yaml:"sample_answer"`
	KeyPoints       []string `yaml:"key_points"`
	ScoringCriteria string   `yaml:"scoring_criteria"`
}

// ParseSeedQuestions decodes a question bank document into models.
func ParseSeedQuestions(data []byte) ([]model.TechnicalQuestion, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	questions := make([]model.TechnicalQuestion, 0, len(f.Questions))
	for _, sq := range f.Questions {
		q := model.TechnicalQuestion{
			QuestionText:    sq.QuestionText,
			QuestionType:    sq.QuestionType,
			TechStack:       sq.TechStack,
			DifficultyLevel: sq.DifficultyLevel,
			Topic:           sq.Topic,
			IsPremium:       sq.IsPremium,
		}
		for _, o := range sq.Options {
			q.MCQOptions = append(q.MCQOptions, model.MCQOption{
				OptionLabel: o.Label,
				OptionText:  o.Text,
				IsCorrect:   o.Correct,
			})
		}
		if sq.ExpectedAnswer != nil {
			q.ExpectedAnswer = &model.ExpectedAnswer{
				SampleAnswer:    sq.ExpectedAnswer.SampleAnswer,
				KeyPoints:       sq.ExpectedAnswer.KeyPoints,
				ScoringCriteria: sq.ExpectedAnswer.ScoringCriteria,
			}
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// SeedQuestions inserts the embedded question bank when the bank is empty.
func SeedQuestions(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.Seed {
		log.Info().Msg("Question bank seeding disabled")
		return nil
	}
	return seed(db, seedQuestionsYAML)
}

func seed(db *gorm.DB, data []byte) error {
	var count int64
	if err := db.Model(&model.TechnicalQuestion{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count technical questions: %w", err)
	}
	if count > 0 {
		log.Info().Int64("existing", count).Msg("Question bank already populated, skipping seed")
		return nil
	}

	questions, err := ParseSeedQuestions(data)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for i := range questions {
			// associations are created along with the question
			if err := tx.Create(&questions[i]).Error; err != nil {
				return fmt.Errorf("insert question %q: %w", questions[i].QuestionText, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to seed question bank")
		return err
	}
	log.Info().Int("count", len(questions)).Msg("Question bank seeded")
	return nil
}
