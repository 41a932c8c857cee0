package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/intervue/config"
	"github.com/lshigami/intervue/internal/dto"
	"github.com/lshigami/intervue/internal/model"
	"github.com/lshigami/intervue/internal/repository"
	"github.com/rs/zerolog/log"
)

// ResumeStore is where uploaded resumes are kept.
type ResumeStore interface {
	Save(ctx context.Context, resume model.Resume) error
	List(ctx context.Context) ([]model.Resume, error)
	Get(ctx context.Context, id string) (*model.Resume, error)
}

type UploadInput struct {
	FileName string
	MimeType string
	Size     int64
	Data     []byte
	UserID   string
}

type ResumeService interface {
	Upload(ctx context.Context, in UploadInput) (*dto.ResumeUploadResponse, error)
	List(ctx context.Context) ([]dto.ResumeDTO, error)
	Get(ctx context.Context, id string) (*dto.ResumeDTO, error)
	Questions(ctx context.Context, id string) (*dto.ResumeQuestionsResponse, error)
}

type resumeService struct {
	validator        UploadValidator
	extractor        TextExtractor
	store            ResumeStore
	repo             repository.ResumeRepository
	persistQuestions bool
	now              func() time.Time
}

func NewResumeService(cfg *config.Config, validator UploadValidator, extractor TextExtractor, store ResumeStore, repo repository.ResumeRepository) ResumeService {
	return &resumeService{
		validator:        validator,
		extractor:        extractor,
		store:            store,
		repo:             repo,
		persistQuestions: cfg.Storage.HasBackend(config.BackendDB),
		now:              time.Now,
	}
}

func (s *resumeService) Upload(ctx context.Context, in UploadInput) (*dto.ResumeUploadResponse, error) {
	fileType, err := s.validator.Validate(in.FileName, in.MimeType, in.Size, in.Data)
	if err != nil {
		return nil, err
	}

	text, err := s.extractor.Extract(ctx, in.FileName, in.Data)
	if err != nil {
		return nil, err
	}

	resume := model.Resume{
		ID:            uuid.NewString(),
		FileName:      in.FileName,
		FileType:      fileType,
		MimeType:      in.MimeType,
		SizeBytes:     in.Size,
		ExtractedText: text,
		UserID:        in.UserID,
		ParsedAt:      s.now().UTC(),
	}
	if err := s.store.Save(ctx, resume); err != nil {
		log.Error().Err(err).Str("file_name", in.FileName).Msg("Failed to store resume")
		return nil, err
	}
	log.Info().Str("resume_id", resume.ID).Str("file_name", resume.FileName).Int("text_length", len(text)).Msg("Resume uploaded and parsed")

	questions := GenerateQuestions(text)
	if s.persistQuestions {
		s.saveQuestions(ctx, resume.ID, questions)
	}

	return &dto.ResumeUploadResponse{
		Success: true,
		Message: "Resume uploaded and parsed successfully",
		Data: dto.ResumeUploadData{
			ID:            resume.ID,
			FileName:      resume.FileName,
			FileType:      resume.FileType,
			TextLength:    len(text),
			ParsedAt:      resume.ParsedAt,
			ExtractedText: text,
		},
		Questions: questions,
	}, nil
}

// saveQuestions never fails the upload.
func (s *resumeService) saveQuestions(ctx context.Context, resumeID string, questions []dto.GeneratedQuestion) {
	rows := make([]model.ResumeQuestion, 0, len(questions))
	for i, q := range questions {
		rows = append(rows, model.ResumeQuestion{
			ResumeID:   resumeID,
			Category:   q.Category,
			Question:   q.Question,
			Difficulty: q.Difficulty,
			Position:   i + 1,
		})
	}
	if err := s.repo.CreateQuestions(ctx, rows); err != nil {
		log.Warn().Err(err).Str("resume_id", resumeID).Msg("Failed to persist generated questions")
	}
}

func (s *resumeService) List(ctx context.Context) ([]dto.ResumeDTO, error) {
	resumes, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := []dto.ResumeDTO{}
	copier.Copy(&resp, &resumes)
	return resp, nil
}

func (s *resumeService) Get(ctx context.Context, id string) (*dto.ResumeDTO, error) {
	resume, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var resp dto.ResumeDTO
	copier.Copy(&resp, resume)
	return &resp, nil
}

func (s *resumeService) Questions(ctx context.Context, id string) (*dto.ResumeQuestionsResponse, error) {
	resume, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.persistQuestions {
		stored, err := s.repo.FindQuestions(ctx, resume.ID)
		if err != nil {
			log.Warn().Err(err).Str("resume_id", resume.ID).Msg("Failed to load stored questions, regenerating")
		} else if len(stored) > 0 {
			out := make([]dto.GeneratedQuestion, 0, len(stored))
			for _, q := range stored {
				out = append(out, dto.GeneratedQuestion{Category: q.Category, Question: q.Question, Difficulty: q.Difficulty})
			}
			return &dto.ResumeQuestionsResponse{ResumeID: resume.ID, Questions: out}, nil
		}
	}
	return &dto.ResumeQuestionsResponse{
		ResumeID:  resume.ID,
		Questions: GenerateQuestions(resume.ExtractedText),
	}, nil
}
