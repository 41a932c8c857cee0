package storage

import (
	"context"

	"github.com/lshigami/intervue/internal/model"
	"github.com/lshigami/intervue/internal/repository"
)

// DBStore keeps resumes in the relational database.
type DBStore struct {
	repo repository.ResumeRepository
}

func NewDBStore(repo repository.ResumeRepository) *DBStore {
	return &DBStore{repo: repo}
}

func (s *DBStore) Name() string { return "db" }

func (s *DBStore) Save(ctx context.Context, resume model.Resume) error {
	return s.repo.Create(ctx, &resume)
}

func (s *DBStore) List(ctx context.Context) ([]model.Resume, error) {
	return s.repo.FindAll(ctx)
}
