// Package storage keeps uploaded resume records in one or more backends.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/intervue/internal/apperror"
	"github.com/lshigami/intervue/internal/model"
	"github.com/rs/zerolog/log"
)

type ResumeStore interface {
	Name() string
	Save(ctx context.Context, resume model.Resume) error
	List(ctx context.Context) ([]model.Resume, error)
}

// Chain writes through every store in order and reads from the first store
// that answers. Stores are never reconciled with each other.
type Chain struct {
	stores []ResumeStore
}

func NewChain(stores ...ResumeStore) *Chain {
	return &Chain{stores: stores}
}

func (c *Chain) Name() string { return "chain" }

func (c *Chain) Names() []string {
	names := make([]string, 0, len(c.stores))
	for _, s := range c.stores {
		names = append(names, s.Name())
	}
	return names
}

// Save fails only when no store accepted the record.
func (c *Chain) Save(ctx context.Context, resume model.Resume) error {
	var errs []error
	saved := 0
	for _, s := range c.stores {
		if err := s.Save(ctx, resume); err != nil {
			log.Warn().Err(err).Str("store", s.Name()).Str("resume_id", resume.ID).Msg("Resume store write failed, continuing")
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		saved++
		log.Debug().Str("store", s.Name()).Str("resume_id", resume.ID).Msg("Resume stored")
	}
	if saved == 0 {
		return apperror.Wrap(apperror.KindStorageFailure, "Failed to store resume", errors.Join(errs...))
	}
	return nil
}

func (c *Chain) List(ctx context.Context) ([]model.Resume, error) {
	var errs []error
	for _, s := range c.stores {
		resumes, err := s.List(ctx)
		if err != nil {
			log.Warn().Err(err).Str("store", s.Name()).Msg("Resume store read failed, trying next")
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		if resumes == nil {
			resumes = []model.Resume{}
		}
		return resumes, nil
	}
	return nil, apperror.Wrap(apperror.KindStorageFailure, "Failed to fetch resumes", errors.Join(errs...))
}

func (c *Chain) Get(ctx context.Context, id string) (*model.Resume, error) {
	resumes, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range resumes {
		if resumes[i].ID == id {
			return &resumes[i], nil
		}
	}
	return nil, apperror.New(apperror.KindNotFound, "Resume not found")
}
