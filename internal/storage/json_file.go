package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/lshigami/intervue/internal/model"
	"github.com/rs/zerolog/log"
)

const resumesFileName = "resumes.json"

// JSONFileStore keeps every resume in a single JSON array on disk.
type JSONFileStore struct {
	path string
	mu   sync.Mutex
}

func NewJSONFileStore(dir string) *JSONFileStore {
	return &JSONFileStore{path: filepath.Join(dir, resumesFileName)}
}

func (s *JSONFileStore) Name() string { return "file" }

func (s *JSONFileStore) Path() string { return s.path }

func (s *JSONFileStore) Save(ctx context.Context, resume model.Resume) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	resumes, err := s.load()
	if err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Resume file unreadable, starting a new one")
		resumes = nil
	}
	resumes = append(resumes, resume)

	data, err := json.MarshalIndent(resumes, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal resumes: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// List treats a missing or corrupt file as an empty store.
func (s *JSONFileStore) List(ctx context.Context) ([]model.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resumes, err := s.load()
	if err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("Failed to read resume file")
		return []model.Resume{}, nil
	}
	if resumes == nil {
		resumes = []model.Resume{}
	}
	return resumes, nil
}

func (s *JSONFileStore) load() ([]model.Resume, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var resumes []model.Resume
	if err := json.Unmarshal(data, &resumes); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", s.path, err)
	}
	return resumes, nil
}
