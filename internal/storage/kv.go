package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/lshigami/intervue/internal/model"
)

// KV is the small list API the key-value resume store needs.
type KV interface {
	Append(ctx context.Context, key string, value []byte) error
	Range(ctx context.Context, key string) ([][]byte, error)
	Delete(ctx context.Context, key string) error
}

// KVStore appends each resume as a JSON value under one list key.
type KVStore struct {
	kv  KV
	key string
}

func NewKVStore(kv KV, key string) *KVStore {
	return &KVStore{kv: kv, key: key}
}

func (s *KVStore) Name() string { return "kv" }

func (s *KVStore) Save(ctx context.Context, resume model.Resume) error {
	raw, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("marshal resume: %w", err)
	}
	return s.kv.Append(ctx, s.key, raw)
}

func (s *KVStore) List(ctx context.Context) ([]model.Resume, error) {
	values, err := s.kv.Range(ctx, s.key)
	if err != nil {
		return nil, err
	}
	resumes := make([]model.Resume, 0, len(values))
	for _, v := range values {
		var r model.Resume
		if err := json.Unmarshal(v, &r); err != nil {
			return nil, fmt.Errorf("unmarshal resume from %s: %w", s.key, err)
		}
		resumes = append(resumes, r)
	}
	return resumes, nil
}

func (s *KVStore) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, s.key)
}

// MemoryKV is a process-local KV.
type MemoryKV struct {
	mu    sync.RWMutex
	lists map[string][][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{lists: make(map[string][][]byte)}
}

func (m *MemoryKV) Append(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.lists[key] = append(m.lists[key], cp)
	return nil
}

func (m *MemoryKV) Range(ctx context.Context, key string) ([][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([][]byte, len(m.lists[key]))
	copy(out, m.lists[key])
	return out, nil
}

func (m *MemoryKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.lists, key)
	return nil
}
