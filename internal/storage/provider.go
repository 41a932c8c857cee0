package storage

import (
	"fmt"

	"github.com/lshigami/intervue/config"
	"github.com/lshigami/intervue/internal/repository"
	"github.com/rs/zerolog/log"
)

// NewKV returns the configured KV. An unreachable redis degrades to memory.
func NewKV(cfg *config.Config) KV {
	if cfg.Storage.KVDriver != "redis" {
		return NewMemoryKV()
	}
	kv, err := NewRedisKV(cfg)
	if err != nil {
		log.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis KV unavailable, using in-memory KV")
		return NewMemoryKV()
	}
	return kv
}

// NewResumeChain builds the store chain in STORAGE_BACKENDS order.
func NewResumeChain(cfg *config.Config, kv KV, repo repository.ResumeRepository) (*Chain, error) {
	stores := make([]ResumeStore, 0, len(cfg.Storage.Backends))
	for _, name := range cfg.Storage.Backends {
		switch name {
		case config.BackendFile:
			stores = append(stores, NewJSONFileStore(cfg.Storage.DataDir))
		case config.BackendKV:
			stores = append(stores, NewKVStore(kv, cfg.Storage.KVKey))
		case config.BackendDB:
			stores = append(stores, NewDBStore(repo))
		default:
			return nil, fmt.Errorf("unknown storage backend %q", name)
		}
	}
	chain := NewChain(stores...)
	log.Info().Strs("stores", chain.Names()).Msg("Resume store chain ready")
	return chain, nil
}
