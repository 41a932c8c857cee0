package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lshigami/intervue/config"
	"github.com/lshigami/intervue/internal/apperror"
	"github.com/lshigami/intervue/internal/model"
	"github.com/lshigami/intervue/internal/repository"
	"github.com/lshigami/intervue/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	name  string
	saves int
}

func (f *failingStore) Name() string { return f.name }

func (f *failingStore) Save(ctx context.Context, resume model.Resume) error {
	f.saves++
	return errors.New(f.name + " is down")
}

func (f *failingStore) List(ctx context.Context) ([]model.Resume, error) {
	return nil, errors.New(f.name + " is down")
}

func sampleResume(id string, offset time.Duration) model.Resume {
	return model.Resume{
		ID:            id,
		FileName:      id + ".docx",
		FileType:      ".docx",
		MimeType:      "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		SizeBytes:     2048,
		ExtractedText: "Senior Go engineer\nKubernetes, PostgreSQL",
		UserID:        "demo-user",
		ParsedAt:      time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC).Add(offset),
	}
}

func TestKVStoreRoundTripPreservesShapeAndOrder(t *testing.T) {
	ctx := context.Background()
	store := NewKVStore(NewMemoryKV(), "parsed_resumes")

	in := []model.Resume{
		sampleResume("r-1", 0),
		sampleResume("r-2", time.Minute),
		sampleResume("r-3", 2*time.Minute),
	}
	for _, r := range in {
		require.NoError(t, store.Save(ctx, r))
	}

	out, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	require.NoError(t, store.Clear(ctx))
	out, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestKVStoreCorruptValue(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Append(ctx, "k", []byte("{not json")))

	_, err := NewKVStore(kv, "k").List(ctx)
	assert.Error(t, err)
}

func TestJSONFileStore(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")
	store := NewJSONFileStore(dir)

	empty, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	first := sampleResume("r-1", 0)
	second := sampleResume("r-2", time.Minute)
	require.NoError(t, store.Save(ctx, first))
	require.NoError(t, store.Save(ctx, second))

	out, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Resume{first, second}, out)

	raw, err := os.ReadFile(filepath.Join(dir, "resumes.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  {")
}

func TestJSONFileStoreCorruptFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resumes.json"), []byte("[{broken"), 0o644))
	store := NewJSONFileStore(dir)

	out, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, out)

	r := sampleResume("r-1", 0)
	require.NoError(t, store.Save(ctx, r))
	out, err = store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Resume{r}, out)
}

func TestChainSaveSwallowsPartialFailure(t *testing.T) {
	ctx := context.Background()
	down := &failingStore{name: "file"}
	kv := NewKVStore(NewMemoryKV(), "parsed_resumes")
	chain := NewChain(down, kv)

	r := sampleResume("r-1", 0)
	require.NoError(t, chain.Save(ctx, r))
	assert.Equal(t, 1, down.saves)

	out, err := chain.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Resume{r}, out)

	got, err := chain.Get(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, r, *got)

	_, err = chain.Get(ctx, "nope")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestChainAllStoresFail(t *testing.T) {
	ctx := context.Background()
	chain := NewChain(&failingStore{name: "file"}, &failingStore{name: "db"})

	err := chain.Save(ctx, sampleResume("r-1", 0))
	assert.True(t, apperror.Is(err, apperror.KindStorageFailure))

	_, err = chain.List(ctx)
	assert.True(t, apperror.Is(err, apperror.KindStorageFailure))
}

func TestChainListReadsFirstHealthyStore(t *testing.T) {
	ctx := context.Background()
	primary := NewKVStore(NewMemoryKV(), "a")
	secondary := NewKVStore(NewMemoryKV(), "b")
	require.NoError(t, secondary.Save(ctx, sampleResume("only-in-secondary", 0)))

	out, err := NewChain(primary, secondary).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestNewResumeChainFromConfig(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewResumeRepository(testutil.NewTestDB(t))
	cfg := &config.Config{Storage: config.Storage{
		Backends: []string{config.BackendDB, config.BackendFile, config.BackendKV},
		DataDir:  t.TempDir(),
		KVDriver: "memory",
		KVKey:    "parsed_resumes",
	}}

	chain, err := NewResumeChain(cfg, NewKV(cfg), repo)
	require.NoError(t, err)
	assert.Equal(t, []string{"db", "file", "kv"}, chain.Names())

	r := sampleResume("r-1", 0)
	require.NoError(t, chain.Save(ctx, r))
	stored, err := repo.FindByID(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, r.ExtractedText, stored.ExtractedText)

	cfg.Storage.Backends = []string{"s3"}
	_, err = NewResumeChain(cfg, NewMemoryKV(), repo)
	assert.Error(t, err)
}
