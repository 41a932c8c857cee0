package service

import (
	"context"
	"testing"

	"github.com/lshigami/intervue/config"
	"github.com/lshigami/intervue/internal/apperror"
	"github.com/lshigami/intervue/internal/repository"
	"github.com/lshigami/intervue/internal/storage"
	"github.com/lshigami/intervue/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResumeService(t *testing.T, backends ...string) (ResumeService, repository.ResumeRepository) {
	t.Helper()
	cfg := &config.Config{
		Storage: config.Storage{Backends: backends, DataDir: t.TempDir(), KVKey: "parsed_resumes", KVDriver: "memory"},
		Upload:  config.Upload{MaxBytes: 10 * 1024 * 1024},
	}
	repo := repository.NewResumeRepository(testutil.NewTestDB(t))
	chain, err := storage.NewResumeChain(cfg, storage.NewMemoryKV(), repo)
	require.NoError(t, err)
	return NewResumeService(cfg, NewUploadValidator(cfg), NewTextExtractor(cfg), chain, repo), repo
}

func TestResumeUploadAndList(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestResumeService(t, config.BackendFile, config.BackendKV, config.BackendDB)
	data := testutil.DOCX("John Smith", "React and TypeScript developer")

	resp, err := svc.Upload(ctx, UploadInput{FileName: "john.docx", MimeType: MimeDOCX, Size: int64(len(data)), Data: data, UserID: "demo-user"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "john.docx", resp.Data.FileName)
	assert.Equal(t, ".docx", resp.Data.FileType)
	assert.Equal(t, "John Smith\nReact and TypeScript developer", resp.Data.ExtractedText)
	assert.Equal(t, len(resp.Data.ExtractedText), resp.Data.TextLength)
	assert.NotEmpty(t, resp.Data.ID)
	assert.False(t, resp.Data.ParsedAt.IsZero())
	assert.Equal(t, "React", resp.Questions[0].Category)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, resp.Data.ID, list[0].ID)
	assert.Equal(t, "demo-user", list[0].UserID)
	assert.Equal(t, resp.Data.ExtractedText, list[0].ExtractedText)

	got, err := svc.Get(ctx, resp.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, "john.docx", got.FileName)

	questions, err := svc.Questions(ctx, resp.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.Questions, questions.Questions)

	stored, err := repo.FindQuestions(ctx, resp.Data.ID)
	require.NoError(t, err)
	require.Len(t, stored, len(resp.Questions))
	assert.Equal(t, 1, stored[0].Position)
	assert.Equal(t, resp.Questions[0].Question, stored[0].Question)
}

func TestResumeUploadWithoutDatabaseSkipsQuestionRows(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestResumeService(t, config.BackendKV)
	data := testutil.DOCX("Python data engineer")

	resp, err := svc.Upload(ctx, UploadInput{FileName: "cv.docx", Size: int64(len(data)), Data: data})
	require.NoError(t, err)

	stored, err := repo.FindQuestions(ctx, resp.Data.ID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestResumeUploadErrors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestResumeService(t, config.BackendKV)

	_, err := svc.Upload(ctx, UploadInput{FileName: "notes.txt", MimeType: "text/plain", Size: 5, Data: []byte("hello")})
	assert.True(t, apperror.Is(err, apperror.KindInvalidFileType))

	broken := zipWith(t, "word/other.xml", "<x/>")
	_, err = svc.Upload(ctx, UploadInput{FileName: "cv.docx", Size: int64(len(broken)), Data: broken})
	assert.True(t, apperror.Is(err, apperror.KindExtractionFailure))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Get(ctx, "missing")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	_, err = svc.Questions(ctx, "missing")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}
