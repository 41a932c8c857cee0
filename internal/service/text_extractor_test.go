package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/lshigami/intervue/config"
	"github.com/lshigami/intervue/internal/apperror"
	"github.com/lshigami/intervue/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(maxUpload int64) TextExtractor {
	return NewTextExtractor(&config.Config{Upload: config.Upload{MaxBytes: maxUpload}})
}

func TestExtractDOCX(t *testing.T) {
	data := testutil.DOCX("Jane Doe", "Senior Go Developer   ", "", "", "Skills: Go & PostgreSQL")

	text, err := newTestExtractor(10 * 1024 * 1024).Extract(context.Background(), "Resume.DOCX", data)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSenior Go Developer\n\nSkills: Go & PostgreSQL", text)
}

func TestExtractRejectsUnsupportedExtension(t *testing.T) {
	_, err := newTestExtractor(10 * 1024 * 1024).Extract(context.Background(), "resume.txt", []byte("hello"))
	assert.True(t, apperror.Is(err, apperror.KindInvalidFileType))
}

func TestExtractFailures(t *testing.T) {
	cases := map[string]struct {
		name string
		data []byte
	}{
		"empty pdf":        {"cv.pdf", nil},
		"corrupt pdf":      {"cv.pdf", []byte("%PDF-1.4 this is not really a pdf")},
		"docx not zip":     {"cv.docx", []byte("plain text")},
		"docx no document": {"cv.docx", zipWith(t, "word/styles.xml", "<x/>")},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := newTestExtractor(10 * 1024 * 1024).Extract(context.Background(), tc.name, tc.data)
			require.Error(t, err)
			appErr, ok := apperror.As(err)
			require.True(t, ok)
			assert.Equal(t, apperror.KindExtractionFailure, appErr.Kind)
			assert.Equal(t, extractionFailedMessage, appErr.Message)
		})
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "a\n\nb\nc", normalizeText("\n\n a  \r\n\n\n\nb\t\nc\n\n"))
	assert.Equal(t, "", normalizeText(" \n \n"))
}

func TestExtractPDF(t *testing.T) {
	data := testutil.PDF("Jane Doe", "Senior React developer", "Go (Golang) & SQL")

	text, err := newTestExtractor(10*1024*1024).Extract(context.Background(), "cv.pdf", data)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Senior React developer")
	assert.Contains(t, text, "Go (Golang) & SQL")
}

func TestExtractRejectsExpandingDOCX(t *testing.T) {
	// a few KB compressed, 8 MB of text once inflated
	bomb := testutil.DOCX(strings.Repeat("a", 8<<20))
	require.Less(t, len(bomb), 1<<20)

	_, err := newTestExtractor(1<<20).Extract(context.Background(), "bomb.docx", bomb)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindExtractionFailure))
	assert.ErrorIs(t, err, errDocumentTooLarge)
}

func TestExtractRejectsOversizedPDFText(t *testing.T) {
	data := testutil.PDF("Senior React developer with a long career")

	_, err := newTestExtractor(4).Extract(context.Background(), "cv.pdf", data)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindExtractionFailure))
}

func TestCappedReader(t *testing.T) {
	b, err := io.ReadAll(newCappedReader(strings.NewReader("abcdef"), 6))
	require.NoError(t, err)
	assert.Equal(t, "abcdef", string(b))

	_, err = io.ReadAll(newCappedReader(strings.NewReader("abcdefg"), 6))
	assert.ErrorIs(t, err, errDocumentTooLarge)
}
