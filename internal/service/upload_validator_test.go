package service

import (
	"testing"

	"github.com/lshigami/intervue/config"
	"github.com/lshigami/intervue/internal/apperror"
	"github.com/lshigami/intervue/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fakePDF = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n")

func newTestValidator(max int64) UploadValidator {
	return NewUploadValidator(&config.Config{Upload: config.Upload{MaxBytes: max}})
}

func TestValidateAcceptsPDFAndDOCX(t *testing.T) {
	v := newTestValidator(10 * 1024 * 1024)

	fileType, err := v.Validate("CV.PDF", MimePDF, int64(len(fakePDF)), fakePDF)
	require.NoError(t, err)
	assert.Equal(t, FileTypePDF, fileType)

	docx := testutil.DOCX("hello")
	fileType, err = v.Validate("cv.docx", MimeDOCX, int64(len(docx)), docx)
	require.NoError(t, err)
	assert.Equal(t, FileTypeDOCX, fileType)

	fileType, err = v.Validate("cv.docx", "application/octet-stream", int64(len(docx)), docx)
	require.NoError(t, err)
	assert.Equal(t, FileTypeDOCX, fileType)
}

func TestValidateRejections(t *testing.T) {
	v := newTestValidator(1 << 20)
	docx := testutil.DOCX("hello")

	cases := []struct {
		name     string
		fileName string
		mime     string
		size     int64
		head     []byte
		kind     apperror.Kind
	}{
		{"too large", "cv.pdf", MimePDF, 2 << 20, fakePDF, apperror.KindFileTooLarge},
		{"text file", "cv.txt", "text/plain", 10, []byte("hello"), apperror.KindInvalidFileType},
		{"no extension", "cv", "", 10, fakePDF, apperror.KindInvalidFileType},
		{"wrong declared mime", "cv.pdf", "image/png", int64(len(fakePDF)), fakePDF, apperror.KindInvalidFileType},
		{"pdf extension with zip body", "cv.pdf", MimePDF, int64(len(docx)), docx, apperror.KindInvalidFileType},
		{"docx extension with pdf body", "cv.docx", MimeDOCX, int64(len(fakePDF)), fakePDF, apperror.KindInvalidFileType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Validate(tc.fileName, tc.mime, tc.size, tc.head)
			assert.True(t, apperror.Is(err, tc.kind), "got %v", err)
		})
	}
}
