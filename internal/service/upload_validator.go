package service

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/lshigami/intervue/config"
	"github.com/lshigami/intervue/internal/apperror"
	"github.com/rs/zerolog/log"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeZip  = "application/zip"

	unsupportedFileTypeMessage = "Unsupported file type. Please upload PDF or DOCX files."
)

// UploadValidator checks an upload before any parsing happens.
type UploadValidator interface {
	Validate(fileName, declaredMime string, size int64, head []byte) (fileType string, err error)
	MaxBytes() int64
}

type uploadValidator struct {
	maxBytes int64
}

func NewUploadValidator(cfg *config.Config) UploadValidator {
	return &uploadValidator{maxBytes: cfg.Upload.MaxBytes}
}

func (v *uploadValidator) MaxBytes() int64 { return v.maxBytes }

func FileTooLargeMessage(maxBytes int64) string {
	return fmt.Sprintf("File is too large. Maximum size is %d MB.", maxBytes/(1024*1024))
}

func (v *uploadValidator) Validate(fileName, declaredMime string, size int64, head []byte) (string, error) {
	if size > v.maxBytes {
		return "", apperror.New(apperror.KindFileTooLarge, FileTooLargeMessage(v.maxBytes))
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if ext != FileTypePDF && ext != FileTypeDOCX {
		return "", apperror.New(apperror.KindInvalidFileType, unsupportedFileTypeMessage)
	}

	declared := strings.ToLower(strings.TrimSpace(strings.SplitN(declaredMime, ";", 2)[0]))
	if declared != "" && declared != "application/octet-stream" && declared != MimePDF && declared != MimeDOCX {
		log.Warn().Str("file_name", fileName).Str("declared_mime", declared).Msg("Upload rejected by declared MIME type")
		return "", apperror.New(apperror.KindInvalidFileType, unsupportedFileTypeMessage)
	}

	if len(head) == 0 {
		// nothing to sniff; extraction reports the empty file
		return ext, nil
	}
	detected := mimetype.Detect(head)
	if !sniffMatches(ext, detected) {
		log.Warn().Str("file_name", fileName).Str("detected_mime", detected.String()).Msg("Upload content does not match its extension")
		return "", apperror.New(apperror.KindInvalidFileType, unsupportedFileTypeMessage)
	}
	return ext, nil
}

func sniffMatches(ext string, detected *mimetype.MIME) bool {
	switch ext {
	case FileTypePDF:
		return detected.Is(MimePDF)
	case FileTypeDOCX:
		for m := detected; m != nil; m = m.Parent() {
			if m.Is(MimeDOCX) || m.Is(mimeZip) {
				return true
			}
		}
	}
	return false
}
