package service

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/lshigami/intervue/config"
	"github.com/lshigami/intervue/internal/apperror"
	"github.com/rs/zerolog/log"
)

const (
	FileTypePDF  = ".pdf"
	FileTypeDOCX = ".docx"

	extractionFailedMessage = "Failed to extract text from the uploaded file"

	// extracted text may grow to this multiple of UPLOAD_MAX_BYTES
	extractedTextFactor = 4
)

var errDocumentTooLarge = errors.New("document expands beyond the extraction limit")

// TextExtractor turns an uploaded resume into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, fileName string, data []byte) (string, error)
}

type textExtractor struct {
	maxTextBytes int64
}

func NewTextExtractor(cfg *config.Config) TextExtractor {
	return &textExtractor{maxTextBytes: cfg.Upload.MaxBytes * extractedTextFactor}
}

func (e *textExtractor) Extract(ctx context.Context, fileName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext != FileTypePDF && ext != FileTypeDOCX {
		return "", apperror.New(apperror.KindInvalidFileType, unsupportedFileTypeMessage)
	}
	if len(data) == 0 {
		return "", apperror.Wrap(apperror.KindExtractionFailure, extractionFailedMessage, errors.New("empty file"))
	}

	var (
		text string
		err  error
	)
	switch ext {
	case FileTypePDF:
		text, err = extractPDF(data, e.maxTextBytes)
	case FileTypeDOCX:
		text, err = extractDOCX(data, e.maxTextBytes)
	}
	if err != nil {
		log.Warn().Err(err).Str("file_name", fileName).Msg("Text extraction failed")
		return "", apperror.Wrap(apperror.KindExtractionFailure, extractionFailedMessage, err)
	}
	return normalizeText(text), nil
}

func extractPDF(data []byte, limit int64) (text string, err error) {
	// the pdf reader panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf reader: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf plaintext: %w", err)
	}
	b, err := io.ReadAll(newCappedReader(plain, limit))
	if err != nil {
		return "", fmt.Errorf("pdf read: %w", err)
	}
	return string(b), nil
}

func extractDOCX(data []byte, limit int64) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("docx zip: %w", err)
	}
	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", errors.New("docx: word/document.xml not found")
	}
	if doc.UncompressedSize64 > uint64(limit) {
		return "", fmt.Errorf("docx: document.xml is %d bytes: %w", doc.UncompressedSize64, errDocumentTooLarge)
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("docx open document.xml: %w", err)
	}
	defer rc.Close()

	var out strings.Builder
	dec := xml.NewDecoder(newCappedReader(rc, limit))
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if errors.Is(err, errDocumentTooLarge) {
			return "", err
		}
		if err != nil {
			return "", fmt.Errorf("docx xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				out.WriteByte('\t')
			case "br", "cr":
				out.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				out.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				out.Write(t)
			}
		}
	}
	return out.String(), nil
}

// cappedReader fails with errDocumentTooLarge once more than limit bytes
// have been read. Zip headers can lie about the uncompressed size.
type cappedReader struct {
	r     io.Reader
	limit int64
	read  int64
}

func newCappedReader(r io.Reader, limit int64) *cappedReader {
	return &cappedReader{r: io.LimitReader(r, limit+1), limit: limit}
}

func (c *cappedReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.read += int64(n)
	if c.read > c.limit {
		return n, errDocumentTooLarge
	}
	return n, err
}

// normalizeText trims trailing whitespace per line and collapses runs of
// blank lines into one.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\u00a0")
		if line == "" {
			if blank || len(out) == 0 {
				continue
			}
			blank = true
			out = append(out, line)
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
