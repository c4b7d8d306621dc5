package extract

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"studysupport/internal/domain"
	"studysupport/internal/logger"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// Extractor turns an uploaded byte stream into plain text.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract produces the text of an upload, dispatching on the declared
// filename's extension. Unrecognized extensions are a reported error, not a
// silent empty result.
func (e *Extractor) Extract(filename string, data []byte) (string, error) {
	switch domain.FormatFromFilename(filename) {
	case domain.FormatPDF:
		return e.extractPDF(filename, data)
	case domain.FormatDOCX:
		return e.extractDOCX(filename, data)
	case domain.FormatTXT:
		return e.extractTXT(filename, data)
	case domain.FormatUnsupported:
		return "", domain.NewUnsupportedFormatError(filename)
	default:
		return "", domain.NewUnsupportedFormatError(filename)
	}
}

// extractPDF concatenates the per-page text of every page. A page with no
// extractable text (scanned images, broken encodings) contributes an empty
// string.
func (e *Extractor) extractPDF(filename string, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", domain.NewDecodeError(filename, err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			logger.Get().Debug("Skipping page with no extractable text",
				zap.String("filename", filename),
				zap.Int("page", i),
				zap.Error(err))
			continue
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// extractDOCX materializes the upload to a scoped temporary file before
// extraction; the underlying converter reads from the filesystem. The temp
// file is removed regardless of success or failure.
func (e *Extractor) extractDOCX(filename string, data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "studysupport-*.docx")
	if err != nil {
		return "", domain.NewInternalError("Failed to create temp file for docx extraction", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := tmp.Write(data); err != nil {
		return "", domain.NewInternalError("Failed to write temp file for docx extraction", err)
	}
	if _, err := tmp.Seek(0, 0); err != nil {
		return "", domain.NewInternalError("Failed to rewind temp file for docx extraction", err)
	}

	text, _, err := docconv.ConvertDocx(tmp)
	if err != nil {
		return "", domain.NewDecodeError(filename, fmt.Errorf("docx conversion: %w", err))
	}
	return text, nil
}

// extractTXT decodes raw bytes as UTF-8. Invalid encoding surfaces as a
// DECODE_ERROR rather than silently truncating.
func (e *Extractor) extractTXT(filename string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", domain.NewDecodeError(filename, nil)
	}
	return string(data), nil
}
