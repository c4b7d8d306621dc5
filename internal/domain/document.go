package domain

import (
	"path/filepath"
	"strings"
)

// FileFormat is the closed set of upload formats the ingestion step accepts.
type FileFormat int

const (
	FormatUnsupported FileFormat = iota
	FormatPDF
	FormatDOCX
	FormatTXT
)

func (f FileFormat) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatDOCX:
		return "docx"
	case FormatTXT:
		return "txt"
	default:
		return "unsupported"
	}
}

// FormatFromFilename classifies an upload by its extension.
func FormatFromFilename(name string) FileFormat {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "pdf":
		return FormatPDF
	case "docx":
		return FormatDOCX
	case "txt":
		return FormatTXT
	default:
		return FormatUnsupported
	}
}

// Document is the extracted text of one uploaded file. Immutable once created;
// owned by the session it was uploaded into.
type Document struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// Chunk is a contiguous span of a document's text used as the unit of
// retrieval. Start/End are byte offsets into the source text.
type Chunk struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}
