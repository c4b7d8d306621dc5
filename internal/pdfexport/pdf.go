package pdfexport

import (
	"bytes"
	"fmt"
	"os"

	"studysupport/internal/domain"

	"github.com/go-pdf/fpdf"
)

// Renderer writes a quiz session, including any recorded feedback, as a
// printable PDF.
type Renderer struct {
	logoPath string
}

func NewRenderer(logoPath string) *Renderer {
	return &Renderer{logoPath: logoPath}
}

func (r *Renderer) Render(session *domain.QuizSession) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	if r.logoPath != "" {
		if _, err := os.Stat(r.logoPath); err == nil {
			pdf.ImageOptions(r.logoPath, 10, 10, 30, 0, false, fpdf.ImageOptions{}, 0, "")
			pdf.SetY(30)
		}
	}

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Quiz Results", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Score: %d / %d", session.Score, len(session.Questions)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for i, q := range session.Questions {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 7, fmt.Sprintf("Q%d. %s", i+1, q.Text), "", "L", false)

		pdf.SetFont("Helvetica", "", 11)
		for _, opt := range q.Options {
			pdf.MultiCell(0, 6, fmt.Sprintf("%s. %s", opt.Label, opt.Text), "", "L", false)
		}

		if session.Submitted[i] {
			pdf.SetFont("Helvetica", "I", 11)
			pdf.MultiCell(0, 6, session.Feedback[i], "", "L", false)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, domain.NewInternalError("Failed to render quiz PDF", err)
	}
	return buf.Bytes(), nil
}
