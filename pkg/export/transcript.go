package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/campushub/student-assist-api/internal/models"
)

// TranscriptPDF renders the conversation transcript as a two-column PDF table.
func TranscriptPDF(entries []models.TranscriptEntry) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "CONVERSATION TRANSCRIPT", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(30, 8, "Role", "1", 0, "C", false, 0, "")
	pdf.CellFormat(160, 8, "Content", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	for _, entry := range entries {
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(30, 7, entry.Role, "1", 0, "C", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(160, 7, entry.Content, "1", "", false)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// TranscriptCSV renders the transcript with role and content columns.
func TranscriptCSV(entries []models.TranscriptEntry) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write([]string{"role", "content", "created_at"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, entry := range entries {
		record := []string{entry.Role, entry.Content, entry.CreatedAt.Format("2006-01-02 15:04:05")}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
