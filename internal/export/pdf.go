package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/teamtrack/attendance-service/internal/attendance/domain"
	"github.com/teamtrack/attendance-service/internal/attendance/service"
	"github.com/teamtrack/attendance-service/pkg/constant"
)

var pdfColumns = []struct {
	title string
	width float64
}{
	{"Username", 30},
	{"Check-in Time", 42},
	{"Check-out Time", 42},
	{"Duration (h)", 24},
	{"Location", 95},
	{"Notes", 44},
}

// WritePDF renders the report as a landscape A4 table with a summary footer
// (total records, total hours).
func WritePDF(w io.Writer, title string, start, end time.Time, rows []domain.ReportRow) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Period: %s to %s",
		start.Format(constant.DateLayout), end.Format(constant.DateLayout)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(220, 220, 220)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 8, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for i := range rows {
		for j, cell := range pdfRow(&rows[i]) {
			pdf.CellFormat(pdfColumns[j].width, 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total Records: %d", len(rows)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total Hours: %.2f", service.TotalHours(rows)), "", 1, "L", false, 0, "")

	return pdf.Output(w)
}

func pdfRow(row *domain.ReportRow) []string {
	checkOut := constant.NotAvailable
	if row.CheckOutTime != nil {
		checkOut = row.CheckOutTime.Format(constant.TimestampLayout)
	}

	duration := constant.NotAvailable
	if d := row.Duration(); d != nil {
		duration = fmt.Sprintf("%.2f", *d)
	}

	// Prefer the resolved address, fall back to raw coordinates.
	location := formatLocation(row.Location)
	if row.Address != nil && *row.Address != "" {
		location = *row.Address
	}

	return []string{
		row.Username,
		row.CheckInTime.Format(constant.TimestampLayout),
		checkOut,
		duration,
		location,
		row.Notes,
	}
}
