// Package export renders report output as downloadable CSV and PDF files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/teamtrack/attendance-service/internal/attendance/domain"
	"github.com/teamtrack/attendance-service/pkg/constant"
)

// Filename builds the attachment name for an export covering [start, end].
func Filename(start, end time.Time, ext string) string {
	return fmt.Sprintf("attendance_report_%s_to_%s.%s",
		start.Format(constant.FileDateLayout), end.Format(constant.FileDateLayout), ext)
}

func WriteCSV(w io.Writer, rows []domain.ReportRow) error {
	cw := csv.NewWriter(w)

	header := []string{
		"ID", "Username", "Check-in Time", "Check-out Time", "Duration (hours)",
		"Location (Lat, Long)", "Address", "Notes",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range rows {
		if err := cw.Write(csvRow(&rows[i])); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

func csvRow(row *domain.ReportRow) []string {
	checkOut := constant.NotAvailable
	if row.CheckOutTime != nil {
		checkOut = row.CheckOutTime.Format(constant.TimestampLayout)
	}

	duration := constant.NotAvailable
	if d := row.Duration(); d != nil {
		duration = strconv.FormatFloat(*d, 'f', 2, 64)
	}

	address := constant.NotAvailable
	if row.Address != nil && *row.Address != "" {
		address = *row.Address
	}

	return []string{
		row.ID,
		row.Username,
		row.CheckInTime.Format(constant.TimestampLayout),
		checkOut,
		duration,
		formatLocation(row.Location),
		address,
		row.Notes,
	}
}

func formatLocation(loc domain.Location) string {
	return strconv.FormatFloat(loc.Latitude, 'f', -1, 64) + ", " +
		strconv.FormatFloat(loc.Longitude, 'f', -1, 64)
}
