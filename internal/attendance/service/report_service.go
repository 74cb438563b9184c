package service

import (
	"context"
	"time"

	"github.com/teamtrack/attendance-service/internal/attendance/domain"
)

type ReportService struct {
	repo domain.AttendanceRepository
}

func NewReportService(repo domain.AttendanceRepository) *ReportService {
	return &ReportService{repo: repo}
}

// Report returns records whose check-in falls within the inclusive range
// [start 00:00:00, end 23:59:59], most recent check-in first. An empty
// userID means all users.
func (s *ReportService) Report(ctx context.Context, start, end time.Time, userID string) ([]domain.ReportRow, error) {
	startAt := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endAt := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)

	return s.repo.ListInRange(ctx, startAt, endAt, userID)
}

// TotalHours sums the derived durations of closed records; open records
// contribute nothing.
func TotalHours(rows []domain.ReportRow) float64 {
	var total float64
	for i := range rows {
		if d := rows[i].Duration(); d != nil {
			total += *d
		}
	}
	return total
}
