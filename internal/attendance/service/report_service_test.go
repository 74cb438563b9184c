package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack/attendance-service/internal/attendance/domain"
	"github.com/teamtrack/attendance-service/internal/attendance/service"
	"github.com/teamtrack/attendance-service/internal/mocks"
)

func TestReportService_Report_InclusiveDayBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAttendanceRepository(ctrl)
	s := service.NewReportService(mockRepo)

	start := time.Date(2025, 3, 1, 14, 30, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 8, 15, 0, 0, time.UTC)

	mockRepo.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), "user-2").
		DoAndReturn(func(_ context.Context, gotStart, gotEnd time.Time, _ string) ([]domain.ReportRow, error) {
			// Time-of-day on the inputs is ignored: the range always spans
			// whole days.
			assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), gotStart)
			assert.Equal(t, 2025, gotEnd.Year())
			assert.Equal(t, time.March, gotEnd.Month())
			assert.Equal(t, 31, gotEnd.Day())
			assert.Equal(t, 23, gotEnd.Hour())
			assert.Equal(t, 59, gotEnd.Minute())
			assert.Equal(t, 59, gotEnd.Second())
			return nil, nil
		})

	_, err := s.Report(context.Background(), start, end, "user-2")
	require.NoError(t, err)
}

func TestReportService_Report_PassesUserFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAttendanceRepository(ctrl)
	s := service.NewReportService(mockRepo)

	rows := []domain.ReportRow{{Username: "alice"}}
	mockRepo.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(rows, nil)

	got, err := s.Report(context.Background(), time.Now(), time.Now(), "")
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestTotalHours(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	fourLater := checkIn.Add(4 * time.Hour)
	halfLater := checkIn.Add(30 * time.Minute)

	rows := []domain.ReportRow{
		{AttendanceRecord: domain.AttendanceRecord{CheckInTime: checkIn, CheckOutTime: &fourLater}},
		{AttendanceRecord: domain.AttendanceRecord{CheckInTime: checkIn, CheckOutTime: &halfLater}},
		{AttendanceRecord: domain.AttendanceRecord{CheckInTime: checkIn}}, // open, contributes 0
	}

	assert.InDelta(t, 4.5, service.TotalHours(rows), 0.001)
	assert.Zero(t, service.TotalHours(nil))
}
