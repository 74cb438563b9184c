package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack/attendance-service/internal/attendance/domain"
)

func TestDuration_OpenSession(t *testing.T) {
	rec := &domain.AttendanceRecord{CheckInTime: time.Now()}

	assert.Nil(t, rec.Duration())
}

func TestDuration_Closed(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		elapsed  time.Duration
		expected float64
	}{
		{"four hours", 4 * time.Hour, 4},
		{"ninety minutes", 90 * time.Minute, 1.5},
		{"hundred seconds rounds to two decimals", 100 * time.Second, 0.03},
		{"immediate check-out", 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			checkOut := checkIn.Add(tc.elapsed)
			rec := &domain.AttendanceRecord{
				CheckInTime:  checkIn,
				CheckOutTime: &checkOut,
			}

			d := rec.Duration()
			require.NotNil(t, d)
			assert.Equal(t, tc.expected, *d)
			assert.GreaterOrEqual(t, *d, 0.0)
		})
	}
}
