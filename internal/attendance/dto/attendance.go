package dto

import (
	"time"

	"github.com/teamtrack/attendance-service/internal/attendance/domain"
)

type AttendanceOutput struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	CheckInTime     time.Time       `json:"check_in_time"`
	CheckOutTime    *time.Time      `json:"check_out_time"`
	Duration        *float64        `json:"duration"`
	Location        domain.Location `json:"location"`
	LocationAddress *string         `json:"location_address"`
	Notes           string          `json:"notes"`
}

type StatusOutput struct {
	Status          string           `json:"status"`
	CheckInTime     *time.Time       `json:"check_in_time,omitempty"`
	Location        *domain.Location `json:"location,omitempty"`
	LocationAddress *string          `json:"location_address,omitempty"`
}

type ReportRowOutput struct {
	AttendanceOutput
	Username string `json:"username"`
}

func NewAttendanceOutput(rec *domain.AttendanceRecord) AttendanceOutput {
	return AttendanceOutput{
		ID:              rec.ID,
		UserID:          rec.UserID,
		CheckInTime:     rec.CheckInTime,
		CheckOutTime:    rec.CheckOutTime,
		Duration:        rec.Duration(),
		Location:        rec.Location,
		LocationAddress: rec.Address,
		Notes:           rec.Notes,
	}
}

func NewReportRowOutput(row domain.ReportRow) ReportRowOutput {
	return ReportRowOutput{
		AttendanceOutput: NewAttendanceOutput(&row.AttendanceRecord),
		Username:         row.Username,
	}
}
