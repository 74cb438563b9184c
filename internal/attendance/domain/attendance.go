package domain

import (
	"math"
	"time"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AttendanceRecord is one check-in event. CheckOutTime stays nil while the
// session is open; a nil CheckOutTime is what makes a session "open".
type AttendanceRecord struct {
	ID           string
	UserID       string
	CheckInTime  time.Time
	CheckOutTime *time.Time
	Location     Location
	Address      *string
	Notes        string
}

// Duration returns the session length in hours, rounded to two decimals.
// It is nil while the session is still open.
func (r *AttendanceRecord) Duration() *float64 {
	if r.CheckOutTime == nil {
		return nil
	}
	hours := math.Round(r.CheckOutTime.Sub(r.CheckInTime).Hours()*100) / 100
	return &hours
}

// ReportRow is an attendance record joined with its owner's username, the
// shape consumed by the report view and the CSV/PDF exports.
type ReportRow struct {
	AttendanceRecord
	Username string
}
