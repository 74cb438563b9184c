package domain

//go:generate mockgen -destination=../../mocks/mock_repository.go -package=mocks github.com/teamtrack/attendance-service/internal/attendance/domain UserRepository,AttendanceRepository,Geocoder

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]User, error)
	SetAdmin(ctx context.Context, id string, isAdmin bool) error
}

type AttendanceRepository interface {
	Create(ctx context.Context, rec *AttendanceRecord) error
	GetOpenByUserID(ctx context.Context, userID string) (*AttendanceRecord, error)
	Close(ctx context.Context, id string, checkOutTime time.Time) error
	ListByUserID(ctx context.Context, userID string) ([]AttendanceRecord, error)
	ListInRange(ctx context.Context, start, end time.Time, userID string) ([]ReportRow, error)
}

// Geocoder resolves coordinates into a human-readable address. Failures are
// never fatal to a check-in.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error)
}
