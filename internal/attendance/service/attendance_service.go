package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/teamtrack/attendance-service/internal/attendance/domain"
	"github.com/teamtrack/attendance-service/internal/attendance/dto"
	apperr "github.com/teamtrack/attendance-service/internal/errors"
)

// AttendanceService owns the check-in/check-out session lifecycle. A user has
// at most one open session; the repository backs this up with a partial
// unique index, so a racing double check-in still ends up as a conflict.
type AttendanceService struct {
	repo     domain.AttendanceRepository
	geocoder domain.Geocoder
}

// NewAttendanceService returns the session tracker. geocoder may be nil, in
// which case addresses are never resolved.
func NewAttendanceService(repo domain.AttendanceRepository, geocoder domain.Geocoder) *AttendanceService {
	return &AttendanceService{
		repo:     repo,
		geocoder: geocoder,
	}
}

func (s *AttendanceService) CheckIn(ctx context.Context, userID string, input dto.CheckInInput) (*domain.AttendanceRecord, error) {
	if input.Latitude == nil || input.Longitude == nil {
		return nil, apperr.ErrMissingLocation
	}

	open, err := s.repo.GetOpenByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, apperr.ErrAlreadyCheckedIn
	}

	rec := &domain.AttendanceRecord{
		ID:          uuid.NewString(),
		UserID:      userID,
		CheckInTime: time.Now().UTC(),
		Location: domain.Location{
			Latitude:  *input.Latitude,
			Longitude: *input.Longitude,
		},
		Address: s.resolveAddress(ctx, *input.Latitude, *input.Longitude),
		Notes:   input.Notes,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *AttendanceService) CheckOut(ctx context.Context, userID string) (*domain.AttendanceRecord, error) {
	open, err := s.repo.GetOpenByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, apperr.ErrNoActiveCheckIn
	}

	now := time.Now().UTC()
	if err := s.repo.Close(ctx, open.ID, now); err != nil {
		return nil, err
	}

	open.CheckOutTime = &now

	return open, nil
}

// Status returns the user's open record, or nil when they are checked out.
func (s *AttendanceService) Status(ctx context.Context, userID string) (*domain.AttendanceRecord, error) {
	return s.repo.GetOpenByUserID(ctx, userID)
}

// History returns all of the user's records, most recent check-in first.
func (s *AttendanceService) History(ctx context.Context, userID string) ([]domain.AttendanceRecord, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *AttendanceService) resolveAddress(ctx context.Context, latitude, longitude float64) *string {
	if s.geocoder == nil {
		return nil
	}

	address, err := s.geocoder.ReverseGeocode(ctx, latitude, longitude)
	if err != nil {
		// Best effort only; a check-in must not fail on a geocoding error.
		slog.Warn("reverse geocoding failed", "error", err)
		return nil
	}
	if address == "" {
		return nil
	}

	return &address
}
