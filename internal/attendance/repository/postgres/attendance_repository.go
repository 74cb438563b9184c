package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/teamtrack/attendance-service/internal/attendance/domain"
	apperr "github.com/teamtrack/attendance-service/internal/errors"
)

const uniqueViolation = "23505"

type AttendanceRepository struct {
	db PgxIface
}

func NewAttendanceRepository(db PgxIface) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Create(ctx context.Context, rec *domain.AttendanceRecord) error {
	location, err := json.Marshal(rec.Location)
	if err != nil {
		return fmt.Errorf("failed to encode location: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO attendance (id, user_id, check_in_time, check_out_time, location, location_address, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rec.ID, rec.UserID, rec.CheckInTime, rec.CheckOutTime, location, rec.Address, rec.Notes)
	if err != nil {
		// The partial unique index on open sessions catches the
		// check-then-create race; report it as the same conflict.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperr.ErrAlreadyCheckedIn
		}
		return fmt.Errorf("failed to create attendance record: %w", err)
	}

	return nil
}

func (r *AttendanceRepository) GetOpenByUserID(ctx context.Context, userID string) (*domain.AttendanceRecord, error) {
	query := `
		SELECT id, user_id, check_in_time, check_out_time, location, location_address, notes
		FROM attendance
		WHERE user_id = $1 AND check_out_time IS NULL
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, userID)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open attendance record: %w", err)
	}

	return rec, nil
}

func (r *AttendanceRepository) Close(ctx context.Context, id string, checkOutTime time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE attendance SET check_out_time = $2
		WHERE id = $1 AND check_out_time IS NULL
	`, id, checkOutTime)
	if err != nil {
		return fmt.Errorf("failed to close attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNoActiveCheckIn
	}

	return nil
}

func (r *AttendanceRepository) ListByUserID(ctx context.Context, userID string) ([]domain.AttendanceRecord, error) {
	query := `
		SELECT id, user_id, check_in_time, check_out_time, location, location_address, notes
		FROM attendance
		WHERE user_id = $1
		ORDER BY check_in_time DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []domain.AttendanceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, *rec)
	}

	return records, rows.Err()
}

func (r *AttendanceRepository) ListInRange(ctx context.Context, start, end time.Time, userID string) ([]domain.ReportRow, error) {
	query := `
		SELECT a.id, a.user_id, u.username, a.check_in_time, a.check_out_time, a.location, a.location_address, a.notes
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		WHERE a.check_in_time >= $1 AND a.check_in_time <= $2
	`
	args := []any{start, end}
	if userID != "" {
		query += ` AND a.user_id = $3`
		args = append(args, userID)
	}
	query += ` ORDER BY a.check_in_time DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance report: %w", err)
	}
	defer rows.Close()

	var report []domain.ReportRow
	for rows.Next() {
		var (
			row      domain.ReportRow
			location []byte
		)
		err := rows.Scan(&row.ID, &row.UserID, &row.Username, &row.CheckInTime,
			&row.CheckOutTime, &location, &row.Address, &row.Notes)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		if err := json.Unmarshal(location, &row.Location); err != nil {
			return nil, fmt.Errorf("failed to decode location: %w", err)
		}
		report = append(report, row)
	}

	return report, rows.Err()
}

func scanRecord(row pgx.Row) (*domain.AttendanceRecord, error) {
	var (
		rec      domain.AttendanceRecord
		location []byte
	)
	err := row.Scan(&rec.ID, &rec.UserID, &rec.CheckInTime, &rec.CheckOutTime,
		&location, &rec.Address, &rec.Notes)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(location, &rec.Location); err != nil {
		return nil, fmt.Errorf("failed to decode location: %w", err)
	}

	return &rec, nil
}
