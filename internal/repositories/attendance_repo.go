package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"
)

type AttendanceRepository interface {
	// Upsert records attendance keyed by (employee_id, attendance_date);
	// re-marking the same day replaces status and notes.
	Upsert(ctx context.Context, attendance *models.Attendance) (*models.Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]*models.Attendance, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]*models.Attendance, error)
}

type attendanceRepo struct {
	db DB
}

func NewAttendanceRepo(db DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

const attendanceColumns = `id, employee_id, attendance_date, status, notes, created_at, updated_at`

func (r *attendanceRepo) Upsert(ctx context.Context, attendance *models.Attendance) (*models.Attendance, error) {
	query := `
		INSERT INTO attendance (id, employee_id, attendance_date, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (employee_id, attendance_date) DO UPDATE SET
			status = EXCLUDED.status,
			notes = COALESCE(EXCLUDED.notes, attendance.notes),
			updated_at = NOW()
		RETURNING ` + attendanceColumns + `
	`
	stored := &models.Attendance{}
	err := r.db.QueryRow(ctx, query, attendance.ID, attendance.EmployeeID, attendance.AttendanceDate,
		attendance.Status, attendance.Notes).
		Scan(&stored.ID, &stored.EmployeeID, &stored.AttendanceDate, &stored.Status, &stored.Notes,
			&stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, common.WrapStorage("upsert attendance", err)
	}
	return stored, nil
}

func (r *attendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]*models.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE attendance_date = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, common.WrapStorage("list attendance by date", err)
	}
	defer rows.Close()
	return r.scan(rows)
}

func (r *attendanceRepo) ListByEmployee(ctx context.Context, employeeID uuid.UUID, start, end time.Time) ([]*models.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE employee_id = $1 AND attendance_date >= $2 AND attendance_date < $3
		ORDER BY attendance_date
	`
	rows, err := r.db.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, common.WrapStorage("list attendance by employee", err)
	}
	defer rows.Close()
	return r.scan(rows)
}

func (r *attendanceRepo) scan(rows pgx.Rows) ([]*models.Attendance, error) {
	var records []*models.Attendance
	for rows.Next() {
		a := &models.Attendance{}
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.AttendanceDate, &a.Status, &a.Notes,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, common.WrapStorage("scan attendance", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapStorage("iterate attendance", err)
	}
	return records, nil
}
