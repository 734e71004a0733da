package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/common"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/repositories"
)

type AttendanceService interface {
	Mark(ctx context.Context, employeeID uuid.UUID, date time.Time, status string, notes *string) (*models.Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]*models.Attendance, error)
	MonthForEmployee(ctx context.Context, employeeID uuid.UUID, month, year int) ([]*models.Attendance, error)
}

type attendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	userRepo       repositories.UserRepository
}

func NewAttendanceService(attendanceRepo repositories.AttendanceRepository, userRepo repositories.UserRepository) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
	}
}

func (s *attendanceService) Mark(ctx context.Context, employeeID uuid.UUID, date time.Time, status string, notes *string) (*models.Attendance, error) {
	if err := models.ValidateAttendanceStatus(status); err != nil {
		return nil, common.InvalidArgumentf("%v", err)
	}
	if date.IsZero() {
		return nil, common.InvalidArgumentf("attendance_date is required")
	}
	// The marked employee must be a known staff account.
	if _, err := s.userRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	attendance := &models.Attendance{
		ID:             uuid.New(),
		EmployeeID:     employeeID,
		AttendanceDate: date,
		Status:         status,
		Notes:          notes,
	}
	return s.attendanceRepo.Upsert(ctx, attendance)
}

func (s *attendanceService) ListByDate(ctx context.Context, date time.Time) ([]*models.Attendance, error) {
	return s.attendanceRepo.ListByDate(ctx, date)
}

func (s *attendanceService) MonthForEmployee(ctx context.Context, employeeID uuid.UUID, month, year int) ([]*models.Attendance, error) {
	if month < 1 || month > 12 {
		return nil, common.InvalidArgumentf("month must be between 1 and 12")
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return s.attendanceRepo.ListByEmployee(ctx, employeeID, start, start.AddDate(0, 1, 0))
}
