package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceHalfDay = "half_day"
)

// Attendance is one staff member's attendance mark for a calendar date.
// Upserted on (employee_id, attendance_date): re-marking the same day
// replaces the previous status.
type Attendance struct {
	ID             uuid.UUID `json:"id" db:"id"`
	EmployeeID     uuid.UUID `json:"employee_id" db:"employee_id"`
	AttendanceDate time.Time `json:"attendance_date" db:"attendance_date"`
	Status         string    `json:"status" db:"status"`
	Notes          *string   `json:"notes" db:"notes"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// ValidateAttendanceStatus checks a status value against the known set.
func ValidateAttendanceStatus(status string) error {
	switch status {
	case AttendancePresent, AttendanceAbsent, AttendanceHalfDay:
		return nil
	}
	return fmt.Errorf("attendance status must be one of: %s, %s, %s",
		AttendancePresent, AttendanceAbsent, AttendanceHalfDay)
}
