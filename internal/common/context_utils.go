package common

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RoleKey   contextKey = "role"
)

// GetUserIDFromContext extracts the authenticated user ID from the request context.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetRoleFromContext extracts the authenticated user's role from the request context.
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}

// ValidateUUID parses a path/query UUID with a field-named error.
func ValidateUUID(idStr, fieldName string) (uuid.UUID, error) {
	idStr = strings.TrimSpace(idStr)
	if idStr == "" {
		return uuid.Nil, InvalidArgumentf("%s is required", fieldName)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, InvalidArgumentf("%s is not a valid UUID", fieldName)
	}
	return id, nil
}

// ParseDate parses a YYYY-MM-DD calendar date. Dates are stored without a
// time component, always in UTC.
func ParseDate(dateStr, fieldName string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, InvalidArgumentf("%s is required", fieldName)
	}
	d, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		return time.Time{}, InvalidArgumentf("%s must be in YYYY-MM-DD format", fieldName)
	}
	return d, nil
}

// ParseMonthYear validates the month/year query parameters for report
// endpoints. Fails before any database work happens.
func ParseMonthYear(monthStr, yearStr string) (int, int, error) {
	month, err := strconv.Atoi(strings.TrimSpace(monthStr))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, InvalidArgumentf("month must be an integer between 1 and 12")
	}
	year, err := strconv.Atoi(strings.TrimSpace(yearStr))
	if err != nil || year < 2000 || year > 2100 {
		return 0, 0, InvalidArgumentf("year must be a four digit integer")
	}
	return month, year, nil
}

// ValidatePaginationParams clamps limit/offset to safe bounds.
func ValidatePaginationParams(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// SafeString dereferences an optional string.
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// SafeFloat64 dereferences an optional quantity.
func SafeFloat64(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
