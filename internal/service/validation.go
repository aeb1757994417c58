package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "equipment-management-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Pagination defaults shared by all list endpoints
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// validate runs struct tag validation and reports the first failing field as a ValidationError
func validate(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg := fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed on the '%s=%s' rule", fe.Tag(), fe.Param())
		}
		return fmt.Errorf("validation failed: %w", apperrors.NewValidationError(toSnake(fe.Field()), msg))
	}
	return fmt.Errorf("validation failed: %w", apperrors.NewValidationError("", err.Error()))
}

// isNotFound reports a missing row from any repository implementation
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicate reports a unique constraint violation
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// isForeignKey reports a foreign key violation
func isForeignKey(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// normalizePage turns page/pageSize into limit/offset
func normalizePage(page, pageSize int) (limit, offset, normalizedPage int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return pageSize, (page - 1) * pageSize, page
}

// effectiveTime defaults an optional timestamp to now and stores it in UTC
func effectiveTime(t *time.Time, now func() time.Time) time.Time {
	if t == nil || t.IsZero() {
		return now().UTC()
	}
	return t.UTC()
}

// toSnake turns a Go field name into its json name, e.g. EmployeeID -> employee_id
func toSnake(s string) string {
	isUpper := func(c byte) bool { return c >= 'A' && c <= 'Z' }
	isLower := func(c byte) bool { return c >= 'a' && c <= 'z' }

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUpper(c) {
			if i > 0 && (isLower(s[i-1]) || (i+1 < len(s) && isUpper(s[i-1]) && isLower(s[i+1]))) {
				b.WriteByte('_')
			}
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}
