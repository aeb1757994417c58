package service

import (
	"errors"
	"testing"
	"time"

	apperrors "equipment-management-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSnake(t *testing.T) {
	cases := map[string]string{
		"Name":              "name",
		"EmployeeID":        "employee_id",
		"SerialNumber":      "serial_number",
		"DamageDescription": "damage_description",
		"ID":                "id",
		"HTTPStatus":        "http_status",
	}
	for in, want := range cases {
		assert.Equal(t, want, toSnake(in), in)
	}
}

func TestNormalizePage(t *testing.T) {
	limit, offset, page := normalizePage(0, 0)
	assert.Equal(t, DefaultPageSize, limit)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 1, page)

	limit, offset, page = normalizePage(3, 25)
	assert.Equal(t, 25, limit)
	assert.Equal(t, 50, offset)
	assert.Equal(t, 3, page)

	limit, _, _ = normalizePage(1, MaxPageSize+1)
	assert.Equal(t, MaxPageSize, limit)
}

func TestEffectiveTime(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return fixed }

	assert.Equal(t, fixed, effectiveTime(nil, now))
	assert.Equal(t, fixed, effectiveTime(&time.Time{}, now))

	paris := time.FixedZone("CEST", 2*60*60)
	given := time.Date(2024, 6, 1, 14, 0, 0, 0, paris)
	got := effectiveTime(&given, now)
	assert.True(t, got.Equal(given))
	assert.Equal(t, time.UTC, got.Location())
}

func TestValidateReportsFirstField(t *testing.T) {
	type request struct {
		EmployeeID string `validate:"required"`
		Mode       string `validate:"oneof=assign transfer"`
	}

	err := validate(validator.New(), &request{Mode: "assign"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "employee_id", verr.Field)

	assert.NoError(t, validate(validator.New(), &request{EmployeeID: "x", Mode: "transfer"}))
}
