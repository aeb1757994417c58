package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this serial number"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError is raised when a write would break an invariant or a business rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// OperationError is raised when an operation does not apply to the current
// state of a record, e.g. returning equipment nobody holds.
type OperationError struct {
	Message string
}

func (e *OperationError) Error() string {
	return e.Message
}

// IntegrityError reports stored data that already violates an invariant.
// It is surfaced as-is and never repaired silently.
type IntegrityError struct {
	Message string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("data integrity error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrEquipmentNotFound         = &NotFoundError{Entity: "equipment"}
	ErrEquipmentTypeNotFound     = &NotFoundError{Entity: "equipment type"}
	ErrEmployeeNotFound          = &NotFoundError{Entity: "employee"}
	ErrDepartmentNotFound        = &NotFoundError{Entity: "department"}
	ErrManagerNotFound           = &NotFoundError{Entity: "manager"}
	ErrAssignmentHistoryNotFound = &NotFoundError{Entity: "assignment history entry"}
)

// Already Exists Errors
var (
	ErrEquipmentExists     = &AlreadyExistsError{Entity: "equipment", Context: "with this serial number"}
	ErrEquipmentTypeExists = &AlreadyExistsError{Entity: "equipment type", Context: "with this name"}
	ErrEmployeeExists      = &AlreadyExistsError{Entity: "employee", Context: "with this matricule"}
	ErrDepartmentExists    = &AlreadyExistsError{Entity: "department", Context: "with this name"}
)

// Lifecycle Errors
var (
	ErrRetiredEquipment      = &OperationError{Message: "cannot assign retired equipment"}
	ErrEquipmentNotAssigned  = &OperationError{Message: "equipment is not currently assigned"}
	ErrEquipmentHeld         = &OperationError{Message: "equipment is currently assigned; return it before changing its status"}
	ErrLeaveRetired          = &OperationError{Message: "retired equipment cannot change status"}
	ErrEmployeeHasHistory    = &OperationError{Message: "employee is referenced by assignment history and cannot be deleted"}
	ErrEquipmentTypeInUse    = &OperationError{Message: "equipment type is used by existing equipment and cannot be deleted"}
	ErrMultipleOpenIntervals = &IntegrityError{Message: "more than one open assignment interval for equipment"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrMissingToken = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken = &AuthenticationError{Message: "invalid token"}
)

// Configuration Errors
var (
	ErrJWTSecretNotSet = &ConfigurationError{Message: "JWT_SECRET must be set in production"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsOperation checks if an error is an OperationError
func IsOperation(err error) bool {
	var opErr *OperationError
	return errors.As(err, &opErr)
}

// IsIntegrity checks if an error is an IntegrityError
func IsIntegrity(err error) bool {
	var integrityErr *IntegrityError
	return errors.As(err, &integrityErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewOperationError creates a new OperationError
func NewOperationError(message string) error {
	return &OperationError{Message: message}
}

// NewIntegrityError creates a new IntegrityError
func NewIntegrityError(message string) error {
	return &IntegrityError{Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
