package models

import (
	"strings"
	"time"

	apperrors "equipment-management-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentHistory is one interval during which an employee held a piece
// of equipment. DateTo is nil while the interval is open; at most one open
// interval exists per equipment (partial unique index idx_assignment_history_open).
type AssignmentHistory struct {
	BaseModel
	EquipmentID uuid.UUID    `json:"equipment_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_assignment_history_open,where:date_to IS NULL" validate:"required"`
	EmployeeID  uuid.UUID    `json:"employee_id" gorm:"type:uuid;not null;index" validate:"required"`
	DateFrom    time.Time    `json:"date_from" gorm:"not null;index" validate:"required"`
	DateTo      *time.Time   `json:"date_to,omitempty"`
	AssignedBy  string       `json:"assigned_by" gorm:"size:100"`
	Note        string       `json:"note" gorm:"type:text"`
	State       HistoryState `json:"state" gorm:"type:varchar(20);not null;default:'active'" validate:"required"`

	// Relationships
	Equipment *Equipment `json:"equipment,omitempty" gorm:"foreignKey:EquipmentID;constraint:OnDelete:CASCADE"`
	Employee  *Employee  `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for AssignmentHistory
func (AssignmentHistory) TableName() string {
	return "assignment_histories"
}

// IsOpen reports whether the interval is still running
func (h *AssignmentHistory) IsOpen() bool {
	return h.DateTo == nil
}

// CheckDates rejects an interval that ends before it starts
func (h *AssignmentHistory) CheckDates() error {
	if h.DateTo != nil && h.DateTo.Before(h.DateFrom) {
		return apperrors.NewValidationError("date_to", "end date cannot be earlier than start date")
	}
	return nil
}

// AppendNote adds text on a new line below the existing note
func (h *AssignmentHistory) AppendNote(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if strings.TrimSpace(h.Note) == "" {
		h.Note = text
		return
	}
	h.Note = h.Note + "\n" + text
}

// BeforeSave aborts writes with an inverted date range or an unknown state
func (h *AssignmentHistory) BeforeSave(tx *gorm.DB) error {
	if h.State == "" {
		h.State = HistoryStateActive
	}
	if !h.State.IsValid() {
		return apperrors.NewValidationError("state", "unknown history state "+string(h.State))
	}
	if h.State == HistoryStateActive && h.DateTo != nil {
		return apperrors.NewValidationError("state", "a closed interval cannot be active")
	}
	if h.State != HistoryStateActive && h.DateTo == nil {
		return apperrors.NewValidationError("date_to", "a "+string(h.State)+" interval needs an end date")
	}
	return h.CheckDates()
}
