package models

import (
	"time"

	apperrors "equipment-management-backend/internal/errors"
	"equipment-management-backend/internal/warranty"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Equipment is a single tracked unit, identified by its serial number.
// EmployeeID is set if and only if Status is assigned.
type Equipment struct {
	BaseModel
	Name               string          `json:"name" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	SerialNumber       string          `json:"serial_number" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	TypeID             uuid.UUID       `json:"type_id" gorm:"type:uuid;not null;index" validate:"required"`
	PurchaseDate       *time.Time      `json:"purchase_date,omitempty" gorm:"type:date"`
	WarrantyExpiration *time.Time      `json:"warranty_expiration,omitempty" gorm:"type:date"`
	Status             EquipmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'available';index" validate:"required"`
	EmployeeID         *uuid.UUID      `json:"employee_id,omitempty" gorm:"type:uuid;index"`
	WarrantyStatus     warranty.Status `json:"warranty_status" gorm:"type:varchar(20);not null;default:'none'"`
	WarrantyDaysLeft   int             `json:"warranty_days_left" gorm:"not null;default:0"`

	// WarrantyAsOf is the date of the last RefreshWarranty call, consumed by the next save
	WarrantyAsOf time.Time `json:"-" gorm:"-"`

	// Relationships
	Type     *EquipmentType `json:"type,omitempty" gorm:"foreignKey:TypeID;constraint:OnDelete:RESTRICT"`
	Employee *Employee      `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Equipment
func (Equipment) TableName() string {
	return "equipment"
}

// CheckHolderStatus is the one rule tying holder and status together: a
// holder is present exactly when the status is assigned. Every write path
// runs it before touching storage.
func CheckHolderStatus(status EquipmentStatus, employeeID *uuid.UUID) error {
	if !status.IsValid() {
		return apperrors.NewValidationError("status", "unknown equipment status "+string(status))
	}
	held := employeeID != nil && *employeeID != uuid.Nil
	if status == EquipmentStatusAssigned && !held {
		return apperrors.NewValidationError("employee_id", "assigned equipment must have a holder")
	}
	if held && status != EquipmentStatusAssigned {
		return apperrors.NewValidationError("status", "equipment with a holder must be in status assigned")
	}
	return nil
}

// IsHeld reports whether an employee currently holds the equipment
func (e *Equipment) IsHeld() bool {
	return e.EmployeeID != nil && *e.EmployeeID != uuid.Nil
}

// RefreshWarranty recomputes the stored warranty fields relative to today
func (e *Equipment) RefreshWarranty(today time.Time) {
	res := warranty.Compute(e.WarrantyExpiration, today)
	e.WarrantyStatus = res.Status
	e.WarrantyDaysLeft = res.DaysLeft
	e.WarrantyAsOf = today
}

// BeforeSave rejects writes that break the holder/status rule and keeps the
// warranty fields current. A date set by RefreshWarranty wins over the wall clock.
func (e *Equipment) BeforeSave(tx *gorm.DB) error {
	if e.Status == "" {
		e.Status = EquipmentStatusAvailable
	}
	if err := CheckHolderStatus(e.Status, e.EmployeeID); err != nil {
		return err
	}
	today := e.WarrantyAsOf
	if today.IsZero() {
		today = time.Now()
	}
	e.RefreshWarranty(today)
	e.WarrantyAsOf = time.Time{}
	return nil
}
