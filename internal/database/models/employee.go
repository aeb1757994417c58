package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Employee is a person who may hold equipment
type Employee struct {
	BaseModel
	Matricule    string     `json:"matricule" gorm:"size:50;not null;uniqueIndex" validate:"required,min=1,max=50"`
	Name         string     `json:"name" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Email        string     `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Phone        string     `json:"phone" gorm:"size:50" validate:"max=50"`
	JobTitle     string     `json:"job_title" gorm:"size:100" validate:"max=100"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty" gorm:"type:uuid;index"`
	ManagerID    *uuid.UUID `json:"manager_id,omitempty" gorm:"type:uuid;index"`
	IsActive     bool       `json:"is_active" gorm:"not null"`

	// EquipmentCount is derived from the equipment table and never stored
	EquipmentCount int64 `json:"equipment_count" gorm:"-"`

	// Relationships
	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL"`
	Manager    *Employee   `json:"manager,omitempty" gorm:"foreignKey:ManagerID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}

// DisplayName renders the employee as "<name> (<matricule>)"
func (e Employee) DisplayName() string {
	return fmt.Sprintf("%s (%s)", e.Name, e.Matricule)
}
