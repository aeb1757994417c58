package models

import (
	"github.com/google/uuid"
)

// Department groups employees. ManagerID has no database-level foreign key
// so that departments and employees do not reference each other cyclically.
type Department struct {
	BaseModel
	Name      string     `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	ManagerID *uuid.UUID `json:"manager_id,omitempty" gorm:"type:uuid;index"`
}

// TableName returns the table name for Department
func (Department) TableName() string {
	return "departments"
}
