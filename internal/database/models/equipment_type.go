package models

// EquipmentType is a catalog category such as "Laptop" or "Monitor"
type EquipmentType struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"size:500" validate:"max=500"`
}

// TableName returns the table name for EquipmentType
func (EquipmentType) TableName() string {
	return "equipment_types"
}
