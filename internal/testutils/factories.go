package testutils

import (
	"fmt"
	"time"

	"equipment-management-backend/internal/database/models"

	"github.com/google/uuid"
)

// EquipmentTypeFactory provides methods to create test EquipmentType data
type EquipmentTypeFactory struct{}

// NewEquipmentTypeFactory creates a new EquipmentTypeFactory
func NewEquipmentTypeFactory() *EquipmentTypeFactory {
	return &EquipmentTypeFactory{}
}

// Create creates a test EquipmentType with default values
func (f *EquipmentTypeFactory) Create() *models.EquipmentType {
	return &models.EquipmentType{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        "Laptop",
		Description: "Portable computers",
	}
}

// WithName sets a custom name for the equipment type
func (f *EquipmentTypeFactory) WithName(name string) *models.EquipmentType {
	t := f.Create()
	t.Name = name
	return t
}

// DepartmentFactory provides methods to create test Department data
type DepartmentFactory struct{}

// NewDepartmentFactory creates a new DepartmentFactory
func NewDepartmentFactory() *DepartmentFactory {
	return &DepartmentFactory{}
}

// Create creates a test Department with default values
func (f *DepartmentFactory) Create() *models.Department {
	return &models.Department{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "IT",
	}
}

// WithName sets a custom name for the department
func (f *DepartmentFactory) WithName(name string) *models.Department {
	d := f.Create()
	d.Name = name
	return d
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates an active test Employee with a random matricule
func (f *EmployeeFactory) Create() *models.Employee {
	id := uuid.New()
	return &models.Employee{
		BaseModel: models.BaseModel{ID: id},
		Matricule: "E-" + id.String()[:8],
		Name:      "Test Employee",
		Email:     "test.employee@example.com",
		JobTitle:  "Engineer",
		IsActive:  true,
	}
}

// WithMatricule sets a custom matricule and name for the employee
func (f *EmployeeFactory) WithMatricule(matricule string) *models.Employee {
	e := f.Create()
	e.Matricule = matricule
	e.Name = "Employee " + matricule
	return e
}

// WithDepartment places the employee in a department
func (f *EmployeeFactory) WithDepartment(departmentID uuid.UUID) *models.Employee {
	e := f.Create()
	e.DepartmentID = &departmentID
	return e
}

// EquipmentFactory provides methods to create test Equipment data
type EquipmentFactory struct{}

// NewEquipmentFactory creates a new EquipmentFactory
func NewEquipmentFactory() *EquipmentFactory {
	return &EquipmentFactory{}
}

// Create creates available test Equipment of the given type
func (f *EquipmentFactory) Create(typeID uuid.UUID) *models.Equipment {
	id := uuid.New()
	return &models.Equipment{
		BaseModel:    models.BaseModel{ID: id},
		Name:         "Test Laptop",
		SerialNumber: "SN-" + id.String()[:8],
		TypeID:       typeID,
		Status:       models.EquipmentStatusAvailable,
	}
}

// WithSerial sets a custom serial number
func (f *EquipmentFactory) WithSerial(typeID uuid.UUID, serial string) *models.Equipment {
	e := f.Create(typeID)
	e.SerialNumber = serial
	e.Name = serial
	return e
}

// AssignedTo returns equipment already held by the employee
func (f *EquipmentFactory) AssignedTo(typeID, employeeID uuid.UUID) *models.Equipment {
	e := f.Create(typeID)
	e.Status = models.EquipmentStatusAssigned
	e.EmployeeID = &employeeID
	return e
}

// WithWarranty sets the warranty expiration
func (f *EquipmentFactory) WithWarranty(typeID uuid.UUID, expiration time.Time) *models.Equipment {
	e := f.Create(typeID)
	e.WarrantyExpiration = &expiration
	return e
}

// HistoryFactory provides methods to create test AssignmentHistory data
type HistoryFactory struct{}

// NewHistoryFactory creates a new HistoryFactory
func NewHistoryFactory() *HistoryFactory {
	return &HistoryFactory{}
}

// Open creates an open interval starting at from
func (f *HistoryFactory) Open(equipmentID, employeeID uuid.UUID, from time.Time) *models.AssignmentHistory {
	return &models.AssignmentHistory{
		BaseModel:   models.BaseModel{ID: uuid.New(), CreatedBy: "test"},
		EquipmentID: equipmentID,
		EmployeeID:  employeeID,
		DateFrom:    from.UTC(),
		AssignedBy:  "test",
		Note:        "assigned via wizard",
		State:       models.HistoryStateActive,
	}
}

// Closed creates an interval that ended at to with the given state
func (f *HistoryFactory) Closed(equipmentID, employeeID uuid.UUID, from, to time.Time, state models.HistoryState) *models.AssignmentHistory {
	h := f.Open(equipmentID, employeeID, from)
	end := to.UTC()
	h.DateTo = &end
	h.State = state
	h.Note = fmt.Sprintf("assigned via wizard\nReturn: %s", state)
	return h
}

// FactorySet bundles every factory for suites that need several of them
type FactorySet struct {
	EquipmentType *EquipmentTypeFactory
	Department    *DepartmentFactory
	Employee      *EmployeeFactory
	Equipment     *EquipmentFactory
	History       *HistoryFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		EquipmentType: NewEquipmentTypeFactory(),
		Department:    NewDepartmentFactory(),
		Employee:      NewEmployeeFactory(),
		Equipment:     NewEquipmentFactory(),
		History:       NewHistoryFactory(),
	}
}
