package repository

import (
	"context"

	"equipment-management-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// EquipmentRepositoryInterface defines the interface for equipment repository operations
type EquipmentRepositoryInterface interface {
	Create(ctx context.Context, equipment *models.Equipment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Equipment, error)
	// GetByIDForUpdate reads the row and keeps it locked until the surrounding transaction ends
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Equipment, error)
	GetBySerialNumber(ctx context.Context, serial string) (*models.Equipment, error)
	GetAll(ctx context.Context, status models.EquipmentStatus, limit, offset int) ([]models.Equipment, int64, error)
	GetByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]models.Equipment, error)
	CountByEmployeeID(ctx context.Context, employeeID uuid.UUID) (int64, error)
	CountByTypeID(ctx context.Context, typeID uuid.UUID) (int64, error)
	Update(ctx context.Context, equipment *models.Equipment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	GetByMatricule(ctx context.Context, matricule string) (*models.Employee, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.Employee, int64, error)
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DepartmentRepositoryInterface defines the interface for department repository operations
type DepartmentRepositoryInterface interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Department, error)
	GetByName(ctx context.Context, name string) (*models.Department, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.Department, int64, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EquipmentTypeRepositoryInterface defines the interface for equipment type repository operations
type EquipmentTypeRepositoryInterface interface {
	Create(ctx context.Context, equipmentType *models.EquipmentType) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.EquipmentType, error)
	GetByName(ctx context.Context, name string) (*models.EquipmentType, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.EquipmentType, int64, error)
	Update(ctx context.Context, equipmentType *models.EquipmentType) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AssignmentHistoryRepositoryInterface defines the interface for assignment history operations.
// Entries are never deleted through this interface.
type AssignmentHistoryRepositoryInterface interface {
	Create(ctx context.Context, entry *models.AssignmentHistory) error
	Update(ctx context.Context, entry *models.AssignmentHistory) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AssignmentHistory, error)
	// FindOpenByEquipmentID returns every open interval of the equipment, locked for update
	FindOpenByEquipmentID(ctx context.Context, equipmentID uuid.UUID) ([]models.AssignmentHistory, error)
	GetByEquipmentID(ctx context.Context, equipmentID uuid.UUID, limit, offset int) ([]models.AssignmentHistory, int64, error)
	GetByEmployeeID(ctx context.Context, employeeID uuid.UUID, limit, offset int) ([]models.AssignmentHistory, int64, error)
	CountByEmployeeID(ctx context.Context, employeeID uuid.UUID) (int64, error)
}

// UnitOfWork runs fn atomically: every write made through repos is committed
// when fn returns nil and rolled back otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos *Repositories) error) error
}
