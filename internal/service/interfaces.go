package service

import (
	"context"

	"equipment-management-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EquipmentServiceInterface defines the interface for equipment service
type EquipmentServiceInterface interface {
	Create(ctx context.Context, req *CreateEquipmentRequest) (*EquipmentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*EquipmentResponse, error)
	GetAll(ctx context.Context, status models.EquipmentStatus, page, pageSize int) (*EquipmentListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateEquipmentRequest) (*EquipmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ChangeStatus(ctx context.Context, id uuid.UUID, req *ChangeStatusRequest) (*EquipmentResponse, error)
	RefreshWarranty(ctx context.Context) (*WarrantyRefreshResponse, error)
}

// EmployeeServiceInterface defines the interface for employee service
type EmployeeServiceInterface interface {
	Create(ctx context.Context, req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*EmployeeResponse, error)
	GetAll(ctx context.Context, page, pageSize int) (*EmployeeListResponse, error)
	GetEquipment(ctx context.Context, id uuid.UUID) ([]EquipmentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DepartmentServiceInterface defines the interface for department service
type DepartmentServiceInterface interface {
	Create(ctx context.Context, req *CreateDepartmentRequest) (*DepartmentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*DepartmentResponse, error)
	GetAll(ctx context.Context, page, pageSize int) (*DepartmentListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateDepartmentRequest) (*DepartmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EquipmentTypeServiceInterface defines the interface for equipment type service
type EquipmentTypeServiceInterface interface {
	Create(ctx context.Context, req *CreateEquipmentTypeRequest) (*EquipmentTypeResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*EquipmentTypeResponse, error)
	GetAll(ctx context.Context, page, pageSize int) (*EquipmentTypeListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateEquipmentTypeRequest) (*EquipmentTypeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// HistoryServiceInterface defines the interface for assignment history service
type HistoryServiceInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*HistoryResponse, error)
	GetByEquipment(ctx context.Context, equipmentID uuid.UUID, page, pageSize int) (*HistoryListResponse, error)
	GetByEmployee(ctx context.Context, employeeID uuid.UUID, page, pageSize int) (*HistoryListResponse, error)
	AppendNote(ctx context.Context, id uuid.UUID, req *AppendNoteRequest) (*HistoryResponse, error)
}

// AssignmentServiceInterface defines the interface for the assign/transfer transaction
type AssignmentServiceInterface interface {
	AssignOrTransfer(ctx context.Context, req *AssignRequest) (*AssignmentResponse, error)
}

// ReturnServiceInterface defines the interface for the return transaction
type ReturnServiceInterface interface {
	ReturnEquipment(ctx context.Context, req *ReturnRequest) (*ReturnResponse, error)
}

var (
	_ EquipmentServiceInterface     = (*EquipmentService)(nil)
	_ EmployeeServiceInterface      = (*EmployeeService)(nil)
	_ DepartmentServiceInterface    = (*DepartmentService)(nil)
	_ EquipmentTypeServiceInterface = (*EquipmentTypeService)(nil)
	_ HistoryServiceInterface       = (*HistoryService)(nil)
	_ AssignmentServiceInterface    = (*AssignmentService)(nil)
	_ ReturnServiceInterface        = (*ReturnService)(nil)
)
