package service

import (
	"context"
	"fmt"
	"time"

	"equipment-management-backend/internal/database/models"
	apperrors "equipment-management-backend/internal/errors"
	"equipment-management-backend/internal/logger"
	"equipment-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EmployeeService handles business logic for employees
type EmployeeService struct {
	repo          repository.EmployeeRepositoryInterface
	deptRepo      repository.DepartmentRepositoryInterface
	equipmentRepo repository.EquipmentRepositoryInterface
	historyRepo   repository.AssignmentHistoryRepositoryInterface
	validator     *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface, deptRepo repository.DepartmentRepositoryInterface, equipmentRepo repository.EquipmentRepositoryInterface, historyRepo repository.AssignmentHistoryRepositoryInterface, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{
		repo:          repo,
		deptRepo:      deptRepo,
		equipmentRepo: equipmentRepo,
		historyRepo:   historyRepo,
		validator:     validator,
	}
}

// CreateEmployeeRequest represents the request to create an employee
type CreateEmployeeRequest struct {
	Matricule    string     `json:"matricule" validate:"required,min=1,max=50" example:"E001"`
	Name         string     `json:"name" validate:"required,min=1,max=200" example:"Alice Martin"`
	Email        string     `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone        string     `json:"phone,omitempty" validate:"max=50"`
	JobTitle     string     `json:"job_title,omitempty" validate:"max=100"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	ManagerID    *uuid.UUID `json:"manager_id,omitempty"`
	IsActive     *bool      `json:"is_active,omitempty"`
	Actor        string     `json:"-"`
}

// UpdateEmployeeRequest represents the request to update an employee
type UpdateEmployeeRequest struct {
	Matricule    *string    `json:"matricule,omitempty" validate:"omitempty,min=1,max=50"`
	Name         *string    `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email        *string    `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone        *string    `json:"phone,omitempty" validate:"omitempty,max=50"`
	JobTitle     *string    `json:"job_title,omitempty" validate:"omitempty,max=100"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	ManagerID    *uuid.UUID `json:"manager_id,omitempty"`
	IsActive     *bool      `json:"is_active,omitempty"`
	Actor        string     `json:"-"`
}

// EmployeeResponse represents the response for employee operations
type EmployeeResponse struct {
	ID             uuid.UUID  `json:"id"`
	Matricule      string     `json:"matricule"`
	Name           string     `json:"name"`
	DisplayName    string     `json:"display_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	JobTitle       string     `json:"job_title"`
	DepartmentID   *uuid.UUID `json:"department_id,omitempty"`
	ManagerID      *uuid.UUID `json:"manager_id,omitempty"`
	IsActive       bool       `json:"is_active"`
	EquipmentCount int64      `json:"equipment_count"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

// EmployeeListResponse represents a paginated list of employees
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create creates a new employee
func (s *EmployeeService) Create(ctx context.Context, req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	if err := s.ensureMatriculeFree(ctx, req.Matricule, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.ensureDepartment(ctx, req.DepartmentID); err != nil {
		return nil, err
	}
	if req.ManagerID != nil {
		if err := s.ensureManager(ctx, *req.ManagerID); err != nil {
			return nil, err
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	employee := &models.Employee{
		BaseModel:    models.BaseModel{CreatedBy: req.Actor, UpdatedBy: req.Actor},
		Matricule:    req.Matricule,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		JobTitle:     req.JobTitle,
		DepartmentID: req.DepartmentID,
		ManagerID:    req.ManagerID,
		IsActive:     isActive,
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, s.translateWriteError(err, "create")
	}

	logger.WithContext(ctx).WithField("employee_id", employee.ID).Info("employee created")
	return toEmployeeResponse(employee, 0), nil
}

// GetByID retrieves an employee with the number of units they hold
func (s *EmployeeService) GetByID(ctx context.Context, id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.equipmentRepo.CountByEmployeeID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to count equipment: %w", err)
	}
	return toEmployeeResponse(employee, count), nil
}

// GetAll retrieves employees with pagination
func (s *EmployeeService) GetAll(ctx context.Context, page, pageSize int) (*EmployeeListResponse, error) {
	limit, offset, page := normalizePage(page, pageSize)

	employees, total, err := s.repo.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := &EmployeeListResponse{Employees: make([]EmployeeResponse, 0, len(employees)), Total: total, Page: page, PageSize: limit}
	for i := range employees {
		count, err := s.equipmentRepo.CountByEmployeeID(ctx, employees[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count equipment: %w", err)
		}
		resp.Employees = append(resp.Employees, *toEmployeeResponse(&employees[i], count))
	}
	return resp, nil
}

// GetEquipment lists the equipment an employee currently holds
func (s *EmployeeService) GetEquipment(ctx context.Context, id uuid.UUID) ([]EquipmentResponse, error) {
	if _, err := s.get(ctx, id); err != nil {
		return nil, err
	}
	items, err := s.equipmentRepo.GetByEmployeeID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	resp := make([]EquipmentResponse, 0, len(items))
	for i := range items {
		resp = append(resp, *toEquipmentResponse(&items[i]))
	}
	return resp, nil
}

// Update updates an employee. A manager change is rejected when it would
// make the employee their own manager, directly or through the chain.
func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	employee, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Matricule != nil && *req.Matricule != employee.Matricule {
		if err := s.ensureMatriculeFree(ctx, *req.Matricule, id); err != nil {
			return nil, err
		}
		employee.Matricule = *req.Matricule
	}
	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.JobTitle != nil {
		employee.JobTitle = *req.JobTitle
	}
	if req.DepartmentID != nil {
		if err := s.ensureDepartment(ctx, req.DepartmentID); err != nil {
			return nil, err
		}
		employee.DepartmentID = req.DepartmentID
	}
	if req.ManagerID != nil {
		if err := s.checkManagerChain(ctx, id, *req.ManagerID); err != nil {
			return nil, err
		}
		employee.ManagerID = req.ManagerID
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}
	employee.UpdatedBy = req.Actor

	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, s.translateWriteError(err, "update")
	}

	count, err := s.equipmentRepo.CountByEmployeeID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to count equipment: %w", err)
	}
	return toEmployeeResponse(employee, count), nil
}

// Delete removes an employee. Employees referenced by any assignment
// history entry cannot be deleted.
func (s *EmployeeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}

	count, err := s.historyRepo.CountByEmployeeID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check employee history: %w", err)
	}
	if count > 0 {
		return apperrors.ErrEmployeeHasHistory
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if isForeignKey(err) {
			return apperrors.ErrEmployeeHasHistory
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	logger.WithContext(ctx).WithField("employee_id", id).Info("employee deleted")
	return nil
}

// checkManagerChain walks up from the proposed manager and fails if it
// reaches the employee being updated.
func (s *EmployeeService) checkManagerChain(ctx context.Context, employeeID, managerID uuid.UUID) error {
	if managerID == employeeID {
		return apperrors.NewValidationError("manager_id", "an employee cannot be their own manager")
	}

	visited := map[uuid.UUID]bool{employeeID: true}
	current := managerID
	for {
		if visited[current] {
			return apperrors.NewValidationError("manager_id", "manager assignment would create a cycle")
		}
		visited[current] = true

		manager, err := s.repo.GetByID(ctx, current)
		if err != nil {
			if isNotFound(err) {
				return apperrors.ErrManagerNotFound
			}
			return fmt.Errorf("failed to verify manager: %w", err)
		}
		if manager.ManagerID == nil {
			return nil
		}
		current = *manager.ManagerID
	}
}

func (s *EmployeeService) get(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

func (s *EmployeeService) ensureMatriculeFree(ctx context.Context, matricule string, self uuid.UUID) error {
	existing, err := s.repo.GetByMatricule(ctx, matricule)
	if err == nil && existing != nil && existing.ID != self {
		return apperrors.ErrEmployeeExists
	}
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to check matricule: %w", err)
	}
	return nil
}

func (s *EmployeeService) ensureDepartment(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.deptRepo.GetByID(ctx, *id); err != nil {
		if isNotFound(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to verify department: %w", err)
	}
	return nil
}

func (s *EmployeeService) ensureManager(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if isNotFound(err) {
			return apperrors.ErrManagerNotFound
		}
		return fmt.Errorf("failed to verify manager: %w", err)
	}
	return nil
}

func (s *EmployeeService) translateWriteError(err error, op string) error {
	switch {
	case isDuplicate(err):
		return apperrors.ErrEmployeeExists
	case isForeignKey(err):
		return apperrors.NewValidationError("", "department or manager does not exist")
	default:
		return fmt.Errorf("failed to %s employee: %w", op, err)
	}
}

func toEmployeeResponse(e *models.Employee, equipmentCount int64) *EmployeeResponse {
	return &EmployeeResponse{
		ID:             e.ID,
		Matricule:      e.Matricule,
		Name:           e.Name,
		DisplayName:    e.DisplayName(),
		Email:          e.Email,
		Phone:          e.Phone,
		JobTitle:       e.JobTitle,
		DepartmentID:   e.DepartmentID,
		ManagerID:      e.ManagerID,
		IsActive:       e.IsActive,
		EquipmentCount: equipmentCount,
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      e.UpdatedAt.Format(time.RFC3339),
	}
}
