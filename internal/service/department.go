package service

import (
	"context"
	"fmt"
	"time"

	"equipment-management-backend/internal/database/models"
	apperrors "equipment-management-backend/internal/errors"
	"equipment-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DepartmentService handles business logic for departments
type DepartmentService struct {
	repo         repository.DepartmentRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	validator    *validator.Validate
}

// NewDepartmentService creates a new department service
func NewDepartmentService(repo repository.DepartmentRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, validator *validator.Validate) *DepartmentService {
	return &DepartmentService{
		repo:         repo,
		employeeRepo: employeeRepo,
		validator:    validator,
	}
}

// CreateDepartmentRequest represents the request to create a department
type CreateDepartmentRequest struct {
	Name      string     `json:"name" validate:"required,min=1,max=100" example:"IT"`
	ManagerID *uuid.UUID `json:"manager_id,omitempty"`
	Actor     string     `json:"-"`
}

// UpdateDepartmentRequest represents the request to update a department
type UpdateDepartmentRequest struct {
	Name      *string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	ManagerID *uuid.UUID `json:"manager_id,omitempty"`
	Actor     string     `json:"-"`
}

// DepartmentResponse represents the response for department operations
type DepartmentResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	ManagerID *uuid.UUID `json:"manager_id,omitempty"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

// DepartmentListResponse represents a paginated list of departments
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Create creates a new department
func (s *DepartmentService) Create(ctx context.Context, req *CreateDepartmentRequest) (*DepartmentResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, req.Name, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.ensureManager(ctx, req.ManagerID); err != nil {
		return nil, err
	}

	department := &models.Department{
		BaseModel: models.BaseModel{CreatedBy: req.Actor, UpdatedBy: req.Actor},
		Name:      req.Name,
		ManagerID: req.ManagerID,
	}
	if err := s.repo.Create(ctx, department); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrDepartmentExists
		}
		return nil, fmt.Errorf("failed to create department: %w", err)
	}
	return toDepartmentResponse(department), nil
}

// GetByID retrieves a department by ID
func (s *DepartmentService) GetByID(ctx context.Context, id uuid.UUID) (*DepartmentResponse, error) {
	department, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDepartmentResponse(department), nil
}

// GetAll retrieves departments with pagination
func (s *DepartmentService) GetAll(ctx context.Context, page, pageSize int) (*DepartmentListResponse, error) {
	limit, offset, page := normalizePage(page, pageSize)

	departments, total, err := s.repo.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	resp := &DepartmentListResponse{Departments: make([]DepartmentResponse, 0, len(departments)), Total: total, Page: page, PageSize: limit}
	for i := range departments {
		resp.Departments = append(resp.Departments, *toDepartmentResponse(&departments[i]))
	}
	return resp, nil
}

// Update updates a department
func (s *DepartmentService) Update(ctx context.Context, id uuid.UUID, req *UpdateDepartmentRequest) (*DepartmentResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	department, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil && *req.Name != department.Name {
		if err := s.ensureNameFree(ctx, *req.Name, id); err != nil {
			return nil, err
		}
		department.Name = *req.Name
	}
	if req.ManagerID != nil {
		if err := s.ensureManager(ctx, req.ManagerID); err != nil {
			return nil, err
		}
		department.ManagerID = req.ManagerID
	}
	department.UpdatedBy = req.Actor

	if err := s.repo.Update(ctx, department); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrDepartmentExists
		}
		return nil, fmt.Errorf("failed to update department: %w", err)
	}
	return toDepartmentResponse(department), nil
}

// Delete removes a department; its employees stay without a department
func (s *DepartmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

func (s *DepartmentService) get(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	department, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return department, nil
}

func (s *DepartmentService) ensureNameFree(ctx context.Context, name string, self uuid.UUID) error {
	existing, err := s.repo.GetByName(ctx, name)
	if err == nil && existing != nil && existing.ID != self {
		return apperrors.ErrDepartmentExists
	}
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to check department name: %w", err)
	}
	return nil
}

func (s *DepartmentService) ensureManager(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.employeeRepo.GetByID(ctx, *id); err != nil {
		if isNotFound(err) {
			return apperrors.ErrManagerNotFound
		}
		return fmt.Errorf("failed to verify manager: %w", err)
	}
	return nil
}

func toDepartmentResponse(d *models.Department) *DepartmentResponse {
	return &DepartmentResponse{
		ID:        d.ID,
		Name:      d.Name,
		ManagerID: d.ManagerID,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
		UpdatedAt: d.UpdatedAt.Format(time.RFC3339),
	}
}
