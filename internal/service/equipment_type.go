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

// EquipmentTypeService handles business logic for equipment types
type EquipmentTypeService struct {
	repo          repository.EquipmentTypeRepositoryInterface
	equipmentRepo repository.EquipmentRepositoryInterface
	validator     *validator.Validate
}

// NewEquipmentTypeService creates a new equipment type service
func NewEquipmentTypeService(repo repository.EquipmentTypeRepositoryInterface, equipmentRepo repository.EquipmentRepositoryInterface, validator *validator.Validate) *EquipmentTypeService {
	return &EquipmentTypeService{
		repo:          repo,
		equipmentRepo: equipmentRepo,
		validator:     validator,
	}
}

// CreateEquipmentTypeRequest represents the request to create an equipment type
type CreateEquipmentTypeRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100" example:"Laptop"`
	Description string `json:"description,omitempty" validate:"max=500"`
	Actor       string `json:"-"`
}

// UpdateEquipmentTypeRequest represents the request to update an equipment type
type UpdateEquipmentTypeRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Actor       string  `json:"-"`
}

// EquipmentTypeResponse represents the response for equipment type operations
type EquipmentTypeResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// EquipmentTypeListResponse represents a paginated list of equipment types
type EquipmentTypeListResponse struct {
	EquipmentTypes []EquipmentTypeResponse `json:"equipment_types"`
	Total          int64                   `json:"total"`
	Page           int                     `json:"page"`
	PageSize       int                     `json:"page_size"`
}

// Create creates a new equipment type
func (s *EquipmentTypeService) Create(ctx context.Context, req *CreateEquipmentTypeRequest) (*EquipmentTypeResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, req.Name, uuid.Nil); err != nil {
		return nil, err
	}

	equipmentType := &models.EquipmentType{
		BaseModel:   models.BaseModel{CreatedBy: req.Actor, UpdatedBy: req.Actor},
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, equipmentType); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrEquipmentTypeExists
		}
		return nil, fmt.Errorf("failed to create equipment type: %w", err)
	}
	return toEquipmentTypeResponse(equipmentType), nil
}

// GetByID retrieves an equipment type by ID
func (s *EquipmentTypeService) GetByID(ctx context.Context, id uuid.UUID) (*EquipmentTypeResponse, error) {
	equipmentType, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEquipmentTypeResponse(equipmentType), nil
}

// GetAll retrieves equipment types with pagination
func (s *EquipmentTypeService) GetAll(ctx context.Context, page, pageSize int) (*EquipmentTypeListResponse, error) {
	limit, offset, page := normalizePage(page, pageSize)

	types, total, err := s.repo.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment types: %w", err)
	}

	resp := &EquipmentTypeListResponse{EquipmentTypes: make([]EquipmentTypeResponse, 0, len(types)), Total: total, Page: page, PageSize: limit}
	for i := range types {
		resp.EquipmentTypes = append(resp.EquipmentTypes, *toEquipmentTypeResponse(&types[i]))
	}
	return resp, nil
}

// Update updates an equipment type
func (s *EquipmentTypeService) Update(ctx context.Context, id uuid.UUID, req *UpdateEquipmentTypeRequest) (*EquipmentTypeResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	equipmentType, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil && *req.Name != equipmentType.Name {
		if err := s.ensureNameFree(ctx, *req.Name, id); err != nil {
			return nil, err
		}
		equipmentType.Name = *req.Name
	}
	if req.Description != nil {
		equipmentType.Description = *req.Description
	}
	equipmentType.UpdatedBy = req.Actor

	if err := s.repo.Update(ctx, equipmentType); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrEquipmentTypeExists
		}
		return nil, fmt.Errorf("failed to update equipment type: %w", err)
	}
	return toEquipmentTypeResponse(equipmentType), nil
}

// Delete removes an equipment type that no equipment uses
func (s *EquipmentTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}

	count, err := s.equipmentRepo.CountByTypeID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check equipment type usage: %w", err)
	}
	if count > 0 {
		return apperrors.ErrEquipmentTypeInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if isForeignKey(err) {
			return apperrors.ErrEquipmentTypeInUse
		}
		return fmt.Errorf("failed to delete equipment type: %w", err)
	}
	return nil
}

func (s *EquipmentTypeService) get(ctx context.Context, id uuid.UUID) (*models.EquipmentType, error) {
	equipmentType, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrEquipmentTypeNotFound
		}
		return nil, fmt.Errorf("failed to get equipment type: %w", err)
	}
	return equipmentType, nil
}

func (s *EquipmentTypeService) ensureNameFree(ctx context.Context, name string, self uuid.UUID) error {
	existing, err := s.repo.GetByName(ctx, name)
	if err == nil && existing != nil && existing.ID != self {
		return apperrors.ErrEquipmentTypeExists
	}
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to check equipment type name: %w", err)
	}
	return nil
}

func toEquipmentTypeResponse(t *models.EquipmentType) *EquipmentTypeResponse {
	return &EquipmentTypeResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}
