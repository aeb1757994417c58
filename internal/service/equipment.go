package service

import (
	"context"
	"fmt"
	"time"

	"equipment-management-backend/internal/database/models"
	apperrors "equipment-management-backend/internal/errors"
	"equipment-management-backend/internal/logger"
	"equipment-management-backend/internal/repository"
	"equipment-management-backend/internal/warranty"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EquipmentService handles business logic for the equipment catalog.
// Holder changes are not done here but by AssignmentService and ReturnService.
type EquipmentService struct {
	repo      repository.EquipmentRepositoryInterface
	typeRepo  repository.EquipmentTypeRepositoryInterface
	uow       repository.UnitOfWork
	validator *validator.Validate
	now       func() time.Time
}

// NewEquipmentService creates a new equipment service
func NewEquipmentService(repo repository.EquipmentRepositoryInterface, typeRepo repository.EquipmentTypeRepositoryInterface, uow repository.UnitOfWork, validator *validator.Validate) *EquipmentService {
	return &EquipmentService{
		repo:      repo,
		typeRepo:  typeRepo,
		uow:       uow,
		validator: validator,
		now:       time.Now,
	}
}

// CreateEquipmentRequest represents the request to register a piece of equipment
type CreateEquipmentRequest struct {
	Name               string                 `json:"name" validate:"required,min=1,max=200" example:"ThinkPad T14"`
	SerialNumber       string                 `json:"serial_number" validate:"required,min=1,max=100" example:"LAPTOP-001"`
	TypeID             uuid.UUID              `json:"type_id" validate:"required"`
	PurchaseDate       *time.Time             `json:"purchase_date,omitempty"`
	WarrantyExpiration *time.Time             `json:"warranty_expiration,omitempty"`
	Status             models.EquipmentStatus `json:"status,omitempty" validate:"omitempty,oneof=available in_repair retired" example:"available"`
	Actor              string                 `json:"-"`
}

// UpdateEquipmentRequest represents the request to update descriptive equipment fields
type UpdateEquipmentRequest struct {
	Name               *string    `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	SerialNumber       *string    `json:"serial_number,omitempty" validate:"omitempty,min=1,max=100"`
	TypeID             *uuid.UUID `json:"type_id,omitempty"`
	PurchaseDate       *time.Time `json:"purchase_date,omitempty"`
	WarrantyExpiration *time.Time `json:"warranty_expiration,omitempty"`
	Actor              string     `json:"-"`
}

// ChangeStatusRequest represents a maintenance status change of unheld equipment
type ChangeStatusRequest struct {
	Status models.EquipmentStatus `json:"status" validate:"required,oneof=available in_repair retired" example:"in_repair"`
	Actor  string                 `json:"-"`
}

// EquipmentResponse represents the response for equipment operations
type EquipmentResponse struct {
	ID                 uuid.UUID              `json:"id"`
	Name               string                 `json:"name"`
	SerialNumber       string                 `json:"serial_number"`
	TypeID             uuid.UUID              `json:"type_id"`
	PurchaseDate       *time.Time             `json:"purchase_date,omitempty"`
	WarrantyExpiration *time.Time             `json:"warranty_expiration,omitempty"`
	Status             models.EquipmentStatus `json:"status"`
	EmployeeID         *uuid.UUID             `json:"employee_id,omitempty"`
	WarrantyStatus     warranty.Status        `json:"warranty_status"`
	WarrantyDaysLeft   int                    `json:"warranty_days_left"`
	CreatedAt          string                 `json:"created_at"`
	UpdatedAt          string                 `json:"updated_at"`
}

// EquipmentListResponse represents a paginated list of equipment
type EquipmentListResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
	Total     int64               `json:"total"`
	Page      int                 `json:"page"`
	PageSize  int                 `json:"page_size"`
}

// WarrantyRefreshResponse reports a bulk warranty recomputation
type WarrantyRefreshResponse struct {
	Checked int `json:"checked"`
	Updated int `json:"updated"`
}

// Create registers a new piece of equipment. New equipment never has a holder.
func (s *EquipmentService) Create(ctx context.Context, req *CreateEquipmentRequest) (*EquipmentResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.EquipmentStatusAvailable
	}
	if err := models.CheckHolderStatus(status, nil); err != nil {
		return nil, err
	}

	if err := s.ensureType(ctx, req.TypeID); err != nil {
		return nil, err
	}
	if err := ensureSerialFree(ctx, s.repo, req.SerialNumber, uuid.Nil); err != nil {
		return nil, err
	}

	equipment := &models.Equipment{
		BaseModel:          models.BaseModel{CreatedBy: req.Actor, UpdatedBy: req.Actor},
		Name:               req.Name,
		SerialNumber:       req.SerialNumber,
		TypeID:             req.TypeID,
		PurchaseDate:       req.PurchaseDate,
		WarrantyExpiration: req.WarrantyExpiration,
		Status:             status,
	}
	if err := s.repo.Create(ctx, equipment); err != nil {
		return nil, s.translateWriteError(err, "create")
	}

	logger.WithContext(ctx).WithField("equipment_id", equipment.ID).Info("equipment created")
	return toEquipmentResponse(equipment), nil
}

// GetByID retrieves a piece of equipment by ID
func (s *EquipmentService) GetByID(ctx context.Context, id uuid.UUID) (*EquipmentResponse, error) {
	equipment, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEquipmentResponse(equipment), nil
}

// GetAll retrieves equipment with pagination, optionally filtered by status
func (s *EquipmentService) GetAll(ctx context.Context, status models.EquipmentStatus, page, pageSize int) (*EquipmentListResponse, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown equipment status "+string(status))
	}
	limit, offset, page := normalizePage(page, pageSize)

	items, total, err := s.repo.GetAll(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	resp := &EquipmentListResponse{Equipment: make([]EquipmentResponse, 0, len(items)), Total: total, Page: page, PageSize: limit}
	for i := range items {
		resp.Equipment = append(resp.Equipment, *toEquipmentResponse(&items[i]))
	}
	return resp, nil
}

// Update changes descriptive fields. The row is re-read under lock, so the
// status and holder written back are always the current ones.
func (s *EquipmentService) Update(ctx context.Context, id uuid.UUID, req *UpdateEquipmentRequest) (*EquipmentResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if req.TypeID != nil {
		if err := s.ensureType(ctx, *req.TypeID); err != nil {
			return nil, err
		}
	}

	var out *models.Equipment
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		equipment, err := repos.Equipment.GetByIDForUpdate(ctx, id)
		if err != nil {
			if isNotFound(err) {
				return apperrors.ErrEquipmentNotFound
			}
			return fmt.Errorf("failed to get equipment: %w", err)
		}

		if req.Name != nil {
			equipment.Name = *req.Name
		}
		if req.SerialNumber != nil && *req.SerialNumber != equipment.SerialNumber {
			if err := ensureSerialFree(ctx, repos.Equipment, *req.SerialNumber, id); err != nil {
				return err
			}
			equipment.SerialNumber = *req.SerialNumber
		}
		if req.TypeID != nil {
			equipment.TypeID = *req.TypeID
		}
		if req.PurchaseDate != nil {
			equipment.PurchaseDate = req.PurchaseDate
		}
		if req.WarrantyExpiration != nil {
			equipment.WarrantyExpiration = req.WarrantyExpiration
		}
		equipment.UpdatedBy = req.Actor

		if err := models.CheckHolderStatus(equipment.Status, equipment.EmployeeID); err != nil {
			return err
		}
		if err := repos.Equipment.Update(ctx, equipment); err != nil {
			return s.translateWriteError(err, "update")
		}
		out = equipment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toEquipmentResponse(out), nil
}

// Delete removes a piece of equipment together with its history
func (s *EquipmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete equipment: %w", err)
	}
	logger.WithContext(ctx).WithField("equipment_id", id).Info("equipment deleted")
	return nil
}

// ChangeStatus moves unheld equipment between available, in_repair and
// retired. Retired equipment stays retired.
func (s *EquipmentService) ChangeStatus(ctx context.Context, id uuid.UUID, req *ChangeStatusRequest) (*EquipmentResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	var out *models.Equipment
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		equipment, err := repos.Equipment.GetByIDForUpdate(ctx, id)
		if err != nil {
			if isNotFound(err) {
				return apperrors.ErrEquipmentNotFound
			}
			return fmt.Errorf("failed to get equipment: %w", err)
		}
		if equipment.IsHeld() {
			return apperrors.ErrEquipmentHeld
		}
		if equipment.Status == models.EquipmentStatusRetired && req.Status != models.EquipmentStatusRetired {
			return apperrors.ErrLeaveRetired
		}
		if err := models.CheckHolderStatus(req.Status, nil); err != nil {
			return err
		}

		equipment.Status = req.Status
		equipment.UpdatedBy = req.Actor
		if err := repos.Equipment.Update(ctx, equipment); err != nil {
			return s.translateWriteError(err, "update")
		}
		out = equipment
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"equipment_id": id,
		"status":       req.Status,
	}).Info("equipment status changed")
	return toEquipmentResponse(out), nil
}

// RefreshWarranty recomputes the stored warranty fields of every piece of
// equipment against today's date and saves the ones that changed.
func (s *EquipmentService) RefreshWarranty(ctx context.Context) (*WarrantyRefreshResponse, error) {
	resp := &WarrantyRefreshResponse{}
	today := s.now()

	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		for offset := 0; ; offset += MaxPageSize {
			items, _, err := repos.Equipment.GetAll(ctx, "", MaxPageSize, offset)
			if err != nil {
				return fmt.Errorf("failed to list equipment: %w", err)
			}
			for i := range items {
				resp.Checked++
				current := warranty.Compute(items[i].WarrantyExpiration, today)
				if current.Status == items[i].WarrantyStatus && current.DaysLeft == items[i].WarrantyDaysLeft {
					continue
				}
				items[i].RefreshWarranty(today)
				if err := repos.Equipment.Update(ctx, &items[i]); err != nil {
					return fmt.Errorf("failed to update warranty of %s: %w", items[i].SerialNumber, err)
				}
				resp.Updated++
			}
			if len(items) < MaxPageSize {
				return nil
			}
		}
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"checked": resp.Checked,
		"updated": resp.Updated,
	}).Info("warranty refresh finished")
	return resp, nil
}

func (s *EquipmentService) get(ctx context.Context, id uuid.UUID) (*models.Equipment, error) {
	equipment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	return equipment, nil
}

func (s *EquipmentService) ensureType(ctx context.Context, typeID uuid.UUID) error {
	if _, err := s.typeRepo.GetByID(ctx, typeID); err != nil {
		if isNotFound(err) {
			return apperrors.ErrEquipmentTypeNotFound
		}
		return fmt.Errorf("failed to verify equipment type: %w", err)
	}
	return nil
}

func ensureSerialFree(ctx context.Context, repo repository.EquipmentRepositoryInterface, serial string, self uuid.UUID) error {
	existing, err := repo.GetBySerialNumber(ctx, serial)
	if err == nil && existing != nil && existing.ID != self {
		return apperrors.ErrEquipmentExists
	}
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to check serial number: %w", err)
	}
	return nil
}

func (s *EquipmentService) translateWriteError(err error, op string) error {
	switch {
	case apperrors.IsValidation(err):
		return err
	case isDuplicate(err):
		return apperrors.ErrEquipmentExists
	case isForeignKey(err):
		return apperrors.ErrEquipmentTypeNotFound
	default:
		return fmt.Errorf("failed to %s equipment: %w", op, err)
	}
}

func toEquipmentResponse(e *models.Equipment) *EquipmentResponse {
	return &EquipmentResponse{
		ID:                 e.ID,
		Name:               e.Name,
		SerialNumber:       e.SerialNumber,
		TypeID:             e.TypeID,
		PurchaseDate:       e.PurchaseDate,
		WarrantyExpiration: e.WarrantyExpiration,
		Status:             e.Status,
		EmployeeID:         e.EmployeeID,
		WarrantyStatus:     e.WarrantyStatus,
		WarrantyDaysLeft:   e.WarrantyDaysLeft,
		CreatedAt:          e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          e.UpdatedAt.Format(time.RFC3339),
	}
}
