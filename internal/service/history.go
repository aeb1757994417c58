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

// HistoryService exposes the assignment history read side and note edits
type HistoryService struct {
	repo          repository.AssignmentHistoryRepositoryInterface
	equipmentRepo repository.EquipmentRepositoryInterface
	employeeRepo  repository.EmployeeRepositoryInterface
	uow           repository.UnitOfWork
	validator     *validator.Validate
}

// NewHistoryService creates a new history service
func NewHistoryService(repo repository.AssignmentHistoryRepositoryInterface, equipmentRepo repository.EquipmentRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, uow repository.UnitOfWork, validator *validator.Validate) *HistoryService {
	return &HistoryService{
		repo:          repo,
		equipmentRepo: equipmentRepo,
		employeeRepo:  employeeRepo,
		uow:           uow,
		validator:     validator,
	}
}

// AppendNoteRequest represents a note added to a history entry
type AppendNoteRequest struct {
	Note  string `json:"note" validate:"required,min=1,max=2000" example:"charger replaced"`
	Actor string `json:"-"`
}

// HistoryResponse represents one assignment interval
type HistoryResponse struct {
	ID          uuid.UUID           `json:"id"`
	EquipmentID uuid.UUID           `json:"equipment_id"`
	EmployeeID  uuid.UUID           `json:"employee_id"`
	DateFrom    time.Time           `json:"date_from"`
	DateTo      *time.Time          `json:"date_to,omitempty"`
	AssignedBy  string              `json:"assigned_by"`
	Note        string              `json:"note"`
	State       models.HistoryState `json:"state"`
	IsOpen      bool                `json:"is_open"`
}

// HistoryListResponse represents a paginated list of history entries, newest first
type HistoryListResponse struct {
	Entries  []HistoryResponse `json:"entries"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// GetByID retrieves a single history entry
func (s *HistoryService) GetByID(ctx context.Context, id uuid.UUID) (*HistoryResponse, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrAssignmentHistoryNotFound
		}
		return nil, fmt.Errorf("failed to get history entry: %w", err)
	}
	return toHistoryResponse(entry), nil
}

// GetByEquipment lists the history of a piece of equipment
func (s *HistoryService) GetByEquipment(ctx context.Context, equipmentID uuid.UUID, page, pageSize int) (*HistoryListResponse, error) {
	if _, err := s.equipmentRepo.GetByID(ctx, equipmentID); err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}

	limit, offset, page := normalizePage(page, pageSize)
	entries, total, err := s.repo.GetByEquipmentID(ctx, equipmentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment history: %w", err)
	}
	return toHistoryList(entries, total, page, limit), nil
}

// GetByEmployee lists the history of an employee
func (s *HistoryService) GetByEmployee(ctx context.Context, employeeID uuid.UUID, page, pageSize int) (*HistoryListResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	limit, offset, page := normalizePage(page, pageSize)
	entries, total, err := s.repo.GetByEmployeeID(ctx, employeeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee history: %w", err)
	}
	return toHistoryList(entries, total, page, limit), nil
}

// AppendNote adds a line to the note of a history entry. Dates, state and
// the existing note text never change here.
func (s *HistoryService) AppendNote(ctx context.Context, id uuid.UUID, req *AppendNoteRequest) (*HistoryResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	var out *models.AssignmentHistory
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		entry, err := repos.History.GetByID(ctx, id)
		if err != nil {
			if isNotFound(err) {
				return apperrors.ErrAssignmentHistoryNotFound
			}
			return fmt.Errorf("failed to get history entry: %w", err)
		}
		if err := NewLedger(repos.History).AppendNote(ctx, entry, req.Note, req.Actor); err != nil {
			return err
		}
		out = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("history_id", id).Info("history note appended")
	return toHistoryResponse(out), nil
}

func toHistoryList(entries []models.AssignmentHistory, total int64, page, pageSize int) *HistoryListResponse {
	resp := &HistoryListResponse{Entries: make([]HistoryResponse, 0, len(entries)), Total: total, Page: page, PageSize: pageSize}
	for i := range entries {
		resp.Entries = append(resp.Entries, *toHistoryResponse(&entries[i]))
	}
	return resp
}

func toHistoryResponse(h *models.AssignmentHistory) *HistoryResponse {
	return &HistoryResponse{
		ID:          h.ID,
		EquipmentID: h.EquipmentID,
		EmployeeID:  h.EmployeeID,
		DateFrom:    h.DateFrom,
		DateTo:      h.DateTo,
		AssignedBy:  h.AssignedBy,
		Note:        h.Note,
		State:       h.State,
		IsOpen:      h.IsOpen(),
	}
}
