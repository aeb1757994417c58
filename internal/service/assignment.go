package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"equipment-management-backend/internal/database/models"
	apperrors "equipment-management-backend/internal/errors"
	"equipment-management-backend/internal/logger"
	"equipment-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default notes written on a new interval when the caller gives none
const (
	DefaultAssignNote   = "assigned via wizard"
	DefaultTransferNote = "equipment transfer"
)

const tracerName = "equipment-management-backend/internal/service"

// AssignmentService assigns equipment to employees and transfers it between them.
// It is the only code path that sets the holder of a piece of equipment.
type AssignmentService struct {
	uow         repository.UnitOfWork
	validator   *validator.Validate
	tracer      trace.Tracer
	defaultNote string
	now         func() time.Time
}

// NewAssignmentService creates a new assignment service. An empty defaultNote
// falls back to DefaultAssignNote.
func NewAssignmentService(uow repository.UnitOfWork, validator *validator.Validate, defaultNote string) *AssignmentService {
	if strings.TrimSpace(defaultNote) == "" {
		defaultNote = DefaultAssignNote
	}
	return &AssignmentService{
		uow:         uow,
		validator:   validator,
		tracer:      otel.Tracer(tracerName),
		defaultNote: defaultNote,
		now:         time.Now,
	}
}

// AssignRequest represents an assign or transfer of one piece of equipment
type AssignRequest struct {
	EquipmentID uuid.UUID         `json:"-" validate:"required"`
	EmployeeID  uuid.UUID         `json:"employee_id" validate:"required" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"`
	Mode        models.AssignMode `json:"mode" validate:"required,oneof=assign transfer" example:"assign"`
	Date        *time.Time        `json:"date,omitempty"`
	Note        string            `json:"note,omitempty" validate:"max=2000"`
	Actor       string            `json:"-"`
}

// AssignmentResponse reports the state after an assign or transfer
type AssignmentResponse struct {
	Equipment EquipmentResponse `json:"equipment"`
	Interval  HistoryResponse   `json:"interval"`
	Closed    *HistoryResponse  `json:"closed_interval,omitempty"`
}

// AssignOrTransfer makes the employee the holder of the equipment. Any open
// interval is closed as transferred at the effective date and a new one
// starts at that same instant, so the history has neither gap nor overlap.
// Either everything is written or nothing is.
func (s *AssignmentService) AssignOrTransfer(ctx context.Context, req *AssignRequest) (*AssignmentResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	at := effectiveTime(req.Date, s.now)

	ctx, span := s.tracer.Start(ctx, "assignment.assign_or_transfer",
		trace.WithAttributes(
			attribute.String("equipment.id", req.EquipmentID.String()),
			attribute.String("employee.id", req.EmployeeID.String()),
			attribute.String("assignment.mode", string(req.Mode)),
		),
	)
	defer span.End()

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"equipment_id": req.EquipmentID,
		"employee_id":  req.EmployeeID,
		"mode":         req.Mode,
	})

	var resp *AssignmentResponse
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		resp, err = s.assign(ctx, repos, req, at)
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.WithError(err).Warn("equipment assignment rejected")
		return nil, err
	}

	span.SetAttributes(attribute.Bool("assignment.transferred", resp.Closed != nil))
	log.WithField("interval_id", resp.Interval.ID).Info("equipment assigned")
	return resp, nil
}

func (s *AssignmentService) assign(ctx context.Context, repos *repository.Repositories, req *AssignRequest, at time.Time) (*AssignmentResponse, error) {
	equipment, err := repos.Equipment.GetByIDForUpdate(ctx, req.EquipmentID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	if equipment.Status == models.EquipmentStatusRetired {
		return nil, apperrors.ErrRetiredEquipment
	}

	employee, err := repos.Employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if !employee.IsActive {
		return nil, apperrors.NewValidationError("employee_id", "cannot assign equipment to an inactive employee")
	}

	switch req.Mode {
	case models.AssignModeAssign:
		if equipment.IsHeld() {
			return nil, apperrors.NewValidationError("mode", "equipment is already assigned; use transfer mode")
		}
	case models.AssignModeTransfer:
		if equipment.IsHeld() && *equipment.EmployeeID == req.EmployeeID {
			return nil, apperrors.NewValidationError("employee_id", "equipment is already assigned to this employee")
		}
	}

	// Check the resulting record before anything is written
	if err := models.CheckHolderStatus(models.EquipmentStatusAssigned, &req.EmployeeID); err != nil {
		return nil, err
	}

	ledger := NewLedger(repos.History)
	open, err := ledger.FindOpenInterval(ctx, equipment.ID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		if err := ledger.CloseInterval(ctx, open, at, models.HistoryStateTransferred, ""); err != nil {
			return nil, err
		}
	}

	note := strings.TrimSpace(req.Note)
	if note == "" {
		note = s.defaultNote
		if req.Mode == models.AssignModeTransfer {
			note = DefaultTransferNote
		}
	}

	interval, err := ledger.OpenInterval(ctx, OpenIntervalParams{
		EquipmentID: equipment.ID,
		EmployeeID:  employee.ID,
		Start:       at,
		Actor:       req.Actor,
		Note:        note,
		State:       models.HistoryStateActive,
	})
	if err != nil {
		return nil, err
	}

	employeeID := employee.ID
	equipment.EmployeeID = &employeeID
	equipment.Status = models.EquipmentStatusAssigned
	equipment.UpdatedBy = req.Actor
	if err := repos.Equipment.Update(ctx, equipment); err != nil {
		if apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update equipment: %w", err)
	}

	resp := &AssignmentResponse{
		Equipment: *toEquipmentResponse(equipment),
		Interval:  *toHistoryResponse(interval),
	}
	if open != nil {
		resp.Closed = toHistoryResponse(open)
	}
	return resp, nil
}
