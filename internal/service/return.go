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

// ReturnService takes equipment back from its holder
type ReturnService struct {
	uow       repository.UnitOfWork
	validator *validator.Validate
	tracer    trace.Tracer
	now       func() time.Time
}

// NewReturnService creates a new return service
func NewReturnService(uow repository.UnitOfWork, validator *validator.Validate) *ReturnService {
	return &ReturnService{
		uow:       uow,
		validator: validator,
		tracer:    otel.Tracer(tracerName),
		now:       time.Now,
	}
}

// ReturnRequest represents the return of one piece of equipment
type ReturnRequest struct {
	EquipmentID       uuid.UUID              `json:"-" validate:"required"`
	Condition         models.ReturnCondition `json:"condition" validate:"required,oneof=good damaged lost" example:"good"`
	DamageDescription string                 `json:"damage_description,omitempty" validate:"max=2000"`
	Date              *time.Time             `json:"date,omitempty"`
	Note              string                 `json:"note,omitempty" validate:"max=2000"`
	Actor             string                 `json:"-"`
}

// ReturnResponse reports the state after a return
type ReturnResponse struct {
	Equipment EquipmentResponse `json:"equipment"`
	Interval  HistoryResponse   `json:"interval"`
}

// ReturnEquipment closes the open interval as returned, clears the holder and
// moves the equipment to the status matching its condition: good to
// available, damaged to in_repair, lost to retired.
func (s *ReturnService) ReturnEquipment(ctx context.Context, req *ReturnRequest) (*ReturnResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if req.Condition == models.ReturnConditionDamaged && strings.TrimSpace(req.DamageDescription) == "" {
		return nil, apperrors.NewValidationError("damage_description", "a damage description is required for damaged equipment")
	}
	at := effectiveTime(req.Date, s.now)

	ctx, span := s.tracer.Start(ctx, "assignment.return",
		trace.WithAttributes(
			attribute.String("equipment.id", req.EquipmentID.String()),
			attribute.String("return.condition", string(req.Condition)),
		),
	)
	defer span.End()

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"equipment_id": req.EquipmentID,
		"condition":    req.Condition,
	})

	var resp *ReturnResponse
	err := s.uow.Do(ctx, func(repos *repository.Repositories) error {
		var err error
		resp, err = s.returnEquipment(ctx, repos, req, at)
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.WithError(err).Warn("equipment return rejected")
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"interval_id": resp.Interval.ID,
		"status":      resp.Equipment.Status,
	}).Info("equipment returned")
	return resp, nil
}

func (s *ReturnService) returnEquipment(ctx context.Context, repos *repository.Repositories, req *ReturnRequest, at time.Time) (*ReturnResponse, error) {
	equipment, err := repos.Equipment.GetByIDForUpdate(ctx, req.EquipmentID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	if !equipment.IsHeld() {
		return nil, apperrors.ErrEquipmentNotAssigned
	}

	newStatus := req.Condition.ResultingStatus()
	if err := models.CheckHolderStatus(newStatus, nil); err != nil {
		return nil, err
	}

	ledger := NewLedger(repos.History)
	open, err := ledger.FindOpenInterval(ctx, equipment.ID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, apperrors.NewValidationError("equipment_id", "equipment has a holder but no open assignment interval")
	}

	if err := ledger.CloseInterval(ctx, open, at, models.HistoryStateReturned, returnNote(req)); err != nil {
		return nil, err
	}

	equipment.EmployeeID = nil
	equipment.Status = newStatus
	equipment.UpdatedBy = req.Actor
	if err := repos.Equipment.Update(ctx, equipment); err != nil {
		if apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update equipment: %w", err)
	}

	return &ReturnResponse{
		Equipment: *toEquipmentResponse(equipment),
		Interval:  *toHistoryResponse(open),
	}, nil
}

// returnNote renders the lines appended to the interval note on return
func returnNote(req *ReturnRequest) string {
	lines := []string{"Return: " + string(req.Condition)}
	if req.Condition == models.ReturnConditionDamaged {
		lines = append(lines, "Damage: "+strings.TrimSpace(req.DamageDescription))
	}
	if note := strings.TrimSpace(req.Note); note != "" {
		lines = append(lines, "Note: "+note)
	}
	return strings.Join(lines, "\n")
}
