package service

import (
	"context"
	"fmt"
	"time"

	"equipment-management-backend/internal/database/models"
	apperrors "equipment-management-backend/internal/errors"
	"equipment-management-backend/internal/repository"

	"github.com/google/uuid"
)

// Ledger keeps the assignment history of every piece of equipment: at most
// one open interval per equipment, and no interval ending before it starts.
// Every check re-reads storage instead of trusting what the caller believes.
type Ledger struct {
	history repository.AssignmentHistoryRepositoryInterface
}

// NewLedger creates a ledger over a history repository, usually the one of a unit of work
func NewLedger(history repository.AssignmentHistoryRepositoryInterface) *Ledger {
	return &Ledger{history: history}
}

// OpenIntervalParams describes a new assignment interval
type OpenIntervalParams struct {
	EquipmentID uuid.UUID
	EmployeeID  uuid.UUID
	Start       time.Time
	Actor       string
	Note        string
	State       models.HistoryState
}

// FindOpenInterval returns the open interval of the equipment, or nil when it
// has none. The rows stay locked until the surrounding transaction ends.
func (l *Ledger) FindOpenInterval(ctx context.Context, equipmentID uuid.UUID) (*models.AssignmentHistory, error) {
	open, err := l.history.FindOpenByEquipmentID(ctx, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find open interval: %w", err)
	}
	switch len(open) {
	case 0:
		return nil, nil
	case 1:
		return &open[0], nil
	default:
		return nil, fmt.Errorf("equipment %s has %d open intervals: %w", equipmentID, len(open), apperrors.ErrMultipleOpenIntervals)
	}
}

// OpenInterval starts a new interval for the equipment
func (l *Ledger) OpenInterval(ctx context.Context, p OpenIntervalParams) (*models.AssignmentHistory, error) {
	if p.State == "" {
		p.State = models.HistoryStateActive
	}
	if p.State != models.HistoryStateActive {
		return nil, apperrors.NewValidationError("state", "a new interval must be active")
	}

	existing, err := l.FindOpenInterval(ctx, p.EquipmentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewValidationError("equipment_id", "equipment already has an open assignment interval")
	}

	latest, _, err := l.history.GetByEquipmentID(ctx, p.EquipmentID, 1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to read latest interval: %w", err)
	}
	if len(latest) > 0 && latest[0].DateTo != nil && p.Start.Before(*latest[0].DateTo) {
		return nil, apperrors.NewValidationError("date", "an interval cannot start before the previous one ended")
	}

	entry := &models.AssignmentHistory{
		BaseModel:   models.BaseModel{CreatedBy: p.Actor, UpdatedBy: p.Actor},
		EquipmentID: p.EquipmentID,
		EmployeeID:  p.EmployeeID,
		DateFrom:    p.Start.UTC(),
		AssignedBy:  p.Actor,
		Note:        p.Note,
		State:       p.State,
	}
	if err := l.history.Create(ctx, entry); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.NewValidationError("equipment_id", "equipment already has an open assignment interval")
		}
		if apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to open interval: %w", err)
	}
	return entry, nil
}

// CloseInterval ends an open interval at end with the given final state.
// appendedNote is added below the existing note, never replacing it.
func (l *Ledger) CloseInterval(ctx context.Context, entry *models.AssignmentHistory, end time.Time, state models.HistoryState, appendedNote string) error {
	if entry == nil {
		return apperrors.NewValidationError("", "no interval to close")
	}
	if !entry.IsOpen() {
		return apperrors.NewValidationError("date_to", "interval is already closed")
	}
	if state != models.HistoryStateReturned && state != models.HistoryStateTransferred {
		return apperrors.NewValidationError("state", "an interval can only close as returned or transferred")
	}
	end = end.UTC()
	if end.Before(entry.DateFrom) {
		return apperrors.NewValidationError("date_to", "end date cannot be earlier than start date")
	}

	entry.DateTo = &end
	entry.State = state
	entry.AppendNote(appendedNote)
	if err := l.history.Update(ctx, entry); err != nil {
		if apperrors.IsValidation(err) {
			return err
		}
		return fmt.Errorf("failed to close interval: %w", err)
	}
	return nil
}

// AppendNote adds text to the note of any entry, open or closed
func (l *Ledger) AppendNote(ctx context.Context, entry *models.AssignmentHistory, text, actor string) error {
	entry.AppendNote(text)
	entry.UpdatedBy = actor
	if err := l.history.Update(ctx, entry); err != nil {
		return fmt.Errorf("failed to append note: %w", err)
	}
	return nil
}
