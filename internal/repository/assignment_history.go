package repository

import (
	"context"

	"equipment-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssignmentHistoryRepository handles database operations for assignment history
type AssignmentHistoryRepository struct {
	db *gorm.DB
}

// NewAssignmentHistoryRepository creates a new assignment history repository
func NewAssignmentHistoryRepository(db *gorm.DB) *AssignmentHistoryRepository {
	return &AssignmentHistoryRepository{db: db}
}

// Create creates a new history entry
func (r *AssignmentHistoryRepository) Create(ctx context.Context, entry *models.AssignmentHistory) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(entry).Error
}

// Update saves every column of a history entry
func (r *AssignmentHistoryRepository) Update(ctx context.Context, entry *models.AssignmentHistory) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(entry).Error
}

// GetByID retrieves a history entry by ID
func (r *AssignmentHistoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AssignmentHistory, error) {
	var entry models.AssignmentHistory
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindOpenByEquipmentID returns the open intervals of the equipment, locked
// for update. More than one row means the data is already corrupt; callers
// decide how to report it.
func (r *AssignmentHistoryRepository) FindOpenByEquipmentID(ctx context.Context, equipmentID uuid.UUID) ([]models.AssignmentHistory, error) {
	var entries []models.AssignmentHistory
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("equipment_id = ? AND date_to IS NULL", equipmentID).
		Order("date_from ASC").
		Find(&entries).Error
	return entries, err
}

// GetByEquipmentID retrieves the history of a piece of equipment, newest first
func (r *AssignmentHistoryRepository) GetByEquipmentID(ctx context.Context, equipmentID uuid.UUID, limit, offset int) ([]models.AssignmentHistory, int64, error) {
	return r.list(ctx, "equipment_id = ?", equipmentID, limit, offset)
}

// GetByEmployeeID retrieves the history of an employee, newest first
func (r *AssignmentHistoryRepository) GetByEmployeeID(ctx context.Context, employeeID uuid.UUID, limit, offset int) ([]models.AssignmentHistory, int64, error) {
	return r.list(ctx, "employee_id = ?", employeeID, limit, offset)
}

// CountByEmployeeID counts all history entries referencing an employee
func (r *AssignmentHistoryRepository) CountByEmployeeID(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AssignmentHistory{}).Where("employee_id = ?", employeeID).Count(&count).Error
	return count, err
}

func (r *AssignmentHistoryRepository) list(ctx context.Context, cond string, id uuid.UUID, limit, offset int) ([]models.AssignmentHistory, int64, error) {
	var entries []models.AssignmentHistory
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.AssignmentHistory{}).Where(cond, id).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where(cond, id).
		Order("date_from DESC").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	return entries, total, err
}
