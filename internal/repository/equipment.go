package repository

import (
	"context"

	"equipment-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EquipmentRepository handles database operations for equipment
type EquipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository creates a new equipment repository
func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// Create creates a new piece of equipment
func (r *EquipmentRepository) Create(ctx context.Context, equipment *models.Equipment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(equipment).Error
}

// GetByID retrieves equipment by ID
func (r *EquipmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Equipment, error) {
	var equipment models.Equipment
	err := r.db.WithContext(ctx).First(&equipment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

// GetByIDForUpdate retrieves equipment by ID and locks the row (SELECT ... FOR UPDATE).
// Dialects without row locks ignore the clause.
func (r *EquipmentRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Equipment, error) {
	var equipment models.Equipment
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&equipment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

// GetBySerialNumber retrieves equipment by its serial number
func (r *EquipmentRepository) GetBySerialNumber(ctx context.Context, serial string) (*models.Equipment, error) {
	var equipment models.Equipment
	err := r.db.WithContext(ctx).Where("serial_number = ?", serial).First(&equipment).Error
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

// GetAll retrieves equipment with pagination, optionally filtered by status
func (r *EquipmentRepository) GetAll(ctx context.Context, status models.EquipmentStatus, limit, offset int) ([]models.Equipment, int64, error) {
	var equipment []models.Equipment
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Equipment{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("serial_number ASC").Limit(limit).Offset(offset).Find(&equipment).Error
	return equipment, total, err
}

// GetByEmployeeID retrieves all equipment currently held by an employee
func (r *EquipmentRepository) GetByEmployeeID(ctx context.Context, employeeID uuid.UUID) ([]models.Equipment, error) {
	var equipment []models.Equipment
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("serial_number ASC").
		Find(&equipment).Error
	return equipment, err
}

// CountByEmployeeID counts the equipment currently held by an employee
func (r *EquipmentRepository) CountByEmployeeID(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Equipment{}).Where("employee_id = ?", employeeID).Count(&count).Error
	return count, err
}

// CountByTypeID counts the equipment of a given type
func (r *EquipmentRepository) CountByTypeID(ctx context.Context, typeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Equipment{}).Where("type_id = ?", typeID).Count(&count).Error
	return count, err
}

// Update saves every column of the equipment; BeforeSave runs on the full record
func (r *EquipmentRepository) Update(ctx context.Context, equipment *models.Equipment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(equipment).Error
}

// Delete removes equipment; its history is removed by the cascading foreign key
func (r *EquipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Equipment{}, "id = ?", id).Error
}
