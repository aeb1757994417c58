package repository

import (
	"context"

	"equipment-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EquipmentTypeRepository handles database operations for equipment types
type EquipmentTypeRepository struct {
	db *gorm.DB
}

// NewEquipmentTypeRepository creates a new equipment type repository
func NewEquipmentTypeRepository(db *gorm.DB) *EquipmentTypeRepository {
	return &EquipmentTypeRepository{db: db}
}

// Create creates a new equipment type
func (r *EquipmentTypeRepository) Create(ctx context.Context, equipmentType *models.EquipmentType) error {
	return r.db.WithContext(ctx).Create(equipmentType).Error
}

// GetByID retrieves an equipment type by ID
func (r *EquipmentTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.EquipmentType, error) {
	var equipmentType models.EquipmentType
	err := r.db.WithContext(ctx).First(&equipmentType, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &equipmentType, nil
}

// GetByName retrieves an equipment type by name
func (r *EquipmentTypeRepository) GetByName(ctx context.Context, name string) (*models.EquipmentType, error) {
	var equipmentType models.EquipmentType
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&equipmentType).Error
	if err != nil {
		return nil, err
	}
	return &equipmentType, nil
}

// GetAll retrieves all equipment types with pagination
func (r *EquipmentTypeRepository) GetAll(ctx context.Context, limit, offset int) ([]models.EquipmentType, int64, error) {
	var equipmentTypes []models.EquipmentType
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.EquipmentType{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).Order("name ASC").Limit(limit).Offset(offset).Find(&equipmentTypes).Error
	return equipmentTypes, total, err
}

// Update saves every column of the equipment type
func (r *EquipmentTypeRepository) Update(ctx context.Context, equipmentType *models.EquipmentType) error {
	return r.db.WithContext(ctx).Save(equipmentType).Error
}

// Delete removes an equipment type; the restricting foreign key refuses types still in use
func (r *EquipmentTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.EquipmentType{}, "id = ?", id).Error
}
