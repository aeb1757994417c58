package memory

import (
	"context"
	"sort"

	"equipment-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type equipmentRepository struct {
	s *session
}

func (r *equipmentRepository) Create(_ context.Context, equipment *models.Equipment) error {
	return r.s.write(func(t *tables) error {
		touch(&equipment.BaseModel, true)
		if _, exists := t.equipment[equipment.ID]; exists {
			return gorm.ErrDuplicatedKey
		}
		if err := r.check(t, equipment); err != nil {
			return err
		}
		t.equipment[equipment.ID] = copyEquipment(*equipment)
		return nil
	})
}

func (r *equipmentRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Equipment, error) {
	var out *models.Equipment
	err := r.s.read(func(t *tables) error {
		e, ok := t.equipment[id]
		if !ok {
			return gorm.ErrRecordNotFound
		}
		c := copyEquipment(e)
		out = &c
		return nil
	})
	return out, err
}

// GetByIDForUpdate needs no extra locking: a unit of work already owns the store
func (r *equipmentRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Equipment, error) {
	return r.GetByID(ctx, id)
}

func (r *equipmentRepository) GetBySerialNumber(_ context.Context, serial string) (*models.Equipment, error) {
	var out *models.Equipment
	err := r.s.read(func(t *tables) error {
		for _, e := range t.equipment {
			if e.SerialNumber == serial {
				c := copyEquipment(e)
				out = &c
				return nil
			}
		}
		return gorm.ErrRecordNotFound
	})
	return out, err
}

func (r *equipmentRepository) GetAll(_ context.Context, status models.EquipmentStatus, limit, offset int) ([]models.Equipment, int64, error) {
	var all []models.Equipment
	err := r.s.read(func(t *tables) error {
		for _, e := range t.equipment {
			if status == "" || e.Status == status {
				all = append(all, copyEquipment(e))
			}
		}
		return nil
	})
	sortEquipment(all)
	return page(all, limit, offset), int64(len(all)), err
}

func (r *equipmentRepository) GetByEmployeeID(_ context.Context, employeeID uuid.UUID) ([]models.Equipment, error) {
	var held []models.Equipment
	err := r.s.read(func(t *tables) error {
		for _, e := range t.equipment {
			if e.EmployeeID != nil && *e.EmployeeID == employeeID {
				held = append(held, copyEquipment(e))
			}
		}
		return nil
	})
	sortEquipment(held)
	return held, err
}

func (r *equipmentRepository) CountByEmployeeID(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	held, err := r.GetByEmployeeID(ctx, employeeID)
	return int64(len(held)), err
}

func (r *equipmentRepository) CountByTypeID(_ context.Context, typeID uuid.UUID) (int64, error) {
	var count int64
	err := r.s.read(func(t *tables) error {
		for _, e := range t.equipment {
			if e.TypeID == typeID {
				count++
			}
		}
		return nil
	})
	return count, err
}

func (r *equipmentRepository) Update(_ context.Context, equipment *models.Equipment) error {
	return r.s.write(func(t *tables) error {
		if _, ok := t.equipment[equipment.ID]; !ok {
			return gorm.ErrRecordNotFound
		}
		touch(&equipment.BaseModel, false)
		if err := r.check(t, equipment); err != nil {
			return err
		}
		t.equipment[equipment.ID] = copyEquipment(*equipment)
		return nil
	})
}

func (r *equipmentRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.s.write(func(t *tables) error {
		delete(t.equipment, id)
		// ON DELETE CASCADE
		for hid, h := range t.history {
			if h.EquipmentID == id {
				delete(t.history, hid)
			}
		}
		return nil
	})
}

// check mirrors the hooks, unique index and foreign keys of the equipment table
func (r *equipmentRepository) check(t *tables, e *models.Equipment) error {
	if err := e.BeforeSave(nil); err != nil {
		return err
	}
	for id, other := range t.equipment {
		if id != e.ID && other.SerialNumber == e.SerialNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	if _, ok := t.types[e.TypeID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	if e.EmployeeID != nil {
		if _, ok := t.employees[*e.EmployeeID]; !ok {
			return gorm.ErrForeignKeyViolated
		}
	}
	return nil
}

func sortEquipment(items []models.Equipment) {
	sort.Slice(items, func(i, j int) bool { return items[i].SerialNumber < items[j].SerialNumber })
}
