package memory

import (
	"context"
	"sort"

	"equipment-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type historyRepository struct {
	s *session
}

func (r *historyRepository) Create(_ context.Context, entry *models.AssignmentHistory) error {
	return r.s.write(func(t *tables) error {
		touch(&entry.BaseModel, true)
		if _, exists := t.history[entry.ID]; exists {
			return gorm.ErrDuplicatedKey
		}
		if err := r.check(t, entry); err != nil {
			return err
		}
		t.history[entry.ID] = copyHistory(*entry)
		return nil
	})
}

func (r *historyRepository) Update(_ context.Context, entry *models.AssignmentHistory) error {
	return r.s.write(func(t *tables) error {
		if _, ok := t.history[entry.ID]; !ok {
			return gorm.ErrRecordNotFound
		}
		touch(&entry.BaseModel, false)
		if err := r.check(t, entry); err != nil {
			return err
		}
		t.history[entry.ID] = copyHistory(*entry)
		return nil
	})
}

func (r *historyRepository) GetByID(_ context.Context, id uuid.UUID) (*models.AssignmentHistory, error) {
	var out *models.AssignmentHistory
	err := r.s.read(func(t *tables) error {
		h, ok := t.history[id]
		if !ok {
			return gorm.ErrRecordNotFound
		}
		c := copyHistory(h)
		out = &c
		return nil
	})
	return out, err
}

func (r *historyRepository) FindOpenByEquipmentID(_ context.Context, equipmentID uuid.UUID) ([]models.AssignmentHistory, error) {
	var open []models.AssignmentHistory
	err := r.s.read(func(t *tables) error {
		for _, h := range t.history {
			if h.EquipmentID == equipmentID && h.DateTo == nil {
				open = append(open, copyHistory(h))
			}
		}
		return nil
	})
	sort.Slice(open, func(i, j int) bool { return open[i].DateFrom.Before(open[j].DateFrom) })
	return open, err
}

func (r *historyRepository) GetByEquipmentID(_ context.Context, equipmentID uuid.UUID, limit, offset int) ([]models.AssignmentHistory, int64, error) {
	return r.list(func(h models.AssignmentHistory) bool { return h.EquipmentID == equipmentID }, limit, offset)
}

func (r *historyRepository) GetByEmployeeID(_ context.Context, employeeID uuid.UUID, limit, offset int) ([]models.AssignmentHistory, int64, error) {
	return r.list(func(h models.AssignmentHistory) bool { return h.EmployeeID == employeeID }, limit, offset)
}

func (r *historyRepository) CountByEmployeeID(_ context.Context, employeeID uuid.UUID) (int64, error) {
	var count int64
	err := r.s.read(func(t *tables) error {
		for _, h := range t.history {
			if h.EmployeeID == employeeID {
				count++
			}
		}
		return nil
	})
	return count, err
}

func (r *historyRepository) list(match func(models.AssignmentHistory) bool, limit, offset int) ([]models.AssignmentHistory, int64, error) {
	var all []models.AssignmentHistory
	err := r.s.read(func(t *tables) error {
		for _, h := range t.history {
			if match(h) {
				all = append(all, copyHistory(h))
			}
		}
		return nil
	})
	sortHistoryNewestFirst(all)
	return page(all, limit, offset), int64(len(all)), err
}

// check mirrors the hook, the partial unique index on open intervals and the
// foreign keys of the assignment_histories table
func (r *historyRepository) check(t *tables, h *models.AssignmentHistory) error {
	if err := h.BeforeSave(nil); err != nil {
		return err
	}
	if h.DateTo == nil {
		for id, other := range t.history {
			if id != h.ID && other.EquipmentID == h.EquipmentID && other.DateTo == nil {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	if _, ok := t.equipment[h.EquipmentID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	if _, ok := t.employees[h.EmployeeID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	return nil
}
