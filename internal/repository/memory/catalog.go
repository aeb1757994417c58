package memory

import (
	"context"
	"sort"

	"equipment-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type departmentRepository struct {
	s *session
}

func (r *departmentRepository) Create(_ context.Context, department *models.Department) error {
	return r.s.write(func(t *tables) error {
		touch(&department.BaseModel, true)
		if _, exists := t.departments[department.ID]; exists {
			return gorm.ErrDuplicatedKey
		}
		if err := r.check(t, department); err != nil {
			return err
		}
		t.departments[department.ID] = copyDepartment(*department)
		return nil
	})
}

func (r *departmentRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Department, error) {
	var out *models.Department
	err := r.s.read(func(t *tables) error {
		d, ok := t.departments[id]
		if !ok {
			return gorm.ErrRecordNotFound
		}
		c := copyDepartment(d)
		out = &c
		return nil
	})
	return out, err
}

func (r *departmentRepository) GetByName(_ context.Context, name string) (*models.Department, error) {
	var out *models.Department
	err := r.s.read(func(t *tables) error {
		for _, d := range t.departments {
			if d.Name == name {
				c := copyDepartment(d)
				out = &c
				return nil
			}
		}
		return gorm.ErrRecordNotFound
	})
	return out, err
}

func (r *departmentRepository) GetAll(_ context.Context, limit, offset int) ([]models.Department, int64, error) {
	var all []models.Department
	err := r.s.read(func(t *tables) error {
		for _, d := range t.departments {
			all = append(all, copyDepartment(d))
		}
		return nil
	})
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return page(all, limit, offset), int64(len(all)), err
}

func (r *departmentRepository) Update(_ context.Context, department *models.Department) error {
	return r.s.write(func(t *tables) error {
		if _, ok := t.departments[department.ID]; !ok {
			return gorm.ErrRecordNotFound
		}
		touch(&department.BaseModel, false)
		if err := r.check(t, department); err != nil {
			return err
		}
		t.departments[department.ID] = copyDepartment(*department)
		return nil
	})
}

func (r *departmentRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.s.write(func(t *tables) error {
		delete(t.departments, id)
		// ON DELETE SET NULL from employees
		for eid, e := range t.employees {
			if e.DepartmentID != nil && *e.DepartmentID == id {
				e.DepartmentID = nil
				t.employees[eid] = e
			}
		}
		return nil
	})
}

func (r *departmentRepository) check(t *tables, d *models.Department) error {
	for id, other := range t.departments {
		if id != d.ID && other.Name == d.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	return nil
}

type equipmentTypeRepository struct {
	s *session
}

func (r *equipmentTypeRepository) Create(_ context.Context, equipmentType *models.EquipmentType) error {
	return r.s.write(func(t *tables) error {
		touch(&equipmentType.BaseModel, true)
		if _, exists := t.types[equipmentType.ID]; exists {
			return gorm.ErrDuplicatedKey
		}
		if err := r.check(t, equipmentType); err != nil {
			return err
		}
		t.types[equipmentType.ID] = *equipmentType
		return nil
	})
}

func (r *equipmentTypeRepository) GetByID(_ context.Context, id uuid.UUID) (*models.EquipmentType, error) {
	var out *models.EquipmentType
	err := r.s.read(func(t *tables) error {
		et, ok := t.types[id]
		if !ok {
			return gorm.ErrRecordNotFound
		}
		out = &et
		return nil
	})
	return out, err
}

func (r *equipmentTypeRepository) GetByName(_ context.Context, name string) (*models.EquipmentType, error) {
	var out *models.EquipmentType
	err := r.s.read(func(t *tables) error {
		for _, et := range t.types {
			if et.Name == name {
				c := et
				out = &c
				return nil
			}
		}
		return gorm.ErrRecordNotFound
	})
	return out, err
}

func (r *equipmentTypeRepository) GetAll(_ context.Context, limit, offset int) ([]models.EquipmentType, int64, error) {
	var all []models.EquipmentType
	err := r.s.read(func(t *tables) error {
		for _, et := range t.types {
			all = append(all, et)
		}
		return nil
	})
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return page(all, limit, offset), int64(len(all)), err
}

func (r *equipmentTypeRepository) Update(_ context.Context, equipmentType *models.EquipmentType) error {
	return r.s.write(func(t *tables) error {
		if _, ok := t.types[equipmentType.ID]; !ok {
			return gorm.ErrRecordNotFound
		}
		touch(&equipmentType.BaseModel, false)
		if err := r.check(t, equipmentType); err != nil {
			return err
		}
		t.types[equipmentType.ID] = *equipmentType
		return nil
	})
}

func (r *equipmentTypeRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.s.write(func(t *tables) error {
		// ON DELETE RESTRICT from equipment
		for _, e := range t.equipment {
			if e.TypeID == id {
				return gorm.ErrForeignKeyViolated
			}
		}
		delete(t.types, id)
		return nil
	})
}

func (r *equipmentTypeRepository) check(t *tables, et *models.EquipmentType) error {
	for id, other := range t.types {
		if id != et.ID && other.Name == et.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	return nil
}
