package memory

import (
	"context"
	"sort"

	"equipment-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type employeeRepository struct {
	s *session
}

func (r *employeeRepository) Create(_ context.Context, employee *models.Employee) error {
	return r.s.write(func(t *tables) error {
		touch(&employee.BaseModel, true)
		if _, exists := t.employees[employee.ID]; exists {
			return gorm.ErrDuplicatedKey
		}
		if err := r.check(t, employee); err != nil {
			return err
		}
		t.employees[employee.ID] = copyEmployee(*employee)
		return nil
	})
}

func (r *employeeRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Employee, error) {
	var out *models.Employee
	err := r.s.read(func(t *tables) error {
		e, ok := t.employees[id]
		if !ok {
			return gorm.ErrRecordNotFound
		}
		c := copyEmployee(e)
		out = &c
		return nil
	})
	return out, err
}

func (r *employeeRepository) GetByMatricule(_ context.Context, matricule string) (*models.Employee, error) {
	var out *models.Employee
	err := r.s.read(func(t *tables) error {
		for _, e := range t.employees {
			if e.Matricule == matricule {
				c := copyEmployee(e)
				out = &c
				return nil
			}
		}
		return gorm.ErrRecordNotFound
	})
	return out, err
}

func (r *employeeRepository) GetAll(_ context.Context, limit, offset int) ([]models.Employee, int64, error) {
	var all []models.Employee
	err := r.s.read(func(t *tables) error {
		for _, e := range t.employees {
			all = append(all, copyEmployee(e))
		}
		return nil
	})
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return page(all, limit, offset), int64(len(all)), err
}

func (r *employeeRepository) Update(_ context.Context, employee *models.Employee) error {
	return r.s.write(func(t *tables) error {
		if _, ok := t.employees[employee.ID]; !ok {
			return gorm.ErrRecordNotFound
		}
		touch(&employee.BaseModel, false)
		if err := r.check(t, employee); err != nil {
			return err
		}
		t.employees[employee.ID] = copyEmployee(*employee)
		return nil
	})
}

func (r *employeeRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.s.write(func(t *tables) error {
		// ON DELETE RESTRICT from assignment_histories
		for _, h := range t.history {
			if h.EmployeeID == id {
				return gorm.ErrForeignKeyViolated
			}
		}
		delete(t.employees, id)
		// ON DELETE SET NULL from equipment and from the manager self reference
		for eid, e := range t.equipment {
			if e.EmployeeID != nil && *e.EmployeeID == id {
				e.EmployeeID = nil
				t.equipment[eid] = e
			}
		}
		for oid, other := range t.employees {
			if other.ManagerID != nil && *other.ManagerID == id {
				other.ManagerID = nil
				t.employees[oid] = other
			}
		}
		return nil
	})
}

func (r *employeeRepository) check(t *tables, e *models.Employee) error {
	for id, other := range t.employees {
		if id != e.ID && other.Matricule == e.Matricule {
			return gorm.ErrDuplicatedKey
		}
	}
	if e.DepartmentID != nil {
		if _, ok := t.departments[*e.DepartmentID]; !ok {
			return gorm.ErrForeignKeyViolated
		}
	}
	if e.ManagerID != nil && *e.ManagerID != e.ID {
		if _, ok := t.employees[*e.ManagerID]; !ok {
			return gorm.ErrForeignKeyViolated
		}
	}
	return nil
}
