// Package memory keeps the whole data set in process memory. It implements
// the repository interfaces and the unit of work with the same constraints
// and referential actions as the relational schema, and is used for local
// runs (DB_DRIVER=memory) and for service tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"equipment-management-backend/internal/database/models"
	"equipment-management-backend/internal/repository"

	"github.com/google/uuid"
)

type tables struct {
	equipment   map[uuid.UUID]models.Equipment
	employees   map[uuid.UUID]models.Employee
	departments map[uuid.UUID]models.Department
	types       map[uuid.UUID]models.EquipmentType
	history     map[uuid.UUID]models.AssignmentHistory
}

func newTables() *tables {
	return &tables{
		equipment:   make(map[uuid.UUID]models.Equipment),
		employees:   make(map[uuid.UUID]models.Employee),
		departments: make(map[uuid.UUID]models.Department),
		types:       make(map[uuid.UUID]models.EquipmentType),
		history:     make(map[uuid.UUID]models.AssignmentHistory),
	}
}

func (t *tables) clone() *tables {
	c := newTables()
	for k, v := range t.equipment {
		c.equipment[k] = copyEquipment(v)
	}
	for k, v := range t.employees {
		c.employees[k] = copyEmployee(v)
	}
	for k, v := range t.departments {
		c.departments[k] = copyDepartment(v)
	}
	for k, v := range t.types {
		c.types[k] = v
	}
	for k, v := range t.history {
		c.history[k] = copyHistory(v)
	}
	return c
}

// Store is a mutex guarded in-memory database
type Store struct {
	mu sync.RWMutex
	t  *tables
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{t: newTables()}
}

// Repositories returns repositories that lock the store per call
func (s *Store) Repositories() *repository.Repositories {
	return newRepositories(&session{store: s})
}

// Do runs fn with exclusive access to the store. Any error or panic from fn
// restores the snapshot taken before fn started. Do must not be nested.
func (s *Store) Do(ctx context.Context, fn func(repos *repository.Repositories) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.t.clone()
	defer func() {
		if r := recover(); r != nil {
			s.t = snapshot
			panic(r)
		}
		if err != nil {
			s.t = snapshot
		}
	}()

	return fn(newRepositories(&session{store: s, inTx: true}))
}

// session gives repositories access to the tables. Outside a unit of work
// each call takes the store lock itself; inside one the lock is already held.
type session struct {
	store *Store
	inTx  bool
}

func (s *session) read(fn func(t *tables) error) error {
	if !s.inTx {
		s.store.mu.RLock()
		defer s.store.mu.RUnlock()
	}
	return fn(s.store.t)
}

func (s *session) write(fn func(t *tables) error) error {
	if !s.inTx {
		s.store.mu.Lock()
		defer s.store.mu.Unlock()
	}
	return fn(s.store.t)
}

func newRepositories(s *session) *repository.Repositories {
	return &repository.Repositories{
		Equipment:      &equipmentRepository{s: s},
		Employees:      &employeeRepository{s: s},
		Departments:    &departmentRepository{s: s},
		EquipmentTypes: &equipmentTypeRepository{s: s},
		History:        &historyRepository{s: s},
	}
}

func touch(base *models.BaseModel, created bool) {
	now := time.Now()
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	if created || base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now
}

func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func sortHistoryNewestFirst(entries []models.AssignmentHistory) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].DateFrom.Equal(entries[j].DateFrom) {
			return entries[i].DateFrom.After(entries[j].DateFrom)
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func copyUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func copyEquipment(e models.Equipment) models.Equipment {
	e.PurchaseDate = copyTime(e.PurchaseDate)
	e.WarrantyExpiration = copyTime(e.WarrantyExpiration)
	e.EmployeeID = copyUUID(e.EmployeeID)
	e.Type = nil
	e.Employee = nil
	return e
}

func copyEmployee(e models.Employee) models.Employee {
	e.DepartmentID = copyUUID(e.DepartmentID)
	e.ManagerID = copyUUID(e.ManagerID)
	e.Department = nil
	e.Manager = nil
	e.EquipmentCount = 0
	return e
}

func copyDepartment(d models.Department) models.Department {
	d.ManagerID = copyUUID(d.ManagerID)
	return d
}

func copyHistory(h models.AssignmentHistory) models.AssignmentHistory {
	h.DateTo = copyTime(h.DateTo)
	h.Equipment = nil
	h.Employee = nil
	return h
}
