package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"equipment-management-backend/internal/database/models"
	"equipment-management-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *Store
	repos *repository.Repositories
	kind  *models.EquipmentType
	alice *models.Employee
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewStore()
	s.repos = s.store.Repositories()

	s.kind = &models.EquipmentType{Name: "Laptop"}
	s.Require().NoError(s.repos.EquipmentTypes.Create(s.ctx, s.kind))

	s.alice = &models.Employee{Matricule: "E001", Name: "Alice", IsActive: true}
	s.Require().NoError(s.repos.Employees.Create(s.ctx, s.alice))
}

func (s *StoreTestSuite) newEquipment(serial string) *models.Equipment {
	e := &models.Equipment{Name: "ThinkPad", SerialNumber: serial, TypeID: s.kind.ID}
	s.Require().NoError(s.repos.Equipment.Create(s.ctx, e))
	return e
}

func (s *StoreTestSuite) TestCreateAssignsIDAndDefaults() {
	e := s.newEquipment("SN-1")

	s.NotEqual(uuid.Nil, e.ID)
	s.False(e.CreatedAt.IsZero())

	found, err := s.repos.Equipment.GetByID(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal(models.EquipmentStatusAvailable, found.Status)
	s.Equal("none", string(found.WarrantyStatus))
}

func (s *StoreTestSuite) TestReturnedRecordsAreCopies() {
	e := s.newEquipment("SN-1")

	found, err := s.repos.Equipment.GetByID(s.ctx, e.ID)
	s.Require().NoError(err)
	found.Name = "changed"

	again, err := s.repos.Equipment.GetByID(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal("ThinkPad", again.Name)
}

func (s *StoreTestSuite) TestUniqueSerialNumber() {
	s.newEquipment("SN-1")

	err := s.repos.Equipment.Create(s.ctx, &models.Equipment{Name: "Other", SerialNumber: "SN-1", TypeID: s.kind.ID})
	s.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (s *StoreTestSuite) TestUnknownTypeIsRejected() {
	err := s.repos.Equipment.Create(s.ctx, &models.Equipment{Name: "X", SerialNumber: "SN-9", TypeID: uuid.New()})
	s.ErrorIs(err, gorm.ErrForeignKeyViolated)
}

func (s *StoreTestSuite) TestHolderStatusHookRunsOnWrite() {
	e := s.newEquipment("SN-1")
	e.EmployeeID = &s.alice.ID

	err := s.repos.Equipment.Update(s.ctx, e)
	s.Error(err)

	found, _ := s.repos.Equipment.GetByID(s.ctx, e.ID)
	s.Nil(found.EmployeeID)
}

func (s *StoreTestSuite) TestSingleOpenIntervalPerEquipment() {
	e := s.newEquipment("SN-1")
	now := time.Now().UTC()

	first := &models.AssignmentHistory{EquipmentID: e.ID, EmployeeID: s.alice.ID, DateFrom: now}
	s.Require().NoError(s.repos.History.Create(s.ctx, first))

	second := &models.AssignmentHistory{EquipmentID: e.ID, EmployeeID: s.alice.ID, DateFrom: now.Add(time.Hour)}
	s.ErrorIs(s.repos.History.Create(s.ctx, second), gorm.ErrDuplicatedKey)

	closedAt := now.Add(time.Hour)
	first.DateTo = &closedAt
	first.State = models.HistoryStateReturned
	s.Require().NoError(s.repos.History.Update(s.ctx, first))
	s.NoError(s.repos.History.Create(s.ctx, second))
}

func (s *StoreTestSuite) TestHistoryOrderedNewestFirst() {
	e := s.newEquipment("SN-1")
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		from := base.AddDate(0, i, 0)
		to := from.AddDate(0, 0, 10)
		s.Require().NoError(s.repos.History.Create(s.ctx, &models.AssignmentHistory{
			EquipmentID: e.ID, EmployeeID: s.alice.ID, DateFrom: from, DateTo: &to, State: models.HistoryStateReturned,
		}))
	}

	entries, total, err := s.repos.History.GetByEquipmentID(s.ctx, e.ID, 2, 0)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(entries, 2)
	s.Equal(base.AddDate(0, 2, 0), entries[0].DateFrom)
	s.Equal(base.AddDate(0, 1, 0), entries[1].DateFrom)
}

func (s *StoreTestSuite) TestDeleteEquipmentCascadesHistory() {
	e := s.newEquipment("SN-1")
	s.Require().NoError(s.repos.History.Create(s.ctx, &models.AssignmentHistory{
		EquipmentID: e.ID, EmployeeID: s.alice.ID, DateFrom: time.Now(),
	}))

	s.Require().NoError(s.repos.Equipment.Delete(s.ctx, e.ID))

	count, err := s.repos.History.CountByEmployeeID(s.ctx, s.alice.ID)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *StoreTestSuite) TestDeleteEmployeeRestrictedByHistory() {
	e := s.newEquipment("SN-1")
	s.Require().NoError(s.repos.History.Create(s.ctx, &models.AssignmentHistory{
		EquipmentID: e.ID, EmployeeID: s.alice.ID, DateFrom: time.Now(),
	}))

	s.ErrorIs(s.repos.Employees.Delete(s.ctx, s.alice.ID), gorm.ErrForeignKeyViolated)
	_, err := s.repos.Employees.GetByID(s.ctx, s.alice.ID)
	s.NoError(err)
}

func (s *StoreTestSuite) TestDeleteEmployeeClearsManagerReference() {
	bob := &models.Employee{Matricule: "E002", Name: "Bob", ManagerID: &s.alice.ID, IsActive: true}
	s.Require().NoError(s.repos.Employees.Create(s.ctx, bob))

	s.Require().NoError(s.repos.Employees.Delete(s.ctx, s.alice.ID))

	found, err := s.repos.Employees.GetByID(s.ctx, bob.ID)
	s.Require().NoError(err)
	s.Nil(found.ManagerID)
}

func (s *StoreTestSuite) TestDeleteDepartmentClearsEmployees() {
	dept := &models.Department{Name: "IT"}
	s.Require().NoError(s.repos.Departments.Create(s.ctx, dept))
	s.alice.DepartmentID = &dept.ID
	s.Require().NoError(s.repos.Employees.Update(s.ctx, s.alice))

	s.Require().NoError(s.repos.Departments.Delete(s.ctx, dept.ID))

	found, err := s.repos.Employees.GetByID(s.ctx, s.alice.ID)
	s.Require().NoError(err)
	s.Nil(found.DepartmentID)
}

func (s *StoreTestSuite) TestDeleteTypeRestrictedByEquipment() {
	s.newEquipment("SN-1")
	s.ErrorIs(s.repos.EquipmentTypes.Delete(s.ctx, s.kind.ID), gorm.ErrForeignKeyViolated)
}

func (s *StoreTestSuite) TestUnitOfWorkRollsBackOnError() {
	boom := errors.New("boom")

	err := s.store.Do(s.ctx, func(repos *repository.Repositories) error {
		if err := repos.Equipment.Create(s.ctx, &models.Equipment{Name: "A", SerialNumber: "SN-A", TypeID: s.kind.ID}); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	_, err = s.repos.Equipment.GetBySerialNumber(s.ctx, "SN-A")
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *StoreTestSuite) TestUnitOfWorkRollsBackOnPanic() {
	s.Panics(func() {
		_ = s.store.Do(s.ctx, func(repos *repository.Repositories) error {
			_ = repos.Equipment.Create(s.ctx, &models.Equipment{Name: "A", SerialNumber: "SN-A", TypeID: s.kind.ID})
			panic("boom")
		})
	})

	_, err := s.repos.Equipment.GetBySerialNumber(s.ctx, "SN-A")
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *StoreTestSuite) TestUnitOfWorkCommits() {
	err := s.store.Do(s.ctx, func(repos *repository.Repositories) error {
		return repos.Equipment.Create(s.ctx, &models.Equipment{Name: "A", SerialNumber: "SN-A", TypeID: s.kind.ID})
	})
	s.Require().NoError(err)

	_, err = s.repos.Equipment.GetBySerialNumber(s.ctx, "SN-A")
	s.NoError(err)
}

func (s *StoreTestSuite) TestUnitOfWorkHonoursCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	called := false
	err := s.store.Do(ctx, func(*repository.Repositories) error {
		called = true
		return nil
	})
	s.ErrorIs(err, context.Canceled)
	s.False(called)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{3, 4}, page(items, 2, 2))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, page(items, 0, 0))
	assert.Empty(t, page(items, 2, 10))
	require.Len(t, page(items, 10, 4), 1)
}
