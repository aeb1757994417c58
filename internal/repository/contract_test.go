package repository

import (
	"context"
	"errors"
	"time"

	"equipment-management-backend/internal/database/models"
	"equipment-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// contractSuite checks the gorm repositories against a real database. It is
// embedded by the SQLite suite and the Postgres integration suite.
type contractSuite struct {
	suite.Suite
	db        *gorm.DB
	ctx       context.Context
	repos     *Repositories
	uow       *GormUnitOfWork
	factories *testutils.FactorySet
	kind      *models.EquipmentType
	alice     *models.Employee
	bob       *models.Employee
	start     time.Time
}

func (s *contractSuite) seed() {
	s.ctx = context.Background()
	s.repos = NewRepositories(s.db)
	s.uow = NewGormUnitOfWork(s.db)
	s.factories = testutils.NewFactorySet()
	s.start = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	s.kind = s.factories.EquipmentType.Create()
	s.Require().NoError(s.repos.EquipmentTypes.Create(s.ctx, s.kind))
	s.alice = s.factories.Employee.WithMatricule("E001")
	s.Require().NoError(s.repos.Employees.Create(s.ctx, s.alice))
	s.bob = s.factories.Employee.WithMatricule("E002")
	s.Require().NoError(s.repos.Employees.Create(s.ctx, s.bob))
}

func (s *contractSuite) heldBy(employee *models.Employee) (*models.Equipment, *models.AssignmentHistory) {
	e := s.factories.Equipment.AssignedTo(s.kind.ID, employee.ID)
	s.Require().NoError(s.repos.Equipment.Create(s.ctx, e))
	h := s.factories.History.Open(e.ID, employee.ID, s.start)
	s.Require().NoError(s.repos.History.Create(s.ctx, h))
	return e, h
}

func (s *contractSuite) TestEquipmentCRUD() {
	e := s.factories.Equipment.WithSerial(s.kind.ID, "LAPTOP-001")
	s.Require().NoError(s.repos.Equipment.Create(s.ctx, e))

	found, err := s.repos.Equipment.GetBySerialNumber(s.ctx, "LAPTOP-001")
	s.Require().NoError(err)
	s.Equal(e.ID, found.ID)
	s.Equal(models.EquipmentStatusAvailable, found.Status)

	found.Name = "Renamed"
	s.Require().NoError(s.repos.Equipment.Update(s.ctx, found))
	again, err := s.repos.Equipment.GetByID(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal("Renamed", again.Name)

	s.Require().NoError(s.repos.Equipment.Delete(s.ctx, e.ID))
	_, err = s.repos.Equipment.GetByID(s.ctx, e.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *contractSuite) TestEquipmentFilterAndCounts() {
	s.heldBy(s.alice)
	s.heldBy(s.alice)
	s.Require().NoError(s.repos.Equipment.Create(s.ctx, s.factories.Equipment.Create(s.kind.ID)))

	assigned, total, err := s.repos.Equipment.GetAll(s.ctx, models.EquipmentStatusAssigned, 10, 0)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Len(assigned, 2)

	_, total, err = s.repos.Equipment.GetAll(s.ctx, "", 1, 0)
	s.Require().NoError(err)
	s.Equal(int64(3), total)

	count, err := s.repos.Equipment.CountByEmployeeID(s.ctx, s.alice.ID)
	s.Require().NoError(err)
	s.Equal(int64(2), count)

	held, err := s.repos.Equipment.GetByEmployeeID(s.ctx, s.alice.ID)
	s.Require().NoError(err)
	s.Len(held, 2)

	count, err = s.repos.Equipment.CountByTypeID(s.ctx, s.kind.ID)
	s.Require().NoError(err)
	s.Equal(int64(3), count)
}

func (s *contractSuite) TestUniqueConstraintsAreTranslated() {
	s.Require().NoError(s.repos.Equipment.Create(s.ctx, s.factories.Equipment.WithSerial(s.kind.ID, "DUP")))
	err := s.repos.Equipment.Create(s.ctx, s.factories.Equipment.WithSerial(s.kind.ID, "DUP"))
	s.ErrorIs(err, gorm.ErrDuplicatedKey)

	err = s.repos.Employees.Create(s.ctx, s.factories.Employee.WithMatricule("E001"))
	s.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (s *contractSuite) TestForeignKeysAreTranslated() {
	err := s.repos.Equipment.Create(s.ctx, s.factories.Equipment.Create(uuid.New()))
	s.ErrorIs(err, gorm.ErrForeignKeyViolated)
}

func (s *contractSuite) TestHolderStatusGuardRunsOnSave() {
	e := s.factories.Equipment.Create(s.kind.ID)
	e.EmployeeID = &s.alice.ID
	err := s.repos.Equipment.Create(s.ctx, e)
	s.Error(err)
}

func (s *contractSuite) TestSingleOpenIntervalIndex() {
	e, _ := s.heldBy(s.alice)

	err := s.repos.History.Create(s.ctx, s.factories.History.Open(e.ID, s.bob.ID, s.start.Add(time.Hour)))
	s.ErrorIs(err, gorm.ErrDuplicatedKey)

	open, err := s.repos.History.FindOpenByEquipmentID(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Len(open, 1)
	s.Equal(s.alice.ID, open[0].EmployeeID)
}

func (s *contractSuite) TestHistoryOrderingAndCounts() {
	e, open := s.heldBy(s.bob)
	older := s.factories.History.Closed(e.ID, s.alice.ID, s.start.Add(-72*time.Hour), s.start.Add(-24*time.Hour), models.HistoryStateReturned)
	s.Require().NoError(s.repos.History.Create(s.ctx, older))

	entries, total, err := s.repos.History.GetByEquipmentID(s.ctx, e.ID, 10, 0)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Require().Len(entries, 2)
	s.Equal(open.ID, entries[0].ID)
	s.Equal(older.ID, entries[1].ID)

	entries, total, err = s.repos.History.GetByEmployeeID(s.ctx, s.alice.ID, 10, 0)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal(older.ID, entries[0].ID)

	count, err := s.repos.History.CountByEmployeeID(s.ctx, s.bob.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), count)
}

func (s *contractSuite) TestClosedIntervalCannotEndBeforeStart() {
	_, open := s.heldBy(s.alice)

	before := open.DateFrom.Add(-time.Minute)
	open.DateTo = &before
	open.State = models.HistoryStateReturned
	s.Error(s.repos.History.Update(s.ctx, open))
}

func (s *contractSuite) TestEquipmentDeleteCascadesHistory() {
	e, open := s.heldBy(s.alice)

	s.Require().NoError(s.repos.Equipment.Delete(s.ctx, e.ID))
	_, err := s.repos.History.GetByID(s.ctx, open.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *contractSuite) TestEmployeeDeleteRestrictedByHistory() {
	s.heldBy(s.alice)

	err := s.repos.Employees.Delete(s.ctx, s.alice.ID)
	s.ErrorIs(err, gorm.ErrForeignKeyViolated)
}

func (s *contractSuite) TestEmployeeDeleteClearsDepartmentReference() {
	dept := s.factories.Department.WithName("Finance")
	s.Require().NoError(s.repos.Departments.Create(s.ctx, dept))
	carol := s.factories.Employee.WithDepartment(dept.ID)
	s.Require().NoError(s.repos.Employees.Create(s.ctx, carol))

	s.Require().NoError(s.repos.Departments.Delete(s.ctx, dept.ID))
	found, err := s.repos.Employees.GetByID(s.ctx, carol.ID)
	s.Require().NoError(err)
	s.Nil(found.DepartmentID)
}

func (s *contractSuite) TestUnitOfWorkCommits() {
	e := s.factories.Equipment.Create(s.kind.ID)
	s.Require().NoError(s.repos.Equipment.Create(s.ctx, e))

	err := s.uow.Do(s.ctx, func(repos *Repositories) error {
		locked, err := repos.Equipment.GetByIDForUpdate(s.ctx, e.ID)
		if err != nil {
			return err
		}
		locked.Status = models.EquipmentStatusAssigned
		locked.EmployeeID = &s.alice.ID
		if err := repos.Equipment.Update(s.ctx, locked); err != nil {
			return err
		}
		return repos.History.Create(s.ctx, s.factories.History.Open(e.ID, s.alice.ID, s.start))
	})
	s.Require().NoError(err)

	found, err := s.repos.Equipment.GetByID(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal(models.EquipmentStatusAssigned, found.Status)
}

func (s *contractSuite) TestUnitOfWorkRollsBack() {
	e := s.factories.Equipment.Create(s.kind.ID)
	s.Require().NoError(s.repos.Equipment.Create(s.ctx, e))
	boom := errors.New("boom")

	err := s.uow.Do(s.ctx, func(repos *Repositories) error {
		locked, err := repos.Equipment.GetByIDForUpdate(s.ctx, e.ID)
		if err != nil {
			return err
		}
		locked.Status = models.EquipmentStatusAssigned
		locked.EmployeeID = &s.alice.ID
		if err := repos.Equipment.Update(s.ctx, locked); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	found, err := s.repos.Equipment.GetByID(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal(models.EquipmentStatusAvailable, found.Status)
	s.Nil(found.EmployeeID)
}

func (s *contractSuite) TestCatalogLookups() {
	dept := s.factories.Department.WithName("Operations")
	s.Require().NoError(s.repos.Departments.Create(s.ctx, dept))
	found, err := s.repos.Departments.GetByName(s.ctx, "Operations")
	s.Require().NoError(err)
	s.Equal(dept.ID, found.ID)

	kind, err := s.repos.EquipmentTypes.GetByName(s.ctx, s.kind.Name)
	s.Require().NoError(err)
	s.Equal(s.kind.ID, kind.ID)

	employee, err := s.repos.Employees.GetByMatricule(s.ctx, "E002")
	s.Require().NoError(err)
	s.Equal(s.bob.ID, employee.ID)

	_, total, err := s.repos.Employees.GetAll(s.ctx, 10, 0)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
}
