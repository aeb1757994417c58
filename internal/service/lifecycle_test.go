package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"equipment-management-backend/internal/database/models"
	apperrors "equipment-management-backend/internal/errors"
	"equipment-management-backend/internal/repository"
	"equipment-management-backend/internal/repository/memory"
	"equipment-management-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// LifecycleTestSuite runs the assignment and return transactions against the in-memory store
type LifecycleTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
	repos *repository.Repositories

	assignments *service.AssignmentService
	returns     *service.ReturnService
	equipment   *service.EquipmentService
	history     *service.HistoryService
	employees   *service.EmployeeService

	laptop *models.Equipment
	e1     *models.Employee
	e2     *models.Employee
	day1   time.Time
	day2   time.Time
}

func (suite *LifecycleTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = memory.NewStore()
	suite.repos = suite.store.Repositories()
	v := validator.New()

	suite.assignments = service.NewAssignmentService(suite.store, v, "")
	suite.returns = service.NewReturnService(suite.store, v)
	suite.equipment = service.NewEquipmentService(suite.repos.Equipment, suite.repos.EquipmentTypes, suite.store, v)
	suite.history = service.NewHistoryService(suite.repos.History, suite.repos.Equipment, suite.repos.Employees, suite.store, v)
	suite.employees = service.NewEmployeeService(suite.repos.Employees, suite.repos.Departments, suite.repos.Equipment, suite.repos.History, v)

	kind := &models.EquipmentType{Name: "Laptop"}
	suite.Require().NoError(suite.repos.EquipmentTypes.Create(suite.ctx, kind))

	suite.laptop = &models.Equipment{Name: "ThinkPad T14", SerialNumber: "LAPTOP-001", TypeID: kind.ID}
	suite.Require().NoError(suite.repos.Equipment.Create(suite.ctx, suite.laptop))

	suite.e1 = &models.Employee{Matricule: "E1", Name: "Alice Martin", IsActive: true}
	suite.Require().NoError(suite.repos.Employees.Create(suite.ctx, suite.e1))
	suite.e2 = &models.Employee{Matricule: "E2", Name: "Bob Durand", IsActive: true}
	suite.Require().NoError(suite.repos.Employees.Create(suite.ctx, suite.e2))

	suite.day1 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	suite.day2 = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
}

func (suite *LifecycleTestSuite) assign(employee *models.Employee, mode models.AssignMode, at time.Time, note string) (*service.AssignmentResponse, error) {
	return suite.assignments.AssignOrTransfer(suite.ctx, &service.AssignRequest{
		EquipmentID: suite.laptop.ID,
		EmployeeID:  employee.ID,
		Mode:        mode,
		Date:        &at,
		Note:        note,
		Actor:       "admin",
	})
}

func (suite *LifecycleTestSuite) giveBack(condition models.ReturnCondition, damage string, at time.Time) (*service.ReturnResponse, error) {
	return suite.returns.ReturnEquipment(suite.ctx, &service.ReturnRequest{
		EquipmentID:       suite.laptop.ID,
		Condition:         condition,
		DamageDescription: damage,
		Date:              &at,
		Actor:             "admin",
	})
}

func (suite *LifecycleTestSuite) reload() *models.Equipment {
	e, err := suite.repos.Equipment.GetByID(suite.ctx, suite.laptop.ID)
	suite.Require().NoError(err)
	return e
}

func (suite *LifecycleTestSuite) entries() []service.HistoryResponse {
	list, err := suite.history.GetByEquipment(suite.ctx, suite.laptop.ID, 1, 100)
	suite.Require().NoError(err)
	return list.Entries
}

func (suite *LifecycleTestSuite) openCount() int {
	open, err := suite.repos.History.FindOpenByEquipmentID(suite.ctx, suite.laptop.ID)
	suite.Require().NoError(err)
	return len(open)
}

func (suite *LifecycleTestSuite) TestAssignAvailableEquipment() {
	resp, err := suite.assign(suite.e1, models.AssignModeAssign, suite.day1, "")
	suite.Require().NoError(err)

	suite.Equal(models.EquipmentStatusAssigned, resp.Equipment.Status)
	suite.Equal(suite.e1.ID, *resp.Equipment.EmployeeID)
	suite.Nil(resp.Closed)
	suite.True(resp.Interval.IsOpen)
	suite.Equal(suite.day1, resp.Interval.DateFrom)
	suite.Equal(models.HistoryStateActive, resp.Interval.State)
	suite.Equal(service.DefaultAssignNote, resp.Interval.Note)
	suite.Equal("admin", resp.Interval.AssignedBy)

	stored := suite.reload()
	suite.Equal(models.EquipmentStatusAssigned, stored.Status)
	suite.Equal(suite.e1.ID, *stored.EmployeeID)
	suite.Equal(1, suite.openCount())
}

func (suite *LifecycleTestSuite) TestConfiguredDefaultNote() {
	assignments := service.NewAssignmentService(suite.store, validator.New(), "handed over at desk")

	at := suite.day1
	resp, err := assignments.AssignOrTransfer(suite.ctx, &service.AssignRequest{
		EquipmentID: suite.laptop.ID,
		EmployeeID:  suite.e1.ID,
		Mode:        models.AssignModeAssign,
		Date:        &at,
	})
	suite.Require().NoError(err)
	suite.Equal("handed over at desk", resp.Interval.Note)
}

func (suite *LifecycleTestSuite) TestTransferLeavesNoGapAndNoOverlap() {
	_, err := suite.assign(suite.e1, models.AssignModeAssign, suite.day1, "")
	suite.Require().NoError(err)

	resp, err := suite.assign(suite.e2, models.AssignModeTransfer, suite.day2, "")
	suite.Require().NoError(err)

	suite.Require().NotNil(resp.Closed)
	suite.Equal(suite.e1.ID, resp.Closed.EmployeeID)
	suite.Equal(models.HistoryStateTransferred, resp.Closed.State)
	suite.Require().NotNil(resp.Closed.DateTo)
	suite.Equal(suite.day2, *resp.Closed.DateTo)
	suite.Equal(*resp.Closed.DateTo, resp.Interval.DateFrom)
	suite.Equal(service.DefaultTransferNote, resp.Interval.Note)

	entries := suite.entries()
	suite.Require().Len(entries, 2)
	// newest first
	suite.Equal(suite.e2.ID, entries[0].EmployeeID)
	suite.True(entries[0].IsOpen)
	suite.Equal(suite.e1.ID, entries[1].EmployeeID)
	suite.Equal(suite.day1, entries[1].DateFrom)
	suite.Equal(suite.day2, *entries[1].DateTo)

	suite.Equal(suite.e2.ID, *suite.reload().EmployeeID)
	suite.Equal(1, suite.openCount())
}

func (suite *LifecycleTestSuite) TestTransferOfUnassignedEquipmentOpensFirstInterval() {
	resp, err := suite.assign(suite.e1, models.AssignModeTransfer, suite.day1, "")
	suite.Require().NoError(err)

	suite.Nil(resp.Closed)
	suite.Equal(suite.e1.ID, *resp.Equipment.EmployeeID)
	suite.Equal(1, suite.openCount())
}

func (suite *LifecycleTestSuite) TestAssignModeRejectsHeldEquipment() {
	_, err := suite.assign(suite.e1, models.AssignModeAssign, suite.day1, "")
	suite.Require().NoError(err)

	_, err = suite.assign(suite.e2, models.AssignModeAssign, suite.day2, "")
	suite.True(apperrors.IsValidation(err))

	suite.Equal(suite.e1.ID, *suite.reload().EmployeeID)
	suite.Len(suite.entries(), 1)
}

func (suite *LifecycleTestSuite) TestTransferToCurrentHolderIsRejected() {
	_, err := suite.assign(suite.e1, models.AssignModeAssign, suite.day1, "")
	suite.Require().NoError(err)

	_, err = suite.assign(suite.e1, models.AssignModeTransfer, suite.day2, "")
	suite.True(apperrors.IsValidation(err))
	suite.Len(suite.entries(), 1)
	suite.Equal(1, suite.openCount())
}

func (suite *LifecycleTestSuite) TestAssignRetiredEquipmentIsRejected() {
	_, err := suite.equipment.ChangeStatus(suite.ctx, suite.laptop.ID, &service.ChangeStatusRequest{Status: models.EquipmentStatusRetired})
	suite.Require().NoError(err)

	_, err = suite.assign(suite.e1, models.AssignModeAssign, suite.day1, "")
	suite.ErrorIs(err, apperrors.ErrRetiredEquipment)
	suite.True(apperrors.IsOperation(err))
	suite.Empty(suite.entries())
}

func (suite *LifecycleTestSuite) TestAssignUnknownEmployee() {
	_, err := suite.assign(&models.Employee{BaseModel: models.BaseModel{ID: uuid.New()}}, models.AssignModeAssign, suite.day1, "")
	suite.ErrorIs(err, apperrors.ErrEmployeeNotFound)
	suite.Equal(models.EquipmentStatusAvailable, suite.reload().Status)
}

func (suite *LifecycleTestSuite) TestAssignUnknownEquipment() {
	at := suite.day1
	_, err := suite.assignments.AssignOrTransfer(suite.ctx, &service.AssignRequest{
		EquipmentID: uuid.New(),
		EmployeeID:  suite.e1.ID,
		Mode:        models.AssignModeAssign,
		Date:        &at,
	})
	suite.ErrorIs(err, apperrors.ErrEquipmentNotFound)
}

func (suite *LifecycleTestSuite) TestAssignInactiveEmployeeIsRejected() {
	suite.e1.IsActive = false
	suite.Require().NoError(suite.repos.Employees.Update(suite.ctx, suite.e1))

	_, err := suite.assign(suite.e1, models.AssignModeAssign, suite.day1, "")
	suite.True(apperrors.IsValidation(err))
}

func (suite *LifecycleTestSuite) TestAssignRequestValidation() {
	_, err := suite.assign(suite.e1, models.AssignMode("lend"), suite.day1, "")
	suite.True(apperrors.IsValidation(err))

	var verr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &verr))
	suite.Equal("mode", verr.Field)
}

func (suite *LifecycleTestSuite) TestReturnGood() {
	_, err := suite.assign(suite.e1, models.AssignModeAssign, suite.day1, "first laptop")
	suite.Require().NoError(err)

	resp, err := suite.giveBack(models.ReturnConditionGood, "", suite.day2)
	suite.Require().NoError(err)

	suite.Equal(models.EquipmentStatusAvailable, resp.Equipment.Status)
	suite.Nil(resp.Equipment.EmployeeID)
	suite.Equal(models.HistoryStateReturned, resp.Interval.State)
	suite.Equal(suite.day2, *resp.Interval.DateTo)
	suite.Equal("first laptop\nReturn: good", resp.Interval.Note)

	stored := suite.reload()
	suite.Nil(stored.EmployeeID)
	suite.Equal(models.EquipmentStatusAvailable, stored.Status)
	suite.Equal(0, suite.openCount())
}

func (suite *LifecycleTestSuite) TestReturnDamagedCrackedScreen() {
	_, err := suite.assign(suite.e1, models.AssignModeAssign, suite.day1, "")
	suite.Require().NoError(err)

	at := suite.day2
	resp, err := suite.returns.ReturnEquipment(suite.ctx, &service.ReturnRequest{
		EquipmentID:       suite.laptop.ID,
		Condition:         models.ReturnConditionDamaged,
		DamageDescription: "cracked screen",
		Note:              "sent to vendor",
		Date:              &at,
	})
	suite.Require().NoError(err)

	suite.Equal(models.EquipmentStatusInRepair, resp.Equipment.Status)
	suite.Nil(resp.Equipment.EmployeeID)
	suite.Equal(service.DefaultAssignNote+"\nReturn: damaged\nDamage: cracked screen\nNote: sent to vendor", resp.Interval.Note)

	entries := suite.entries()
	suite.Require().Len(entries, 1)
	suite.Equal(resp.Interval.Note, entries[0].Note)
}

func (suite *LifecycleTestSuite) TestReturnLostRetiresEquipment() {
	_, err := suite.assign(suite.e1, models.AssignModeAssign, suite.day1, "")
	suite.Require().NoError(err)

	resp, err := suite.giveBack(models.ReturnConditionLost, "", suite.day2)
	suite.Require().NoError(err)
	suite.Equal(models.EquipmentStatusRetired, resp.Equipment.Status)

	_, err = suite.assign(suite.e2, models.AssignModeAssign, suite.day2.Add(time.Hour), "")
	suite.ErrorIs(err, apperrors.ErrRetiredEquipment)
}

func (suite *LifecycleTestSuite) TestReturnDamagedWithoutDescription() {
	_, err := suite.assign(suite.e1, models.AssignModeAssign, suite.day1, "")
	suite.Require().NoError(err)

	_, err = suite.giveBack(models.ReturnConditionDamaged, "   ", suite.day2)
	suite.True(apperrors.IsValidation(err))

	stored := suite.reload()
	suite.Equal(models.EquipmentStatusAssigned, stored.Status)
	suite.Equal(1, suite.openCount())
}

func (suite *LifecycleTestSuite) TestReturnUnassignedEquipment() {
	_, err := suite.giveBack(models.ReturnConditionGood, "", suite.day1)
	suite.ErrorIs(err, apperrors.ErrEquipmentNotAssigned)
	suite.True(apperrors.IsOperation(err))
}

func (suite *LifecycleTestSuite) TestReturnWithoutOpenIntervalIsSurfaced() {
	// holder written behind the ledger's back
	laptop := suite.reload()
	laptop.EmployeeID = &suite.e1.ID
	laptop.Status = models.EquipmentStatusAssigned
	suite.Require().NoError(suite.repos.Equipment.Update(suite.ctx, laptop))

	_, err := suite.giveBack(models.ReturnConditionGood, "", suite.day2)
	suite.True(apperrors.IsValidation(err))

	stored := suite.reload()
	suite.Equal(suite.e1.ID, *stored.EmployeeID)
	suite.Equal(models.EquipmentStatusAssigned, stored.Status)
}

func (suite *LifecycleTestSuite) TestReturnBeforeStartIsRejected() {
	_, err := suite.assign(suite.e1, models.AssignModeAssign, suite.day2, "")
	suite.Require().NoError(err)

	_, err = suite.giveBack(models.ReturnConditionGood, "", suite.day1)
	suite.True(apperrors.IsValidation(err))

	suite.Equal(models.EquipmentStatusAssigned, suite.reload().Status)
	suite.Equal(1, suite.openCount())
}

func (suite *LifecycleTestSuite) TestTransferBeforeStartIsRejected() {
	_, err := suite.assign(suite.e1, models.AssignModeAssign, suite.day2, "")
	suite.Require().NoError(err)

	_, err = suite.assign(suite.e2, models.AssignModeTransfer, suite.day1, "")
	suite.True(apperrors.IsValidation(err))

	suite.Equal(suite.e1.ID, *suite.reload().EmployeeID)
	entries := suite.entries()
	suite.Require().Len(entries, 1)
	suite.True(entries[0].IsOpen)
}

func (suite *LifecycleTestSuite) TestFailedTransferRollsBack() {
	_, err := suite.assign(suite.e1, models.AssignModeAssign, suite.day1, "")
	suite.Require().NoError(err)

	boom := errors.New("disk full")
	assignments := service.NewAssignmentService(&faultyUnitOfWork{store: suite.store, createErr: boom}, validator.New(), "")

	at := suite.day2
	_, err = assignments.AssignOrTransfer(suite.ctx, &service.AssignRequest{
		EquipmentID: suite.laptop.ID,
		EmployeeID:  suite.e2.ID,
		Mode:        models.AssignModeTransfer,
		Date:        &at,
	})
	suite.ErrorIs(err, boom)

	// the close of the first interval was undone too
	entries := suite.entries()
	suite.Require().Len(entries, 1)
	suite.True(entries[0].IsOpen)
	suite.Equal(models.HistoryStateActive, entries[0].State)
	suite.Equal(suite.e1.ID, *suite.reload().EmployeeID)
}

func (suite *LifecycleTestSuite) TestReassignAfterReturn() {
	_, err := suite.assign(suite.e1, models.AssignModeAssign, suite.day1, "")
	suite.Require().NoError(err)
	_, err = suite.giveBack(models.ReturnConditionGood, "", suite.day2)
	suite.Require().NoError(err)

	resp, err := suite.assign(suite.e2, models.AssignModeAssign, suite.day2.Add(24*time.Hour), "")
	suite.Require().NoError(err)
	suite.Nil(resp.Closed)

	entries := suite.entries()
	suite.Require().Len(entries, 2)
	suite.Equal(models.HistoryStateReturned, entries[1].State)
	suite.Equal(1, suite.openCount())
}

func (suite *LifecycleTestSuite) TestReassignBeforePreviousReturnIsRejected() {
	_, err := suite.assign(suite.e1, models.AssignModeAssign, suite.day1, "")
	suite.Require().NoError(err)
	_, err = suite.giveBack(models.ReturnConditionGood, "", suite.day2)
	suite.Require().NoError(err)

	_, err = suite.assign(suite.e2, models.AssignModeAssign, suite.day2.Add(-time.Hour), "")
	suite.True(apperrors.IsValidation(err))
	suite.Equal(models.EquipmentStatusAvailable, suite.reload().Status)
	suite.Len(suite.entries(), 1)
}

func (suite *LifecycleTestSuite) TestAppendNoteKeepsClosedIntervalIntact() {
	_, err := suite.assign(suite.e1, models.AssignModeAssign, suite.day1, "")
	suite.Require().NoError(err)
	ret, err := suite.giveBack(models.ReturnConditionGood, "", suite.day2)
	suite.Require().NoError(err)

	resp, err := suite.history.AppendNote(suite.ctx, ret.Interval.ID, &service.AppendNoteRequest{Note: "charger missing", Actor: "auditor"})
	suite.Require().NoError(err)

	suite.Equal(ret.Interval.Note+"\ncharger missing", resp.Note)
	suite.Equal(*ret.Interval.DateTo, *resp.DateTo)
	suite.Equal(models.HistoryStateReturned, resp.State)
}

func (suite *LifecycleTestSuite) TestEmployeeEquipmentAndDeleteRestriction() {
	_, err := suite.assign(suite.e1, models.AssignModeAssign, suite.day1, "")
	suite.Require().NoError(err)

	emp, err := suite.employees.GetByID(suite.ctx, suite.e1.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), emp.EquipmentCount)

	held, err := suite.employees.GetEquipment(suite.ctx, suite.e1.ID)
	suite.Require().NoError(err)
	suite.Require().Len(held, 1)
	suite.Equal("LAPTOP-001", held[0].SerialNumber)

	_, err = suite.giveBack(models.ReturnConditionGood, "", suite.day2)
	suite.Require().NoError(err)

	err = suite.employees.Delete(suite.ctx, suite.e1.ID)
	suite.ErrorIs(err, apperrors.ErrEmployeeHasHistory)

	suite.NoError(suite.employees.Delete(suite.ctx, suite.e2.ID))
}

func (suite *LifecycleTestSuite) TestChangeStatusRules() {
	resp, err := suite.equipment.ChangeStatus(suite.ctx, suite.laptop.ID, &service.ChangeStatusRequest{Status: models.EquipmentStatusInRepair})
	suite.Require().NoError(err)
	suite.Equal(models.EquipmentStatusInRepair, resp.Status)

	_, err = suite.equipment.ChangeStatus(suite.ctx, suite.laptop.ID, &service.ChangeStatusRequest{Status: models.EquipmentStatusAssigned})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.assign(suite.e1, models.AssignModeAssign, suite.day1, "")
	suite.Require().NoError(err)
	_, err = suite.equipment.ChangeStatus(suite.ctx, suite.laptop.ID, &service.ChangeStatusRequest{Status: models.EquipmentStatusAvailable})
	suite.ErrorIs(err, apperrors.ErrEquipmentHeld)

	_, err = suite.giveBack(models.ReturnConditionLost, "", suite.day2)
	suite.Require().NoError(err)
	_, err = suite.equipment.ChangeStatus(suite.ctx, suite.laptop.ID, &service.ChangeStatusRequest{Status: models.EquipmentStatusAvailable})
	suite.ErrorIs(err, apperrors.ErrLeaveRetired)
}

func (suite *LifecycleTestSuite) TestDeleteEquipmentRemovesHistory() {
	_, err := suite.assign(suite.e1, models.AssignModeAssign, suite.day1, "")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.equipment.Delete(suite.ctx, suite.laptop.ID))

	count, err := suite.repos.History.CountByEmployeeID(suite.ctx, suite.e1.ID)
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *LifecycleTestSuite) TestUpdateDoesNotUndoConcurrentAssignment() {
	name := "ThinkPad T14 Gen 4"
	typeID := suite.laptop.TypeID

	// the assignment commits while Update is still checking the catalog
	types := &hookedTypes{
		EquipmentTypeRepositoryInterface: suite.repos.EquipmentTypes,
		hook: func() {
			_, err := suite.assign(suite.e1, models.AssignModeAssign, suite.day1, "")
			suite.Require().NoError(err)
		},
	}
	equipment := service.NewEquipmentService(suite.repos.Equipment, types, suite.store, validator.New())

	resp, err := equipment.Update(suite.ctx, suite.laptop.ID, &service.UpdateEquipmentRequest{Name: &name, TypeID: &typeID})
	suite.Require().NoError(err)
	suite.Equal(name, resp.Name)
	suite.Equal(models.EquipmentStatusAssigned, resp.Status)

	stored := suite.reload()
	suite.Equal(name, stored.Name)
	suite.Equal(models.EquipmentStatusAssigned, stored.Status)
	suite.Require().NotNil(stored.EmployeeID)
	suite.Equal(suite.e1.ID, *stored.EmployeeID)
	suite.Equal(1, suite.openCount())
}

func TestLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(LifecycleTestSuite))
}

// faultyUnitOfWork runs on a real store but fails every history insert
type faultyUnitOfWork struct {
	store     *memory.Store
	createErr error
}

func (u *faultyUnitOfWork) Do(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	return u.store.Do(ctx, func(repos *repository.Repositories) error {
		repos.History = &failingHistory{AssignmentHistoryRepositoryInterface: repos.History, err: u.createErr}
		return fn(repos)
	})
}

type failingHistory struct {
	repository.AssignmentHistoryRepositoryInterface
	err error
}

func (f *failingHistory) Create(context.Context, *models.AssignmentHistory) error {
	return f.err
}

// hookedTypes runs hook once, on the first type lookup
type hookedTypes struct {
	repository.EquipmentTypeRepositoryInterface
	hook func()
}

func (h *hookedTypes) GetByID(ctx context.Context, id uuid.UUID) (*models.EquipmentType, error) {
	if h.hook != nil {
		hook := h.hook
		h.hook = nil
		hook()
	}
	return h.EquipmentTypeRepositoryInterface.GetByID(ctx, id)
}
