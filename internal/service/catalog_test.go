package service_test

import (
	"context"
	"testing"

	"equipment-management-backend/internal/database/models"
	apperrors "equipment-management-backend/internal/errors"
	"equipment-management-backend/internal/mocks"
	"equipment-management-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// DepartmentServiceTestSuite defines the test suite for DepartmentService
type DepartmentServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	ctx          context.Context
	mockRepo     *mocks.MockDepartmentRepositoryInterface
	mockEmployee *mocks.MockEmployeeRepositoryInterface
	service      *service.DepartmentService
}

func (suite *DepartmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.mockRepo = mocks.NewMockDepartmentRepositoryInterface(suite.ctrl)
	suite.mockEmployee = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.service = service.NewDepartmentService(suite.mockRepo, suite.mockEmployee, validator.New())
}

func (suite *DepartmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DepartmentServiceTestSuite) TestCreateDepartment() {
	manager := &models.Employee{BaseModel: models.BaseModel{ID: uuid.New()}, Matricule: "M1"}
	suite.mockRepo.EXPECT().GetByName(suite.ctx, "IT").Return(nil, gorm.ErrRecordNotFound)
	suite.mockEmployee.EXPECT().GetByID(suite.ctx, manager.ID).Return(manager, nil)
	suite.mockRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil)

	resp, err := suite.service.Create(suite.ctx, &service.CreateDepartmentRequest{Name: "IT", ManagerID: &manager.ID})

	suite.Require().NoError(err)
	suite.Equal("IT", resp.Name)
	suite.Equal(manager.ID, *resp.ManagerID)
}

func (suite *DepartmentServiceTestSuite) TestCreateDepartmentDuplicateName() {
	suite.mockRepo.EXPECT().GetByName(suite.ctx, "IT").
		Return(&models.Department{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "IT"}, nil)

	_, err := suite.service.Create(suite.ctx, &service.CreateDepartmentRequest{Name: "IT"})
	suite.ErrorIs(err, apperrors.ErrDepartmentExists)
}

func (suite *DepartmentServiceTestSuite) TestCreateDepartmentValidation() {
	_, err := suite.service.Create(suite.ctx, &service.CreateDepartmentRequest{})
	suite.True(apperrors.IsValidation(err))
}

func (suite *DepartmentServiceTestSuite) TestCreateDepartmentUnknownManager() {
	manager := uuid.New()
	suite.mockRepo.EXPECT().GetByName(suite.ctx, "IT").Return(nil, gorm.ErrRecordNotFound)
	suite.mockEmployee.EXPECT().GetByID(suite.ctx, manager).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Create(suite.ctx, &service.CreateDepartmentRequest{Name: "IT", ManagerID: &manager})
	suite.ErrorIs(err, apperrors.ErrManagerNotFound)
}

func (suite *DepartmentServiceTestSuite) TestUpdateDepartmentRenameToSameName() {
	dept := &models.Department{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "IT"}
	name := "IT"
	suite.mockRepo.EXPECT().GetByID(suite.ctx, dept.ID).Return(dept, nil)
	suite.mockRepo.EXPECT().Update(suite.ctx, dept).Return(nil)

	resp, err := suite.service.Update(suite.ctx, dept.ID, &service.UpdateDepartmentRequest{Name: &name})
	suite.Require().NoError(err)
	suite.Equal("IT", resp.Name)
}

func (suite *DepartmentServiceTestSuite) TestDeleteDepartmentNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(suite.ctx, id).Return(nil, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.service.Delete(suite.ctx, id), apperrors.ErrDepartmentNotFound)
}

func (suite *DepartmentServiceTestSuite) TestGetAllDepartments() {
	suite.mockRepo.EXPECT().GetAll(suite.ctx, 50, 50).
		Return([]models.Department{{Name: "HR"}, {Name: "IT"}}, int64(52), nil)

	resp, err := suite.service.GetAll(suite.ctx, 2, 50)
	suite.Require().NoError(err)
	suite.Len(resp.Departments, 2)
	suite.Equal(int64(52), resp.Total)
}

func TestDepartmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DepartmentServiceTestSuite))
}

// EquipmentTypeServiceTestSuite defines the test suite for EquipmentTypeService
type EquipmentTypeServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	ctx           context.Context
	mockRepo      *mocks.MockEquipmentTypeRepositoryInterface
	mockEquipment *mocks.MockEquipmentRepositoryInterface
	service       *service.EquipmentTypeService
}

func (suite *EquipmentTypeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.mockRepo = mocks.NewMockEquipmentTypeRepositoryInterface(suite.ctrl)
	suite.mockEquipment = mocks.NewMockEquipmentRepositoryInterface(suite.ctrl)
	suite.service = service.NewEquipmentTypeService(suite.mockRepo, suite.mockEquipment, validator.New())
}

func (suite *EquipmentTypeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EquipmentTypeServiceTestSuite) TestCreateEquipmentType() {
	suite.mockRepo.EXPECT().GetByName(suite.ctx, "Monitor").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil)

	resp, err := suite.service.Create(suite.ctx, &service.CreateEquipmentTypeRequest{Name: "Monitor", Description: "External displays"})

	suite.Require().NoError(err)
	suite.Equal("Monitor", resp.Name)
	suite.Equal("External displays", resp.Description)
}

func (suite *EquipmentTypeServiceTestSuite) TestCreateEquipmentTypeDuplicate() {
	suite.mockRepo.EXPECT().GetByName(suite.ctx, "Monitor").
		Return(&models.EquipmentType{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Monitor"}, nil)

	_, err := suite.service.Create(suite.ctx, &service.CreateEquipmentTypeRequest{Name: "Monitor"})
	suite.ErrorIs(err, apperrors.ErrEquipmentTypeExists)
}

func (suite *EquipmentTypeServiceTestSuite) TestDeleteEquipmentTypeInUse() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(suite.ctx, id).Return(&models.EquipmentType{BaseModel: models.BaseModel{ID: id}}, nil)
	suite.mockEquipment.EXPECT().CountByTypeID(suite.ctx, id).Return(int64(4), nil)

	err := suite.service.Delete(suite.ctx, id)
	suite.ErrorIs(err, apperrors.ErrEquipmentTypeInUse)
}

func (suite *EquipmentTypeServiceTestSuite) TestDeleteEquipmentType() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(suite.ctx, id).Return(&models.EquipmentType{BaseModel: models.BaseModel{ID: id}}, nil)
	suite.mockEquipment.EXPECT().CountByTypeID(suite.ctx, id).Return(int64(0), nil)
	suite.mockRepo.EXPECT().Delete(suite.ctx, id).Return(nil)

	suite.NoError(suite.service.Delete(suite.ctx, id))
}

func (suite *EquipmentTypeServiceTestSuite) TestUpdateEquipmentTypeNotFound() {
	id := uuid.New()
	name := "Dock"
	suite.mockRepo.EXPECT().GetByID(suite.ctx, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Update(suite.ctx, id, &service.UpdateEquipmentTypeRequest{Name: &name})
	suite.ErrorIs(err, apperrors.ErrEquipmentTypeNotFound)
}

func TestEquipmentTypeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EquipmentTypeServiceTestSuite))
}
