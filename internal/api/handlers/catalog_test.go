package handlers

import (
	"net/http"
	"testing"

	apperrors "equipment-management-backend/internal/errors"
	"equipment-management-backend/internal/mocks"
	"equipment-management-backend/internal/service"
	"equipment-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CatalogHandlerTestSuite covers the department and equipment type handlers
type CatalogHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockDepartments *mocks.MockDepartmentServiceInterface
	mockTypes       *mocks.MockEquipmentTypeServiceInterface
	httpSuite       *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *CatalogHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDepartments = mocks.NewMockDepartmentServiceInterface(suite.ctrl)
	suite.mockTypes = mocks.NewMockEquipmentTypeServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()

	departments := NewDepartmentHandler(suite.mockDepartments)
	types := NewEquipmentTypeHandler(suite.mockTypes)

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.GET("/departments", departments.ListDepartments)
	v1.POST("/departments", departments.CreateDepartment)
	v1.GET("/departments/:id", departments.GetDepartment)
	v1.PUT("/departments/:id", departments.UpdateDepartment)
	v1.DELETE("/departments/:id", departments.DeleteDepartment)
	v1.GET("/equipment-types", types.ListEquipmentTypes)
	v1.POST("/equipment-types", types.CreateEquipmentType)
	v1.GET("/equipment-types/:id", types.GetEquipmentType)
	v1.PUT("/equipment-types/:id", types.UpdateEquipmentType)
	v1.DELETE("/equipment-types/:id", types.DeleteEquipmentType)
}

// TearDownTest cleans up after each test
func (suite *CatalogHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CatalogHandlerTestSuite) TestCreateDepartment() {
	managerID := uuid.New()
	suite.mockDepartments.EXPECT().
		Create(gomock.Any(), &service.CreateDepartmentRequest{Name: "IT", ManagerID: &managerID, Actor: "anonymous"}).
		Return(&service.DepartmentResponse{ID: uuid.New(), Name: "IT", ManagerID: &managerID}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/departments", map[string]interface{}{
		"name":       "IT",
		"manager_id": managerID.String(),
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

func (suite *CatalogHandlerTestSuite) TestCreateDepartmentUnknownManager() {
	suite.mockDepartments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrManagerNotFound)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/departments", map[string]interface{}{"name": "IT", "manager_id": uuid.New().String()})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "manager not found")
}

func (suite *CatalogHandlerTestSuite) TestListDepartments() {
	suite.mockDepartments.EXPECT().
		GetAll(gomock.Any(), 3, 50).
		Return(&service.DepartmentListResponse{Departments: []service.DepartmentResponse{{Name: "IT"}}, Total: 101, Page: 3, PageSize: 50}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/departments?page=3&page_size=50", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *CatalogHandlerTestSuite) TestUpdateDepartmentDuplicateName() {
	id := uuid.New()
	suite.mockDepartments.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, apperrors.ErrDepartmentExists)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/departments/"+id.String(), map[string]interface{}{"name": "HR"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "department already exists")
}

func (suite *CatalogHandlerTestSuite) TestGetDepartmentNotFound() {
	id := uuid.New()
	suite.mockDepartments.EXPECT().GetByID(gomock.Any(), id).Return(nil, apperrors.ErrDepartmentNotFound)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/departments/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "department not found")
}

func (suite *CatalogHandlerTestSuite) TestDeleteDepartment() {
	id := uuid.New()
	suite.mockDepartments.EXPECT().Delete(gomock.Any(), id).Return(nil)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/departments/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *CatalogHandlerTestSuite) TestCreateEquipmentType() {
	suite.mockTypes.EXPECT().
		Create(gomock.Any(), &service.CreateEquipmentTypeRequest{Name: "Laptop", Description: "Portable computers", Actor: "anonymous"}).
		Return(&service.EquipmentTypeResponse{ID: uuid.New(), Name: "Laptop"}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/equipment-types", map[string]interface{}{
		"name":        "Laptop",
		"description": "Portable computers",
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

func (suite *CatalogHandlerTestSuite) TestGetEquipmentType() {
	id := uuid.New()
	suite.mockTypes.EXPECT().GetByID(gomock.Any(), id).Return(&service.EquipmentTypeResponse{ID: id, Name: "Phone"}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/equipment-types/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response service.EquipmentTypeResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Phone", response.Name)
}

func (suite *CatalogHandlerTestSuite) TestListEquipmentTypes() {
	suite.mockTypes.EXPECT().GetAll(gomock.Any(), 1, 20).Return(&service.EquipmentTypeListResponse{}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/equipment-types", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *CatalogHandlerTestSuite) TestUpdateEquipmentType() {
	id := uuid.New()
	suite.mockTypes.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(&service.EquipmentTypeResponse{ID: id, Name: "Tablet"}, nil)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/equipment-types/"+id.String(), map[string]interface{}{"name": "Tablet"})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *CatalogHandlerTestSuite) TestDeleteEquipmentTypeInUse() {
	id := uuid.New()
	suite.mockTypes.EXPECT().Delete(gomock.Any(), id).Return(apperrors.ErrEquipmentTypeInUse)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/equipment-types/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "in use")
}

// TestCatalogHandlerTestSuite runs the test suite
func TestCatalogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}
