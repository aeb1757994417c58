package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"equipment-management-backend/internal/database/models"
	apperrors "equipment-management-backend/internal/errors"
	"equipment-management-backend/internal/mocks"
	"equipment-management-backend/internal/service"
	"equipment-management-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AssignmentHandlerTestSuite defines the test suite for AssignmentHandler
type AssignmentHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockAssignments *mocks.MockAssignmentServiceInterface
	mockReturns     *mocks.MockReturnServiceInterface
	handler         *AssignmentHandler
	httpSuite       *testutils.HTTPTestSuite
	equipmentID     uuid.UUID
}

// SetupTest sets up the test suite
func (suite *AssignmentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssignments = mocks.NewMockAssignmentServiceInterface(suite.ctrl)
	suite.mockReturns = mocks.NewMockReturnServiceInterface(suite.ctrl)
	suite.handler = NewAssignmentHandler(suite.mockAssignments, suite.mockReturns)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.equipmentID = uuid.New()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(func(c *gin.Context) {
		c.Set("username", "it-admin")
	})
	v1.POST("/equipment/:id/assign", suite.handler.AssignEquipment)
	v1.POST("/equipment/:id/return", suite.handler.ReturnEquipment)
}

// TearDownTest cleans up after each test
func (suite *AssignmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentHandlerTestSuite) assignURL() string {
	return "/api/v1/equipment/" + suite.equipmentID.String() + "/assign"
}

func (suite *AssignmentHandlerTestSuite) returnURL() string {
	return "/api/v1/equipment/" + suite.equipmentID.String() + "/return"
}

func (suite *AssignmentHandlerTestSuite) TestAssign() {
	employeeID := uuid.New()
	date := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	suite.mockAssignments.EXPECT().
		AssignOrTransfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.AssignRequest) (*service.AssignmentResponse, error) {
			assert.Equal(suite.T(), suite.equipmentID, req.EquipmentID)
			assert.Equal(suite.T(), employeeID, req.EmployeeID)
			assert.Equal(suite.T(), models.AssignModeAssign, req.Mode)
			require.NotNil(suite.T(), req.Date)
			assert.True(suite.T(), date.Equal(*req.Date))
			assert.Equal(suite.T(), "it-admin", req.Actor)
			return &service.AssignmentResponse{
				Equipment: service.EquipmentResponse{ID: suite.equipmentID, Status: models.EquipmentStatusAssigned, EmployeeID: &employeeID},
				Interval: service.HistoryResponse{
					EquipmentID: suite.equipmentID,
					EmployeeID:  employeeID,
					DateFrom:    date,
					Note:        "assigned via wizard",
					State:       models.HistoryStateActive,
					IsOpen:      true,
				},
			}, nil
		})

	recorder := suite.httpSuite.MakeRequest("POST", suite.assignURL(), map[string]interface{}{
		"employee_id": employeeID.String(),
		"mode":        "assign",
		"date":        "2024-03-01T09:00:00Z",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response service.AssignmentResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), models.EquipmentStatusAssigned, response.Equipment.Status)
	assert.True(suite.T(), response.Interval.IsOpen)
	assert.Nil(suite.T(), response.Closed)
}

func (suite *AssignmentHandlerTestSuite) TestAssignErrors() {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"already held", apperrors.NewValidationError("mode", "equipment is already assigned; use transfer"), http.StatusBadRequest, "use transfer"},
		{"unknown employee", apperrors.ErrEmployeeNotFound, http.StatusNotFound, "employee not found"},
		{"retired", apperrors.ErrRetiredEquipment, http.StatusConflict, "cannot assign retired equipment"},
		{"corrupted history", fmt.Errorf("find open: %w", apperrors.ErrMultipleOpenIntervals), http.StatusConflict, "data integrity error"},
		{"storage", fmt.Errorf("failed to update equipment: %w", context.DeadlineExceeded), http.StatusInternalServerError, "Failed to assign equipment"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockAssignments.EXPECT().
				AssignOrTransfer(gomock.Any(), gomock.Any()).
				Return(nil, tt.err)

			recorder := suite.httpSuite.MakeRequest("POST", suite.assignURL(), map[string]interface{}{
				"employee_id": uuid.New().String(),
				"mode":        "transfer",
			})

			testutils.AssertErrorResponse(suite.T(), recorder, tt.status, tt.message)
		})
	}
}

func (suite *AssignmentHandlerTestSuite) TestAssignInvalidRequest() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/equipment/nope/assign", map[string]interface{}{"mode": "assign"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid equipment ID")

	recorder = suite.httpSuite.MakeRequest("POST", suite.assignURL(), map[string]interface{}{"employee_id": "not-a-uuid"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")

	recorder = suite.httpSuite.MakeRequest("POST", suite.assignURL(), map[string]interface{}{"date": "yesterday"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

func (suite *AssignmentHandlerTestSuite) TestReturnDamaged() {
	suite.mockReturns.EXPECT().
		ReturnEquipment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.ReturnRequest) (*service.ReturnResponse, error) {
			assert.Equal(suite.T(), suite.equipmentID, req.EquipmentID)
			assert.Equal(suite.T(), models.ReturnConditionDamaged, req.Condition)
			assert.Equal(suite.T(), "cracked screen", req.DamageDescription)
			assert.Nil(suite.T(), req.Date)
			return &service.ReturnResponse{
				Equipment: service.EquipmentResponse{ID: suite.equipmentID, Status: models.EquipmentStatusInRepair},
				Interval: service.HistoryResponse{
					State: models.HistoryStateReturned,
					Note:  "assigned via wizard\nReturn: damaged\nDamage: cracked screen",
				},
			}, nil
		})

	recorder := suite.httpSuite.MakeRequest("POST", suite.returnURL(), map[string]interface{}{
		"condition":          "damaged",
		"damage_description": "cracked screen",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response service.ReturnResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), models.EquipmentStatusInRepair, response.Equipment.Status)
	assert.Nil(suite.T(), response.Equipment.EmployeeID)
	assert.Contains(suite.T(), response.Interval.Note, "Damage: cracked screen")
}

func (suite *AssignmentHandlerTestSuite) TestReturnErrors() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not assigned", apperrors.ErrEquipmentNotAssigned, http.StatusConflict},
		{"missing description", apperrors.NewValidationError("damage_description", "required"), http.StatusBadRequest},
		{"no open interval", apperrors.NewValidationError("equipment_id", "no open assignment interval"), http.StatusBadRequest},
		{"unknown equipment", apperrors.ErrEquipmentNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockReturns.EXPECT().
				ReturnEquipment(gomock.Any(), gomock.Any()).
				Return(nil, tt.err)

			recorder := suite.httpSuite.MakeRequest("POST", suite.returnURL(), map[string]interface{}{"condition": "good"})

			testutils.AssertErrorResponse(suite.T(), recorder, tt.status, "")
		})
	}
}

// TestAssignmentHandlerTestSuite runs the test suite
func TestAssignmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentHandlerTestSuite))
}
