package handlers

import (
	"net/http"

	"equipment-management-backend/internal/auth"
	"equipment-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler exposes the assign, transfer and return transactions
type AssignmentHandler struct {
	assignments service.AssignmentServiceInterface
	returns     service.ReturnServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignments service.AssignmentServiceInterface, returns service.ReturnServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments, returns: returns}
}

// AssignEquipment handles POST /api/v1/equipment/:id/assign
// @Summary Assign or transfer equipment
// @Description Make an employee the holder of the equipment. In transfer mode the current interval is closed at the same instant the new one opens.
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID (UUID)"
// @Param assignment body service.AssignRequest true "Assignment data"
// @Success 200 {object} service.AssignmentResponse "Equipment assigned"
// @Failure 400 {object} map[string]interface{} "Invalid request or rule violation"
// @Failure 404 {object} map[string]interface{} "Equipment or employee not found"
// @Failure 409 {object} map[string]interface{} "Equipment is retired or history is inconsistent"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment/{id}/assign [post]
func (h *AssignmentHandler) AssignEquipment(c *gin.Context) {
	id, ok := parseID(c, "id", "equipment")
	if !ok {
		return
	}
	var req service.AssignRequest
	if !bindJSON(c, &req) {
		return
	}
	req.EquipmentID = id
	req.Actor = auth.Actor(c)

	result, err := h.assignments.AssignOrTransfer(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to assign equipment")
		return
	}

	c.JSON(http.StatusOK, result)
}

// ReturnEquipment handles POST /api/v1/equipment/:id/return
// @Summary Return equipment
// @Description Close the current assignment. Good returns make the equipment available, damaged ones send it to repair, lost ones retire it.
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID (UUID)"
// @Param return body service.ReturnRequest true "Return data"
// @Success 200 {object} service.ReturnResponse "Equipment returned"
// @Failure 400 {object} map[string]interface{} "Invalid request or rule violation"
// @Failure 404 {object} map[string]interface{} "Equipment not found"
// @Failure 409 {object} map[string]interface{} "Equipment is not assigned or history is inconsistent"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment/{id}/return [post]
func (h *AssignmentHandler) ReturnEquipment(c *gin.Context) {
	id, ok := parseID(c, "id", "equipment")
	if !ok {
		return
	}
	var req service.ReturnRequest
	if !bindJSON(c, &req) {
		return
	}
	req.EquipmentID = id
	req.Actor = auth.Actor(c)

	result, err := h.returns.ReturnEquipment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to return equipment")
		return
	}

	c.JSON(http.StatusOK, result)
}
