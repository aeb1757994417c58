package handlers

import (
	"net/http"

	"equipment-management-backend/internal/auth"
	"equipment-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HistoryHandler handles HTTP requests for assignment history
type HistoryHandler struct {
	service service.HistoryServiceInterface
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(service service.HistoryServiceInterface) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// GetEntry handles GET /api/v1/history/:id
// @Summary Get history entry
// @Tags history
// @Produce json
// @Param id path string true "History entry ID (UUID)"
// @Success 200 {object} service.HistoryResponse "Successfully retrieved entry"
// @Failure 400 {object} map[string]interface{} "Invalid history entry ID"
// @Failure 404 {object} map[string]interface{} "History entry not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /history/{id} [get]
func (h *HistoryHandler) GetEntry(c *gin.Context) {
	id, ok := parseID(c, "id", "history entry")
	if !ok {
		return
	}

	entry, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get history entry")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// GetEquipmentHistory handles GET /api/v1/equipment/:id/history
// @Summary Equipment assignment history
// @Description List the assignment intervals of a piece of equipment, newest first
// @Tags history
// @Produce json
// @Param id path string true "Equipment ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.HistoryListResponse "Successfully retrieved history"
// @Failure 400 {object} map[string]interface{} "Invalid equipment ID"
// @Failure 404 {object} map[string]interface{} "Equipment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment/{id}/history [get]
func (h *HistoryHandler) GetEquipmentHistory(c *gin.Context) {
	id, ok := parseID(c, "id", "equipment")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	list, err := h.service.GetByEquipment(c.Request.Context(), id, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get equipment history")
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetEmployeeHistory handles GET /api/v1/employees/:id/history
// @Summary Employee assignment history
// @Description List the assignment intervals of an employee, newest first
// @Tags history
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.HistoryListResponse "Successfully retrieved history"
// @Failure 400 {object} map[string]interface{} "Invalid employee ID"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees/{id}/history [get]
func (h *HistoryHandler) GetEmployeeHistory(c *gin.Context) {
	id, ok := parseID(c, "id", "employee")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	list, err := h.service.GetByEmployee(c.Request.Context(), id, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to get employee history")
		return
	}

	c.JSON(http.StatusOK, list)
}

// AppendNote handles POST /api/v1/history/:id/notes
// @Summary Append a note
// @Description Append text to the note of a history entry. Existing text is never replaced.
// @Tags history
// @Accept json
// @Produce json
// @Param id path string true "History entry ID (UUID)"
// @Param note body service.AppendNoteRequest true "Note"
// @Success 200 {object} service.HistoryResponse "Note appended"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "History entry not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /history/{id}/notes [post]
func (h *HistoryHandler) AppendNote(c *gin.Context) {
	id, ok := parseID(c, "id", "history entry")
	if !ok {
		return
	}
	var req service.AppendNoteRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Actor = auth.Actor(c)

	entry, err := h.service.AppendNote(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to append note")
		return
	}

	c.JSON(http.StatusOK, entry)
}
