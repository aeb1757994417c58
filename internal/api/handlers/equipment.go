package handlers

import (
	"net/http"

	"equipment-management-backend/internal/auth"
	"equipment-management-backend/internal/database/models"
	"equipment-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EquipmentHandler handles HTTP requests for equipment
type EquipmentHandler struct {
	service service.EquipmentServiceInterface
}

// NewEquipmentHandler creates a new equipment handler
func NewEquipmentHandler(service service.EquipmentServiceInterface) *EquipmentHandler {
	return &EquipmentHandler{service: service}
}

// CreateEquipment handles POST /api/v1/equipment
// @Summary Register equipment
// @Description Register a new piece of equipment. New equipment is never assigned; use the assign endpoint.
// @Tags equipment
// @Accept json
// @Produce json
// @Param equipment body service.CreateEquipmentRequest true "Equipment data"
// @Success 201 {object} service.EquipmentResponse "Successfully created equipment"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Equipment type not found"
// @Failure 409 {object} map[string]interface{} "Serial number already registered"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment [post]
func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var req service.CreateEquipmentRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Actor = auth.Actor(c)

	equipment, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create equipment")
		return
	}

	c.JSON(http.StatusCreated, equipment)
}

// GetEquipment handles GET /api/v1/equipment/:id
// @Summary Get equipment by ID
// @Description Get a piece of equipment with its current holder and warranty status
// @Tags equipment
// @Produce json
// @Param id path string true "Equipment ID (UUID)"
// @Success 200 {object} service.EquipmentResponse "Successfully retrieved equipment"
// @Failure 400 {object} map[string]interface{} "Invalid equipment ID"
// @Failure 404 {object} map[string]interface{} "Equipment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment/{id} [get]
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	id, ok := parseID(c, "id", "equipment")
	if !ok {
		return
	}

	equipment, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get equipment")
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// ListEquipment handles GET /api/v1/equipment
// @Summary List equipment
// @Description List equipment with pagination, optionally filtered by status
// @Tags equipment
// @Produce json
// @Param status query string false "Status filter" Enums(available, assigned, in_repair, retired)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.EquipmentListResponse "Successfully retrieved equipment"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment [get]
func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	page, pageSize := pagination(c)
	status := models.EquipmentStatus(c.Query("status"))

	list, err := h.service.GetAll(c.Request.Context(), status, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list equipment")
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateEquipment handles PUT /api/v1/equipment/:id
// @Summary Update equipment
// @Description Update descriptive fields. Holder and status only change through assign, return and status endpoints.
// @Tags equipment
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID (UUID)"
// @Param equipment body service.UpdateEquipmentRequest true "Fields to update"
// @Success 200 {object} service.EquipmentResponse "Successfully updated equipment"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Equipment not found"
// @Failure 409 {object} map[string]interface{} "Serial number already registered"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment/{id} [put]
func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	id, ok := parseID(c, "id", "equipment")
	if !ok {
		return
	}
	var req service.UpdateEquipmentRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Actor = auth.Actor(c)

	equipment, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update equipment")
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// DeleteEquipment handles DELETE /api/v1/equipment/:id
// @Summary Delete equipment
// @Description Delete a piece of equipment together with its assignment history
// @Tags equipment
// @Param id path string true "Equipment ID (UUID)"
// @Success 204 "Successfully deleted equipment"
// @Failure 400 {object} map[string]interface{} "Invalid equipment ID"
// @Failure 404 {object} map[string]interface{} "Equipment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment/{id} [delete]
func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	id, ok := parseID(c, "id", "equipment")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete equipment")
		return
	}

	c.Status(http.StatusNoContent)
}

// ChangeStatus handles PUT /api/v1/equipment/:id/status
// @Summary Change maintenance status
// @Description Move unassigned equipment between available, in_repair and retired. Retired equipment cannot leave retired.
// @Tags equipment
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID (UUID)"
// @Param status body service.ChangeStatusRequest true "Target status"
// @Success 200 {object} service.EquipmentResponse "Status changed"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "Equipment not found"
// @Failure 409 {object} map[string]interface{} "Equipment is assigned or retired"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment/{id}/status [put]
func (h *EquipmentHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "equipment")
	if !ok {
		return
	}
	var req service.ChangeStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Actor = auth.Actor(c)

	equipment, err := h.service.ChangeStatus(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to change equipment status")
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// RefreshWarranty handles POST /api/v1/equipment/warranty/refresh
// @Summary Refresh warranty status
// @Description Recompute the stored warranty status of every piece of equipment against today's date
// @Tags equipment
// @Produce json
// @Success 200 {object} service.WarrantyRefreshResponse "Warranty refreshed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment/warranty/refresh [post]
func (h *EquipmentHandler) RefreshWarranty(c *gin.Context) {
	result, err := h.service.RefreshWarranty(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to refresh warranty status")
		return
	}

	c.JSON(http.StatusOK, result)
}
