package handlers

import (
	"net/http"

	"equipment-management-backend/internal/auth"
	"equipment-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EquipmentTypeHandler handles HTTP requests for equipment types
type EquipmentTypeHandler struct {
	service service.EquipmentTypeServiceInterface
}

// NewEquipmentTypeHandler creates a new equipment type handler
func NewEquipmentTypeHandler(service service.EquipmentTypeServiceInterface) *EquipmentTypeHandler {
	return &EquipmentTypeHandler{service: service}
}

// CreateEquipmentType handles POST /api/v1/equipment-types
// @Summary Create an equipment type
// @Tags equipment-types
// @Accept json
// @Produce json
// @Param equipmentType body service.CreateEquipmentTypeRequest true "Equipment type data"
// @Success 201 {object} service.EquipmentTypeResponse "Successfully created equipment type"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Equipment type already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment-types [post]
func (h *EquipmentTypeHandler) CreateEquipmentType(c *gin.Context) {
	var req service.CreateEquipmentTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Actor = auth.Actor(c)

	equipmentType, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create equipment type")
		return
	}

	c.JSON(http.StatusCreated, equipmentType)
}

// GetEquipmentType handles GET /api/v1/equipment-types/:id
// @Summary Get equipment type by ID
// @Tags equipment-types
// @Produce json
// @Param id path string true "Equipment type ID (UUID)"
// @Success 200 {object} service.EquipmentTypeResponse "Successfully retrieved equipment type"
// @Failure 400 {object} map[string]interface{} "Invalid equipment type ID"
// @Failure 404 {object} map[string]interface{} "Equipment type not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment-types/{id} [get]
func (h *EquipmentTypeHandler) GetEquipmentType(c *gin.Context) {
	id, ok := parseID(c, "id", "equipment type")
	if !ok {
		return
	}

	equipmentType, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get equipment type")
		return
	}

	c.JSON(http.StatusOK, equipmentType)
}

// ListEquipmentTypes handles GET /api/v1/equipment-types
// @Summary List equipment types
// @Tags equipment-types
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.EquipmentTypeListResponse "Successfully retrieved equipment types"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment-types [get]
func (h *EquipmentTypeHandler) ListEquipmentTypes(c *gin.Context) {
	page, pageSize := pagination(c)

	list, err := h.service.GetAll(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list equipment types")
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateEquipmentType handles PUT /api/v1/equipment-types/:id
// @Summary Update an equipment type
// @Tags equipment-types
// @Accept json
// @Produce json
// @Param id path string true "Equipment type ID (UUID)"
// @Param equipmentType body service.UpdateEquipmentTypeRequest true "Fields to update"
// @Success 200 {object} service.EquipmentTypeResponse "Successfully updated equipment type"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Equipment type not found"
// @Failure 409 {object} map[string]interface{} "Equipment type already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment-types/{id} [put]
func (h *EquipmentTypeHandler) UpdateEquipmentType(c *gin.Context) {
	id, ok := parseID(c, "id", "equipment type")
	if !ok {
		return
	}
	var req service.UpdateEquipmentTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Actor = auth.Actor(c)

	equipmentType, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update equipment type")
		return
	}

	c.JSON(http.StatusOK, equipmentType)
}

// DeleteEquipmentType handles DELETE /api/v1/equipment-types/:id
// @Summary Delete an equipment type
// @Description Delete an equipment type. Types still used by equipment cannot be deleted.
// @Tags equipment-types
// @Param id path string true "Equipment type ID (UUID)"
// @Success 204 "Successfully deleted equipment type"
// @Failure 400 {object} map[string]interface{} "Invalid equipment type ID"
// @Failure 404 {object} map[string]interface{} "Equipment type not found"
// @Failure 409 {object} map[string]interface{} "Equipment type is in use"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /equipment-types/{id} [delete]
func (h *EquipmentTypeHandler) DeleteEquipmentType(c *gin.Context) {
	id, ok := parseID(c, "id", "equipment type")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete equipment type")
		return
	}

	c.Status(http.StatusNoContent)
}
