package handlers

import (
	"net/http"

	"equipment-management-backend/internal/auth"
	"equipment-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DepartmentHandler handles HTTP requests for departments
type DepartmentHandler struct {
	service service.DepartmentServiceInterface
}

// NewDepartmentHandler creates a new department handler
func NewDepartmentHandler(service service.DepartmentServiceInterface) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

// CreateDepartment handles POST /api/v1/departments
// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Param department body service.CreateDepartmentRequest true "Department data"
// @Success 201 {object} service.DepartmentResponse "Successfully created department"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Manager not found"
// @Failure 409 {object} map[string]interface{} "Department already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /departments [post]
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req service.CreateDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Actor = auth.Actor(c)

	department, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create department")
		return
	}

	c.JSON(http.StatusCreated, department)
}

// GetDepartment handles GET /api/v1/departments/:id
// @Summary Get department by ID
// @Tags departments
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Success 200 {object} service.DepartmentResponse "Successfully retrieved department"
// @Failure 400 {object} map[string]interface{} "Invalid department ID"
// @Failure 404 {object} map[string]interface{} "Department not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /departments/{id} [get]
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	id, ok := parseID(c, "id", "department")
	if !ok {
		return
	}

	department, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get department")
		return
	}

	c.JSON(http.StatusOK, department)
}

// ListDepartments handles GET /api/v1/departments
// @Summary List departments
// @Tags departments
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.DepartmentListResponse "Successfully retrieved departments"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /departments [get]
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	page, pageSize := pagination(c)

	list, err := h.service.GetAll(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list departments")
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateDepartment handles PUT /api/v1/departments/:id
// @Summary Update a department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Param department body service.UpdateDepartmentRequest true "Fields to update"
// @Success 200 {object} service.DepartmentResponse "Successfully updated department"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Department not found"
// @Failure 409 {object} map[string]interface{} "Department already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /departments/{id} [put]
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	id, ok := parseID(c, "id", "department")
	if !ok {
		return
	}
	var req service.UpdateDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Actor = auth.Actor(c)

	department, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update department")
		return
	}

	c.JSON(http.StatusOK, department)
}

// DeleteDepartment handles DELETE /api/v1/departments/:id
// @Summary Delete a department
// @Description Delete a department. Its employees keep existing without a department.
// @Tags departments
// @Param id path string true "Department ID (UUID)"
// @Success 204 "Successfully deleted department"
// @Failure 400 {object} map[string]interface{} "Invalid department ID"
// @Failure 404 {object} map[string]interface{} "Department not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /departments/{id} [delete]
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	id, ok := parseID(c, "id", "department")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete department")
		return
	}

	c.Status(http.StatusNoContent)
}
