package handlers

import (
	"net/http"

	"equipment-management-backend/internal/auth"
	"equipment-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles HTTP requests for employees
type EmployeeHandler struct {
	service service.EmployeeServiceInterface
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(service service.EmployeeServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// CreateEmployee handles POST /api/v1/employees
// @Summary Create an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body service.CreateEmployeeRequest true "Employee data"
// @Success 201 {object} service.EmployeeResponse "Successfully created employee"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Department or manager not found"
// @Failure 409 {object} map[string]interface{} "Employee already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Actor = auth.Actor(c)

	employee, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// GetEmployee handles GET /api/v1/employees/:id
// @Summary Get employee by ID
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} service.EmployeeResponse "Successfully retrieved employee"
// @Failure 400 {object} map[string]interface{} "Invalid employee ID"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := parseID(c, "id", "employee")
	if !ok {
		return
	}

	employee, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get employee")
		return
	}

	c.JSON(http.StatusOK, employee)
}

// ListEmployees handles GET /api/v1/employees
// @Summary List employees
// @Tags employees
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.EmployeeListResponse "Successfully retrieved employees"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	page, pageSize := pagination(c)

	list, err := h.service.GetAll(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list employees")
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateEmployee handles PUT /api/v1/employees/:id
// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Param employee body service.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} service.EmployeeResponse "Successfully updated employee"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 409 {object} map[string]interface{} "Employee already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseID(c, "id", "employee")
	if !ok {
		return
	}
	var req service.UpdateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Actor = auth.Actor(c)

	employee, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update employee")
		return
	}

	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee handles DELETE /api/v1/employees/:id
// @Summary Delete an employee
// @Description Delete an employee. Employees referenced by assignment history cannot be deleted.
// @Tags employees
// @Param id path string true "Employee ID (UUID)"
// @Success 204 "Successfully deleted employee"
// @Failure 400 {object} map[string]interface{} "Invalid employee ID"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 409 {object} map[string]interface{} "Employee has assignment history"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseID(c, "id", "employee")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete employee")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetEmployeeEquipment handles GET /api/v1/employees/:id/equipment
// @Summary Equipment held by an employee
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {array} service.EquipmentResponse "Equipment currently held"
// @Failure 400 {object} map[string]interface{} "Invalid employee ID"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees/{id}/equipment [get]
func (h *EmployeeHandler) GetEmployeeEquipment(c *gin.Context) {
	id, ok := parseID(c, "id", "employee")
	if !ok {
		return
	}

	equipment, err := h.service.GetEquipment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get employee equipment")
		return
	}

	c.JSON(http.StatusOK, equipment)
}
