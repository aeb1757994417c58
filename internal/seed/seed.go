// Package seed loads reference data from YAML files: departments, equipment
// types, employees and equipment, with optional initial holders.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"equipment-management-backend/internal/database/models"
	"equipment-management-backend/internal/logger"
	"equipment-management-backend/internal/repository"
	"equipment-management-backend/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Actor is recorded as creator of every seeded row
const Actor = "seed"

type DepartmentData struct {
	Name             string `yaml:"name"`
	ManagerMatricule string `yaml:"manager_matricule,omitempty"`
}

type EquipmentTypeData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type EmployeeData struct {
	Matricule        string `yaml:"matricule"`
	Name             string `yaml:"name"`
	Email            string `yaml:"email,omitempty"`
	Phone            string `yaml:"phone,omitempty"`
	JobTitle         string `yaml:"job_title,omitempty"`
	Department       string `yaml:"department,omitempty"`
	ManagerMatricule string `yaml:"manager_matricule,omitempty"`
	Inactive         bool   `yaml:"inactive,omitempty"`
}

type EquipmentData struct {
	Name               string `yaml:"name"`
	SerialNumber       string `yaml:"serial_number"`
	Type               string `yaml:"type"`
	PurchaseDate       string `yaml:"purchase_date,omitempty"`
	WarrantyExpiration string `yaml:"warranty_expiration,omitempty"`
	Status             string `yaml:"status,omitempty"`
	Holder             string `yaml:"holder,omitempty"`
	AssignedOn         string `yaml:"assigned_on,omitempty"`
}

// Data is the merged content of every seed file
type Data struct {
	Departments    []DepartmentData    `yaml:"departments"`
	EquipmentTypes []EquipmentTypeData `yaml:"equipment_types"`
	Employees      []EmployeeData      `yaml:"employees"`
	Equipment      []EquipmentData     `yaml:"equipment"`
}

// Summary counts the rows created by Apply; existing rows are left untouched
type Summary struct {
	Departments    int
	EquipmentTypes int
	Employees      int
	Equipment      int
	Assignments    int
}

// Parse decodes one YAML document
func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &data, nil
}

// LoadDir reads every .yaml/.yml file below dir and merges them in path order
func LoadDir(dir string) (*Data, error) {
	merged := &Data{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		data, err := Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		merged.Departments = append(merged.Departments, data.Departments...)
		merged.EquipmentTypes = append(merged.EquipmentTypes, data.EquipmentTypes...)
		merged.Employees = append(merged.Employees, data.Employees...)
		merged.Equipment = append(merged.Equipment, data.Equipment...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// Loader writes seed data through the repositories. Initial holders go
// through the assignment service so they get a proper history interval.
type Loader struct {
	repos       *repository.Repositories
	assignments service.AssignmentServiceInterface
}

// NewLoader creates a new seed loader
func NewLoader(repos *repository.Repositories, assignments service.AssignmentServiceInterface) *Loader {
	return &Loader{repos: repos, assignments: assignments}
}

// Apply creates whatever is missing. Running it twice creates nothing the
// second time.
func (l *Loader) Apply(ctx context.Context, data *Data) (*Summary, error) {
	log := logger.WithContext(ctx)
	summary := &Summary{}

	departments := make(map[string]*models.Department)
	for _, d := range data.Departments {
		dept, created, err := l.department(ctx, d)
		if err != nil {
			return summary, fmt.Errorf("department %s: %w", d.Name, err)
		}
		departments[d.Name] = dept
		if created {
			summary.Departments++
		}
	}

	types := make(map[string]*models.EquipmentType)
	for _, t := range data.EquipmentTypes {
		kind, created, err := l.equipmentType(ctx, t)
		if err != nil {
			return summary, fmt.Errorf("equipment type %s: %w", t.Name, err)
		}
		types[t.Name] = kind
		if created {
			summary.EquipmentTypes++
		}
	}

	employees := make(map[string]*models.Employee)
	for _, e := range data.Employees {
		employee, created, err := l.employee(ctx, e, departments)
		if err != nil {
			return summary, fmt.Errorf("employee %s: %w", e.Matricule, err)
		}
		employees[e.Matricule] = employee
		if created {
			summary.Employees++
		}
	}

	// Managers are resolved once every employee exists
	if err := l.linkManagers(ctx, data, departments, employees); err != nil {
		return summary, err
	}

	for _, e := range data.Equipment {
		created, assigned, err := l.equipment(ctx, e, types, employees)
		if err != nil {
			return summary, fmt.Errorf("equipment %s: %w", e.SerialNumber, err)
		}
		if created {
			summary.Equipment++
		}
		if assigned {
			summary.Assignments++
		}
	}

	log.WithFields(map[string]interface{}{
		"departments":     summary.Departments,
		"equipment_types": summary.EquipmentTypes,
		"employees":       summary.Employees,
		"equipment":       summary.Equipment,
		"assignments":     summary.Assignments,
	}).Info("seed data applied")
	return summary, nil
}

func (l *Loader) department(ctx context.Context, d DepartmentData) (*models.Department, bool, error) {
	existing, err := l.repos.Departments.GetByName(ctx, d.Name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	dept := &models.Department{
		BaseModel: models.BaseModel{CreatedBy: Actor, UpdatedBy: Actor},
		Name:      d.Name,
	}
	if err := l.repos.Departments.Create(ctx, dept); err != nil {
		return nil, false, err
	}
	return dept, true, nil
}

func (l *Loader) equipmentType(ctx context.Context, t EquipmentTypeData) (*models.EquipmentType, bool, error) {
	existing, err := l.repos.EquipmentTypes.GetByName(ctx, t.Name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	kind := &models.EquipmentType{
		BaseModel:   models.BaseModel{CreatedBy: Actor, UpdatedBy: Actor},
		Name:        t.Name,
		Description: t.Description,
	}
	if err := l.repos.EquipmentTypes.Create(ctx, kind); err != nil {
		return nil, false, err
	}
	return kind, true, nil
}

func (l *Loader) employee(ctx context.Context, e EmployeeData, departments map[string]*models.Department) (*models.Employee, bool, error) {
	existing, err := l.repos.Employees.GetByMatricule(ctx, e.Matricule)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	employee := &models.Employee{
		BaseModel: models.BaseModel{CreatedBy: Actor, UpdatedBy: Actor},
		Matricule: e.Matricule,
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		JobTitle:  e.JobTitle,
		IsActive:  !e.Inactive,
	}
	if e.Department != "" {
		dept, ok := departments[e.Department]
		if !ok {
			return nil, false, fmt.Errorf("unknown department %q", e.Department)
		}
		employee.DepartmentID = &dept.ID
	}
	if err := l.repos.Employees.Create(ctx, employee); err != nil {
		return nil, false, err
	}
	return employee, true, nil
}

func (l *Loader) linkManagers(ctx context.Context, data *Data, departments map[string]*models.Department, employees map[string]*models.Employee) error {
	for _, e := range data.Employees {
		if e.ManagerMatricule == "" {
			continue
		}
		employee := employees[e.Matricule]
		manager, ok := employees[e.ManagerMatricule]
		if !ok {
			return fmt.Errorf("employee %s: unknown manager %q", e.Matricule, e.ManagerMatricule)
		}
		if manager.ID == employee.ID {
			return fmt.Errorf("employee %s cannot manage themselves", e.Matricule)
		}
		if employee.ManagerID != nil {
			continue
		}
		employee.ManagerID = &manager.ID
		employee.UpdatedBy = Actor
		if err := l.repos.Employees.Update(ctx, employee); err != nil {
			return fmt.Errorf("employee %s: %w", e.Matricule, err)
		}
	}

	for _, d := range data.Departments {
		if d.ManagerMatricule == "" {
			continue
		}
		dept := departments[d.Name]
		manager, ok := employees[d.ManagerMatricule]
		if !ok {
			return fmt.Errorf("department %s: unknown manager %q", d.Name, d.ManagerMatricule)
		}
		if dept.ManagerID != nil {
			continue
		}
		dept.ManagerID = &manager.ID
		dept.UpdatedBy = Actor
		if err := l.repos.Departments.Update(ctx, dept); err != nil {
			return fmt.Errorf("department %s: %w", d.Name, err)
		}
	}
	return nil
}

func (l *Loader) equipment(ctx context.Context, e EquipmentData, types map[string]*models.EquipmentType, employees map[string]*models.Employee) (bool, bool, error) {
	if _, err := l.repos.Equipment.GetBySerialNumber(ctx, e.SerialNumber); err == nil {
		return false, false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, false, err
	}

	kind, ok := types[e.Type]
	if !ok {
		return false, false, fmt.Errorf("unknown equipment type %q", e.Type)
	}

	purchased, err := parseDate(e.PurchaseDate)
	if err != nil {
		return false, false, fmt.Errorf("purchase_date: %w", err)
	}
	expires, err := parseDate(e.WarrantyExpiration)
	if err != nil {
		return false, false, fmt.Errorf("warranty_expiration: %w", err)
	}

	status := models.EquipmentStatus(e.Status)
	if status == "" {
		status = models.EquipmentStatusAvailable
	}
	if status == models.EquipmentStatusAssigned {
		return false, false, fmt.Errorf("use holder instead of status assigned")
	}
	if e.Holder != "" && status != models.EquipmentStatusAvailable {
		return false, false, fmt.Errorf("equipment with a holder must start available")
	}

	equipment := &models.Equipment{
		BaseModel:          models.BaseModel{CreatedBy: Actor, UpdatedBy: Actor},
		Name:               e.Name,
		SerialNumber:       e.SerialNumber,
		TypeID:             kind.ID,
		PurchaseDate:       purchased,
		WarrantyExpiration: expires,
		Status:             status,
	}
	if err := l.repos.Equipment.Create(ctx, equipment); err != nil {
		return false, false, err
	}

	if e.Holder == "" {
		return true, false, nil
	}
	holder, ok := employees[e.Holder]
	if !ok {
		return true, false, fmt.Errorf("unknown holder %q", e.Holder)
	}
	assignedOn, err := parseDate(e.AssignedOn)
	if err != nil {
		return true, false, fmt.Errorf("assigned_on: %w", err)
	}
	if _, err := l.assignments.AssignOrTransfer(ctx, &service.AssignRequest{
		EquipmentID: equipment.ID,
		EmployeeID:  holder.ID,
		Mode:        models.AssignModeAssign,
		Date:        assignedOn,
		Note:        "initial assignment",
		Actor:       Actor,
	}); err != nil {
		return true, false, err
	}
	return true, true, nil
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
