package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"equipment-management-backend/internal/database/models"
	"equipment-management-backend/internal/repository"
	"equipment-management-backend/internal/repository/memory"
	"equipment-management-backend/internal/service"
	"equipment-management-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
departments:
  - name: Engineering
    manager_matricule: E001
equipment_types:
  - name: Laptop
employees:
  - matricule: E001
    name: Alice Martin
    department: Engineering
  - matricule: E002
    name: Bob Durand
    manager_matricule: E001
  - matricule: E003
    name: Former Staff
    inactive: true
equipment:
  - name: ThinkPad
    serial_number: LAPTOP-001
    type: Laptop
    warranty_expiration: "2030-01-01"
    holder: E002
    assigned_on: "2024-02-01"
  - name: ThinkPad
    serial_number: LAPTOP-002
    type: Laptop
    status: in_repair
`

func newLoader(repos *repository.Repositories, uow repository.UnitOfWork) *Loader {
	return NewLoader(repos, service.NewAssignmentService(uow, validator.New(), ""))
}

func TestApplyCreatesEverything(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := store.Repositories()

	data, err := Parse([]byte(sample))
	require.NoError(t, err)

	summary, err := newLoader(repos, store).Apply(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, &Summary{Departments: 1, EquipmentTypes: 1, Employees: 3, Equipment: 2, Assignments: 1}, summary)

	alice, err := repos.Employees.GetByMatricule(ctx, "E001")
	require.NoError(t, err)
	bob, err := repos.Employees.GetByMatricule(ctx, "E002")
	require.NoError(t, err)
	require.NotNil(t, bob.ManagerID)
	assert.Equal(t, alice.ID, *bob.ManagerID)
	require.NotNil(t, alice.DepartmentID)

	former, err := repos.Employees.GetByMatricule(ctx, "E003")
	require.NoError(t, err)
	assert.False(t, former.IsActive)

	dept, err := repos.Departments.GetByName(ctx, "Engineering")
	require.NoError(t, err)
	require.NotNil(t, dept.ManagerID)
	assert.Equal(t, alice.ID, *dept.ManagerID)

	laptop, err := repos.Equipment.GetBySerialNumber(ctx, "LAPTOP-001")
	require.NoError(t, err)
	assert.Equal(t, models.EquipmentStatusAssigned, laptop.Status)
	require.NotNil(t, laptop.EmployeeID)
	assert.Equal(t, bob.ID, *laptop.EmployeeID)

	entries, total, err := repos.History.GetByEquipmentID(ctx, laptop.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.True(t, entries[0].IsOpen())
	assert.Equal(t, "2024-02-01", entries[0].DateFrom.Format("2006-01-02"))
	assert.Equal(t, Actor, entries[0].AssignedBy)

	spare, err := repos.Equipment.GetBySerialNumber(ctx, "LAPTOP-002")
	require.NoError(t, err)
	assert.Equal(t, models.EquipmentStatusInRepair, spare.Status)
	assert.Nil(t, spare.EmployeeID)
}

func TestApplyIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	loader := newLoader(store.Repositories(), store)

	data, err := Parse([]byte(sample))
	require.NoError(t, err)

	_, err = loader.Apply(ctx, data)
	require.NoError(t, err)

	summary, err := loader.Apply(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, &Summary{}, summary)
}

func TestApplyRejectsBadReferences(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "unknown type",
			yaml: "equipment:\n  - name: X\n    serial_number: X-1\n    type: Nope\n",
			want: `unknown equipment type "Nope"`,
		},
		{
			name: "unknown department",
			yaml: "employees:\n  - matricule: E1\n    name: A\n    department: Nope\n",
			want: `unknown department "Nope"`,
		},
		{
			name: "unknown manager",
			yaml: "employees:\n  - matricule: E1\n    name: A\n    manager_matricule: E9\n",
			want: `unknown manager "E9"`,
		},
		{
			name: "assigned without holder",
			yaml: "equipment_types:\n  - name: Laptop\nequipment:\n  - name: X\n    serial_number: X-1\n    type: Laptop\n    status: assigned\n",
			want: "use holder instead of status assigned",
		},
		{
			name: "bad date",
			yaml: "equipment_types:\n  - name: Laptop\nequipment:\n  - name: X\n    serial_number: X-1\n    type: Laptop\n    purchase_date: 01/02/2024\n",
			want: "purchase_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewStore()
			data, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			_, err = newLoader(store.Repositories(), store).Apply(context.Background(), data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("departments: [unterminated"))
	assert.Error(t, err)
}

func TestLoadDirMergesFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.yaml"), []byte("equipment_types:\n  - name: Laptop\n"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "people"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "people", "staff.yml"), []byte("employees:\n  - matricule: E1\n    name: A\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("not seed data"), 0o600))

	data, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Len(t, data.EquipmentTypes, 1)
	assert.Len(t, data.Employees, 1)
}

func TestShippedDataLoadsIntoSQLite(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	repos := repository.NewRepositories(db)

	data, err := LoadDir(filepath.Join("..", "..", "scripts", "data"))
	require.NoError(t, err)

	summary, err := newLoader(repos, repository.NewGormUnitOfWork(db)).Apply(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, len(data.Equipment), summary.Equipment)
	assert.Equal(t, 2, summary.Assignments)
}
