package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles the repositories that share one database handle,
// typically a transaction.
type Repositories struct {
	Equipment      EquipmentRepositoryInterface
	Employees      EmployeeRepositoryInterface
	Departments    DepartmentRepositoryInterface
	EquipmentTypes EquipmentTypeRepositoryInterface
	History        AssignmentHistoryRepositoryInterface
}

// NewRepositories creates gorm repositories over db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Equipment:      NewEquipmentRepository(db),
		Employees:      NewEmployeeRepository(db),
		Departments:    NewDepartmentRepository(db),
		EquipmentTypes: NewEquipmentTypeRepository(db),
		History:        NewAssignmentHistoryRepository(db),
	}
}

// GormUnitOfWork runs units of work inside a database transaction
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a unit of work over db
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Do runs fn in a transaction. The transaction commits when fn returns nil
// and rolls back on an error or a panic.
func (u *GormUnitOfWork) Do(ctx context.Context, fn func(repos *Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
