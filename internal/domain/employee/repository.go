package employee

import "context"

// EmployeeRepository - interface for employees table
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetActive(ctx context.Context) ([]Employee, error)
	GetActiveByDepartment(ctx context.Context, department string) ([]Employee, error)
}
