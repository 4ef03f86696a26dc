package department

import "context"

// DepartmentRepository - interface for the departments table
type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
}
