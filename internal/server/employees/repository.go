package employees

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	GetAll(ctx context.Context) ([]*Employee, error)
	GetByID(ctx context.Context, id string) (*Employee, error)

	// FindMatching looks for an employee with the exact same attributes,
	// used as the duplicate pre-check on creation. Returns
	// common.ErrorNotFound when there is no match.
	FindMatching(ctx context.Context, employee *Employee) (*Employee, error)

	// Update overwrites the employee's attributes and returns the updated
	// record, or common.ErrorNotFound for an unknown id.
	Update(ctx context.Context, employee *Employee) (*Employee, error)

	// Delete removes the employee, or returns common.ErrorNotFound.
	Delete(ctx context.Context, id string) error
}
