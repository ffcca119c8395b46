// Package employees implements CRUD over the employee directory.
package employees

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/staffdesk/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create inserts a new employee. An employee with the exact same name,
// position and birthdate already on record fails with ErrorEmployeeExists.
func (s *Service) Create(ctx context.Context, employee *Employee) (*Employee, error) {

	_, err := s.repo.FindMatching(ctx, employee)
	if err == nil {
		return nil, common.ErrorEmployeeExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking for duplicate: %w", err)
	}

	employee.ID = uuid.NewString()

	employee, err = s.repo.Create(ctx, employee)
	if err != nil {
		return nil, fmt.Errorf("error creating employee: %w", err)
	}

	return employee, nil
}

func (s *Service) GetAll(ctx context.Context) ([]*Employee, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, employee *Employee) (*Employee, error) {
	return s.repo.Update(ctx, employee)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
