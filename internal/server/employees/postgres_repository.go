package employees

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/staffdesk/internal/common"
	"github.com/dmitrijs2005/staffdesk/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, employee *Employee) (*Employee, error) {

	query :=
		`INSERT INTO employees (id, first_name, last_name, job_position, birthdate)
	     VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		employee.ID, employee.FirstName, employee.LastName, employee.JobPosition, employee.Birthdate).Scan(&employee.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return employee, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]*Employee, error) {
	query :=
		`SELECT id, first_name, last_name, job_position, birthdate, created_at FROM employees
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*Employee{}
	for rows.Next() {
		employee := &Employee{}
		err := rows.Scan(&employee.ID, &employee.FirstName, &employee.LastName,
			&employee.JobPosition, &employee.Birthdate, &employee.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Employee, error) {
	query :=
		`SELECT id, first_name, last_name, job_position, birthdate, created_at FROM employees
		 WHERE id = $1
		 `

	employee := &Employee{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&employee.ID, &employee.FirstName,
		&employee.LastName, &employee.JobPosition, &employee.Birthdate, &employee.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return employee, nil
}

func (r *PostgresRepository) FindMatching(ctx context.Context, employee *Employee) (*Employee, error) {
	query :=
		`SELECT id, first_name, last_name, job_position, birthdate, created_at FROM employees
		 WHERE first_name = $1 AND last_name = $2 AND job_position = $3 AND birthdate = $4
		 `

	found := &Employee{}
	err := r.db.QueryRowContext(ctx, query,
		employee.FirstName, employee.LastName, employee.JobPosition, employee.Birthdate).Scan(
		&found.ID, &found.FirstName, &found.LastName, &found.JobPosition, &found.Birthdate, &found.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return found, nil
}

func (r *PostgresRepository) Update(ctx context.Context, employee *Employee) (*Employee, error) {
	query :=
		`UPDATE employees
		 SET first_name = $2, last_name = $3, job_position = $4, birthdate = $5
		 WHERE id = $1
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		employee.ID, employee.FirstName, employee.LastName, employee.JobPosition, employee.Birthdate).Scan(&employee.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return employee, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM employees WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
