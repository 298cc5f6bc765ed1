/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tomoncle/appraisal/database"
	"github.com/tomoncle/appraisal/entity"
	"github.com/uptrace/bun"
)

// EmployeeTable is created before every table that references employees.
var EmployeeTable = database.TableSpec{
	Name:     "employees",
	Model:    (*entity.Employee)(nil),
	Priority: 10,
}

// EmployeeRepository stores employees. It is the lookup used to validate
// review employee ids.
type EmployeeRepository struct {
	rows   Repository[entity.Employee]
	schema *database.SchemaManager
	logger database.Logger
}

var _ entity.EmployeeLookup = (*EmployeeRepository)(nil)

func NewEmployeeRepository(db bun.IDB, logger database.Logger) *EmployeeRepository {
	if logger == nil {
		logger = database.GetLogger()
	}
	return &EmployeeRepository{
		rows:   NewRepository[entity.Employee](db),
		schema: database.NewSchemaManager(db, logger),
		logger: logger,
	}
}

func (r *EmployeeRepository) CreateTable(ctx context.Context) error {
	return r.schema.CreateTable(ctx, EmployeeTable)
}

func (r *EmployeeRepository) DropTable(ctx context.Context) error {
	return r.schema.DropTable(ctx, EmployeeTable)
}

// Create validates and inserts a new employee.
func (r *EmployeeRepository) Create(ctx context.Context, name, jobTitle string) (*entity.Employee, error) {
	e, err := entity.NewEmployee(name, jobTitle)
	if err != nil {
		return nil, err
	}
	if err := r.rows.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to insert employee: %w", err)
	}
	r.logger.Debug("Employee created", "id", e.ID)
	return e, nil
}

// FindByID returns nil without error when no employee has the id.
func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*entity.Employee, error) {
	e, err := r.rows.GetOne(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find employee %d: %w", id, err)
	}
	return e, nil
}

func (r *EmployeeRepository) GetAll(ctx context.Context) ([]*entity.Employee, error) {
	employees, err := r.rows.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// Update validates e and rewrites its row. A missing row is not an error.
func (r *EmployeeRepository) Update(ctx context.Context, e *entity.Employee) error {
	if e.ID == 0 {
		return fmt.Errorf("employee: %w", ErrNotPersisted)
	}
	if err := e.Validate(); err != nil {
		return err
	}
	if _, err := r.rows.Update(ctx, e, "name", "job_title"); err != nil {
		return fmt.Errorf("failed to update employee %d: %w", e.ID, err)
	}
	return nil
}

// Delete removes the employee row. Storage refuses while reviews still
// reference it.
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.rows.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}
	r.logger.Debug("Employee deleted", "id", id, "rows", n)
	return nil
}

func (r *EmployeeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.rows.Exists(ctx, id)
}
