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
	"github.com/tomoncle/appraisal/types"
	"github.com/uptrace/bun"
)

// ReviewTable references employees, so it is created after EmployeeTable.
var ReviewTable = database.TableSpec{
	Name:     "reviews",
	Model:    (*entity.ReviewRecord)(nil),
	Priority: 20,
	ForeignKeys: []database.ForeignKeyConstraint{
		{Column: "employee_id", ReferenceTable: "employees", ReferenceColumn: "id"},
	},
}

// ReviewRepository persists reviews and guarantees a single *entity.Review
// per stored id through the identity map it owns.
type ReviewRepository struct {
	rows      Repository[entity.ReviewRecord]
	schema    *database.SchemaManager
	employees entity.EmployeeLookup
	identity  *IdentityMap[int64, *entity.Review]
	logger    database.Logger
}

func NewReviewRepository(db bun.IDB, employees entity.EmployeeLookup, logger database.Logger) *ReviewRepository {
	if logger == nil {
		logger = database.GetLogger()
	}
	return &ReviewRepository{
		rows:      NewRepository[entity.ReviewRecord](db),
		schema:    database.NewSchemaManager(db, logger),
		employees: employees,
		identity:  NewIdentityMap[int64, *entity.Review](),
		logger:    logger,
	}
}

func (r *ReviewRepository) CreateTable(ctx context.Context) error {
	return r.schema.CreateTable(ctx, ReviewTable)
}

func (r *ReviewRepository) DropTable(ctx context.Context) error {
	return r.schema.DropTable(ctx, ReviewTable)
}

// Identity returns the identity map, e.g. to Clear it between tests.
func (r *ReviewRepository) Identity() *IdentityMap[int64, *entity.Review] {
	return r.identity
}

// Lookup is the employee lookup used for validation.
func (r *ReviewRepository) Lookup() entity.EmployeeLookup {
	return r.employees
}

// New builds a validated, unsaved review.
func (r *ReviewRepository) New(ctx context.Context, year any, summary string, employeeID int64) (*entity.Review, error) {
	return entity.NewReview(ctx, r.employees, year, summary, employeeID)
}

// Create builds a review and saves it.
func (r *ReviewRepository) Create(ctx context.Context, year any, summary string, employeeID int64) (*entity.Review, error) {
	review, err := r.New(ctx, year, summary, employeeID)
	if err != nil {
		return nil, err
	}
	if err := r.Save(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Save inserts an unsaved review, assigns its id and registers it in the
// identity map.
func (r *ReviewRepository) Save(ctx context.Context, review *entity.Review) error {
	if review.Persisted() {
		return fmt.Errorf("review %d: %w", review.ID(), ErrAlreadyPersisted)
	}
	rec := review.Record()
	if err := r.rows.Create(ctx, rec); err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	review.Refresh(rec)
	r.identity.Put(rec.ID, review)
	r.logger.Debug("Review saved", "id", rec.ID, "employee_id", rec.EmployeeID)
	return nil
}

// Update rewrites year, summary and employee_id of the stored row. The
// employee reference is not checked again, and a row removed behind the
// repository's back is silently left alone.
func (r *ReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	if !review.Persisted() {
		return fmt.Errorf("review: %w", ErrNotPersisted)
	}
	n, err := r.rows.Update(ctx, review.Record(), "year", "summary", "employee_id")
	if err != nil {
		return fmt.Errorf("failed to update review %d: %w", review.ID(), err)
	}
	if n == 0 {
		r.logger.Warn("Review row not found on update", "id", review.ID())
	}
	return nil
}

// Delete removes the row of a tracked review, drops it from the identity map
// and resets its id. Untracked reviews yield ErrNotTracked and storage is
// left untouched.
func (r *ReviewRepository) Delete(ctx context.Context, review *entity.Review) error {
	id := review.ID()
	if tracked, ok := r.identity.Get(id); !ok || tracked != review {
		return fmt.Errorf("review %d: %w", id, ErrNotTracked)
	}
	if _, err := r.rows.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete review %d: %w", id, err)
	}
	r.identity.Remove(id)
	review.Detach()
	r.logger.Debug("Review deleted", "id", id)
	return nil
}

// FindByID returns nil without error when no review has the id.
func (r *ReviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	rec, err := r.rows.GetOne(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find review %d: %w", id, err)
	}
	return r.InstanceFromRecord(rec), nil
}

// GetAll returns every review ordered by id.
func (r *ReviewRepository) GetAll(ctx context.Context) ([]*entity.Review, error) {
	recs, err := r.rows.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return r.resolve(recs), nil
}

// ListByEmployee returns the reviews written for one employee.
func (r *ReviewRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]*entity.Review, error) {
	recs, err := r.rows.List(ctx, types.NewQueryFilter("employee_id = ?", employeeID))
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews of employee %d: %w", employeeID, err)
	}
	return r.resolve(recs), nil
}

func (r *ReviewRepository) Page(ctx context.Context, req *types.PageRequest) (*types.Pagination[entity.Review], error) {
	page, err := r.rows.Page(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to page reviews: %w", err)
	}
	return types.MapPagination(page, r.InstanceFromRecord), nil
}

// InstanceFromRecord returns the tracked instance for rec.ID refreshed from
// rec, or tracks a new one. Rows are trusted and not validated again.
func (r *ReviewRepository) InstanceFromRecord(rec *entity.ReviewRecord) *entity.Review {
	if rec == nil {
		return nil
	}
	if review, ok := r.identity.Get(rec.ID); ok {
		review.Refresh(rec)
		return review
	}
	review := entity.ReviewFromRecord(rec)
	r.identity.Put(rec.ID, review)
	return review
}

func (r *ReviewRepository) resolve(recs []*entity.ReviewRecord) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(recs))
	for _, rec := range recs {
		reviews = append(reviews, r.InstanceFromRecord(rec))
	}
	return reviews
}
