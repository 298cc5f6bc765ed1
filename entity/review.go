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

package entity

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// ReviewRecord is the row model of the reviews table. The year check and the
// employee foreign key are enforced by storage as well as by Review.
type ReviewRecord struct {
	bun.BaseModel `bun:"table:reviews,alias:r"`

	ID         int64  `bun:"id,pk,autoincrement" json:"id"`
	Year       int    `bun:"year,type:integer CHECK (year >= 2000),notnull" json:"year"`
	Summary    string `bun:"summary,type:text,notnull" json:"summary"`
	EmployeeID int64  `bun:"employee_id,notnull" json:"employee_id"`
}

// Review is a performance review of an employee. Its fields can only be set
// through validating setters; an ID of 0 means the review is not persisted.
type Review struct {
	id         int64
	year       int
	summary    string
	employeeID int64
}

// NewReview validates every field before building the review, so an error
// never leaves a partially initialised value behind.
func NewReview(ctx context.Context, lookup EmployeeLookup, year any, summary string, employeeID int64) (*Review, error) {
	y, err := ParseYear(year)
	if err != nil {
		return nil, err
	}
	if err := ValidateSummary(summary); err != nil {
		return nil, err
	}
	if err := ValidateEmployeeID(ctx, lookup, employeeID); err != nil {
		return nil, err
	}
	return &Review{year: y, summary: summary, employeeID: employeeID}, nil
}

// ReviewFromRecord builds a review from a stored row without validation.
func ReviewFromRecord(rec *ReviewRecord) *Review {
	if rec == nil {
		return nil
	}
	r := &Review{}
	r.Refresh(rec)
	return r
}

func (r *Review) ID() int64         { return r.id }
func (r *Review) Year() int         { return r.year }
func (r *Review) Summary() string   { return r.summary }
func (r *Review) EmployeeID() int64 { return r.employeeID }
func (r *Review) Persisted() bool   { return r.id != 0 }

// SetYear accepts the same values as ParseYear. The year is unchanged on error.
func (r *Review) SetYear(value any) error {
	y, err := ParseYear(value)
	if err != nil {
		return err
	}
	r.year = y
	return nil
}

func (r *Review) SetSummary(summary string) error {
	if err := ValidateSummary(summary); err != nil {
		return err
	}
	r.summary = summary
	return nil
}

// SetEmployeeID checks the reference when it is assigned. It is not checked
// again on save, so a later removal of the employee is not detected here.
func (r *Review) SetEmployeeID(ctx context.Context, lookup EmployeeLookup, id int64) error {
	if err := ValidateEmployeeID(ctx, lookup, id); err != nil {
		return err
	}
	r.employeeID = id
	return nil
}

// Record returns the row representation of r.
func (r *Review) Record() *ReviewRecord {
	return &ReviewRecord{
		ID:         r.id,
		Year:       r.year,
		Summary:    r.summary,
		EmployeeID: r.employeeID,
	}
}

// Refresh overwrites every field, the ID included, from rec.
func (r *Review) Refresh(rec *ReviewRecord) {
	r.id = rec.ID
	r.year = rec.Year
	r.summary = rec.Summary
	r.employeeID = rec.EmployeeID
}

// Detach clears the ID after the row has been deleted.
func (r *Review) Detach() {
	r.id = 0
}

func (r *Review) String() string {
	return fmt.Sprintf("<Review %d: %d, %s, Employee ID: %d>", r.id, r.year, r.summary, r.employeeID)
}
