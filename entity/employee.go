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
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/uptrace/bun"
)

// Employee is referenced by reviews. It is stored as is, without an identity
// map.
type Employee struct {
	bun.BaseModel `bun:"table:employees,alias:e"`

	ID       int64  `bun:"id,pk,autoincrement" json:"id"`
	Name     string `bun:"name,type:text,notnull" json:"name" validate:"notblank"`
	JobTitle string `bun:"job_title,type:text,notnull" json:"job_title" validate:"notblank"`
}

var employeeMessages = map[string]string{
	"Name":     NameMessage,
	"JobTitle": JobTitleMessage,
}

func NewEmployee(name, jobTitle string) (*Employee, error) {
	e := &Employee{Name: name, JobTitle: jobTitle}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate reports the first invalid field.
func (e *Employee) Validate() error {
	err := validate.Struct(e)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		field := fieldErrs[0].StructField()
		return invalid(field, employeeMessages[field])
	}
	return err
}

func (e *Employee) String() string {
	return fmt.Sprintf("<Employee %d: %s, %s>", e.ID, e.Name, e.JobTitle)
}
