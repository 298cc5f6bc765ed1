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
)

// ErrInvalidArgument is matched by every field validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	YearMessage       = "Year must be an integer greater than or equal to 2000."
	SummaryMessage    = "Summary must be a non-empty string."
	EmployeeIDMessage = "employee_id must be a valid Employee ID from the database."
	NameMessage       = "Name must be a non-empty string."
	JobTitleMessage   = "Job title must be a non-empty string."
)

// ValidationError reports the field that rejected a value. It unwraps to
// ErrInvalidArgument.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
