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
	"math"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// MinYear is the earliest accepted review year.
const MinYear = 2000

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// EmployeeLookup answers whether an employee with the given id exists.
type EmployeeLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ParseYear accepts any Go integer or a string made only of ASCII digits and
// returns the year when it is at least MinYear.
func ParseYear(value any) (int, error) {
	var year int
	switch v := value.(type) {
	case string:
		if !isDigits(v) {
			return 0, invalid("year", YearMessage)
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, invalid("year", YearMessage)
		}
		year = n
	case int:
		year = v
	case int8:
		year = int(v)
	case int16:
		year = int(v)
	case int32:
		year = int(v)
	case int64:
		year = int(v)
	case uint:
		if uint64(v) > math.MaxInt {
			return 0, invalid("year", YearMessage)
		}
		year = int(v)
	case uint8:
		year = int(v)
	case uint16:
		year = int(v)
	case uint32:
		year = int(v)
	case uint64:
		if v > math.MaxInt {
			return 0, invalid("year", YearMessage)
		}
		year = int(v)
	default:
		return 0, invalid("year", YearMessage)
	}
	if err := validate.Var(year, fmt.Sprintf("gte=%d", MinYear)); err != nil {
		return 0, invalid("year", YearMessage)
	}
	return year, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ValidateSummary rejects empty and whitespace-only summaries.
func ValidateSummary(summary string) error {
	if err := validate.Var(summary, "notblank"); err != nil {
		return invalid("summary", SummaryMessage)
	}
	return nil
}

// ValidateEmployeeID checks that id names an existing employee. Errors of the
// lookup itself are returned wrapped rather than as validation failures.
func ValidateEmployeeID(ctx context.Context, lookup EmployeeLookup, id int64) error {
	if lookup == nil {
		return fmt.Errorf("employee lookup is not configured")
	}
	if id <= 0 {
		return invalid("employee_id", EmployeeIDMessage)
	}
	ok, err := lookup.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to look up employee %d: %w", id, err)
	}
	if !ok {
		return invalid("employee_id", EmployeeIDMessage)
	}
	return nil
}
