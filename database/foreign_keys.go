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

package database

import (
	"fmt"
	"strings"

	"github.com/uptrace/bun"
)

var validReferentialActions = []string{"CASCADE", "RESTRICT", "SET NULL", "NO ACTION"}

// ForeignKeyConstraint describes a column of the owning table referencing
// another table. It is rendered inline in CREATE TABLE, which every supported
// dialect (sqlite included) accepts.
type ForeignKeyConstraint struct {
	Column          string
	ReferenceTable  string
	ReferenceColumn string
	OnDelete        string // CASCADE, RESTRICT, SET NULL, NO ACTION
	OnUpdate        string // CASCADE, RESTRICT, SET NULL, NO ACTION
}

func (fk ForeignKeyConstraint) String() string {
	return fmt.Sprintf("%s -> %s.%s", fk.Column, fk.ReferenceTable, fk.ReferenceColumn)
}

// Validate checks the constraint for missing names and unknown actions.
func (fk ForeignKeyConstraint) Validate() error {
	if fk.Column == "" {
		return fmt.Errorf("foreign key column cannot be empty")
	}
	if fk.ReferenceTable == "" {
		return fmt.Errorf("reference table name cannot be empty: %s", fk.Column)
	}
	if fk.ReferenceColumn == "" {
		return fmt.Errorf("reference column name cannot be empty: %s -> %s", fk.Column, fk.ReferenceTable)
	}
	for _, action := range []string{fk.OnDelete, fk.OnUpdate} {
		if action != "" && !isReferentialAction(action) {
			return fmt.Errorf("invalid referential action: %s, constraint: %s", action, fk)
		}
	}
	return nil
}

func isReferentialAction(action string) bool {
	for _, valid := range validReferentialActions {
		if strings.EqualFold(action, valid) {
			return true
		}
	}
	return false
}

// apply appends "FOREIGN KEY (col) REFERENCES table (col) [ON ...]" to q.
func (fk ForeignKeyConstraint) apply(q *bun.CreateTableQuery) *bun.CreateTableQuery {
	query := "(?) REFERENCES ? (?)"
	if fk.OnDelete != "" {
		query += " ON DELETE " + strings.ToUpper(fk.OnDelete)
	}
	if fk.OnUpdate != "" {
		query += " ON UPDATE " + strings.ToUpper(fk.OnUpdate)
	}
	return q.ForeignKey(query, bun.Ident(fk.Column), bun.Ident(fk.ReferenceTable), bun.Ident(fk.ReferenceColumn))
}
