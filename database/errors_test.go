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
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSqlError(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		wantIs bool
		want   SQLError
	}{
		{name: "nil", err: nil, wantIs: false, want: UnknownErr},
		{name: "no rows", err: fmt.Errorf("find: %w", sql.ErrNoRows), wantIs: true, want: NoRowsErr},
		{name: "mysql duplicate", err: &mysql.MySQLError{Number: 1062}, wantIs: true, want: DuplicateKeyErr},
		{name: "mysql foreign key", err: &mysql.MySQLError{Number: 1452}, wantIs: true, want: ForeignKeyViolationErr},
		{name: "mysql check", err: &mysql.MySQLError{Number: 3819}, wantIs: true, want: CheckConstraintViolationErr},
		{name: "mysql other", err: &mysql.MySQLError{Number: 1}, wantIs: true, want: UnknownErr},
		{name: "postgres missing table", err: &pq.Error{Code: "42P01"}, wantIs: true, want: NoTableErr},
		{name: "postgres foreign key", err: &pq.Error{Code: "23503"}, wantIs: true, want: ForeignKeyViolationErr},
		{name: "postgres check", err: fmt.Errorf("insert: %w", &pq.Error{Code: "23514"}), wantIs: true, want: CheckConstraintViolationErr},
		{name: "sqlite check", err: errors.New("constraint failed: CHECK constraint failed: year >= 2000 (275)"), wantIs: true, want: CheckConstraintViolationErr},
		{name: "sqlite foreign key", err: errors.New("constraint failed: FOREIGN KEY constraint failed (787)"), wantIs: true, want: ForeignKeyViolationErr},
		{name: "sqlite not null", err: errors.New("NOT NULL constraint failed: reviews.summary"), wantIs: true, want: NotNullViolationErr},
		{name: "sqlite missing table", err: errors.New("SQL logic error: no such table: reviews (1)"), wantIs: true, want: NoTableErr},
		{name: "unrelated", err: errors.New("context canceled"), wantIs: false, want: UnknownErr},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			is, got := IsSqlError(tc.err)
			assert.Equal(t, tc.wantIs, is)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSQLError_String(t *testing.T) {
	assert.Equal(t, "foreign key violation", ForeignKeyViolationErr.String())
	assert.Equal(t, "unknown", SQLError(99).String())
	assert.True(t, IsSqlErrorKind(sql.ErrNoRows, NoRowsErr))
	assert.False(t, IsSqlErrorKind(sql.ErrNoRows, NoTableErr))
}
