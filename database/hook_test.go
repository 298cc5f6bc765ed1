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
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

type logEntry struct {
	level  string
	msg    string
	fields []interface{}
}

type recordLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordLogger) record(level, msg string, fields []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (l *recordLogger) SetLevel(string)                         {}
func (l *recordLogger) Debug(msg string, fields ...interface{}) { l.record("debug", msg, fields) }
func (l *recordLogger) Info(msg string, fields ...interface{})  { l.record("info", msg, fields) }
func (l *recordLogger) Warn(msg string, fields ...interface{})  { l.record("warn", msg, fields) }
func (l *recordLogger) Error(msg string, fields ...interface{}) { l.record("error", msg, fields) }

func (l *recordLogger) last() logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.entries[len(l.entries)-1]
}

func TestQueryLogHook(t *testing.T) {
	testCases := []struct {
		name      string
		event     *bun.QueryEvent
		slow      time.Duration
		wantLevel string
		wantMsg   string
	}{
		{
			name:      "executed",
			event:     &bun.QueryEvent{Query: "SELECT 1", StartTime: time.Now()},
			slow:      time.Hour,
			wantLevel: "debug",
			wantMsg:   "Query executed",
		},
		{
			name:      "no rows is not a failure",
			event:     &bun.QueryEvent{Query: "SELECT 1", StartTime: time.Now(), Err: sql.ErrNoRows},
			slow:      time.Hour,
			wantLevel: "debug",
			wantMsg:   "Query executed",
		},
		{
			name:      "failed",
			event:     &bun.QueryEvent{Query: "INSERT INTO reviews", StartTime: time.Now(), Err: errors.New("constraint failed")},
			slow:      time.Hour,
			wantLevel: "warn",
			wantMsg:   "Query failed",
		},
		{
			name:      "slow",
			event:     &bun.QueryEvent{Query: "UPDATE reviews", StartTime: time.Now().Add(-time.Second)},
			slow:      time.Millisecond,
			wantLevel: "warn",
			wantMsg:   "Database slow query detected",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger := &recordLogger{}
			hook := NewQueryLogHook(logger, tc.slow)
			ctx := hook.BeforeQuery(context.Background(), tc.event)
			hook.AfterQuery(ctx, tc.event)

			require.Len(t, logger.entries, 1)
			entry := logger.last()
			assert.Equal(t, tc.wantLevel, entry.level)
			assert.Equal(t, tc.wantMsg, entry.msg)
			assert.Contains(t, entry.fields, "operation")
		})
	}
}

func TestFormatOperationColor(t *testing.T) {
	assert.Contains(t, formatOperationColor("SELECT", "SELECT 1"), "SELECT 1")
	assert.Contains(t, formatOperationColor("PRAGMA", "PRAGMA foreign_keys = ON"), "PRAGMA foreign_keys = ON")
}
