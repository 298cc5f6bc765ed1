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
	"time"

	"github.com/fatih/color"
	"github.com/uptrace/bun"
)

var operationColors = map[string]*color.Color{
	"SELECT": color.New(color.FgGreen),
	"INSERT": color.New(color.FgBlue),
	"UPDATE": color.New(color.FgYellow),
	"DELETE": color.New(color.FgMagenta),
}

var defaultOperationColor = color.New(color.FgRed)

// QueryLogHook logs every query at debug level, failed queries and queries
// slower than slowTime at warn level. sql.ErrNoRows is not a failure.
type QueryLogHook struct {
	logger   Logger
	slowTime time.Duration
}

var _ bun.QueryHook = (*QueryLogHook)(nil)

func NewQueryLogHook(logger Logger, slowTime time.Duration) *QueryLogHook {
	if logger == nil {
		logger = GetLogger()
	}
	return &QueryLogHook{logger: logger, slowTime: slowTime}
}

func (h *QueryLogHook) BeforeQuery(ctx context.Context, event *bun.QueryEvent) context.Context {
	return ctx
}

func (h *QueryLogHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	dur := time.Since(event.StartTime).Round(time.Microsecond)
	op := event.Operation()
	query := formatOperationColor(op, event.Query)

	switch {
	case event.Err != nil && !errors.Is(event.Err, sql.ErrNoRows):
		h.logger.Warn("Query failed", "operation", op, "duration", dur, "query", query, "error", event.Err)
	case h.slowTime > 0 && dur > h.slowTime:
		h.logger.Warn("Database slow query detected", "operation", op, "duration", dur, "slow_threshold", h.slowTime, "query", query)
	default:
		h.logger.Debug("Query executed", "operation", op, "duration", dur, "query", query)
	}
}

func formatOperationColor(op, query string) string {
	if c, ok := operationColors[op]; ok {
		return c.Sprint(query)
	}
	return defaultOperationColor.Sprint(query)
}
