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

package appraisal

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/appraisal/database"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestOpen_ReviewLifecycle(t *testing.T) {
	ctx := context.Background()
	cfg := database.MemoryConfig()
	cfg.Observability.EnableMetrics = true
	cfg.Observability.EnableTracing = true

	reg := prometheus.NewRegistry()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	app, err := Open(ctx, cfg, WithRegisterer(reg), WithTracerProvider(tp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	require.NoError(t, app.Ping(ctx))

	ada, err := app.Employees.Create(ctx, "Ada", "Engineer")
	require.NoError(t, err)
	review, err := app.Reviews.Create(ctx, 2021, "Good work", ada.ID)
	require.NoError(t, err)

	found, err := app.Reviews.FindByID(ctx, review.ID())
	require.NoError(t, err)
	assert.Same(t, review, found)

	count, err := testutil.GatherAndCount(reg, "appraisal_db_queries_total")
	require.NoError(t, err)
	assert.Positive(t, count)
	assert.NotEmpty(t, recorder.Ended())

	require.NoError(t, app.DropTables(ctx))
	assert.Zero(t, app.Reviews.Identity().Len())
}

func TestOpen_WithoutAutoCreate(t *testing.T) {
	ctx := context.Background()
	cfg := database.MemoryConfig()
	cfg.Schema.AutoCreate = false

	app, err := Open(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	_, err = app.Employees.Create(ctx, "Ada", "Engineer")
	require.Error(t, err)
	assert.True(t, database.IsSqlErrorKind(err, database.NoTableErr), err.Error())

	require.NoError(t, app.CreateTables(ctx))
	_, err = app.Employees.Create(ctx, "Ada", "Engineer")
	assert.NoError(t, err)
}

func TestOpen_InvalidConfig(t *testing.T) {
	cfg := database.MemoryConfig()
	cfg.Connection.Type = "oracle"
	_, err := Open(context.Background(), cfg)
	assert.Error(t, err)
}

func TestDBSystem(t *testing.T) {
	assert.Equal(t, "postgresql", dbSystem("postgres"))
	assert.Equal(t, "sqlite", dbSystem("sqlite3"))
	assert.Equal(t, "mysql", dbSystem("mysql"))
}
