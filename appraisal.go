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
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tomoncle/appraisal/database"
	"github.com/tomoncle/appraisal/repository"
	"github.com/tomoncle/appraisal/utils"
	"go.opentelemetry.io/otel/trace"
)

// App owns the shared connection, the schema and the repositories built on
// it. The review identity map lives as long as the App.
type App struct {
	Employees *repository.EmployeeRepository
	Reviews   *repository.ReviewRepository

	manager  database.AbstractDatabaseManager
	schema   *database.SchemaManager
	registry database.ModelRegistry
	logger   database.Logger
}

type options struct {
	logger         database.Logger
	registerer     prometheus.Registerer
	tracerProvider trace.TracerProvider
}

type Option func(*options)

func WithLogger(logger database.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRegisterer sets where query metrics are registered when metrics are
// enabled. Defaults to prometheus.DefaultRegisterer.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// WithTracerProvider sets the provider of query spans when tracing is
// enabled. Defaults to the global otel provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// Open validates cfg, connects and, when cfg.Schema.AutoCreate is set,
// creates the tables. A nil cfg means database.DefaultConfig().
func Open(ctx context.Context, cfg *database.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = database.DefaultConfig()
	}
	if err := database.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	utils.ConfigureConsoleLogFormat(cfg.Log.Format)
	utils.ConfigureLogLevel(cfg.Log.Level)

	o := &options{registerer: prometheus.DefaultRegisterer}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = database.GetLogger()
	}

	manager := database.NewDatabaseManager(&cfg.Connection)
	manager.SetLogger(o.logger)
	if cfg.Observability.EnableMetrics {
		hook, err := database.NewMetricsHook(o.registerer)
		if err != nil {
			return nil, fmt.Errorf("failed to register query metrics: %w", err)
		}
		manager.AddQueryHook(hook)
	}
	if cfg.Observability.EnableTracing {
		manager.AddQueryHook(database.NewTracingHook(o.tracerProvider, dbSystem(cfg.Connection.Type)))
	}
	if err := manager.Connect(ctx); err != nil {
		return nil, err
	}

	db := manager.GetDB()
	employees := repository.NewEmployeeRepository(db, o.logger)
	app := &App{
		Employees: employees,
		Reviews:   repository.NewReviewRepository(db, employees, o.logger),
		manager:   manager,
		schema:    database.NewSchemaManager(db, o.logger),
		registry:  database.NewModelRegistry(repository.EmployeeTable, repository.ReviewTable),
		logger:    o.logger,
	}
	if cfg.Schema.AutoCreate {
		if err := app.CreateTables(ctx); err != nil {
			_ = manager.Disconnect()
			return nil, err
		}
	}
	return app, nil
}

// CreateTables creates employees, then reviews.
func (a *App) CreateTables(ctx context.Context) error {
	return a.schema.CreateAll(ctx, a.registry)
}

// DropTables drops reviews, then employees, and forgets every tracked review.
func (a *App) DropTables(ctx context.Context) error {
	if err := a.schema.DropAll(ctx, a.registry); err != nil {
		return err
	}
	a.Reviews.Identity().Clear()
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	return a.manager.Ping(ctx)
}

func (a *App) Close() error {
	return a.manager.Disconnect()
}

// dbSystem maps a connection type to the otel db.system value.
func dbSystem(typ string) string {
	switch typ {
	case "postgres", "postgresql":
		return "postgresql"
	case "sqlite", "sqlite3":
		return "sqlite"
	default:
		return typ
	}
}
