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
	"fmt"

	"github.com/uptrace/bun"
)

// SchemaManager creates and drops tables idempotently. Each statement runs on
// its own and is committed by the driver immediately.
type SchemaManager struct {
	db     bun.IDB
	logger Logger
}

func NewSchemaManager(db bun.IDB, logger Logger) *SchemaManager {
	if logger == nil {
		logger = GetLogger()
	}
	return &SchemaManager{db: db, logger: logger}
}

// CreateTable runs CREATE TABLE IF NOT EXISTS for spec, including its
// foreign keys.
func (sm *SchemaManager) CreateTable(ctx context.Context, spec TableSpec) error {
	q := sm.db.NewCreateTable().Model(spec.Model).IfNotExists()
	for _, fk := range spec.ForeignKeys {
		if err := fk.Validate(); err != nil {
			return fmt.Errorf("invalid foreign key on table %s: %w", spec.Name, err)
		}
		q = fk.apply(q)
	}
	if _, err := q.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create table %s: %w", spec.Name, err)
	}
	sm.logger.Debug("Table ensured", "table", spec.Name, "foreign_keys", len(spec.ForeignKeys))
	return nil
}

// DropTable runs DROP TABLE IF EXISTS for spec.
func (sm *SchemaManager) DropTable(ctx context.Context, spec TableSpec) error {
	if _, err := sm.db.NewDropTable().Model(spec.Model).IfExists().Exec(ctx); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", spec.Name, err)
	}
	sm.logger.Debug("Table dropped", "table", spec.Name)
	return nil
}

// CreateAll creates every registered table, referenced tables first.
func (sm *SchemaManager) CreateAll(ctx context.Context, registry ModelRegistry) error {
	tables := registry.Tables()
	for _, spec := range tables {
		if err := sm.CreateTable(ctx, spec); err != nil {
			return err
		}
	}
	sm.logger.Info("Schema created", "tables", len(tables))
	return nil
}

// DropAll drops every registered table in reverse creation order.
func (sm *SchemaManager) DropAll(ctx context.Context, registry ModelRegistry) error {
	tables := registry.Tables()
	for i := len(tables) - 1; i >= 0; i-- {
		if err := sm.DropTable(ctx, tables[i]); err != nil {
			return err
		}
	}
	sm.logger.Info("Schema dropped", "tables", len(tables))
	return nil
}
