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
	"sort"
	"sync"
)

// TableSpec describes a table managed by the SchemaManager. Model is a nil
// struct pointer carrying bun tags, e.g. (*entity.ReviewRecord)(nil).
// Priority orders creation: lower values are created first and dropped last.
type TableSpec struct {
	Name        string
	Model       interface{}
	Priority    int
	ForeignKeys []ForeignKeyConstraint
}

// ModelRegistry stores table specs and exposes them in a deterministic order.
type ModelRegistry interface {
	Register(spec TableSpec)
	Tables() []TableSpec
}

type modelRegistry struct {
	tables []TableSpec
	mutex  sync.RWMutex
}

func NewModelRegistry(specs ...TableSpec) ModelRegistry {
	r := &modelRegistry{tables: make([]TableSpec, 0, len(specs))}
	for _, spec := range specs {
		r.Register(spec)
	}
	return r
}

func (r *modelRegistry) Register(spec TableSpec) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.tables = append(r.tables, spec)
}

// Tables returns the specs sorted by ascending priority; ties keep
// registration order.
func (r *modelRegistry) Tables() []TableSpec {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]TableSpec, len(r.tables))
	copy(result, r.tables)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Priority < result[j].Priority
	})
	return result
}
