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

package repository

import (
	"context"
	"errors"

	"github.com/tomoncle/appraisal/types"
)

var (
	// ErrNotTracked is returned when deleting a review that the identity map
	// does not hold: never saved, already deleted, or loaded before a Clear.
	ErrNotTracked = errors.New("review is not tracked by the identity map")

	ErrAlreadyPersisted = errors.New("review is already persisted")
	ErrNotPersisted     = errors.New("review is not persisted")
)

// CrudRepository defines row-level operations for a bun model type.
type CrudRepository[T any] interface {
	GetOne(ctx context.Context, id int64) (*T, error)

	GetAll(ctx context.Context) ([]*T, error)

	List(ctx context.Context, filter *types.QueryFilter) ([]*T, error)

	Exists(ctx context.Context, id int64) (bool, error)

	Create(ctx context.Context, entity *T) error

	Update(ctx context.Context, entity *T, columns ...string) (int64, error)

	Delete(ctx context.Context, id int64) (int64, error)
}

// PageQueryRepository defines pagination functionality for listing rows.
type PageQueryRepository[T any] interface {
	Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error)
}

type Repository[T any] interface {
	CrudRepository[T]
	PageQueryRepository[T]
}
