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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/appraisal/entity"
)

func TestEmployeeRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	found, err := f.employees.FindByID(ctx, f.ada.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Ada", found.Name)

	missing, err := f.employees.FindByID(ctx, f.ada.ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = f.employees.Create(ctx, "", "Engineer")
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)

	found.JobTitle = "Principal Engineer"
	require.NoError(t, f.employees.Update(ctx, found))
	all, err := f.employees.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Principal Engineer", all[0].JobTitle)

	found.Name = " "
	assert.ErrorIs(t, f.employees.Update(ctx, found), entity.ErrInvalidArgument)
	assert.ErrorIs(t, f.employees.Update(ctx, &entity.Employee{Name: "x", JobTitle: "y"}), ErrNotPersisted)

	exists, err := f.employees.Exists(ctx, f.ada.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, f.employees.Delete(ctx, f.ada.ID))
	exists, err = f.employees.Exists(ctx, f.ada.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
