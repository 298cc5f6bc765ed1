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

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root, c := newRootCmd()
	defer func() { _ = c.close() }()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI_ReviewWorkflow(t *testing.T) {
	t.Setenv("APPRAISAL_CONNECTION__DBNAME", filepath.Join(t.TempDir(), "company.db"))
	t.Setenv("APPRAISAL_LOG__LEVEL", "error")

	_, err := run(t, "migrate")
	require.NoError(t, err)

	out, err := run(t, "employee", "add", "Ada", "Engineer")
	require.NoError(t, err)
	assert.Contains(t, out, "<Employee 1: Ada, Engineer>")

	out, err = run(t, "review", "add", "2021", "Good work", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "<Review 1: 2021, Good work, Employee ID: 1>")

	_, err = run(t, "review", "add", "1999", "Too early", "1")
	assert.ErrorContains(t, err, "Year must be an integer greater than or equal to 2000.")

	out, err = run(t, "review", "update", "1", "--year", "2022")
	require.NoError(t, err)
	assert.Contains(t, out, "<Review 1: 2022, Good work, Employee ID: 1>")

	out, err = run(t, "employee", "reviews", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "2022")

	out, err = run(t, "review", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Review 1 deleted")

	_, err = run(t, "review", "show", "1")
	assert.ErrorContains(t, err, "review 1 not found")
}

func TestParseID(t *testing.T) {
	id, err := parseID("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, s := range []string{"", "0", "-3", "abc"} {
		_, err := parseID(s)
		assert.Error(t, err, s)
	}
}
