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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "appraisal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Connection.Type)
	assert.Equal(t, "company", cfg.Connection.DBName)
	assert.Equal(t, 1, cfg.Connection.MaxOpenConns)
	assert.True(t, cfg.Connection.ForeignKeys)
	assert.True(t, cfg.Schema.AutoCreate)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
connection:
  type: postgres
  host: db.internal
  port: 5432
  username: hr
  dbname: appraisal
  slow_query_time: 250ms
log:
  level: warn
  format: json
observability:
  enable_metrics: true
`)
	t.Setenv("APPRAISAL_CONNECTION__DBNAME", "appraisal_test")
	t.Setenv("APPRAISAL_LOG__LEVEL", "debug")
	t.Setenv("APPRAISAL_CONNECTION__MAX_OPEN_CONNS", "4")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Connection.Type)
	assert.Equal(t, "db.internal", cfg.Connection.Host)
	assert.Equal(t, 5432, cfg.Connection.Port)
	assert.Equal(t, "appraisal_test", cfg.Connection.DBName)
	assert.Equal(t, 4, cfg.Connection.MaxOpenConns)
	assert.Equal(t, 250*time.Millisecond, cfg.Connection.SlowQueryTime)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Observability.EnableMetrics)
	// untouched defaults survive the file
	assert.Equal(t, 10*time.Second, cfg.Connection.ConnectTimeout)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "connection: [not, a, map]"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "connection:\n  type: oracle\n"))
	assert.ErrorContains(t, err, "invalid database configuration")

	t.Setenv("APPRAISAL_CONNECTION__PORT", "70000")
	_, err = LoadConfig("")
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	assert.Error(t, ValidateConfig(nil))
	assert.NoError(t, ValidateConfig(DefaultConfig()))

	cfg := MemoryConfig()
	cfg.Connection.DBName = ""
	assert.Error(t, ValidateConfig(cfg))

	cfg = MemoryConfig()
	cfg.Log.Format = "xml"
	assert.Error(t, ValidateConfig(cfg))
}
