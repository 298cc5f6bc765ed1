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
	"time"
)

// ConnectionConfig describes how to reach the database. The manager keeps a
// single shared connection, so MaxOpenConns defaults to 1 and is forced to 1
// for sqlite.
type ConnectionConfig struct {
	Type           string        `yaml:"type" koanf:"type" validate:"required,oneof=sqlite sqlite3 postgres postgresql mysql"`
	Host           string        `yaml:"host" koanf:"host"`
	Port           int           `yaml:"port" koanf:"port" validate:"gte=0,lte=65535"`
	Username       string        `yaml:"username" koanf:"username"`
	Password       string        `yaml:"password" koanf:"password"`
	DBName         string        `yaml:"dbname" koanf:"dbname" validate:"required"`
	SSLMode        string        `yaml:"sslmode" koanf:"sslmode"`
	MaxOpenConns   int           `yaml:"max_open_conns" koanf:"max_open_conns" validate:"gte=0"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" koanf:"connect_timeout"`
	ReadTimeout    time.Duration `yaml:"read_timeout" koanf:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout" koanf:"write_timeout"`
	ForeignKeys    bool          `yaml:"foreign_keys" koanf:"foreign_keys"` // sqlite: PRAGMA foreign_keys
	EnableQueryLog bool          `yaml:"enable_query_log" koanf:"enable_query_log"`
	SlowQueryTime  time.Duration `yaml:"slow_query_time" koanf:"slow_query_time"`
}

// SchemaConfig controls table creation on startup.
type SchemaConfig struct {
	AutoCreate bool `yaml:"auto_create" koanf:"auto_create"`
}

type LogConfig struct {
	Level  string `yaml:"level" koanf:"level" validate:"omitempty,oneof=trace debug info warn warning error"`
	Format string `yaml:"format" koanf:"format" validate:"omitempty,oneof=text json"`
}

type ObservabilityConfig struct {
	EnableMetrics bool `yaml:"enable_metrics" koanf:"enable_metrics"`
	EnableTracing bool `yaml:"enable_tracing" koanf:"enable_tracing"`
}

// Config aggregates connection, schema, logging and observability settings.
type Config struct {
	Connection    ConnectionConfig    `yaml:"connection" koanf:"connection"`
	Schema        SchemaConfig        `yaml:"schema" koanf:"schema"`
	Log           LogConfig           `yaml:"log" koanf:"log"`
	Observability ObservabilityConfig `yaml:"observability" koanf:"observability"`
}

// DefaultConnectionConfig returns a sqlite connection config with sensible
// defaults.
func DefaultConnectionConfig() *ConnectionConfig {
	return &ConnectionConfig{
		Type:           "sqlite",
		DBName:         "company",
		MaxOpenConns:   1,
		ConnectTimeout: time.Second * 10,
		ReadTimeout:    time.Second * 30,
		WriteTimeout:   time.Second * 30,
		ForeignKeys:    true,
		SlowQueryTime:  time.Second * 2,
	}
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Connection: *DefaultConnectionConfig(),
		Schema:     SchemaConfig{AutoCreate: true},
		Log:        LogConfig{Level: "info", Format: "text"},
	}
}

// MemoryConfig returns a configuration for a private in-memory sqlite
// database, mostly useful in tests.
func MemoryConfig() *Config {
	cfg := DefaultConfig()
	cfg.Connection.DBName = ":memory:"
	return cfg
}
