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

package utils

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		in   string
		want logrus.Level
	}{
		{in: "trace", want: logrus.TraceLevel},
		{in: " DEBUG ", want: logrus.DebugLevel},
		{in: "", want: logrus.InfoLevel},
		{in: "warning", want: logrus.WarnLevel},
		{in: "error", want: logrus.ErrorLevel},
		{in: "bogus", want: logrus.InfoLevel},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseLogLevel(tc.in))
		})
	}
}

func TestLog4jColorFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter("TEST", &buf)
	l.WithField("id", 7).Info("review saved")

	line := buf.String()
	assert.Contains(t, line, "INFO")
	assert.Contains(t, line, "TEST")
	assert.Contains(t, line, "review saved id=7")
	assert.NotContains(t, line, ansiReset)
}

func TestJSONLogFormatter_Format(t *testing.T) {
	f := &JSONLogFormatter{LoggerName: "DATABASE"}
	entry := logrus.NewEntry(logrus.New()).WithField("table", "reviews")
	entry.Message = "table created"
	entry.Level = logrus.InfoLevel

	b, err := f.Format(entry)
	require.NoError(t, err)

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &rec))
	assert.Equal(t, "info", rec["level"])
	assert.Equal(t, "DATABASE", rec["logger"])
	assert.Equal(t, "table created", rec["message"])
	assert.Equal(t, map[string]interface{}{"table": "reviews"}, rec["fields"])
}

func TestSetLoggerLevel(t *testing.T) {
	l := NewLoggerWithWriter("LEVELS", &bytes.Buffer{})
	assert.True(t, SetLoggerLevel("LEVELS", "error"))
	assert.Equal(t, logrus.ErrorLevel, l.GetLevel())
	assert.False(t, SetLoggerLevel("missing", "debug"))
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("APPRAISAL_TEST_BOOL", "true")
	t.Setenv("APPRAISAL_TEST_BAD_BOOL", "nope")
	assert.True(t, EnvDefaultBool("APPRAISAL_TEST_BOOL", false))
	assert.False(t, EnvDefaultBool("APPRAISAL_TEST_BAD_BOOL", false))
	assert.Equal(t, "fallback", EnvDefaultString("APPRAISAL_TEST_UNSET", "fallback"))
}
