// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bbst.log")

	logger, closer, err := newLogger(LogConfig{Level: "debug", File: path}, true)
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, logger.GetLevel())

	logger.Debug().Str("cmd", "insert").Msg("exec")
	logger.Trace().Msg("dropped")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"cmd":"insert"`)
	require.NotContains(t, string(data), "dropped")
}

func TestNewLoggerInteractiveWithoutFileDiscards(t *testing.T) {
	logger, closer, err := newLogger(LogConfig{Level: "info"}, true)
	require.NoError(t, err)
	require.Equal(t, zerolog.Disabled, logger.GetLevel())
	require.NoError(t, closer.Close())
}

func TestNewLoggerUnknownLevelDefaultsToInfo(t *testing.T) {
	logger, _, err := newLogger(LogConfig{Level: "chatty"}, false)
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNewLoggerBadFile(t *testing.T) {
	_, _, err := newLogger(LogConfig{File: filepath.Join(t.TempDir(), "missing", "bbst.log")}, false)
	require.Error(t, err)
}
