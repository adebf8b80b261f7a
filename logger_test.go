/*
* Structured logging tests
* Copyright (C) 2025  Artem Stefankiv
*
* This program is free software: you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation, either version 3 of the License, or
* (at your option) any later version.
*
* This program is distributed in the hope that it will be useful,
* but WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
* GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesComponentFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, zerolog.InfoLevel)

	logger.Info("Analyzer", "analysis complete", map[string]interface{}{"bytes": 42})
	logger.Error("Source", "read input file", errors.New("disk gone"), map[string]interface{}{"file": "a.bin"})
	logger.Debug("Source", "not written", nil)

	out := buf.String()
	require.Contains(t, out, `"component":"Analyzer"`)
	require.Contains(t, out, `"bytes":42`)
	require.Contains(t, out, `"error":"disk gone"`)
	require.Contains(t, out, `"message":"read input file"`)
	require.Contains(t, out, `"file":"a.bin"`)
	require.NotContains(t, out, "not written")
}

func TestNewConsoleLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewConsoleLogger("loud")
	require.ErrorContains(t, err, `invalid log level "loud"`)

	logger, err := NewConsoleLogger("warn")
	require.NoError(t, err)
	require.NotNil(t, logger)
}
