/*
* Configuration tests
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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 1024, cfg.WindowSize)
	require.Equal(t, int64(52428800), cfg.MaxFileSize)
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "window_size: 4096\nplot:\n  width: 1200\n"))
	require.NoError(t, err)
	require.Equal(t, 4096, cfg.WindowSize)
	require.Equal(t, 1200, cfg.Plot.Width)
	require.Equal(t, 500, cfg.Plot.Height)
	require.Equal(t, DefaultConfig().AllowedExtensions, cfg.AllowedExtensions)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "window_size: 0\nmax_file_size: -1\n"))
	require.ErrorContains(t, err, "window_size must be positive")
	require.ErrorContains(t, err, "max_file_size must be positive")

	_, err = LoadConfig(writeConfig(t, "allowed_extensions: []\n"))
	require.ErrorContains(t, err, "allowed_extensions must not be empty")

	_, err = LoadConfig(writeConfig(t, "window_size: [\n"))
	require.ErrorContains(t, err, "failed to parse config file")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsExtensionAllowed(t *testing.T) {
	cfg := DefaultConfig()
	require.True(t, cfg.IsExtensionAllowed(".bin"))
	require.True(t, cfg.IsExtensionAllowed(".PNG"))
	require.False(t, cfg.IsExtensionAllowed(".exe"))
	require.False(t, cfg.IsExtensionAllowed(""))
}

func TestExampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadConfig("config.example.yaml")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}
