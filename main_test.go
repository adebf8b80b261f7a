/*
* Headless mode tests
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
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func quietLogger() *Logger {
	return NewLogger(io.Discard, zerolog.Disabled)
}

func TestRunHeadless(t *testing.T) {
	input := writeInput(t, "zeros.dat", make([]byte, 3000))
	plotPath := filepath.Join(t.TempDir(), "plot.png")

	var out bytes.Buffer
	require.NoError(t, runHeadless(&out, input, plotPath, DefaultConfig(), quietLogger()))
	require.Contains(t, out.String(), "Entropy: 0.0000 - Very Low Entropy - Likely plain or structured data.")
	require.Contains(t, out.String(), "Windows: 3,")

	png, err := os.ReadFile(plotPath)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestRunHeadlessRejectsInput(t *testing.T) {
	var out bytes.Buffer
	err := runHeadless(&out, writeInput(t, "tool.exe", []byte{1}), "", DefaultConfig(), quietLogger())
	require.ErrorIs(t, err, ErrUnsupportedFileType)
	require.Equal(t, "Unsupported file type.\n", out.String())

	out.Reset()
	err = runHeadless(&out, writeInput(t, "empty.txt", nil), "", DefaultConfig(), quietLogger())
	require.ErrorIs(t, err, ErrEmptyInput)
	require.Equal(t, "File is empty. Entropy is undefined.\n", out.String())
}
