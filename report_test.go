/*
* Analysis report tests
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
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeStructuredData(t *testing.T) {
	data := halfZeroHalfUniform()

	analysis, err := Analyze("scenario.bin", data, DefaultConfig())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, analysis.ID)
	require.Equal(t, 2048, analysis.Size)
	require.Equal(t, []float64{0, 8}, analysis.Profile)
	require.Equal(t, Classify(analysis.Entropy), analysis.Class)
	require.Equal(t, LowEntropy, analysis.Class)
	require.Len(t, analysis.Digest, 64)
	require.Empty(t, analysis.MimeWarn)
	require.Equal(t, 1, analysis.Summary.HighWindows)
	require.False(t, analysis.Indicators.Entropy)
	require.False(t, analysis.Indicators.Compression)
}

func TestAnalyzeRandomData(t *testing.T) {
	analysis, err := Analyze("random.bin", randomBytes(1<<18, 21), DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, MaximumEntropy, analysis.Class)
	require.Equal(t, 5, analysis.Indicators.Count())
	require.Equal(t, "none", foundSignaturesTotalToReadable(analysis.Containers))
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	data := []byte(strings.Repeat("the quick brown fox ", 200))
	first, err := Analyze("fox.txt", data, DefaultConfig())
	require.NoError(t, err)
	second, err := Analyze("fox.txt", data, DefaultConfig())
	require.NoError(t, err)

	require.Equal(t, first.Entropy, second.Entropy)
	require.Equal(t, first.Profile, second.Profile)
	require.Equal(t, first.Digest, second.Digest)
	require.NotEqual(t, first.ID, second.ID)
}

func TestAnalyzeEmptyInput(t *testing.T) {
	_, err := Analyze("empty.txt", nil, DefaultConfig())
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestAnalyzeMimeMismatch(t *testing.T) {
	analysis, err := Analyze("picture.png", []byte("definitely not a picture"), DefaultConfig())
	require.NoError(t, err)
	require.Contains(t, analysis.MimeWarn, "image/png")
	require.True(t, strings.HasPrefix(analysis.MimeType, "text/plain"))

	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}
	analysis, err = Analyze("picture.png", png, DefaultConfig())
	require.NoError(t, err)
	require.Empty(t, analysis.MimeWarn)
}

func TestDetailLines(t *testing.T) {
	analysis, err := Analyze("picture.png", []byte("definitely not a picture"), DefaultConfig())
	require.NoError(t, err)

	details := strings.Join(DetailLines(analysis), "\n")
	require.Contains(t, details, "File: picture.png, size: 24 bytes")
	require.Contains(t, details, "BLAKE3: "+analysis.Digest)
	require.Contains(t, details, "Warning: extension suggests image/png")
	require.Contains(t, details, "Randomness indicators:")
}
