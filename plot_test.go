/*
* Entropy plot rendering tests
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
	"testing"

	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

func TestRenderProfilePlot(t *testing.T) {
	opts := PlotOptions{Width: 640, Height: 320}

	for _, profile := range [][]float64{{4.2}, {0, 8}, {1, 2, 3, 7.5, 7.99, 8}} {
		png, err := RenderProfilePlot(profile, DefaultWindowSize, opts)
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(png, pngMagic))
	}
}

func TestRenderProfilePlotEmpty(t *testing.T) {
	_, err := RenderProfilePlot(nil, DefaultWindowSize, PlotOptions{Width: 640, Height: 320})
	require.ErrorIs(t, err, ErrEmptyInput)
}
