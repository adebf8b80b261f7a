/*
* Entropy plot rendering module
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
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type PlotOptions struct {
	Width  int
	Height int
}

func gridStyle() chart.Style {
	return chart.Style{
		StrokeColor: drawing.ColorFromHex("d0d0d0"),
		StrokeWidth: 1,
	}
}

// RenderProfilePlot draws the entropy profile as a PNG line chart with the
// window index on the X axis.
func RenderProfilePlot(profile []float64, windowSize int, opts PlotOptions) ([]byte, error) {
	if len(profile) == 0 {
		return nil, ErrEmptyInput
	}

	xs := make([]float64, len(profile))
	ys := make([]float64, len(profile))
	for i, value := range profile {
		xs[i] = float64(i)
		ys[i] = value
	}
	// go-chart needs at least two points to draw a line
	if len(profile) == 1 {
		xs = append(xs, 1)
		ys = append(ys, profile[0])
	}

	graph := chart.Chart{
		Title:      "Entropy Plot",
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           fmt.Sprintf("Data Offset (%d-byte blocks)", windowSize),
			GridMajorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           "Entropy",
			Range:          &chart.ContinuousRange{Min: 0, Max: 8},
			GridMajorStyle: gridStyle(),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Entropy",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 1,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render entropy plot: %w", err)
	}
	return buf.Bytes(), nil
}
