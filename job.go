/*
* Background analysis job module
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
)

type analysisJobResult struct {
	analysis *Analysis
	plotPath string
	err      error
}

// startAnalysisJob analyzes fileName and renders its plot on a new goroutine,
// then hands the result to deliver through post. The GUI passes a post that
// runs deliver on the Qt main thread, so widgets are only touched there.
func startAnalysisJob(fileName string, cfg *Config, logger *Logger, post func(func()), deliver func(analysisJobResult)) {
	go func() {
		var result analysisJobResult
		result.analysis, result.err = analyzeFile(fileName, cfg, logger)
		if result.err == nil {
			result.plotPath = writePlotFile(result.analysis, cfg, logger)
		}
		post(func() { deliver(result) })
	}()
}

// writePlotFile renders the profile to a temporary PNG and returns its path,
// or "" when rendering failed. The file outlives the call since the plot
// window reads it.
func writePlotFile(analysis *Analysis, cfg *Config, logger *Logger) string {
	png, err := RenderProfilePlot(analysis.Profile, analysis.WindowSize, PlotOptions{Width: cfg.Plot.Width, Height: cfg.Plot.Height})
	if err != nil {
		logger.Error("Plot", "render entropy plot", err, map[string]interface{}{"id": analysis.ID.String()})
		return ""
	}

	plotFile, err := os.CreateTemp("", "entropy-plot-*.png")
	if err != nil {
		logger.Error("Plot", "create plot file", err, map[string]interface{}{"id": analysis.ID.String()})
		return ""
	}
	defer plotFile.Close()
	if _, err := plotFile.Write(png); err != nil {
		logger.Error("Plot", "write plot file", err, map[string]interface{}{"id": analysis.ID.String(), "path": plotFile.Name()})
		return ""
	}
	return plotFile.Name()
}
