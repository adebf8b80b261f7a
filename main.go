/*
* Entropy triage entry point
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
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	fileName := flag.String("file", "", "analyze this file without starting the GUI")
	plotPath := flag.String("plot", "", "with -file, write the entropy plot PNG to this path")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cfg = loaded
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger, err := NewConsoleLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *fileName != "" {
		if err := runHeadless(os.Stdout, *fileName, *plotPath, cfg, logger); err != nil {
			os.Exit(1)
		}
		return
	}
	runGUI(cfg, logger)
}

// analyzeFile reads and analyzes one file, logging the outcome.
func analyzeFile(fileName string, cfg *Config, logger *Logger) (*Analysis, error) {
	start := time.Now()
	data, err := ReadInputFile(fileName, cfg)
	if err != nil {
		logger.Error("Source", "read input file", err, map[string]interface{}{"file": fileName})
		return nil, err
	}
	logger.Debug("Source", "file read", map[string]interface{}{"file": fileName, "bytes": len(data), "took": time.Since(start).String()})

	analysis, err := Analyze(fileName, data, cfg)
	if err != nil {
		logger.Error("Analyzer", "analyze input", err, map[string]interface{}{"file": fileName})
		return nil, err
	}
	if analysis.MimeWarn != "" {
		logger.Warning("Analyzer", analysis.MimeWarn, map[string]interface{}{"id": analysis.ID.String(), "file": fileName})
	}
	logger.Info("Analyzer", "analysis complete", map[string]interface{}{
		"id":       analysis.ID.String(),
		"file":     fileName,
		"bytes":    analysis.Size,
		"entropy":  analysis.Entropy,
		"windows":  len(analysis.Profile),
		"duration": analysis.Duration.String(),
	})
	return analysis, nil
}

func runHeadless(out io.Writer, fileName, plotPath string, cfg *Config, logger *Logger) error {
	analysis, err := analyzeFile(fileName, cfg, logger)
	if err != nil {
		fmt.Fprintln(out, MessageForError(err, cfg))
		return err
	}

	fmt.Fprintln(out, FormatEntropyLine(analysis.Entropy, analysis.Class))
	fmt.Fprintln(out, strings.Join(DetailLines(analysis), "\n"))

	if plotPath == "" {
		return nil
	}
	png, err := RenderProfilePlot(analysis.Profile, analysis.WindowSize, PlotOptions{Width: cfg.Plot.Width, Height: cfg.Plot.Height})
	if err != nil {
		logger.Error("Plot", "render entropy plot", err, map[string]interface{}{"id": analysis.ID.String()})
		return err
	}
	if err := os.WriteFile(plotPath, png, 0644); err != nil {
		logger.Error("Plot", "write entropy plot", err, map[string]interface{}{"id": analysis.ID.String(), "path": plotPath})
		return err
	}
	logger.Info("Plot", "entropy plot written", map[string]interface{}{"id": analysis.ID.String(), "path": plotPath})
	return nil
}
