/*
* Result presentation module
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
	"errors"
	"fmt"
)

func FormatEntropyLine(entropy float64, class EntropyClass) string {
	return fmt.Sprintf("Entropy: %.4f - %s", entropy, class)
}

// MessageForError turns a failed request into the text shown in place of the
// result.
func MessageForError(err error, cfg *Config) string {
	var readErr *ReadError
	switch {
	case errors.Is(err, ErrUnsupportedFileType):
		return "Unsupported file type."
	case errors.Is(err, ErrFileTooLarge):
		return fmt.Sprintf("File is too large. Max %d MB allowed.", cfg.MaxFileSize/(1024*1024))
	case errors.Is(err, ErrEmptyInput):
		return "File is empty. Entropy is undefined."
	case errors.As(err, &readErr):
		return fmt.Sprintf("Error reading file: %v", readErr.Err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// DetailLines lists the supplementary statistics of an analysis, one per line.
func DetailLines(analysis *Analysis) []string {
	lines := []string{
		fmt.Sprintf("File: %s, size: %d bytes, window size: %d bytes.", analysis.FileName, analysis.Size, analysis.WindowSize),
		fmt.Sprintf("BLAKE3: %s", analysis.Digest),
		fmt.Sprintf("Detected content type: %s", analysis.MimeType),
	}
	if analysis.MimeWarn != "" {
		lines = append(lines, fmt.Sprintf("Warning: %s", analysis.MimeWarn))
	}

	s := analysis.Summary
	lines = append(lines,
		fmt.Sprintf("Windows: %d, min %.4f, max %.4f, mean %.4f, median %.4f, std dev %.4f, p90 %.4f, high entropy windows %d",
			s.Windows, s.Min, s.Max, s.Mean, s.Median, s.StdDev, s.P90, s.HighWindows),
		fmt.Sprintf("Chi-square statistic: %f", analysis.ChiSquare),
		fmt.Sprintf("Kolmogorov-Smirnov: max deviation %f (ref. %f) at byte %d, critical values %f (0.01) / %f (0.05)",
			analysis.KS.Statistic, ksTestThreshold, analysis.KS.MaxDiffPosition, analysis.KS.CriticalValue001, analysis.KS.CriticalValue005),
		fmt.Sprintf("Autocorrelation: %f, ref. %f", analysis.AutoCorrelation, autocorrThreshold),
		fmt.Sprintf("Average compression ratio: %f, ref. %f", analysis.Compression, compressionThreshold),
		fmt.Sprintf("Signatures per megabyte: %f, ref. %f", analysis.SignatureDensity, signatureThreshold),
		fmt.Sprintf("Encryption container signatures: %s", foundSignaturesTotalToReadable(analysis.Containers)),
		fmt.Sprintf("Randomness indicators: %d of 5", analysis.Indicators.Count()),
	)
	return lines
}
