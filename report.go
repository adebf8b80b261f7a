/*
* Analysis report module
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
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/zeebo/blake3"
)

// Analysis is the complete result for one input file.
type Analysis struct {
	ID         uuid.UUID
	FileName   string
	Size       int
	Digest     string
	MimeType   string
	MimeWarn   string
	Entropy    float64
	Class      EntropyClass
	WindowSize int
	Profile    []float64
	Summary    ProfileSummary

	ChiSquare        float64
	KS               KSResult
	AutoCorrelation  float64
	Compression      float64
	SignatureDensity float64
	Containers       map[string]int
	Indicators       RandomnessIndicators

	Duration time.Duration
}

// Analyze runs every estimation on data, which must already be read and
// validated. It returns either a complete Analysis or an error.
func Analyze(fileName string, data []byte, cfg *Config) (*Analysis, error) {
	start := time.Now()

	table := CountBytes(data)
	entropy, err := table.Entropy()
	if err != nil {
		return nil, err
	}
	profile, err := EntropyProfile(data, cfg.WindowSize)
	if err != nil {
		return nil, err
	}
	summary, err := SummarizeProfile(profile)
	if err != nil {
		return nil, err
	}

	analysis := &Analysis{
		ID:         uuid.New(),
		FileName:   fileName,
		Size:       len(data),
		Digest:     digest(data),
		Entropy:    entropy,
		Class:      Classify(entropy),
		WindowSize: cfg.WindowSize,
		Profile:    profile,
		Summary:    summary,
	}
	analysis.MimeType, analysis.MimeWarn = sniffContent(fileName, data)

	if analysis.ChiSquare, err = ChiSquare(&table, len(data)); err != nil {
		return nil, err
	}
	if analysis.KS, err = KsTest(&table, len(data)); err != nil {
		return nil, err
	}
	if analysis.AutoCorrelation, err = AutoCorrelation(data, cfg.BlockSize); err != nil {
		return nil, err
	}
	if analysis.Compression, err = CompressionTest(data); err != nil {
		return nil, err
	}
	if analysis.SignatureDensity, err = SignatureDensity(data, cfg.BlockSize); err != nil {
		return nil, err
	}
	if analysis.Containers, err = ContainerSignatures(data, cfg.BlockSize); err != nil {
		return nil, err
	}

	analysis.Indicators = evaluateIndicators(analysis.AutoCorrelation, analysis.KS.Statistic,
		analysis.Compression, analysis.SignatureDensity, analysis.Entropy)
	analysis.Duration = time.Since(start)
	return analysis, nil
}

func digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

var expectedMimeTypes = map[string]string{
	".jpg": "image/jpeg",
	".png": "image/png",
}

// sniffContent detects the MIME type of data and returns a warning when it
// contradicts the file extension.
func sniffContent(fileName string, data []byte) (string, string) {
	mtype := mimetype.Detect(data)
	expected, ok := expectedMimeTypes[strings.ToLower(filepath.Ext(fileName))]
	if !ok || mtype.Is(expected) {
		return mtype.String(), ""
	}
	return mtype.String(), fmt.Sprintf("extension suggests %s but content looks like %s", expected, mtype.String())
}
