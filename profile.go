/*
* Windowed entropy profile module
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

	"github.com/montanaflynn/stats"
)

const DefaultWindowSize = 1024

var ErrInvalidWindowSize = errors.New("window size must be positive")

// EntropyProfile splits data into consecutive windows of windowSize bytes and
// returns the entropy of each one in offset order. The last window may be
// shorter; it is not padded.
func EntropyProfile(data []byte, windowSize int) ([]float64, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindowSize, windowSize)
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	profile := make([]float64, 0, (len(data)+windowSize-1)/windowSize)
	for offset := 0; offset < len(data); offset += windowSize {
		end := min(offset+windowSize, len(data))
		table := CountBytes(data[offset:end])
		windowEntropy, err := table.Entropy()
		if err != nil {
			return nil, err
		}
		profile = append(profile, windowEntropy)
	}
	return profile, nil
}

type ProfileSummary struct {
	Windows     int
	Min         float64
	Max         float64
	Mean        float64
	Median      float64
	StdDev      float64
	P90         float64
	HighWindows int
}

// SummarizeProfile reduces a profile to descriptive statistics. HighWindows
// counts windows that classify as High entropy or above.
func SummarizeProfile(profile []float64) (ProfileSummary, error) {
	if len(profile) == 0 {
		return ProfileSummary{}, ErrEmptyInput
	}

	summary := ProfileSummary{Windows: len(profile)}
	var err error
	if summary.Min, err = stats.Min(profile); err != nil {
		return ProfileSummary{}, err
	}
	if summary.Max, err = stats.Max(profile); err != nil {
		return ProfileSummary{}, err
	}
	if summary.Mean, err = stats.Mean(profile); err != nil {
		return ProfileSummary{}, err
	}
	if summary.Median, err = stats.Median(profile); err != nil {
		return ProfileSummary{}, err
	}
	if summary.StdDev, err = stats.StandardDeviation(profile); err != nil {
		return ProfileSummary{}, err
	}
	if summary.P90, err = stats.PercentileNearestRank(profile, 90); err != nil {
		return ProfileSummary{}, err
	}

	for _, value := range profile {
		if Classify(value) >= HighEntropy {
			summary.HighWindows++
		}
	}
	return summary, nil
}
