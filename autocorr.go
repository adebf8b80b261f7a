/*
* Autocorrelation test module
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
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

const maxAutocorrLag = 50

// AutoCorrelation splits data into blocks, computes the mean absolute
// autocorrelation of each block over lags 1..49 and returns the standard
// deviation of those means across blocks. A partial trailing block is
// skipped; data shorter than one block is analyzed as a single block.
func AutoCorrelation(data []byte, blockSize int) (float64, error) {
	if blockSize <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWindowSize, blockSize)
	}
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}

	var totalAutocorr []float64
	for offset := 0; offset < len(data); offset += blockSize {
		block := data[offset:min(offset+blockSize, len(data))]
		// a short tail has few lag pairs and a noisy mean, which would
		// dominate the spread across full blocks
		if len(block) < blockSize && offset > 0 {
			break
		}
		if len(block) < 2 {
			continue
		}

		blockMean, err := blockAutocorrelation(block)
		if err != nil {
			return 0, err
		}
		totalAutocorr = append(totalAutocorr, blockMean)
	}

	if len(totalAutocorr) == 0 {
		return 0, nil
	}
	std, err := stats.StandardDeviation(totalAutocorr)
	if err != nil {
		return 0, fmt.Errorf("standard deviation calc error: %w", err)
	}
	return std, nil
}

func blockAutocorrelation(block []byte) (float64, error) {
	floatBuffer := make([]float64, len(block))
	for i, val := range block {
		floatBuffer[i] = float64(val)
	}
	inputMean, err := stats.Mean(floatBuffer)
	if err != nil {
		return 0, err
	}
	for i := range floatBuffer {
		floatBuffer[i] -= inputMean
	}

	maxLag := min(len(floatBuffer), maxAutocorrLag)
	results := make([]float64, 0, maxLag)
	for lag := 1; lag < maxLag; lag++ {
		correlation, err := stats.Correlation(floatBuffer[lag:], floatBuffer[:len(floatBuffer)-lag])
		if err != nil {
			return 0, fmt.Errorf("autocorrelation calc error at lag %d: %w", lag, err)
		}
		results = append(results, math.Abs(correlation))
	}
	return stats.Mean(results)
}
