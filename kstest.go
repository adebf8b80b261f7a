/*
* Kolmogorov-Smirnov test module
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
	"math"
)

type KSResult struct {
	Statistic        float64
	MaxDiffPosition  int
	ReadBytesCount   int
	CriticalValue001 float64
	CriticalValue005 float64
}

// KsTest compares the empirical CDF of the byte values with the uniform CDF.
func KsTest(table *FrequencyTable, readBytesCount int) (KSResult, error) {
	if readBytesCount == 0 {
		return KSResult{}, ErrEmptyInput
	}

	var empiricalCumSum, theoreticalCumSum float64
	result := KSResult{ReadBytesCount: readBytesCount}

	for i := 0; i < 256; i++ {
		empiricalCumSum += float64(table[i]) / float64(readBytesCount)
		theoreticalCumSum += 1.0 / 256
		diff := math.Abs(empiricalCumSum - theoreticalCumSum)
		if diff > result.Statistic {
			result.Statistic = diff
			result.MaxDiffPosition = i
		}
	}

	result.CriticalValue001 = 1.63 / math.Sqrt(float64(readBytesCount))
	result.CriticalValue005 = 1.36 / math.Sqrt(float64(readBytesCount))
	return result, nil
}
