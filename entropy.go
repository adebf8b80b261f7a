/*
* Shannon entropy estimation module
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
	"math"
)

// ErrEmptyInput is returned when entropy is requested for a zero-length byte
// sequence, for which the byte distribution is undefined.
var ErrEmptyInput = errors.New("empty input: entropy is undefined")

// FrequencyTable holds the occurrence count of every byte value.
type FrequencyTable [256]int

func CountBytes(data []byte) FrequencyTable {
	var table FrequencyTable
	for _, b := range data {
		table[b]++
	}
	return table
}

// Total returns the number of bytes the table was built from.
func (table *FrequencyTable) Total() int {
	var total int
	for _, count := range table {
		total += count
	}
	return total
}

// Entropy returns the Shannon entropy of the counted bytes in bits per byte.
// Zero counts are skipped so log2(0) is never evaluated.
func (table *FrequencyTable) Entropy() (float64, error) {
	total := table.Total()
	if total == 0 {
		return 0, ErrEmptyInput
	}

	var entropy float64
	for _, count := range table {
		if count == 0 {
			continue
		}
		p := float64(count) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy, nil
}

// ShannonEntropy computes the entropy of the whole byte sequence, in [0, 8].
func ShannonEntropy(data []byte) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	table := CountBytes(data)
	return table.Entropy()
}
