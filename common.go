/*
* Common functions library
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

// Reference values of the randomness tests. Data that passes a test looks
// random to it.
const (
	autocorrThreshold    = 0.125
	ksTestThreshold      = 0.1
	compressionThreshold = 1.1
	signatureThreshold   = 150.0
	entropyThreshold     = 7.95
)

type RandomnessIndicators struct {
	AutoCorrelation bool
	KsTest          bool
	Compression     bool
	Signatures      bool
	Entropy         bool
}

// Count returns how many of the tests consider the data random.
func (ri RandomnessIndicators) Count() int {
	return CountTrueBools(ri.AutoCorrelation, ri.KsTest, ri.Compression, ri.Signatures, ri.Entropy)
}

func CountTrueBools(bools ...bool) int {
	var trueCount int
	for _, b := range bools {
		if b {
			trueCount++
		}
	}
	return trueCount
}

func evaluateIndicators(autocorr, ksStatistic, compression, signatureDensity, entropy float64) RandomnessIndicators {
	return RandomnessIndicators{
		AutoCorrelation: autocorr <= autocorrThreshold,
		KsTest:          ksStatistic <= ksTestThreshold,
		Compression:     compression <= compressionThreshold,
		Signatures:      signatureDensity <= signatureThreshold,
		Entropy:         entropy >= entropyThreshold,
	}
}
