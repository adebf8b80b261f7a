/*
* Entropy classification module
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

type EntropyClass int

const (
	VeryLowEntropy EntropyClass = iota
	LowEntropy
	ModerateEntropy
	HighEntropy
	MaximumEntropy
)

var entropyClassLabels = [...]string{
	VeryLowEntropy:  "Very Low Entropy - Likely plain or structured data.",
	LowEntropy:      "Low Entropy - Possibly compressed or lightly obfuscated.",
	ModerateEntropy: "Moderate Entropy - Possibly partially encrypted or compressed.",
	HighEntropy:     "High Entropy - Likely encrypted or well-compressed data.",
	MaximumEntropy:  "Maximum Entropy - Strongly resembles encrypted or truly random data.",
}

func (class EntropyClass) String() string {
	if class < VeryLowEntropy || class > MaximumEntropy {
		return "Unknown Entropy"
	}
	return entropyClassLabels[class]
}

// Classify maps an entropy value to its bucket. Lower bounds are inclusive and
// the first match wins; anything not below 7.99, NaN included, is Maximum.
func Classify(entropy float64) EntropyClass {
	switch {
	case entropy < 3.0:
		return VeryLowEntropy
	case entropy < 5.0:
		return LowEntropy
	case entropy < 7.0:
		return ModerateEntropy
	case entropy < 7.99:
		return HighEntropy
	default:
		return MaximumEntropy
	}
}
