/*
* Signature search test module
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
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/BurntSushi/rure-go"
)

type SignatureMap map[string]*rure.Regex

// containerPatterns identify headers of full-disk encryption containers.
var containerPatterns = map[string]string{
	"FreeBSD GELI": "(?i)(47454f4d3a3a454c49)",
	"BitLocker":    "(?i)(eb58902d4656452d46532d0002080000)",
	"LUKSv1":       "(?i)4c554b53babe0001",
	"LUKSv2":       "(?i)4c554b53babe0002",
	"FileVault v2": "(?i)41505342.{456}0800000000000000",
	"PGP WDE":      "(?i)(eb489050475047554152440000000000)",
}

// fileFormatPatterns are magic numbers of common structured formats. Plain or
// compressed data tends to contain them, random data almost never does.
var fileFormatPatterns = map[string]string{
	"7-Zip Compressed file":               "(?i)(377abcaf271c)",
	"Adobe Portable Document Format file": "(?i)(0d0a25504446|25504446)",
	"ELF executable":                      "(?i)(7f454c46)",
	"GZIP Archive file":                   "(?i)(1f8b08)",
	"JPEG image":                          "(?i)(ffd8ff)(ed|e2|e3|db|e0|e1)",
	"JPEG-LS image":                       "(?i)(ffd8fff7)",
	"JPEG2000 image files":                "(?i)(0000000c6a502020)",
	"Microsoft Office document":           "(?i)(d0cf11e0a1b11ae1)",
	"MPEG video file":                     "(?i)(000001b3)",
	"Ogg":                                 "(?i)(4f676753)",
	"PKZIP Archive file":                  "(?i)(504b)(0304|0506|0708)",
	"PNG image":                           "(?i)(89504e470d0a1a0a)",
	"RAR archive":                         "(?i)(52617221)",
	"RTF file":                            "(?i)(7b5c72746631)",
	"SQLite3 database":                    "(?i)(53514c69746520666f726d61742033)",
	"TIFF file":                           "(?i)(49492a00|4d4d002a)",
	"Windows/DOS executable file":         "(?i)(4d5a)(90|50)00",
	"XZ archive":                          "(?i)(fd377a585a00)",
	"ZStandard Archive":                   "(?i)(28b52ffd)",
}

var (
	compileSignaturesOnce sync.Once
	containerSignatures   SignatureMap
	fileFormatSignatures  SignatureMap
	compileSignaturesErr  error
)

func compileSignatureMap(patterns map[string]string) (SignatureMap, error) {
	signatures := make(SignatureMap, len(patterns))
	for name, pattern := range patterns {
		regex, err := rure.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern for %s: %w", name, err)
		}
		signatures[name] = regex
	}
	return signatures, nil
}

func getSignatures() (containers SignatureMap, formats SignatureMap, err error) {
	compileSignaturesOnce.Do(func() {
		containerSignatures, compileSignaturesErr = compileSignatureMap(containerPatterns)
		if compileSignaturesErr != nil {
			return
		}
		fileFormatSignatures, compileSignaturesErr = compileSignatureMap(fileFormatPatterns)
	})
	return containerSignatures, fileFormatSignatures, compileSignaturesErr
}

// FindBytesPattern counts non-overlapping matches of regex in hex-encoded
// data that start on a byte boundary. After a match on an odd nibble the
// search resumes one nibble later, so it cannot hide an aligned match that
// overlaps it.
func FindBytesPattern(hexData string, regex *rure.Regex) int {
	var found int
	for pos := 0; pos < len(hexData); {
		start, end, ok := regex.Find(hexData[pos:])
		if !ok {
			break
		}
		start, end = pos+start, pos+end
		if start%2 != 0 {
			pos = start + 1
			continue
		}
		found++
		pos = max(end, start+1)
	}
	return found
}

func scanSignatures(data []byte, blockSize int, signatures SignatureMap) (map[string]int, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindowSize, blockSize)
	}

	found := make(map[string]int, len(signatures))
	for name := range signatures {
		found[name] = 0
	}
	for offset := 0; offset < len(data); offset += blockSize {
		hexData := hex.EncodeToString(data[offset:min(offset+blockSize, len(data))])
		for name, regex := range signatures {
			found[name] += FindBytesPattern(hexData, regex)
		}
	}
	return found, nil
}

// ContainerSignatures counts encryption container headers found in data.
func ContainerSignatures(data []byte, blockSize int) (map[string]int, error) {
	containers, _, err := getSignatures()
	if err != nil {
		return nil, err
	}
	return scanSignatures(data, blockSize, containers)
}

// SignatureDensity returns the number of known file format signatures per
// MiB of data.
func SignatureDensity(data []byte, blockSize int) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	_, formats, err := getSignatures()
	if err != nil {
		return 0, err
	}
	found, err := scanSignatures(data, blockSize, formats)
	if err != nil {
		return 0, err
	}

	var total int
	for _, count := range found {
		total += count
	}
	return float64(total) / (float64(len(data)) / 1048576.0), nil
}

func foundSignaturesTotalToReadable(foundSignaturesTotal map[string]int) string {
	var parts []string
	for _, key := range slices.Sorted(maps.Keys(foundSignaturesTotal)) {
		if value := foundSignaturesTotal[key]; value > 0 {
			parts = append(parts, fmt.Sprintf("%s - %d", key, value))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
