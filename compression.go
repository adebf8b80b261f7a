/*
* Compression ratio test module
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
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// byteCounter is an io.Writer that only counts what passes through it.
type byteCounter struct {
	n int64
}

func (c *byteCounter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}

type compressor struct {
	name      string
	newWriter func(w io.Writer) (io.WriteCloser, error)
}

var compressors = []compressor{
	{"gzip", func(w io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(w), nil }},
	{"zstd", func(w io.Writer) (io.WriteCloser, error) { return zstd.NewWriter(w) }},
	{"lz4", func(w io.Writer) (io.WriteCloser, error) { return lz4.NewWriter(w), nil }},
	{"brotli", func(w io.Writer) (io.WriteCloser, error) { return brotli.NewWriter(w), nil }},
}

func compressedSize(data []byte, c compressor) (int64, error) {
	counter := &byteCounter{}
	writer, err := c.newWriter(counter)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", c.name, err)
	}
	if _, err := writer.Write(data); err != nil {
		return 0, fmt.Errorf("%s: %w", c.name, err)
	}
	if err := writer.Close(); err != nil {
		return 0, fmt.Errorf("%s: %w", c.name, err)
	}
	return counter.n, nil
}

// CompressionRatios returns original/compressed size for every compressor.
func CompressionRatios(data []byte) (map[string]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	ratios := make(map[string]float64, len(compressors))
	for _, c := range compressors {
		size, err := compressedSize(data, c)
		if err != nil {
			return nil, err
		}
		ratios[c.name] = float64(len(data)) / float64(size)
	}
	return ratios, nil
}

// CompressionTest averages the ratios of all compressors. Values close to or
// below 1 mean the data did not compress.
func CompressionTest(data []byte) (float64, error) {
	ratios, err := CompressionRatios(data)
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, ratio := range ratios {
		sum += ratio
	}
	return sum / float64(len(ratios)), nil
}
