/*
* Input file loading module
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
	"os"
	"path/filepath"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file is too large")
)

// ReadError reports an I/O failure while reading the input file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ReadInputFile validates the extension and size of fileName and reads it
// whole. Validation happens before any byte is read.
func ReadInputFile(fileName string, cfg *Config) ([]byte, error) {
	ext := filepath.Ext(fileName)
	if !cfg.IsExtensionAllowed(ext) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}

	fileStat, err := os.Stat(fileName)
	if err != nil {
		return nil, &ReadError{Path: fileName, Err: err}
	}
	if fileStat.IsDir() {
		return nil, &ReadError{Path: fileName, Err: errors.New("input file type is invalid: path is a directory")}
	}
	if fileStat.Size() > cfg.MaxFileSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, fileStat.Size(), cfg.MaxFileSize)
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, &ReadError{Path: fileName, Err: err}
	}
	return data, nil
}
