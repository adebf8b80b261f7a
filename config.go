/*
* Configuration module
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
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultMaxFileSize = 50 * 1024 * 1024

type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Config struct {
	WindowSize        int        `yaml:"window_size"`
	MaxFileSize       int64      `yaml:"max_file_size"`
	AllowedExtensions []string   `yaml:"allowed_extensions"`
	BlockSize         int        `yaml:"block_size"`
	LogLevel          string     `yaml:"log_level"`
	Plot              PlotConfig `yaml:"plot"`
}

func DefaultConfig() *Config {
	return &Config{
		WindowSize:        DefaultWindowSize,
		MaxFileSize:       defaultMaxFileSize,
		AllowedExtensions: []string{".txt", ".bin", ".dat", ".jpg", ".png"},
		BlockSize:         65536,
		LogLevel:          "info",
		Plot:              PlotConfig{Width: 1000, Height: 500},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig, so keys missing from
// the file keep their default values.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	var errs []error
	if cfg.WindowSize <= 0 {
		errs = append(errs, fmt.Errorf("window_size must be positive, got %d", cfg.WindowSize))
	}
	if cfg.MaxFileSize <= 0 {
		errs = append(errs, fmt.Errorf("max_file_size must be positive, got %d", cfg.MaxFileSize))
	}
	if cfg.BlockSize <= 0 {
		errs = append(errs, fmt.Errorf("block_size must be positive, got %d", cfg.BlockSize))
	}
	if len(cfg.AllowedExtensions) == 0 {
		errs = append(errs, errors.New("allowed_extensions must not be empty"))
	}
	if cfg.Plot.Width <= 0 || cfg.Plot.Height <= 0 {
		errs = append(errs, fmt.Errorf("plot size must be positive, got %dx%d", cfg.Plot.Width, cfg.Plot.Height))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// IsExtensionAllowed reports whether ext (with leading dot) is allow-listed,
// ignoring case.
func (cfg *Config) IsExtensionAllowed(ext string) bool {
	for _, allowed := range cfg.AllowedExtensions {
		if strings.EqualFold(allowed, ext) {
			return true
		}
	}
	return false
}
