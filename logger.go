/*
* Structured logging module
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
	"os"

	"github.com/rs/zerolog"
)

// Logger tags every entry with the component that produced it.
type Logger struct {
	logger zerolog.Logger
}

func NewLogger(writer io.Writer, level zerolog.Level) *Logger {
	return &Logger{logger: zerolog.New(writer).Level(level).With().Timestamp().Logger()}
}

// NewConsoleLogger writes human-readable logs to stderr, keeping stdout free
// for the headless report. levelName is one of zerolog's level names.
func NewConsoleLogger(levelName string) (*Logger, error) {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}
	return NewLogger(zerolog.ConsoleWriter{Out: os.Stderr}, level), nil
}

func (l *Logger) Info(component, message string, fields map[string]interface{}) {
	send(l.logger.Info(), component, message, fields)
}

// Error logs err together with what was being attempted when it happened.
func (l *Logger) Error(component, message string, err error, fields map[string]interface{}) {
	send(l.logger.Error().Err(err), component, message, fields)
}

func (l *Logger) Warning(component, message string, fields map[string]interface{}) {
	send(l.logger.Warn(), component, message, fields)
}

func (l *Logger) Debug(component, message string, fields map[string]interface{}) {
	send(l.logger.Debug(), component, message, fields)
}

func send(event *zerolog.Event, component, message string, fields map[string]interface{}) {
	event.Str("component", component).Fields(fields).Msg(message)
}
