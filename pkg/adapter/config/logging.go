// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"
	"io"
	"log/slog"
)

// Logging contains the settings of the default slog logger.
type Logging struct {
	// Level is one of debug, info, warn, or error (case-insensitive).
	// The info level is used by default.
	Level string

	// Format is either text or json. The text format is the default.
	Format string

	level slog.Level `yaml:"-"`
}

// ValidateAndNormalize parses the logging level and checks the format.
func (l *Logging) ValidateAndNormalize() error {
	if l.Level == "" {
		l.Level = "info"
	}
	if err := l.level.UnmarshalText([]byte(l.Level)); err != nil {
		return fmt.Errorf("parsing level: %w", err)
	}
	switch l.Format {
	case "":
		l.Format = "text"
	case "text", "json":
	default:
		return fmt.Errorf("unsupported logging format: %q", l.Format)
	}
	return nil
}

// NewLogger creates a slog logger which writes to w based on the `l`
// settings. The ValidateAndNormalize must be called beforehand.
func (l Logging) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     l.level,
	}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
