// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package assetsuc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/orbitechz/GPC-Backend/pkg/core/cerr"
	"github.com/orbitechz/GPC-Backend/pkg/core/log"
	"github.com/orbitechz/GPC-Backend/pkg/core/model"
)

// ImportRow is one asset row which is read by a sheet adapter.
// Line is the one-based line number in the source sheet. If the sheet
// adapter could not parse the row, Err describes the parsing problem
// and Asset is nil.
type ImportRow struct {
	Line  int
	Asset *model.Asset
	Err   error
}

// ImportFailure reports why a row could not be imported.
type ImportFailure struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportSummary reports the result of an Import call.
type ImportSummary struct {
	Created  int             `json:"created"`
	Failures []ImportFailure `json:"failures"`
}

// Import creates the rows assets one by one. Each asset is validated
// and saved independently (see Create), so a failing row does not
// prevent other rows from being imported.
// Validation and parsing failures are collected in the summary, while
// other (store) errors abort the import and are returned.
func (assets *UseCase) Import(
	ctx context.Context, rows []ImportRow,
) (*ImportSummary, error) {
	s := &ImportSummary{Failures: []ImportFailure{}}
	for _, r := range rows {
		if r.Err != nil {
			s.Failures = append(s.Failures, ImportFailure{
				Line: r.Line, Message: r.Err.Error(),
			})
			continue
		}
		_, err := assets.Create(ctx, r.Asset)
		var ve cerr.ValidationError
		switch {
		case err == nil:
			s.Created++
		case errors.As(err, &ve):
			s.Failures = append(s.Failures, ImportFailure{
				Line: r.Line, Message: string(ve),
			})
		default:
			return s, err
		}
	}
	log.Info(ctx, "assets are imported",
		slog.Int("created", s.Created),
		slog.Int("failed", len(s.Failures)),
	)
	return s, nil
}
