// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/orbitechz/GPC-Backend/pkg/core/log"
	"github.com/stretchr/testify/assert"
)

func TestInfoWritesAttrsAndCaller(t *testing.T) {
	buf := &bytes.Buffer{}
	old := slog.Default()
	defer slog.SetDefault(old)
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		AddSource: true,
	})))

	log.Info(context.Background(), "saved",
		log.ID("asset", 7), log.ID("movement", 0), log.Err("err", nil),
	)
	out := buf.String()
	assert.Contains(t, out, "msg=saved")
	assert.Contains(t, out, "asset=7")
	assert.Contains(t, out, "movement=unassigned")
	assert.Contains(t, out, "err=no-error")
	assert.Contains(t, out, "log_test.go")

	buf.Reset()
	log.Debug(context.Background(), "hidden")
	assert.Empty(t, buf.String())

	log.Warn(context.Background(), "failed", log.Err("err", errors.New("boom")))
	assert.Contains(t, buf.String(), "err=boom")
}
