// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"github.com/orbitechz/GPC-Backend/pkg/adapter/config/settings"
	"github.com/orbitechz/GPC-Backend/pkg/adapter/restful/gin"
)

// Gin contains the gin-gonic related configuration settings.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized.
type Gin struct {
	Logger   *bool // Whether to register the access log middleware
	Recovery *bool // Whether to register the gin.Recovery() middleware
	Metrics  *bool // Whether to collect and serve prometheus metrics
}

func (g *Gin) normalize() {
	t := true
	settings.Nil2Zero(&g.Logger)
	settings.Nil2Zero(&g.Recovery)
	settings.OverwriteNil(&g.Metrics, &t)
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings. The request id middleware is always registered.
// If metrics are enabled, a Metrics instance is returned too and its
// /metrics endpoint is registered. Otherwise, the returned Metrics
// is nil.
func (g Gin) NewEngine() (*gin.Engine, *gin.Metrics) {
	middlewares := make([]gin.HandlerFunc, 0, 4)
	middlewares = append(middlewares, gin.RequestID())
	if g.Logger != nil && *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if g.Recovery != nil && *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	var m *gin.Metrics
	if g.Metrics != nil && *g.Metrics {
		m = gin.NewMetrics()
		middlewares = append(middlewares, m.Middleware())
	}
	e := gin.New(middlewares...)
	gin.RegisterHealth(e)
	if m != nil {
		m.Register(e)
	}
	return e, m
}
