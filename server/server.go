/*
 *     Copyright 2024 The Orderstat Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package server assembles the median HTTP service.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	logger "github.com/orderstat/medianset/internal/mslog"
	"github.com/orderstat/medianset/server/config"
	"github.com/orderstat/medianset/server/router"
	"github.com/orderstat/medianset/server/service"
)

type Server struct {
	config     *config.Config
	httpServer *http.Server
}

func New(cfg *config.Config) *Server {
	svc := service.New()

	return &Server{
		config: cfg,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.IP, cfg.Server.Port),
			Handler: router.Init(cfg, svc),
		},
	}
}

// Serve blocks until the listener fails or Stop is called.
func (s *Server) Serve() error {
	logger.Infof("http server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	logger.Info("http server stopping")
	return s.httpServer.Shutdown(ctx)
}
