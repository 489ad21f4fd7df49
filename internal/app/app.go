// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package app

import (
	"github.com/go-arcade/ats/internal/engine/config"
	"github.com/go-arcade/ats/internal/engine/router"
	"github.com/go-arcade/ats/pkg/database"
	"github.com/go-arcade/ats/pkg/log"
	"github.com/go-arcade/ats/pkg/metrics"
	"github.com/go-arcade/ats/pkg/shutdown"
	"github.com/gofiber/fiber/v2"
)

type App struct {
	HttpApp   *fiber.App
	Metrics   *metrics.Server
	Lifecycle *shutdown.Manager
	AppConf   *config.AppConfig
}

func NewApp(
	rt *router.Router,
	manager database.Manager,
	metricsServer *metrics.Server,
	lifecycle *shutdown.Manager,
	appConf *config.AppConfig,
) (*App, func(), error) {
	if appConf.Database.AutoMigrate {
		if err := database.AutoMigrate(manager.Database()); err != nil {
			return nil, nil, err
		}
		log.Info("database schema migrated")
	}

	cleanup := func() {
		log.Info("closing database connections...")
		if err := manager.Close(); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}

	return &App{
		HttpApp:   rt.Router(),
		Metrics:   metricsServer,
		Lifecycle: lifecycle,
		AppConf:   appConf,
	}, cleanup, nil
}
