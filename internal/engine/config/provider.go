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

package config

import (
	"github.com/go-arcade/ats/internal/pkg/storage"
	"github.com/go-arcade/ats/pkg/cache"
	"github.com/go-arcade/ats/pkg/database"
	"github.com/go-arcade/ats/pkg/http"
	"github.com/go-arcade/ats/pkg/log"
	"github.com/go-arcade/ats/pkg/metrics"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	ProvideHttpConfig,
	ProvideLogConfig,
	ProvideDatabaseConfig,
	ProvideRedisConfig,
	ProvideStorageConfig,
	ProvidePipelineConfig,
	ProvideIntakeConfig,
	ProvideMetricsConfig,
)

func ProvideHttpConfig(appConf *AppConfig) *http.Http {
	httpConfig := &appConf.Http
	httpConfig.SetDefaults()
	return httpConfig
}

func ProvideLogConfig(appConf *AppConfig) *log.Conf {
	return &appConf.Log
}

func ProvideDatabaseConfig(appConf *AppConfig) database.Database {
	dbConfig := appConf.Database
	dbConfig.SetDefaults()
	return dbConfig
}

func ProvideRedisConfig(appConf *AppConfig) cache.Redis {
	redisConfig := appConf.Redis
	redisConfig.SetDefaults()
	return redisConfig
}

func ProvideStorageConfig(appConf *AppConfig) *storage.Storage {
	storageConfig := &appConf.Storage
	storageConfig.SetDefaults()
	return storageConfig
}

func ProvidePipelineConfig(appConf *AppConfig) PipelineConfig {
	return appConf.Pipeline
}

func ProvideIntakeConfig(appConf *AppConfig) IntakeConfig {
	intakeConfig := appConf.Intake
	intakeConfig.SetDefaults()
	return intakeConfig
}

func ProvideMetricsConfig(appConf *AppConfig) metrics.MetricsConfig {
	metricsConfig := appConf.Metrics
	metricsConfig.SetDefaults()
	return metricsConfig
}
