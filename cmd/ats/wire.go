//go:build wireinject
// +build wireinject

package main

import (
	"github.com/go-arcade/ats/internal/app"
	"github.com/go-arcade/ats/internal/engine/config"
	"github.com/go-arcade/ats/internal/engine/repo"
	"github.com/go-arcade/ats/internal/engine/router"
	"github.com/go-arcade/ats/internal/engine/service"
	"github.com/go-arcade/ats/internal/pkg/storage"
	"github.com/go-arcade/ats/pkg/cache"
	"github.com/go-arcade/ats/pkg/database"
	"github.com/go-arcade/ats/pkg/metrics"
	"github.com/go-arcade/ats/pkg/shutdown"
	"github.com/google/wire"
)

func initApp(appConf *config.AppConfig) (*app.App, func(), error) {
	panic(wire.Build(
		// 配置层
		config.ProviderSet,
		// 基础设施
		database.ProviderSet,
		cache.ProviderSet,
		storage.ProviderSet,
		metrics.ProviderSet,
		shutdown.ProviderSet,
		// 仓储层
		repo.ProviderSet,
		// 服务层
		service.ProviderSet,
		// 路由层
		router.ProviderSet,
		// 应用层
		app.NewApp,
	))
}
