package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-arcade/ats/internal/app"
	"github.com/go-arcade/ats/internal/engine/config"
	"github.com/go-arcade/ats/pkg/database"
	"github.com/go-arcade/ats/pkg/log"
	"github.com/go-arcade/ats/pkg/safe"
	"github.com/go-arcade/ats/pkg/trace"
	"github.com/pkg/errors"
)

// InitAppFunc is the wire injector.
type InitAppFunc func(appConf *config.AppConfig) (*app.App, func(), error)

// Bootstrap loads config, initializes the logger and builds the App.
func Bootstrap(configFile string, initApp InitAppFunc) (*app.App, func(), error) {
	appConf, err := load(configFile)
	if err != nil {
		return nil, nil, err
	}

	a, cleanup, err := initApp(&appConf)
	if err != nil {
		return nil, nil, errors.Wrap(err, "build app")
	}
	return a, cleanup, nil
}

// Migrate creates or updates the schema and exits.
func Migrate(configFile string) error {
	appConf, err := load(configFile)
	if err != nil {
		return err
	}

	dbConf := config.ProvideDatabaseConfig(&appConf)
	manager, err := database.NewManager(dbConf)
	if err != nil {
		return errors.Wrap(err, "connect database")
	}
	defer func() { _ = manager.Close() }()

	if err := database.AutoMigrate(manager.Database()); err != nil {
		return errors.Wrap(err, "migrate")
	}
	log.Infow("database schema migrated", "driver", dbConf.Driver)
	return nil
}

func load(configFile string) (config.AppConfig, error) {
	appConf, err := config.LoadConfigFile(configFile)
	if err != nil {
		return appConf, err
	}
	if _, err := log.NewLog(&appConf.Log); err != nil {
		return appConf, err
	}
	if err := trace.Init(appConf.Trace); err != nil {
		return appConf, err
	}
	return appConf, nil
}

// Run starts the listeners and blocks until a shutdown signal arrives.
func Run(a *app.App, cleanup func()) {
	httpConf := config.ProvideHttpConfig(a.AppConf)

	if err := a.Metrics.Start(); err != nil {
		log.Errorw("metrics server failed to start", "error", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	safe.Go("http-listener", func() {
		addr := httpConf.Address()
		log.Infow("HTTP listener started", "address", addr)

		var err error
		if httpConf.TLS.CertFile != "" && httpConf.TLS.KeyFile != "" {
			err = a.HttpApp.ListenTLS(addr, httpConf.TLS.CertFile, httpConf.TLS.KeyFile)
		} else {
			err = a.HttpApp.Listen(addr)
		}
		if err != nil {
			log.Errorw("HTTP listener failed", "address", addr, "error", err)
			a.Lifecycle.Shutdown()
		}
	})

	select {
	case sig := <-quit:
		log.Infof("received signal: %v, shutting down gracefully...", sig)
		a.Lifecycle.Shutdown()
	case <-a.Lifecycle.Done():
		log.Info("listener stopped, shutting down...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(httpConf.ShutdownTimeout)*time.Second)
	defer shutdownCancel()

	if err := a.HttpApp.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("HTTP server shutdown error: %v", err)
	} else {
		log.Info("HTTP server shut down gracefully")
	}
	if err := a.Metrics.Stop(shutdownCtx); err != nil {
		log.Errorw("metrics server shutdown error", "error", err)
	}
	if err := trace.Shutdown(shutdownCtx); err != nil {
		log.Errorw("trace exporter shutdown error", "error", err)
	}

	if cleanup != nil {
		cleanup()
	}
	log.Info("server shutdown complete")
}
