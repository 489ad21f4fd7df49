package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/go-arcade/ats/internal/pkg/storage"
	"github.com/go-arcade/ats/pkg/cache"
	"github.com/go-arcade/ats/pkg/database"
	"github.com/go-arcade/ats/pkg/http"
	"github.com/go-arcade/ats/pkg/log"
	"github.com/go-arcade/ats/pkg/metrics"
	"github.com/go-arcade/ats/pkg/trace"
	"github.com/spf13/viper"
)

// PipelineConfig controls side effects of pipeline operations.
type PipelineConfig struct {
	// AuditNotes appends a system note on intake and on every status change.
	AuditNotes bool
}

type IntakeConfig struct {
	StrictPositions bool
	RateLimit       int // requests per window per client ip, 0 disables
	RateWindow      int // seconds
}

func (i *IntakeConfig) SetDefaults() {
	if i.RateWindow <= 0 {
		i.RateWindow = 60
	}
}

type AppConfig struct {
	Log      log.Conf
	Http     http.Http
	Database database.Database
	Redis    cache.Redis
	Storage  storage.Storage
	Pipeline PipelineConfig
	Intake   IntakeConfig
	Metrics  metrics.MetricsConfig
	Trace    trace.Config
}

var (
	cfg  AppConfig
	mu   sync.RWMutex
	once sync.Once
)

func NewConf(confPath string) AppConfig {
	once.Do(func() {
		c, err := LoadConfigFile(confPath)
		if err != nil {
			panic(fmt.Sprintf("load config file error: %s", err))
		}
		mu.Lock()
		cfg = c
		mu.Unlock()
	})
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

func setDefaults(v *viper.Viper) {
	d := log.SetDefaults()
	v.SetDefault("log.output", d.Output)
	v.SetDefault("log.path", d.Path)
	v.SetDefault("log.filename", d.Filename)
	v.SetDefault("log.level", d.Level)
	v.SetDefault("log.keepHours", d.KeepHours)
	v.SetDefault("log.rotateSize", d.RotateSize)
	v.SetDefault("log.rotateNum", d.RotateNum)

	v.SetDefault("database.autoMigrate", true)
	v.SetDefault("pipeline.auditNotes", true)
	v.SetDefault("intake.rateLimit", 20)
	v.SetDefault("intake.rateWindow", 60)
}

// LoadConfigFile reads a TOML file. Environment variables such as
// ATS_HTTP_PORT override file values.
func LoadConfigFile(confPath string) (AppConfig, error) {
	var c AppConfig

	config := viper.New()
	config.SetConfigFile(confPath)
	config.SetConfigType("toml")
	config.SetEnvPrefix("ats")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()
	setDefaults(config)

	if err := config.ReadInConfig(); err != nil {
		return c, fmt.Errorf("failed to read configuration file: %w", err)
	}
	if err := config.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("failed to unmarshal configuration file: %w", err)
	}

	config.OnConfigChange(func(e fsnotify.Event) {
		var next AppConfig
		if err := config.Unmarshal(&next); err != nil {
			log.Warnw("failed to reload configuration", "path", e.Name, "error", err)
			return
		}
		mu.Lock()
		cfg = next
		mu.Unlock()
		log.Infow("configuration changed, restart to apply listener and storage settings", "path", e.Name)
	})
	config.WatchConfig()

	log.Infow("config file loaded", "path", confPath)
	return c, nil
}
