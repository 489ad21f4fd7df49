package database

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/go-arcade/ats/pkg/log"
	"github.com/go-arcade/ats/pkg/retry"
	"github.com/go-arcade/ats/pkg/trace"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
	"gorm.io/plugin/dbresolver"
)

type IDatabase interface {
	// Database returns the underlying *gorm.DB
	Database() *gorm.DB
}

type Manager interface {
	IDatabase

	// Close closes the underlying connection pool
	Close() error
}

type managerImpl struct {
	db *gorm.DB
}

func (m *managerImpl) Database() *gorm.DB {
	return m.db
}

func (m *managerImpl) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NewManagerWithDB wraps an already opened connection.
func NewManagerWithDB(db *gorm.DB) Manager {
	return &managerImpl{db: db}
}

func NewManager(cfg Database) (Manager, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case DriverSQLite:
		db, err = openGorm(sqlite.Open(cfg.SQLite.Path), cfg.OutPut)
	default:
		db, err = newMySQLConnection(cfg.MySQL, cfg)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB handle: %w", err)
	}
	if cfg.Driver == DriverSQLite {
		// sqlite serialises writers; a single connection avoids SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(GetConnMaxLifetime(cfg.MaxLifetime))
	sqlDB.SetConnMaxIdleTime(GetConnMaxIdleTime(cfg.MaxIdleTime))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectTimeout)*time.Second)
	defer cancel()
	err = retry.Do(ctx, sqlDB.PingContext,
		retry.WithMaxAttempts(cfg.ConnectRetries),
		retry.WithBackoff(500*time.Millisecond, 5*time.Second),
		retry.OnRetry(func(attempt int, err error) {
			log.Warnw("database ping failed, retrying", "driver", cfg.Driver, "attempt", attempt, "error", err)
		}),
	)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", cfg.Driver, err)
	}
	log.Infow("database connected", "driver", cfg.Driver)

	return &managerImpl{db: db}, nil
}

func openGorm(dialector gorm.Dialector, output bool) (*gorm.DB, error) {
	logConfig := gormlogger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  gormlogger.Warn,
		Colorful:                  false,
		IgnoreRecordNotFoundError: true,
		ParameterizedQueries:      true,
	}

	var gormLogger gormlogger.Interface
	if output {
		logConfig.LogLevel = gormlogger.Info
		gormLogger = NewGormLoggerAdapter(logConfig, gormlogger.Info)
	} else {
		gormLogger = NewGormLoggerAdapter(logConfig, gormlogger.Warn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   dataTablePrefix,
			SingularTable: true,
		},
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if err := db.Use(&trace.GormPlugin{WithQuery: output}); err != nil {
		return nil, fmt.Errorf("failed to register tracing plugin: %w", err)
	}
	return db, nil
}

func newMySQLConnection(mysqlCfg MySQLConfig, commonCfg Database) (*gorm.DB, error) {
	defaultDSN := buildMySQLDSN(mysqlCfg.User, mysqlCfg.Password, mysqlCfg.Host, mysqlCfg.Port, mysqlCfg.DBName)

	db, err := openGorm(mysql.Open(defaultDSN), commonCfg.OutPut)
	if err != nil {
		return nil, err
	}

	hasPrimary := len(mysqlCfg.Primary) > 0
	hasReplicas := len(mysqlCfg.Replicas) > 0
	if !hasPrimary && !hasReplicas {
		return db, nil
	}

	resolverConfig := dbresolver.Config{
		TraceResolverMode: commonCfg.OutPut,
	}
	if hasPrimary {
		primaryDialectors, err := buildDialectors(mysqlCfg.Primary)
		if err != nil {
			return nil, fmt.Errorf("failed to build primary dialectors: %w", err)
		}
		resolverConfig.Sources = primaryDialectors
	}
	if hasReplicas {
		replicasDialectors, err := buildDialectors(mysqlCfg.Replicas)
		if err != nil {
			return nil, fmt.Errorf("failed to build replicas dialectors: %w", err)
		}
		resolverConfig.Replicas = replicasDialectors
	}

	err = db.Use(dbresolver.Register(resolverConfig).
		SetConnMaxIdleTime(GetConnMaxIdleTime(commonCfg.MaxIdleTime)).
		SetConnMaxLifetime(GetConnMaxLifetime(commonCfg.MaxLifetime)).
		SetMaxIdleConns(commonCfg.MaxIdleConns).
		SetMaxOpenConns(commonCfg.MaxOpenConns))
	if err != nil {
		return nil, fmt.Errorf("failed to register DBResolver plugin: %w", err)
	}
	log.Info("read-write separation enabled for mysql")

	return db, nil
}
