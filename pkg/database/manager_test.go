package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement"`
	Name string
}

func TestDatabase_Validate(t *testing.T) {
	cfg := Database{}
	cfg.SetDefaults()
	assert.Equal(t, DriverMySQL, cfg.Driver)
	assert.Error(t, cfg.Validate())

	cfg.MySQL = MySQLConfig{Host: "127.0.0.1", User: "root", DBName: "ats"}
	assert.NoError(t, cfg.Validate())

	cfg.Driver = "oracle"
	assert.Error(t, cfg.Validate())
}

func TestBuildMySQLDSN(t *testing.T) {
	dsn := buildMySQLDSN("u", "p", "db", "3306", "ats")
	assert.Equal(t, "u:p@tcp(db:3306)/ats?charset=utf8mb4&parseTime=True&loc=UTC", dsn)

	_, err := buildDialectors([]DatabaseSourceConfig{{Host: "db"}})
	assert.Error(t, err)
}

func TestNewManager_SQLite(t *testing.T) {
	cfg := Database{Driver: DriverSQLite, SQLite: SQLiteConfig{Path: filepath.Join(t.TempDir(), "ats.db")}}
	m, err := NewManager(cfg)
	require.NoError(t, err)
	defer m.Close()

	RegisterModels(&widget{})
	require.NoError(t, AutoMigrate(m.Database()))

	assert.True(t, m.Database().Migrator().HasTable("t_widget"))
	require.NoError(t, WriteDB(m.Database()).Create(&widget{Name: "a"}).Error)

	var got widget
	require.NoError(t, ReadDB(m.Database()).First(&got).Error)
	assert.Equal(t, "a", got.Name)
}
