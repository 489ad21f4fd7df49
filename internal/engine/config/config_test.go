package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[log]
level = "debug"

[http]
port = 9090

[http.auth]
jwtSecret = "s3cret"

[database]
driver = "sqlite"

[database.sqlite]
path = "ats.db"

[storage]
provider = "minio"
endpoint = "127.0.0.1:9000"
bucket = "resumes"

[pipeline]
auditNotes = false

[intake]
strictPositions = true
`

func writeConf(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	c, err := LoadConfigFile(writeConf(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "stdout", c.Log.Output)
	assert.Equal(t, 9090, c.Http.Port)
	assert.Equal(t, "s3cret", c.Http.Auth.JWTSecret)
	assert.Equal(t, "sqlite", c.Database.Driver)
	assert.True(t, c.Database.AutoMigrate)
	assert.Equal(t, "minio", c.Storage.Provider)
	assert.False(t, c.Pipeline.AuditNotes)
	assert.True(t, c.Intake.StrictPositions)
	assert.Equal(t, 20, c.Intake.RateLimit)
}

func TestLoadConfigFile_EnvOverride(t *testing.T) {
	t.Setenv("ATS_PIPELINE_AUDITNOTES", "true")
	c, err := LoadConfigFile(writeConf(t, sample))
	require.NoError(t, err)
	assert.True(t, c.Pipeline.AuditNotes)
}

func TestLoadConfigFile_Missing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestProviders(t *testing.T) {
	c := &AppConfig{}
	assert.Equal(t, 8080, ProvideHttpConfig(c).Port)
	assert.Equal(t, 60, ProvideIntakeConfig(c).RateWindow)
	assert.Equal(t, "s3", ProvideStorageConfig(c).Provider)
}
