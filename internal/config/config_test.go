package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimeSlotService/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
user = "booking"
password = "secret"
dbname = "timeslots"
`)

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3, cfg.Database.MaxTxRetries)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.UserService.Enabled)
	assert.Equal(t, "host='localhost' port=5432 user='booking' password='secret' dbname='timeslots' sslmode='disable'", cfg.Database.DSN())
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
port = 6432
user = "u"
dbname = "d"

[logs]
level = "debug"

[metrics]
enabled = false

[user_service]
enabled = true
url = "http://users:8080"
timeout = 2
`)

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.UserService.Enabled)
	assert.Equal(t, "http://users:8080", cfg.UserService.URL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing dbname", content: "[database]\nuser = \"u\"\n"},
		{name: "bad port", content: "[server]\nhttp_port = 70000\n[database]\nuser = \"u\"\ndbname = \"d\"\n"},
		{name: "user service without url", content: "[database]\nuser = \"u\"\ndbname = \"d\"\n[user_service]\nenabled = true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	_, err := config.Load(writeConfig(t, "[server\n"))
	require.ErrorIs(t, err, config.ErrReadConfig)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, config.ErrReadConfig)
}

func TestPath(t *testing.T) {
	t.Setenv(config.PathEnv, "")
	assert.Equal(t, config.DefaultPath, config.Path())

	t.Setenv(config.PathEnv, "/etc/timeslots.toml")
	assert.Equal(t, "/etc/timeslots.toml", config.Path())
}

func TestDSN_EscapesSpecialCharacters(t *testing.T) {
	db := config.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "booking",
		Password: `p w'x\y`,
		DBName:   "timeslots",
		SSLMode:  "disable",
	}

	dsn := db.DSN()

	assert.Equal(t, `host='localhost' port=5432 user='booking' password='p w\'x\\y' dbname='timeslots' sslmode='disable'`, dsn)
	_, err := pq.NewConnector(dsn)
	require.NoError(t, err)
}
