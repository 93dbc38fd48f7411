package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_FILE", filepath.Join(dir, "missing.toml"))
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "reviewhub", cfg.App.Name)
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, 1440, cfg.Auth.JWTExpireMinute)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTPAddr())
	assert.False(t, cfg.Seed.Enabled)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.toml", `
[app]
port = 9090

[auth]
jwt_secret = "from-file"
bcrypt_cost = 6

[database]
driver = "sqlite"

[sqlite]
path = "/tmp/file.db"

[seed]
enabled = true
`)
	t.Setenv("CONFIG_FILE", configPath)
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("JWT_EXPIRE_MINUTE", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, 0, cfg.Auth.JWTExpireMinute)
	assert.Equal(t, 6, cfg.Auth.BcryptCost)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/file.db", cfg.SQLite.Path)
	assert.True(t, cfg.Seed.Enabled)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, "test.env", "DB_DRIVER=POSTGRES\nPOSTGRES_PORT=6543\n")
	t.Setenv("CONFIG_FILE", filepath.Join(dir, "missing.toml"))
	t.Setenv("ENV_FILE", envPath)
	t.Cleanup(func() {
		os.Unsetenv("DB_DRIVER")
		os.Unsetenv("POSTGRES_PORT")
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 6543, cfg.Postgres.Port)
	assert.Contains(t, cfg.PostgresDSN(), "port=6543")
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_FILE", writeFile(t, dir, "bad.toml", "[app\nport = "))
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty secret", mutate: func(c *Config) { c.Auth.JWTSecret = "  " }, wantErr: true},
		{name: "negative expiry", mutate: func(c *Config) { c.Auth.JWTExpireMinute = -1 }, wantErr: true},
		{name: "cost too low", mutate: func(c *Config) { c.Auth.BcryptCost = 3 }, wantErr: true},
		{name: "cost too high", mutate: func(c *Config) { c.Auth.BcryptCost = 15 }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "oracle" }, wantErr: true},
		{name: "no expiry", mutate: func(c *Config) { c.Auth.JWTExpireMinute = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMySQLDSN(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, "root:@tcp(127.0.0.1:3306)/reviewhub?parseTime=true&loc=UTC&charset=utf8mb4", cfg.MySQLDSN())
}
