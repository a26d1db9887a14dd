package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("DATABASE_URL", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "1", cfg.App.UserID)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Error(t, cfg.ValidateBot())
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("FITNESS_TEST_TOKEN", "abc:123")
	path := writeConfig(t, `
app:
  name: gym
telegram:
  bot_token: ${FITNESS_TEST_TOKEN}
  admin_ids: "1, 2,x"
http:
  addr: ":9090"
session:
  ttl: 30m
logging:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gym", cfg.App.Name)
	assert.Equal(t, "abc:123", cfg.Telegram.BotToken)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// не заданные в файле поля остаются по умолчанию
	assert.Equal(t, 60, cfg.Telegram.Timeout)
	assert.NoError(t, cfg.ValidateBot())
	assert.Equal(t, []int64{1, 2}, ParseAdminIDs(cfg.Telegram.AdminIDs))
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "from-env")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	path := writeConfig(t, "telegram:\n  bot_token: from-file\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Telegram.BotToken)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "app: [unclosed")
	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	assert.Equal(t, "configs/config.yaml", Path())
	t.Setenv("CONFIG_PATH", "/etc/fitness.yaml")
	assert.Equal(t, "/etc/fitness.yaml", Path())
}

func TestParseAdminIDsEmpty(t *testing.T) {
	assert.Empty(t, ParseAdminIDs(""))
}
