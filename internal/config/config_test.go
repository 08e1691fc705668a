package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "todo.db", cfg.Database.Filename)
	assert.Equal(t, 10*time.Second, cfg.GetQueryTimeout())
	assert.Equal(t, 5*time.Second, cfg.GetWriteTimeout())
	assert.Equal(t, 500, cfg.Validation.TitleMaxLength)
	assert.Equal(t, Production, cfg.Application.Environment)
	assert.Equal(t, "json", cfg.Commands.OutputDefaultFormat)
	assert.True(t, cfg.Display.RelativeTime)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_GetDatabasePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = "/var/lib/todo"
	cfg.Database.Filename = "tasks.db"

	assert.Equal(t, "/var/lib/todo/tasks.db", cfg.GetDatabasePath())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("TODO_DB_DIR", "/tmp/todo-test")
	t.Setenv("TODO_DB_FILENAME", "custom.db")
	t.Setenv("TODO_DB_QUERY_TIMEOUT", "3s")
	t.Setenv("TODO_DB_DIR_PERMISSIONS", "700")
	t.Setenv("TODO_VALIDATION_TITLE_MAX", "80")
	t.Setenv("TODO_DISPLAY_RELATIVE_TIME", "false")
	t.Setenv("TODO_ENV", "testing")
	t.Setenv("TODO_APP_VERBOSE", "true")
	t.Setenv("TODO_OUTPUT_DEFAULT_FORMAT", "yaml")
	t.Setenv("TODO_LOG_FORMAT", "json")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/todo-test", cfg.Database.Dir)
	assert.Equal(t, "custom.db", cfg.Database.Filename)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, uint32(0700), cfg.Database.DirPermissions)
	assert.Equal(t, 80, cfg.Validation.TitleMaxLength)
	assert.False(t, cfg.Display.RelativeTime)
	assert.Equal(t, Testing, cfg.Application.Environment)
	assert.True(t, cfg.Application.Verbose)
	assert.Equal(t, "yaml", cfg.Commands.OutputDefaultFormat)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestConfig_LoadFromEnvironment_IgnoresUnparseableValues(t *testing.T) {
	t.Setenv("TODO_DB_WRITE_TIMEOUT", "soon")
	t.Setenv("TODO_VALIDATION_TITLE_MAX", "many")
	t.Setenv("TODO_APP_VERBOSE", "perhaps")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, 5*time.Second, cfg.Database.WriteTimeout)
	assert.Equal(t, 500, cfg.Validation.TitleMaxLength)
	assert.False(t, cfg.Application.Verbose)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"empty db dir", func(c *Config) { c.Database.Dir = "" }, "database.dir"},
		{"empty db filename", func(c *Config) { c.Database.Filename = "" }, "database.filename"},
		{"zero query timeout", func(c *Config) { c.Database.QueryTimeout = 0 }, "database.query_timeout"},
		{"zero write timeout", func(c *Config) { c.Database.WriteTimeout = 0 }, "database.write_timeout"},
		{"empty time format", func(c *Config) { c.Time.DisplayFormat = "" }, "time.display_format"},
		{"zero title max", func(c *Config) { c.Validation.TitleMaxLength = 0 }, "validation.title_max_length"},
		{"zero app timeout", func(c *Config) { c.Application.Timeout = 0 }, "application.timeout"},
		{"unknown output format", func(c *Config) { c.Commands.OutputDefaultFormat = "xml" }, "commands.output_default_format"},
		{"unknown log format", func(c *Config) { c.Logging.Format = "logfmt" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestParseEnvironment(t *testing.T) {
	assert.Equal(t, Development, ParseEnvironment("development"))
	assert.Equal(t, Testing, ParseEnvironment("testing"))
	assert.Equal(t, Production, ParseEnvironment("production"))
	assert.Equal(t, Production, ParseEnvironment("staging"))
}

func TestParseWithFallback(t *testing.T) {
	assert.Equal(t, 2*time.Minute, ParseDurationWithFallback("2m", time.Second))
	assert.Equal(t, time.Second, ParseDurationWithFallback("x", time.Second))
	assert.Equal(t, 7, ParseIntWithFallback("7", 1))
	assert.Equal(t, 1, ParseIntWithFallback("seven", 1))
	assert.True(t, ParseBoolWithFallback("1", false))
	assert.True(t, ParseBoolWithFallback("nah", true))
	assert.Equal(t, uint32(0750), ParseUint32WithFallback("750", 8, 0))
	assert.Equal(t, uint32(1), ParseUint32WithFallback("9", 8, 1))
}
