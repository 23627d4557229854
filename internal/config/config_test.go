package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectConfigPath(t *testing.T) string {
	t.Helper()

	// Get the project root by going up from internal/config
	projectRoot, err := filepath.Abs("../../")
	require.NoError(t, err, "failed to get project root")

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(projectConfigPath(t))
	require.NoError(t, err)

	assert.Equal(t, "uefisettings", cfg.Title)
	assert.Equal(t, "sqlite", cfg.DB.GormEngine)
	assert.NotEmpty(t, cfg.DB.Name)
	assert.Equal(t, 8080, cfg.Webserver.Port)
	assert.Equal(t, 5, cfg.Webserver.ShutDownTime)

	// Log section
	assert.Equal(t, "info", cfg.Log.LogLevel)
	assert.True(t, cfg.Log.Console.Enabled)
	assert.Equal(t, "access.log", cfg.Log.File.AccessLog)
	assert.Equal(t, 10, cfg.Log.File.ErrorMaxSize)
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir())
	require.Error(t, err)
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	jsonOverride := `{"Title":"Test Override","Webserver":{"Port":9090},"DB":{"GormEngine":"mysql","Name":"ocsweb"}}`
	t.Setenv(EnvConfigJSON, jsonOverride)

	cfg, err := ReadConfig(projectConfigPath(t))
	require.NoError(t, err)

	assert.Equal(t, "Test Override", cfg.Title)
	assert.Equal(t, 9090, cfg.Webserver.Port)
	assert.Equal(t, "mysql", cfg.DB.GormEngine)
	assert.Equal(t, "ocsweb", cfg.DB.Name)
	// untouched keys keep the file value
	assert.Equal(t, "uefisettings", cfg.Log.AppName)
}

func TestReadConfigWithInvalidJSONOverride(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Title":`)

	_, err := ReadConfig(projectConfigPath(t))
	require.Error(t, err)
}

func TestReadConfigWithEnvOverride(t *testing.T) {
	t.Setenv("UEFISETTINGS_DB_HOST", "db.example.com")
	t.Setenv("UEFISETTINGS_WEBSERVER_PORT", "8181")

	cfg, err := ReadConfig(projectConfigPath(t))
	require.NoError(t, err)

	assert.Equal(t, "db.example.com", cfg.DB.Host)
	assert.Equal(t, 8181, cfg.Webserver.Port)
}

func TestReadConfigFromTempDir(t *testing.T) {
	dir := t.TempDir()
	content := `
Title = "temp"

[DB]
GormEngine = "postgres"
Name = "inventory"
Host = "localhost"
Port = 5432

[Webserver]
Port = 8000
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.toml"), []byte(content), 0o600))

	cfg, err := ReadConfig(dir + string(filepath.Separator))
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DB.GormEngine)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 5, cfg.Webserver.ShutDownTime, "default shutdown time")
}

func TestConfigValidation(t *testing.T) {
	validDB := DB{GormEngine: "sqlite", Name: ":memory:"}

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				DB:        validDB,
				Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
			},
		},
		{
			name: "url is optional",
			config: Config{
				DB:        validDB,
				Webserver: Webserver{Port: 8080},
			},
		},
		{
			name: "missing port",
			config: Config{
				DB:        validDB,
				Webserver: Webserver{URL: "http://localhost:8080"},
			},
		},
		{
			name: "port out of range",
			config: Config{
				DB:        validDB,
				Webserver: Webserver{Port: 70000},
			},
			wantErr: true,
		},
		{
			name: "invalid url",
			config: Config{
				DB:        validDB,
				Webserver: Webserver{Port: 8080, URL: "not a url"},
			},
			wantErr: true,
		},
		{
			name: "unknown engine",
			config: Config{
				DB:        DB{GormEngine: "oracle", Name: "x"},
				Webserver: Webserver{Port: 8080},
			},
			wantErr: true,
		},
		{
			name: "missing database name",
			config: Config{
				DB:        DB{GormEngine: "mysql"},
				Webserver: Webserver{Port: 8080},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidField)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		DB:      DB{GormEngine: "sqlite", Name: ":memory:"},
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	tomlStr, err := DumpConfig(&cfg)
	require.NoError(t, err)
	assert.True(t, strings.Contains(tomlStr, "Test"), "DumpConfig() output should contain Title")

	jsonStr, err := DumpConfigJSON(&cfg)
	require.NoError(t, err)
	assert.Contains(t, jsonStr, `"GormEngine": "sqlite"`)
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{DB: DB{GormEngine: "sqlite", Name: ":memory:"}}

	require.NoError(t, validate(&cfg))
	assert.Equal(t, 8080, cfg.Webserver.Port)
	assert.Equal(t, 5, cfg.Webserver.ShutDownTime)
}
