package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "pamps", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.False(t, cfg.TracingEnabled)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PORT", "9999")
	t.Setenv("DB_NAME", "pamps_test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "pamps_test", cfg.DBName)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "Valid development config",
			config: Config{Port: "8000", JWTSecret: "dev-secret", Env: "development"},
		},
		{
			name:    "Missing port",
			config:  Config{JWTSecret: "dev-secret"},
			wantErr: true,
		},
		{
			name:    "Missing JWT secret",
			config:  Config{Port: "8000"},
			wantErr: true,
		},
		{
			name: "Production with default JWT secret",
			config: Config{
				Port:      "8000",
				JWTSecret: "your-secret-key-change-in-production",
				Env:       "production",
			},
			wantErr: true,
		},
		{
			name: "Production with short JWT secret",
			config: Config{
				Port:       "8000",
				JWTSecret:  "short",
				DBPassword: "strongpassword42",
				Env:        "production",
			},
			wantErr: true,
		},
		{
			name: "Production with default DB password",
			config: Config{
				Port:       "8000",
				JWTSecret:  "a-very-long-production-secret-value-1234",
				DBPassword: "postgres",
				Env:        "production",
			},
			wantErr: true,
		},
		{
			name: "Valid production config",
			config: Config{
				Port:       "8000",
				JWTSecret:  "a-very-long-production-secret-value-1234",
				DBPassword: "strongpassword42",
				DBSSLMode:  "require",
				Env:        "production",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
