package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var managedEnv = []string{
	"DEALER_APP_NAME",
	"DEALER_APP_ENV",
	"DEALER_APP_PORT",
	"DEALER_DATABASE_HOST",
	"DEALER_DATABASE_PORT",
	"DEALER_DATABASE_PASSWORD",
	"DEALER_DATABASE_SSLMODE",
	"DEALER_DATABASE_MAX_OPEN_CONNS",
	"DEALER_DATABASE_MAX_IDLE_CONNS",
	"DEALER_JWT_SECRET",
	"DEALER_JWT_EXPIRATION",
	"DEALER_COOKIE_SECURE",
	"DEALER_COOKIE_SAME_SITE",
	"DEALER_HTTP_CORS_ALLOW_ORIGINS",
	"DEALER_BOOTSTRAP_ADMIN_EMAIL",
	"DEALER_BOOTSTRAP_ADMIN_PASSWORD",
	"DEALER_SECURITY_BCRYPT_COST",
	"DEALER_TELEMETRY_SAMPLING_RATIO",
	"DEALER_TELEMETRY_DB_LOG_FULL_SQL",
	"DEALER_STORAGE_BUCKET",
	"DEALER_SCHEDULER_SWEEP_ENABLED",
	"DEALER_SCHEDULER_SWEEP_HOUR",
}

// clearEnv blanks every managed variable for the duration of the test.
// Viper treats empty variables as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range managedEnv {
		t.Setenv(k, "")
	}
}

func setValidProduction(t *testing.T) {
	t.Helper()
	t.Setenv("DEALER_APP_ENV", "production")
	t.Setenv("DEALER_JWT_SECRET", "this-is-a-very-secure-jwt-secret-key-32chars")
	t.Setenv("DEALER_DATABASE_PASSWORD", "secure-password")
	t.Setenv("DEALER_DATABASE_SSLMODE", "require")
	t.Setenv("DEALER_COOKIE_SECURE", "true")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dealerdesk-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "dealerdesk", cfg.Database.DBName)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "session", cfg.Cookie.SessionName)
	assert.Equal(t, "subuser_access", cfg.Cookie.AccessName)
	assert.Equal(t, "lax", cfg.Cookie.SameSite)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
	assert.Equal(t, 512, cfg.Storage.ImageMaxDimension)
	assert.Equal(t, "dealerdesk-backend", cfg.Telemetry.ServiceName)
	assert.False(t, cfg.Redis.Enabled)
	assert.NotEmpty(t, cfg.JWT.Secret, "development gets a placeholder secret")
	assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
	assert.False(t, cfg.Scheduler.SweepEnabled)
	assert.Equal(t, time.Minute, cfg.Scheduler.SweepCheckInterval)
	assert.Equal(t, 30*time.Minute, cfg.Scheduler.SweepTimeout)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEALER_APP_PORT", "9000")
	t.Setenv("DEALER_DATABASE_HOST", "db.internal")
	t.Setenv("DEALER_DATABASE_PORT", "5433")
	t.Setenv("DEALER_JWT_EXPIRATION", "2h")
	t.Setenv("DEALER_SECURITY_BCRYPT_COST", "10")
	t.Setenv("DEALER_STORAGE_BUCKET", "logos")
	t.Setenv("DEALER_SCHEDULER_SWEEP_ENABLED", "true")
	t.Setenv("DEALER_SCHEDULER_SWEEP_HOUR", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
	assert.Equal(t, "logos", cfg.Storage.Bucket)
	assert.True(t, cfg.Scheduler.SweepEnabled)
	assert.Equal(t, 3, cfg.Scheduler.SweepHour)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "idle conns cannot exceed open conns",
			env:     map[string]string{"DEALER_DATABASE_MAX_OPEN_CONNS": "10", "DEALER_DATABASE_MAX_IDLE_CONNS": "20"},
			wantErr: "cannot exceed",
		},
		{
			name:    "unknown same site",
			env:     map[string]string{"DEALER_COOKIE_SAME_SITE": "sometimes"},
			wantErr: "cookie.same_site",
		},
		{
			name:    "same site none requires secure",
			env:     map[string]string{"DEALER_COOKIE_SAME_SITE": "none"},
			wantErr: "requires cookie.secure",
		},
		{
			name:    "bcrypt cost out of range",
			env:     map[string]string{"DEALER_SECURITY_BCRYPT_COST": "40"},
			wantErr: "bcrypt_cost",
		},
		{
			name:    "bootstrap admin needs both email and password",
			env:     map[string]string{"DEALER_BOOTSTRAP_ADMIN_EMAIL": "root@dealer.test"},
			wantErr: "must be set together",
		},
		{
			name:    "sampling ratio out of range",
			env:     map[string]string{"DEALER_TELEMETRY_SAMPLING_RATIO": "1.5"},
			wantErr: "sampling_ratio",
		},
		{
			name:    "sweep hour out of range",
			env:     map[string]string{"DEALER_SCHEDULER_SWEEP_HOUR": "24"},
			wantErr: "sweep time",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_ProductionValidation(t *testing.T) {
	t.Run("passes with a complete production config", func(t *testing.T) {
		clearEnv(t)
		setValidProduction(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.App.IsProduction())
	})

	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"requires jwt secret", "DEALER_JWT_SECRET", "", "jwt.secret is required"},
		{"requires long jwt secret", "DEALER_JWT_SECRET", "short-secret", "at least 32 characters"},
		{"requires database password", "DEALER_DATABASE_PASSWORD", "", "database.password is required"},
		{"requires ssl", "DEALER_DATABASE_SSLMODE", "disable", "sslmode cannot be 'disable'"},
		{"requires secure cookies", "DEALER_COOKIE_SECURE", "false", "cookie.secure must be true"},
		{"rejects wildcard cors", "DEALER_HTTP_CORS_ALLOW_ORIGINS", "*", "cors_allow_origins"},
		{"rejects full sql logging", "DEALER_TELEMETRY_DB_LOG_FULL_SQL", "true", "db_log_full_sql"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			setValidProduction(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "dealer",
		Password: "pass@word#123",
		DBName:   "dealerdesk",
		SSLMode:  "disable",
	}
	dsn := d.DSN()
	assert.Contains(t, dsn, "pass%40word%23123")
	assert.Contains(t, dsn, "localhost:5432/dealerdesk")
	assert.Contains(t, dsn, "sslmode=disable")
}
