package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	assert.Equal(t, "expense_tracker", cfg.Database.Name)
	assert.Equal(t, 15, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, 2*time.Second, cfg.Database.ConnectTimeout)

	assert.Equal(t, "expense_tracker", cfg.Mongo.Database)
	assert.Equal(t, "user", cfg.Mongo.Collection)

	// Development falls back to a placeholder secret instead of aborting.
	assert.Equal(t, "dev-only-secret", cfg.Auth.Secret)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_MAX_OPEN_CONNS", "30")
	t.Setenv("DB_CONNECT_TIMEOUT", "5s")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, "super-secret", cfg.Auth.Secret)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSAllowOrigins)
}

func TestLoadIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "lots")
	t.Setenv("DB_AUTO_MIGRATE", "maybe")
	t.Setenv("DB_CONN_MAX_LIFETIME", "soon")

	cfg := Load()

	assert.Equal(t, 15, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
}

func TestDSNIncludesConnectTimeout(t *testing.T) {
	db := DatabaseConfig{
		Host:           "db.internal",
		Port:           "5432",
		User:           "svc",
		Password:       "pw",
		Name:           "expenses",
		SSLMode:        "require",
		ConnectTimeout: 2 * time.Second,
	}

	assert.Equal(t,
		"host=db.internal port=5432 user=svc password=pw dbname=expenses sslmode=require connect_timeout=2",
		db.DSN())
}
