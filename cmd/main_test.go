package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseConfig_Defaults(t *testing.T) {
	appHost, appPort, appEnv, logLevel,
		pgHost, pgPort, _, _, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		_, redisPort, redisDB, _,
		jwtSecret, jwtExpSecond,
		uploadDir, rateLimit, rateLimitWindowSecond,
		err := parseConfig("missing.env")

	assert.NoError(t, err)
	assert.Equal(t, "localhost", appHost)
	assert.Equal(t, "8080", appPort)
	assert.Equal(t, "development", appEnv)
	assert.Equal(t, "info", logLevel)
	assert.Equal(t, "localhost", pgHost)
	assert.Equal(t, 5432, pgPort)
	assert.Equal(t, "brandcentral", pgDB)
	assert.Equal(t, 16, pgMaxOpenConns)
	assert.Equal(t, 8, pgMaxIdleConns)
	assert.Equal(t, 6379, redisPort)
	assert.Equal(t, 0, redisDB)
	assert.Equal(t, defaultJWTSecret, jwtSecret)
	assert.Equal(t, 86400, jwtExpSecond)
	assert.Equal(t, "uploads", uploadDir)
	assert.Equal(t, 100, rateLimit)
	assert.Equal(t, 60, rateLimitWindowSecond)
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("JWT_EXP_SECOND", "3600")

	_, appPort, _, _,
		_, pgPort, _, _, _,
		_, _,
		_, _, _, _,
		_, jwtExpSecond,
		_, _, _,
		err := parseConfig("missing.env")

	assert.NoError(t, err)
	assert.Equal(t, "9090", appPort)
	assert.Equal(t, 5433, pgPort)
	assert.Equal(t, 3600, jwtExpSecond)
}

func TestParseConfig_RejectsDefaultSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	_, _, _, _,
		_, _, _, _, _,
		_, _,
		_, _, _, _,
		_, _,
		_, _, _,
		err := parseConfig("missing.env")

	assert.Error(t, err)

	t.Setenv("JWT_SECRET_KEY", "a-real-secret")

	_, _, _, _,
		_, _, _, _, _,
		_, _,
		_, _, _, _,
		jwtSecret, _,
		_, _, _,
		err := parseConfig("missing.env")

	assert.NoError(t, err)
	assert.Equal(t, "a-real-secret", jwtSecret)
}

func TestParseConfig_BadNumber(t *testing.T) {
	t.Setenv("POSTGRES_PORT", "not-a-port")

	_, _, _, _,
		_, _, _, _, _,
		_, _,
		_, _, _, _,
		_, _,
		_, _, _,
		err := parseConfig("missing.env")

	assert.Error(t, err)
}
