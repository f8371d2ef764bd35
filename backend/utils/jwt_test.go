package utils

import (
	"testing"
	"time"

	"coursetracker/backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "testsecret", JWTTTL: time.Hour}
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := testConfig()
	token, err := GenerateJWTToken(Claims{UserID: "u-1", Role: "admin"}, cfg)
	require.NoError(t, err)

	claims, err := ParseJWTToken("Bearer "+token, cfg)
	require.NoError(t, err)
	assert.Equal(t, Claims{UserID: "u-1", Role: "admin"}, claims)
}

func TestParseJWTToken_Rejects(t *testing.T) {
	cfg := testConfig()

	_, err := ParseJWTToken("", cfg)
	assert.Error(t, err)

	_, err = ParseJWTToken("not-a-token", cfg)
	assert.Error(t, err)

	other := &config.Config{JWTSecret: "other", JWTTTL: time.Hour}
	token, err := GenerateJWTToken(Claims{UserID: "u-1"}, other)
	require.NoError(t, err)
	_, err = ParseJWTToken(token, cfg)
	assert.Error(t, err)

	expired := &config.Config{JWTSecret: "testsecret", JWTTTL: -time.Minute}
	token, err = GenerateJWTToken(Claims{UserID: "u-1"}, expired)
	require.NoError(t, err)
	_, err = ParseJWTToken(token, cfg)
	assert.Error(t, err)
}
