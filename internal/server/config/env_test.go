package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestParseEnv(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	err := parseEnv(cfg, envMap(map[string]string{
		"ADMINAUTH_SECRET_KEY":         "from-env",
		"ADMINAUTH_MAX_LOGIN_ATTEMPTS": "8",
		"ADMINAUTH_TOTP_SKEW_STEPS":    "2",
		"ADMINAUTH_ACCESS_TOKEN_TTL":   "1d",
		"ADMINAUTH_LOCKOUT_DURATION":   "45m",
		"ADMINAUTH_RATE_LIMIT_RPS":     "0.5",
	}))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.SecretKey)
	assert.Equal(t, 8, cfg.MaxLoginAttempts)
	assert.Equal(t, uint(2), cfg.TOTPSkewSteps)
	assert.Equal(t, 24*time.Hour, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 45*time.Minute, cfg.LockoutDuration)
	assert.Equal(t, 0.5, cfg.RateLimitRPS)
	assert.Equal(t, 12, cfg.BcryptCost, "unset variables keep the previous value")
}

func TestParseEnv_Malformed(t *testing.T) {
	for _, kv := range [][2]string{
		{"ADMINAUTH_BCRYPT_COST", "twelve"},
		{"ADMINAUTH_TOTP_STEP_SECONDS", "-1"},
		{"ADMINAUTH_REFRESH_TOKEN_TTL", "later"},
		{"ADMINAUTH_RATE_LIMIT_RPS", "fast"},
	} {
		t.Run(kv[0], func(t *testing.T) {
			cfg := &Config{}
			require.Error(t, parseEnv(cfg, envMap(map[string]string{kv[0]: kv[1]})))
		})
	}
}
