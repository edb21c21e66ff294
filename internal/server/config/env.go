package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/adminauth/internal/timex"
)

// EnvPrefix is prepended to every recognized environment variable.
const EnvPrefix = "ADMINAUTH_"

// lookupEnv is a seam for tests.
var lookupEnv = os.LookupEnv

// parseEnv overlays ADMINAUTH_* variables. Only variables that are set are
// applied; a malformed number or duration is an error.
func parseEnv(config *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"ENDPOINT_ADDR_GRPC":  &config.EndpointAddrGRPC,
		"DATABASE_DSN":        &config.DatabaseDSN,
		"SECRET_KEY":          &config.SecretKey,
		"TOTP_ENCRYPTION_KEY": &config.TOTPEncryptionKey,
		"TOTP_ISSUER":         &config.TOTPIssuer,
		"LOG_LEVEL":           &config.LogLevel,
	}
	for name, dst := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"MAX_LOGIN_ATTEMPTS":  &config.MaxLoginAttempts,
		"BCRYPT_COST":         &config.BcryptCost,
		"BACKUP_CODE_COUNT":   &config.BackupCodeCount,
		"MIN_PASSWORD_LENGTH": &config.MinPasswordLength,
		"RATE_LIMIT_BURST":    &config.RateLimitBurst,
	}
	for name, dst := range ints {
		if v, ok := lookup(EnvPrefix + name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = n
		}
	}

	uints := map[string]*uint{
		"TOTP_STEP_SECONDS": &config.TOTPStepSeconds,
		"TOTP_SKEW_STEPS":   &config.TOTPSkewSteps,
	}
	for name, dst := range uints {
		if v, ok := lookup(EnvPrefix + name); ok {
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = uint(n)
		}
	}

	durations := map[string]*time.Duration{
		"ACCESS_TOKEN_TTL":       &config.AccessTokenValidityDuration,
		"REFRESH_TOKEN_TTL":      &config.RefreshTokenValidityDuration,
		"PENDING_TWO_FACTOR_TTL": &config.PendingTwoFactorValidityDuration,
		"PASSWORD_RESET_TTL":     &config.PasswordResetValidityDuration,
		"LOCKOUT_DURATION":       &config.LockoutDuration,
	}
	for name, dst := range durations {
		if v, ok := lookup(EnvPrefix + name); ok {
			d, err := timex.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = d
		}
	}

	if v, ok := lookup(EnvPrefix + "RATE_LIMIT_RPS"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sRATE_LIMIT_RPS: %w", EnvPrefix, err)
		}
		config.RateLimitRPS = f
	}
	return nil
}
