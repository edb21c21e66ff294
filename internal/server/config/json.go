package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/adminauth/internal/flagx"
	"github.com/dmitrijs2005/adminauth/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations use
// timex.Duration so "168h", "7d" and integer nanoseconds all parse.
// Fields left out of the file keep their previous value.
type JsonConfig struct {
	EndpointAddrGRPC                 string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                      string         `json:"database_dsn"`
	SecretKey                        string         `json:"secret_key"`
	TOTPEncryptionKey                string         `json:"totp_encryption_key"`
	AccessTokenValidityDuration      timex.Duration `json:"access_token_ttl"`
	RefreshTokenValidityDuration     timex.Duration `json:"refresh_token_ttl"`
	PendingTwoFactorValidityDuration timex.Duration `json:"pending_two_factor_ttl"`
	PasswordResetValidityDuration    timex.Duration `json:"password_reset_ttl"`
	MaxLoginAttempts                 int            `json:"max_login_attempts"`
	LockoutDuration                  timex.Duration `json:"lockout_duration"`
	BcryptCost                       int            `json:"bcrypt_cost"`
	TOTPStepSeconds                  uint           `json:"totp_step_seconds"`
	TOTPSkewSteps                    *uint          `json:"totp_skew_steps"`
	TOTPIssuer                       string         `json:"totp_issuer"`
	BackupCodeCount                  int            `json:"backup_code_count"`
	MinPasswordLength                int            `json:"min_password_length"`
	RateLimitRPS                     *float64       `json:"rate_limit_rps"`
	RateLimitBurst                   int            `json:"rate_limit_burst"`
	LogLevel                         string         `json:"log_level"`
}

// parseJson overlays values from the file named by -c/-config in args.
// No flag means nothing to load.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.TOTPEncryptionKey, c.TOTPEncryptionKey)
	setString(&config.TOTPIssuer, c.TOTPIssuer)
	setString(&config.LogLevel, c.LogLevel)

	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	setDuration(&config.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration)
	setDuration(&config.PendingTwoFactorValidityDuration, c.PendingTwoFactorValidityDuration)
	setDuration(&config.PasswordResetValidityDuration, c.PasswordResetValidityDuration)
	setDuration(&config.LockoutDuration, c.LockoutDuration)

	setInt(&config.MaxLoginAttempts, c.MaxLoginAttempts)
	setInt(&config.BcryptCost, c.BcryptCost)
	setInt(&config.BackupCodeCount, c.BackupCodeCount)
	setInt(&config.MinPasswordLength, c.MinPasswordLength)
	setInt(&config.RateLimitBurst, c.RateLimitBurst)

	if c.TOTPStepSeconds != 0 {
		config.TOTPStepSeconds = c.TOTPStepSeconds
	}
	if c.TOTPSkewSteps != nil {
		config.TOTPSkewSteps = *c.TOTPSkewSteps
	}
	if c.RateLimitRPS != nil {
		config.RateLimitRPS = *c.RateLimitRPS
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}
