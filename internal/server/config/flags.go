package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/adminauth/internal/flagx"
	"github.com/dmitrijs2005/adminauth/internal/timex"
)

// serverFlags lists the short flags parseFlags understands.
var serverFlags = []string{"-a", "-d", "-s", "-k", "-t", "-r", "-p", "-m", "-l", "-b", "-v"}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     gRPC bind address (e.g., ":50051")
//	-d string     PostgreSQL DSN
//	-s string     JWT HMAC secret key
//	-k string     TOTP secret encryption passphrase
//	-t duration   access token validity ("168h", "7d")
//	-r duration   refresh token validity
//	-p duration   pending two-factor token validity
//	-m int        max failed logins before lockout
//	-l duration   lockout duration
//	-b int        bcrypt cost
//	-v string     log level
//
// args are filtered with flagx.FilterArgs first so flags owned by other
// components (e.g. -c) do not cause parse errors.
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "JWT secret key")
	fs.StringVar(&config.TOTPEncryptionKey, "k", config.TOTPEncryptionKey, "TOTP secret encryption key")

	durationVar(fs, &config.AccessTokenValidityDuration, "t", "access token validity")
	durationVar(fs, &config.RefreshTokenValidityDuration, "r", "refresh token validity")
	durationVar(fs, &config.PendingTwoFactorValidityDuration, "p", "pending two-factor token validity")
	durationVar(fs, &config.LockoutDuration, "l", "lockout duration")

	fs.IntVar(&config.MaxLoginAttempts, "m", config.MaxLoginAttempts, "failed logins before lockout")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")

	return fs.Parse(flagx.FilterArgs(args, serverFlags))
}

func durationVar(fs *flag.FlagSet, dst *time.Duration, name, usage string) {
	fs.Func(name, usage+" (e.g. 90m, 7d)", func(s string) error {
		d, err := timex.ParseDuration(s)
		if err != nil {
			return err
		}
		*dst = d
		return nil
	})
}
