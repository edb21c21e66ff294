// Package twofactor implements TOTP second-factor protection: enrollment,
// the login challenge and single-use backup codes.
package twofactor

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// secretSize is the shared secret length in bytes (160 bits, RFC 4226).
const secretSize = 20

// TOTP generates keys and checks codes with a fixed step and skew.
// Codes are 6 digits over HMAC-SHA1, what authenticator apps expect.
type TOTP struct {
	Issuer string
	// Period is the step length in seconds.
	Period uint
	// Skew is how many steps before and after the current one are accepted.
	Skew uint
}

func (t TOTP) validateOpts() totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    t.Period,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	}
}

// NewKey generates a fresh random secret for account.
func (t TOTP) NewKey(account string) (*otp.Key, error) {
	return totp.Generate(totp.GenerateOpts{
		Issuer:      t.Issuer,
		AccountName: account,
		Period:      t.Period,
		SecretSize:  secretSize,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
}

// Step is the time step counter at.
func (t TOTP) Step(at time.Time) uint64 {
	return uint64(at.Unix()) / uint64(t.Period)
}

// CodeAt returns the code for the step containing at.
func (t TOTP) CodeAt(secret string, at time.Time) (string, error) {
	return totp.GenerateCodeCustom(secret, at, t.validateOpts())
}

// Match looks for code among the steps within Skew of now and returns the
// matching step. Steps at or before after are never accepted, so a code is
// usable once.
func (t TOTP) Match(secret, code string, now time.Time, after uint64) (uint64, bool, error) {
	code = strings.ReplaceAll(strings.TrimSpace(code), " ", "")
	if len(code) != otp.DigitsSix.Length() {
		return 0, false, nil
	}

	skew := int(t.Skew)
	for i := -skew; i <= skew; i++ {
		at := now.Add(time.Duration(i*int(t.Period)) * time.Second)
		step := t.Step(at)
		if step <= after {
			continue
		}
		want, err := t.CodeAt(secret, at)
		if err != nil {
			return 0, false, err
		}
		if subtle.ConstantTimeCompare([]byte(want), []byte(code)) == 1 {
			return step, true, nil
		}
	}
	return 0, false, nil
}
