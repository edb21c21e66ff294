package twofactor

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"time"

	"github.com/dmitrijs2005/adminauth/internal/common"
	"github.com/dmitrijs2005/adminauth/internal/server/models"
)

// backupAlphabet has 32 symbols without the look-alikes 0/O and 1/I.
const backupAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// backupCodeLen symbols, printed as two dash-separated halves.
const backupCodeLen = 10

// NewBackupCodes returns n plaintext codes and their stored form.
func NewBackupCodes(n int) ([]string, []models.BackupCode, error) {
	plain := make([]string, 0, n)
	stored := make([]models.BackupCode, 0, n)
	seen := make(map[string]struct{}, n)

	for len(plain) < n {
		raw, err := common.RandBytes(backupCodeLen)
		if err != nil {
			return nil, nil, err
		}
		var b strings.Builder
		for i, c := range raw {
			if i == backupCodeLen/2 {
				b.WriteByte('-')
			}
			b.WriteByte(backupAlphabet[int(c)%len(backupAlphabet)])
		}
		code := b.String()
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}

		plain = append(plain, code)
		stored = append(stored, models.BackupCode{CodeHash: HashBackupCode(code)})
	}
	return plain, stored, nil
}

// HashBackupCode hashes the normalized code: case, dashes and spaces are ignored.
func HashBackupCode(code string) string {
	sum := sha256.Sum256([]byte(normalizeBackupCode(code)))
	return hex.EncodeToString(sum[:])
}

func normalizeBackupCode(code string) string {
	code = strings.ToUpper(code)
	return strings.NewReplacer("-", "", " ", "").Replace(code)
}

// consumeBackupCode marks the unused entry matching code as used at now.
// Every entry is compared so timing does not depend on the match position.
func consumeBackupCode(tf *models.TwoFactor, code string, now time.Time) bool {
	want := []byte(HashBackupCode(code))
	match := -1
	for i, bc := range tf.BackupCodes {
		if subtle.ConstantTimeCompare([]byte(bc.CodeHash), want) == 1 && bc.UsedAt == nil {
			match = i
		}
	}
	if match < 0 {
		return false
	}
	used := now
	tf.BackupCodes[match].UsedAt = &used
	return true
}
