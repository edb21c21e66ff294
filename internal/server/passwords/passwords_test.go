package passwords

import (
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/adminauth/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	t.Parallel()
	h := NewHasher(bcrypt.MinCost)

	hash1, err := h.Hash("Correct-Horse-1")
	require.NoError(t, err)
	hash2, err := h.Hash("Correct-Horse-1")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2, "hash output must be salted")
	assert.True(t, strings.HasPrefix(hash1, "$2a$"))

	cost, err := Cost(hash1)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	ok, err := h.Verify("Correct-Horse-1", hash1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", hash1)
	require.NoError(t, err, "mismatch is not an error")
	assert.False(t, ok)
}

func TestHasher_VerifyMalformedHash(t *testing.T) {
	t.Parallel()
	h := NewHasher(bcrypt.MinCost)

	_, err := h.Verify("whatever", "not-a-bcrypt-hash")
	assert.True(t, errors.Is(err, common.ErrInvalidHashFormat))

	_, err = Cost("junk")
	assert.True(t, errors.Is(err, common.ErrInvalidHashFormat))
}

func TestHasher_NeedsRehash(t *testing.T) {
	t.Parallel()

	weak, err := NewHasher(bcrypt.MinCost).Hash("Correct-Horse-1")
	require.NoError(t, err)

	assert.True(t, NewHasher(bcrypt.MinCost+1).NeedsRehash(weak))
	assert.False(t, NewHasher(bcrypt.MinCost).NeedsRehash(weak))
	assert.False(t, NewHasher(bcrypt.MinCost+1).NeedsRehash("junk"))
}

func TestHasher_HashTooLong(t *testing.T) {
	t.Parallel()
	h := NewHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", 100))
	assert.True(t, errors.Is(err, common.ErrHashing))
}

func TestHasher_BurnDoesNotPanic(t *testing.T) {
	t.Parallel()
	h := NewHasher(bcrypt.MinCost)
	h.Burn("anything")
	h.Burn("again")
}

func TestPolicy_Validate(t *testing.T) {
	t.Parallel()
	p := Policy{MinLength: 8}

	tests := []struct {
		password string
		rule     string
	}{
		{"Sh0rt!", RuleMinLength},
		{"alllower1!", RuleUpper},
		{"ALLUPPER1!", RuleLower},
		{"NoDigits!!", RuleDigit},
		{"NoSymbol12", RuleSymbol},
		{"Aa1!" + strings.Repeat("x", 80), RuleMaxLength},
		{"Valid-Pass1", ""},
		{"Пароль-Ок1", ""},
	}

	for _, tt := range tests {
		err := p.Validate(tt.password)
		if tt.rule == "" {
			assert.NoError(t, err, tt.password)
			continue
		}
		var weak *common.WeakPasswordError
		require.True(t, errors.As(err, &weak), tt.password)
		assert.Equal(t, tt.rule, weak.Rule, tt.password)
		assert.True(t, errors.Is(err, common.ErrWeakPassword))
	}
}
