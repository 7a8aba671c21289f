package auth

import (
	"strings"
	"testing"

	"homeplate/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newHasherForTest(strength *config.PasswordStrengthConfig) *bcryptHasher {
	cfg := &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: strength,
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestHashAndCheck(t *testing.T) {
	hasher := newHasherForTest(nil)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("wrong password", hash))
	assert.False(t, hasher.Check("correct horse battery staple", "not-a-bcrypt-hash"))
}

func TestHashIsSalted(t *testing.T) {
	hasher := newHasherForTest(nil)

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestValidatePasswordStrengthDefaultPolicy(t *testing.T) {
	hasher := newHasherForTest(nil)

	assert.Error(t, hasher.ValidatePasswordStrength("short"))
	assert.NoError(t, hasher.ValidatePasswordStrength("longenough"))
	// bcrypt cannot hash more than 72 bytes, even without a configured cap.
	assert.Error(t, hasher.ValidatePasswordStrength(strings.Repeat("a", 73)))
}

func TestValidatePasswordStrengthConfiguredPolicy(t *testing.T) {
	hasher := newHasherForTest(&config.PasswordStrengthConfig{
		MinLength:        10,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	})

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "satisfies every rule", password: "Str0ng!Passw0rd", valid: true},
		{name: "too short", password: "Str0ng!", valid: false},
		{name: "missing uppercase", password: "str0ng!passw0rd", valid: false},
		{name: "missing lowercase", password: "STR0NG!PASSW0RD", valid: false},
		{name: "missing number", password: "Strong!Password", valid: false},
		{name: "missing special", password: "Str0ngPassw0rd", valid: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(testCase.password)
			if testCase.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
