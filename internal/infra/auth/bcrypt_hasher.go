package auth

import (
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"homeplate/config"
	"homeplate/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{
		cost:     cost,
		strength: cfg.PasswordStrength,
	}
}

// Hash generates a salted hash from a plaintext password.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "generate bcrypt hash")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a hash to see if they match.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength verifies the plaintext password satisfies the
// configured strength policy before it is ever hashed.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	policy := h.strength
	if policy == nil {
		policy = &config.PasswordStrengthConfig{MinLength: 8}
	}

	if policy.MinLength > 0 && len(password) < policy.MinLength {
		return errors.Errorf("password must be at least %d characters", policy.MinLength)
	}
	// bcrypt rejects inputs longer than 72 bytes, so cap even without a policy.
	maxLength := policy.MaxLength
	if maxLength <= 0 || maxLength > 72 {
		maxLength = 72
	}
	if len(password) > maxLength {
		return errors.Errorf("password must be at most %d characters", maxLength)
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case policy.RequireUppercase && !hasUpper:
		return errors.New("password must contain an uppercase letter")
	case policy.RequireLowercase && !hasLower:
		return errors.New("password must contain a lowercase letter")
	case policy.RequireNumbers && !hasNumber:
		return errors.New("password must contain a number")
	case policy.RequireSpecial && !hasSpecial:
		return errors.New("password must contain a special character")
	}

	return nil
}
