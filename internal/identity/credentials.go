package identity

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Credentials turns a password into its stored form and checks a login
// attempt against it. Passwords are passed through untrimmed.
type Credentials interface {
	Seal(password string) (string, error)
	Match(stored, password string) bool
}

// Plaintext stores the password verbatim and compares exactly. It is the
// default and keeps existing stores readable.
type Plaintext struct{}

func (Plaintext) Seal(password string) (string, error) { return password, nil }

func (Plaintext) Match(stored, password string) bool { return stored == password }

// Bcrypt stores a bcrypt hash.
type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Seal(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (Bcrypt) Match(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// NewCredentials maps a config mode ("plain", "bcrypt") to an
// implementation.
func NewCredentials(mode string) (Credentials, error) {
	switch mode {
	case "", "plain":
		return Plaintext{}, nil
	case "bcrypt":
		return Bcrypt{}, nil
	default:
		return nil, fmt.Errorf("unknown credentials mode %q", mode)
	}
}
