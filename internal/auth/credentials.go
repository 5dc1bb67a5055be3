package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Credentials holds the single configured admin login pair. The password is
// kept only as a bcrypt hash after construction.
type Credentials struct {
	usuario      string
	passwordHash []byte
}

// NewCredentials builds the credential store from the configured admin pair.
func NewCredentials(usuario, senha string) (*Credentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &Credentials{
		usuario:      usuario,
		passwordHash: hash,
	}, nil
}

// Usuario returns the configured admin username.
func (c *Credentials) Usuario() string {
	return c.usuario
}

// Match reports whether the given login pair matches the configured admin
// credentials. Both comparisons run regardless of the username outcome so
// timing does not leak which half was wrong.
func (c *Credentials) Match(usuario, senha string) bool {
	usuarioOK := subtle.ConstantTimeCompare([]byte(c.usuario), []byte(usuario)) == 1
	senhaOK := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(senha)) == nil
	return usuarioOK && senhaOK
}
