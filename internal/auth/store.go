package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/languidpie/smit-homework-v2/internal/domain"
)

// User is one entry in the principal table: an identity with exactly one role
// and a bcrypt-hashed secret.
type User struct {
	Username   string
	SecretHash string
	Role       domain.Role
}

// Store looks up principals by username. The fixed in-memory table satisfies
// it today; a real identity provider can replace it without touching the
// authentication decision logic.
type Store interface {
	Lookup(username string) (User, bool)
}

// StaticStore is a fixed, read-only principal table.
type StaticStore struct {
	users map[string]User
}

// NewStaticStore builds a StaticStore from the given users.
func NewStaticStore(users []User) *StaticStore {
	m := make(map[string]User, len(users))
	for _, u := range users {
		m[u.Username] = u
	}
	return &StaticStore{users: m}
}

// Lookup returns the user for a username.
func (s *StaticStore) Lookup(username string) (User, bool) {
	u, ok := s.users[username]
	return u, ok
}

// Internal rejection reasons. Both wrap domain.ErrUnauthorized so callers
// cannot distinguish an unknown username from a wrong secret.
var (
	errUserNotFound        = fmt.Errorf("user not found: %w", domain.ErrUnauthorized)
	errCredentialsMismatch = fmt.Errorf("credentials do not match: %w", domain.ErrUnauthorized)
)

// Authenticator verifies direct username+secret credentials against a Store.
type Authenticator struct {
	store Store
}

// NewAuthenticator creates an Authenticator over the given principal store.
func NewAuthenticator(store Store) *Authenticator {
	return &Authenticator{store: store}
}

// Authenticate verifies the credential pair and returns the principal.
// bcrypt carries its own salt and compares in constant time, so the secret
// check leaks nothing through timing. Any failure maps to
// domain.ErrUnauthorized externally.
func (a *Authenticator) Authenticate(username, secret string) (domain.Principal, error) {
	user, ok := a.store.Lookup(username)
	if !ok {
		return domain.Principal{}, errUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.SecretHash), []byte(secret)); err != nil {
		return domain.Principal{}, errCredentialsMismatch
	}

	return domain.Principal{Username: user.Username, Role: user.Role}, nil
}
