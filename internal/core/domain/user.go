package domain

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCredentialMismatch = errors.New("account uses a different sign-in method")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrNameEmpty          = errors.New("name cannot be empty")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrProviderEmpty      = errors.New("identity provider cannot be empty")
	ErrUnauthorized       = errors.New("unauthorized")
)

const (
	CredentialKindPassword  = "password"
	CredentialKindFederated = "federated"

	bcryptCost  = 12
	MaxNameLen  = 100
	MinPassword = 8
)

// Credential is how an account signs in. It is fixed when the account is
// created: either Credentialed or Federated.
type Credential interface {
	Kind() string
	credential()
}

type Credentialed struct {
	PasswordHash string
}

func (Credentialed) Kind() string { return CredentialKindPassword }
func (Credentialed) credential()  {}

type Federated struct {
	Provider string
}

func (Federated) Kind() string { return CredentialKindFederated }
func (Federated) credential()  {}

type User struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Credential Credential `json:"-"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func newUser(id, email, name string) (*User, error) {
	email = strings.TrimSpace(email)
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameEmpty
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		name = string([]rune(name)[:MaxNameLen])
	}

	now := time.Now().UTC()
	return &User{
		ID:        id,
		Email:     strings.ToLower(email),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func NewCredentialedUser(id, email, name, plainPassword string) (*User, error) {
	u, err := newUser(id, email, name)
	if err != nil {
		return nil, err
	}

	hash, err := HashPassword(plainPassword)
	if err != nil {
		return nil, err
	}
	u.Credential = Credentialed{PasswordHash: hash}
	return u, nil
}

func NewFederatedUser(id, email, name, provider string) (*User, error) {
	provider = strings.TrimSpace(strings.ToLower(provider))
	if provider == "" {
		return nil, ErrProviderEmpty
	}

	u, err := newUser(id, email, name)
	if err != nil {
		return nil, err
	}
	u.Credential = Federated{Provider: provider}
	return u, nil
}

func HashPassword(plainPassword string) (string, error) {
	if utf8.RuneCountInString(plainPassword) < MinPassword {
		return "", ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword fails with ErrInvalidCredentials for federated accounts and
// wrong passwords alike.
func (u *User) CheckPassword(plainPassword string) error {
	c, ok := u.Credential.(Credentialed)
	if !ok {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(plainPassword)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// CredentialFields flattens the credential into nullable storage columns.
func (u *User) CredentialFields() (kind string, passwordHash, provider *string) {
	switch c := u.Credential.(type) {
	case Credentialed:
		return c.Kind(), &c.PasswordHash, nil
	case Federated:
		return c.Kind(), nil, &c.Provider
	}
	return "", nil, nil
}

// CredentialFromFields is the inverse of CredentialFields.
func CredentialFromFields(kind string, passwordHash, provider *string) (Credential, error) {
	switch kind {
	case CredentialKindPassword:
		if passwordHash == nil || *passwordHash == "" {
			return nil, errors.New("password credential without hash")
		}
		return Credentialed{PasswordHash: *passwordHash}, nil
	case CredentialKindFederated:
		if provider == nil || *provider == "" {
			return nil, errors.New("federated credential without provider")
		}
		return Federated{Provider: *provider}, nil
	}
	return nil, errors.New("unknown credential kind: " + kind)
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
