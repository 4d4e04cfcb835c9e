package user

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidName     = errors.New("name must be between 2 and 120 characters")
	ErrPasswordTooWeak = errors.New("password must be at least 6 characters long")
)

const (
	MinPasswordLength = 6
	minNameLength     = 2
	maxNameLength     = 120
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is stored trimmed and lower-cased so lookups are case-insensitive.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) String() string {
	return e.value
}

func NewName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n < minNameLength || n > maxNameLength {
		return "", ErrInvalidName
	}
	return s, nil
}

func ValidatePassword(p string) error {
	if utf8.RuneCountInString(p) < MinPasswordLength {
		return ErrPasswordTooWeak
	}
	return nil
}

type Credentials struct {
	Email    Email
	Password string
}

func NewCredentials(email, password string) (Credentials, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	if password == "" {
		return Credentials{}, ErrPasswordTooWeak
	}
	return Credentials{Email: e, Password: password}, nil
}
