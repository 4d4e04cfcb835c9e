package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a guest account. Bookings made while signed in keep a weak
// reference to it.
type User struct {
	id           uuid.UUID
	name         string
	email        Email
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name string, email Email, passwordHash string, now time.Time) (*User, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &User{
		id:           uuid.New(),
		name:         n,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id uuid.UUID, name string, email Email, passwordHash string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
