package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"luxora-booking/internal/domain/user"
	reqdto "luxora-booking/internal/handler/dto/request"
	"luxora-booking/internal/infra"
	"luxora-booking/internal/pkg/clock"
	"luxora-booking/internal/pkg/errs"
	"luxora-booking/internal/pkg/jwt"
	"luxora-booking/internal/usecase/shared"
)

var (
	ErrTokenGeneration = errs.New("token generation failed")
	ErrPasswordHashing = errs.New("password hashing failed")
)

type RegisterResult struct {
	UserID uuid.UUID
}

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
	ExpiresIn   time.Duration
}

// PasswordHasher is satisfied by password.Hasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*RegisterResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	hasher     PasswordHasher
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, hasher PasswordHasher, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		hasher:     hasher,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*RegisterResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := user.ValidatePassword(req.Password); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	_, err = a.uow.CommandReads().UserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, errs.ErrEmailAlreadyRegistered
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrPasswordHashing)
	}

	account, err := user.NewUser(req.Name, email, hash, a.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, account); err != nil {
			// Lost a race with a concurrent registration of the same email
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrEmailAlreadyRegistered)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("account registered", "user_id", account.ID())
	return &RegisterResult{UserID: account.ID()}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	snapshot, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a wrong password to prevent user enumeration
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := a.hasher.Compare(snapshot.PasswordHash, credentials.Password); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(snapshot.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      snapshot.ID,
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}
