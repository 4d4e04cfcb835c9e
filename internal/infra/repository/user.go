package repository

import (
	"context"

	"luxora-booking/internal/domain/user"
	"luxora-booking/internal/infra"
	"luxora-booking/internal/infra/repository/converter"
	sqlc "luxora-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if _, err := r.queries.CreateUser(ctx, r.db, converter.UserToInfra(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}
