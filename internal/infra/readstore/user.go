package readstore

import (
	"context"

	"luxora-booking/internal/infra"
	sqlc "luxora-booking/internal/infra/sqlc/generated"
	"luxora-booking/internal/pkg/pgconv"
	"luxora-booking/internal/usecase/queries"
	"luxora-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &queries.UserView{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

// FindByEmail returns the login snapshot, password hash included.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &shared.UserSnapshot{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
	}, nil
}
