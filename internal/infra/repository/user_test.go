//go:build unit

package repository_test

import (
	"context"
	"testing"

	"luxora-booking/internal/infra"
	"luxora-booking/internal/infra/repository"
	sqlc "luxora-booking/internal/infra/sqlc/generated"
	"luxora-booking/tests/common/builder"
	repositorymock "luxora-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	u := builder.NewUserBuilder().WithEmail("grace@example.com")
	domainUser, err := u.BuildDomain()
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		mockQueries.EXPECT().CreateUser(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error) {
				assert.Equal(t, u.ID, arg.ID)
				assert.Equal(t, "grace@example.com", arg.Email)
				assert.Equal(t, u.PasswordHash, arg.PasswordHash)
				return arg.ID, nil
			})

		require.NoError(t, repository.NewUserRepository(mockQueries, nil).Create(ctx, domainUser))
	})

	t.Run("error: email already taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		mockQueries.EXPECT().CreateUser(ctx, gomock.Any(), gomock.Any()).
			Return(uuid.Nil, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		err := repository.NewUserRepository(mockQueries, nil).Create(ctx, domainUser)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, "users_email_key", infra.ConstraintName(err))
	})
}
