package converter

import (
	"luxora-booking/internal/domain/user"
	sqlc "luxora-booking/internal/infra/sqlc/generated"
	"luxora-booking/internal/pkg/pgconv"
)

func UserToInfra(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}
