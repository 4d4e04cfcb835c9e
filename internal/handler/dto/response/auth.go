package response

import (
	"time"

	"luxora-booking/internal/usecase/queries"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	TokenType   string        `json:"tokenType"`
	ExpiresIn   int64         `json:"expiresIn"`
	User        *UserResponse `json:"user"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		Email:     v.Email,
		CreatedAt: v.CreatedAt,
	}
}
