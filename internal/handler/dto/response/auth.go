package response

import (
	"time"

	"parking-occupancy/internal/usecase/commands"
	"parking-occupancy/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	OperatorID  uuid.UUID `json:"operator_id"`
	Role        string    `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(r.ExpiresIn / time.Second),
		OperatorID:  r.OperatorID,
		Role:        r.Role.String(),
	}
}

type OperatorResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

func FromOperatorRM(rm *readmodel.OperatorRM) *OperatorResponse {
	return &OperatorResponse{
		ID:          rm.ID,
		Email:       rm.Email,
		Role:        rm.Role,
		LastLoginAt: rm.LastLoginAt,
	}
}
