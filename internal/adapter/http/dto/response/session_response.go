package response

import (
	"time"

	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
)

type SessionResponse struct {
	Token     string    `json:"token,omitempty"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromSession(s entities.Session, withToken bool) SessionResponse {
	res := SessionResponse{Email: s.Email, ExpiresAt: s.ExpiresAt}
	if withToken {
		res.Token = s.Token
	}
	return res
}
