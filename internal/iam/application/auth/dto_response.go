package auth

import (
	"sistema-advocacia/internal/iam/domain/user"
	"time"
)

type LoginResponse struct {
	User          user.UserResponseDto `json:"user"`
	Token         string               `json:"token"`
	Expire        time.Time            `json:"expire"`
	SystemTimeUTC time.Time            `json:"system_time_utc,omitempty"`
}
