package user

import (
	"time"

	"github.com/google/uuid"
)

type UserResponseDto struct {
	UUID     uuid.UUID `json:"uuid"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     UserRole  `json:"role"`
	Live     bool      `json:"live"`
	CreateAt time.Time `json:"create_at"`
	UpdateAt time.Time `json:"update_at"`
}

type UserListResponseDto struct {
	Users []UserResponseDto `json:"users"`
	Page  int               `json:"page"`
	Size  int               `json:"size"`
}

func ToResponse(u User) UserResponseDto {
	return UserResponseDto{
		UUID:     u.UUID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		Live:     u.Live,
		CreateAt: u.CreateAt,
		UpdateAt: u.UpdateAt,
	}
}
