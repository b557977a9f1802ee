package user

type SignupUserRequestDto struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type CreateUserRequestDto struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=8"`
	Role     UserRole `json:"role" binding:"required"`
}

type ReadUserRequestDto struct {
	UUID  string `form:"uuid"`
	Email string `form:"email"`
}

type UpdateUserRequestDto struct {
	Name     string   `json:"name"`
	Email    string   `json:"email" binding:"omitempty,email"`
	Password string   `json:"password" binding:"omitempty,min=8"`
	Role     UserRole `json:"role"`
	Live     *bool    `json:"live"`
}

type ListUserRequestDto struct {
	Page     int `form:"page"`
	PageSize int `form:"size"`
}
