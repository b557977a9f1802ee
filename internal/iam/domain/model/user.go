package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleStaff UserRole = "STAFF"
)

type User struct {
	UUID     uuid.UUID `gorm:"type:uuid;primary_key"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Email    string    `gorm:"type:varchar(255);not null;unique"`
	Password string    `gorm:"column:password_hash;type:varchar(255);not null"`
	Role     UserRole  `gorm:"type:user_role;not null;default:'STAFF'"`
	Live     bool      `gorm:"not null;default:true"`
	CreateAt time.Time `gorm:"column:create_at;not null;autoCreateTime"`
	UpdateAt time.Time `gorm:"column:update_at;not null;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UUID == uuid.Nil {
		u.UUID = uuid.New()
	}
	return nil
}
