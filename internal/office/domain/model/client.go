package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "S"
	MaritalMarried  MaritalStatus = "C"
	MaritalDivorced MaritalStatus = "D"
	MaritalWidowed  MaritalStatus = "V"
)

// DefaultNationality é o valor usado quando o cadastro não informa nacionalidade.
const DefaultNationality = "Brasileira(o)"

var validMaritalStatus = map[MaritalStatus]bool{
	MaritalSingle:   true,
	MaritalMarried:  true,
	MaritalDivorced: true,
	MaritalWidowed:  true,
}

func IsValidSex(s Sex) bool {
	return s == SexMale || s == SexFemale
}

func IsValidMaritalStatus(m MaritalStatus) bool {
	_, ok := validMaritalStatus[m]
	return ok
}

type Client struct {
	UUID             uuid.UUID     `gorm:"type:uuid;primaryKey"`
	FullName         string        `gorm:"column:full_name;type:varchar(255);not null"`
	Sex              Sex           `gorm:"type:varchar(1);not null;default:'M'"`
	Nationality      string        `gorm:"type:varchar(50);not null;default:'Brasileira(o)'"`
	MaritalStatus    MaritalStatus `gorm:"column:marital_status;type:varchar(1);not null"`
	Disabled         bool          `gorm:"not null;default:false"`
	BirthDate        *time.Time    `gorm:"column:birth_date;type:date"`
	TaxID            string        `gorm:"column:tax_id;type:varchar(20);not null;uniqueIndex"`
	RG               *string       `gorm:"column:rg;type:varchar(20)"`
	IssuingAuthority *string       `gorm:"column:issuing_authority;type:varchar(20)"`
	Profession       string        `gorm:"type:varchar(100);not null"`
	Street           string        `gorm:"type:varchar(255);not null"`
	Number           string        `gorm:"type:varchar(10);not null"`
	Neighborhood     string        `gorm:"type:varchar(100);not null;default:''"`
	City             string        `gorm:"type:varchar(100);not null;default:''"`
	PostalCode       string        `gorm:"column:postal_code;type:varchar(10);not null"`
	Contact          string        `gorm:"type:varchar(100);not null"`
	Active           bool          `gorm:"not null"`
	CreateAt         time.Time     `gorm:"column:create_at;not null;autoCreateTime"`
	UpdateAt         time.Time     `gorm:"column:update_at;not null;autoUpdateTime"`
}

func (Client) TableName() string {
	return "cliente"
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.UUID == uuid.Nil {
		c.UUID = uuid.New()
	}
	return nil
}
