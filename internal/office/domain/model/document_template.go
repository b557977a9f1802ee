package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentTemplate aponta para um arquivo .docx com as tags {{nome}}, {{cpf_cnpj}}, etc.
type DocumentTemplate struct {
	UUID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	FilePath    string    `gorm:"column:file_path;type:varchar(255);not null"`
	CreateAt    time.Time `gorm:"column:create_at;not null;autoCreateTime"`
	UpdateAt    time.Time `gorm:"column:update_at;not null;autoUpdateTime"`
}

func (DocumentTemplate) TableName() string {
	return "modelo_documento"
}

func (t *DocumentTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.UUID == uuid.Nil {
		t.UUID = uuid.New()
	}
	return nil
}
