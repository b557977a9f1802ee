package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GeneratedDocument é o histórico imutável de cada documento gerado.
// TemplateUUID fica nulo se o modelo for excluído depois.
type GeneratedDocument struct {
	UUID         uuid.UUID         `gorm:"type:uuid;primaryKey"`
	ClientUUID   uuid.UUID         `gorm:"column:client_uuid;type:uuid;not null;index"`
	TemplateUUID *uuid.UUID        `gorm:"column:template_uuid;type:uuid;index"`
	Kind         string            `gorm:"type:varchar(100);not null"`
	OutputFile   string            `gorm:"column:output_file;type:varchar(255);not null"`
	CreatedBy    uuid.UUID         `gorm:"column:created_by;type:uuid;not null;index"`
	CreateAt     time.Time         `gorm:"column:create_at;not null;autoCreateTime"`
	Client       Client            `gorm:"foreignKey:ClientUUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Template     *DocumentTemplate `gorm:"foreignKey:TemplateUUID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (GeneratedDocument) TableName() string {
	return "documento"
}

func (d *GeneratedDocument) BeforeCreate(tx *gorm.DB) error {
	if d.UUID == uuid.Nil {
		d.UUID = uuid.New()
	}
	return nil
}
