package auditoria_log

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog registra uma ação de controller: quem, o quê e o resultado.
type AuditLog struct {
	ID         uint       `gorm:"primaryKey"`
	UserUUID   *uuid.UUID `gorm:"type:uuid;index"`
	Identifier string     `gorm:"type:text"`

	RayTraceCode string `gorm:"size:100;not null"`

	Domain       string     `gorm:"size:100;not null;index"`
	Action       string     `gorm:"size:100;not null"`
	Function     string     `gorm:"size:150;not null"`
	ResourceUUID *uuid.UUID `gorm:"type:uuid"`
	Success      bool       `gorm:"not null"`
	InputData    string     `gorm:"type:text"`
	OutputData   string     `gorm:"type:text"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (AuditLog) TableName() string {
	return "audit_log"
}
