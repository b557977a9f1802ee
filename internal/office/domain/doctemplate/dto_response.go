package doctemplate

import (
	"time"

	"github.com/google/uuid"
)

type TemplateResponseDto struct {
	UUID        uuid.UUID `json:"uuid"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreateAt    time.Time `json:"create_at"`
	UpdateAt    time.Time `json:"update_at"`
	// preenchidos apenas no upload
	Tags        []string `json:"tags,omitempty"`
	UnknownTags []string `json:"unknown_tags,omitempty"`
}

type TemplateListResponseDto struct {
	Templates []TemplateResponseDto `json:"templates"`
	Total     int64                 `json:"total"`
	Page      int                   `json:"page"`
	Size      int                   `json:"size"`
}

func ToResponse(t DocumentTemplate) TemplateResponseDto {
	return TemplateResponseDto{
		UUID:        t.UUID,
		Title:       t.Title,
		Description: t.Description,
		CreateAt:    t.CreateAt,
		UpdateAt:    t.UpdateAt,
	}
}
