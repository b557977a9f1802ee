package document

import (
	"time"

	"github.com/google/uuid"
)

type DocumentResponseDto struct {
	UUID         uuid.UUID  `json:"uuid"`
	ClientUUID   uuid.UUID  `json:"client_uuid"`
	ClientName   string     `json:"client_name"`
	TemplateUUID *uuid.UUID `json:"template_uuid"`
	Kind         string     `json:"kind"`
	OutputFile   string     `json:"output_file"`
	CreatedBy    uuid.UUID  `json:"created_by"`
	CreateAt     time.Time  `json:"create_at"`
}

type DocumentListResponseDto struct {
	Documents []DocumentResponseDto `json:"documents"`
	Total     int64                 `json:"total"`
	Page      int                   `json:"page"`
	Size      int                   `json:"size"`
}

type DashboardResponseDto struct {
	TotalClients   int64                 `json:"total_clients"`
	TotalDocuments int64                 `json:"total_documents"`
	Recent         []DocumentResponseDto `json:"recent"`
}

func ToResponse(d GeneratedDocument) DocumentResponseDto {
	return DocumentResponseDto{
		UUID:         d.UUID,
		ClientUUID:   d.ClientUUID,
		ClientName:   d.Client.FullName,
		TemplateUUID: d.TemplateUUID,
		Kind:         d.Kind,
		OutputFile:   d.OutputFile,
		CreatedBy:    d.CreatedBy,
		CreateAt:     d.CreateAt,
	}
}

func toResponses(docs []GeneratedDocument) []DocumentResponseDto {
	out := make([]DocumentResponseDto, 0, len(docs))
	for _, d := range docs {
		out = append(out, ToResponse(d))
	}
	return out
}
