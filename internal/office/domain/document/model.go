package document

import (
	"github.com/google/uuid"

	"sistema-advocacia/internal/office/domain/model"
)

type GeneratedDocument = model.GeneratedDocument

// RecentLimit é a quantidade de documentos exibida no painel.
const RecentLimit = 5

type Filter struct {
	Page       int
	Size       int
	ClientUUID *uuid.UUID
}

type Dashboard struct {
	TotalClients   int64
	TotalDocuments int64
	Recent         []GeneratedDocument
}
