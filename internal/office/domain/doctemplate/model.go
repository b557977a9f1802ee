package doctemplate

import "sistema-advocacia/internal/office/domain/model"

type DocumentTemplate = model.DocumentTemplate

const (
	// KeyPrefix é a pasta dos modelos no storage.
	KeyPrefix = "templates_docs/"
	Extension = ".docx"

	DefaultMaxUploadBytes int64 = 10 << 20
	maxTitleLength              = 100
)

// Upload é um arquivo .docx recebido pela API ou pela importação via CLI.
type Upload struct {
	Filename string
	Body     []byte
}

// Patch de um modelo. File nil mantém o arquivo atual.
type Patch struct {
	Title       *string
	Description *string
	File        *Upload
}
