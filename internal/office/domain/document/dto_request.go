package document

type ListDocumentRequestDto struct {
	Page   int    `form:"page"`
	Size   int    `form:"size"`
	Client string `form:"client"`
}
