package doctemplate

import "mime/multipart"

type CreateTemplateRequestDto struct {
	Title       string                `form:"title" binding:"required,max=100"`
	Description string                `form:"description"`
	File        *multipart.FileHeader `form:"file" binding:"required"`
}

type UpdateTemplateRequestDto struct {
	Title       *string               `form:"title" binding:"omitempty,max=100"`
	Description *string               `form:"description"`
	File        *multipart.FileHeader `form:"file"`
}

type ListTemplateRequestDto struct {
	Page int `form:"page"`
	Size int `form:"size"`
}
