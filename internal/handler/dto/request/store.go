package request

import (
	"store-reservation/internal/usecase/commands"
	"store-reservation/internal/usecase/queries"
)

type StoreRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Address     string `json:"address" binding:"required,max=200"`
	Description string `json:"description" binding:"max=1000"`
	Contact     string `json:"contact" binding:"required,max=30"`
	Open        string `json:"open" binding:"required"`
	Close       string `json:"close" binding:"required"`
}

func (r StoreRequest) ToInput() commands.StoreInput {
	return commands.StoreInput{
		Name:        r.Name,
		Address:     r.Address,
		Description: r.Description,
		Contact:     r.Contact,
		Open:        r.Open,
		Close:       r.Close,
	}
}

type StoreListQuery struct {
	PageQuery
	OrderBy string `form:"orderBy"`
}

type StoreSearchQuery struct {
	Name string `form:"name" binding:"required"`
}

type PageQuery struct {
	Page int `form:"page" binding:"min=0,max=1000000"`
	Size int `form:"size" binding:"min=0"`
}

func (q PageQuery) ToPageRequest() queries.PageRequest {
	return queries.NewPageRequest(q.Page, q.Size)
}
