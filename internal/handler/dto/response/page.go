package response

import (
	"time"

	"store-reservation/internal/usecase/queries"
)

type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// FromPage maps every element of p into R. R is normally a pointer to a
// response struct.
func FromPage[V any, R any](p *queries.Page[V], loc *time.Location) (*PageResponse[R], error) {
	content := make([]R, 0, len(p.Content))
	if len(p.Content) > 0 {
		if err := copyInto(&content, p.Content, loc); err != nil {
			return nil, err
		}
	}
	return &PageResponse[R]{
		Content:       content,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}, nil
}

type MessageResponse struct {
	Message string `json:"message"`
}

func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}
