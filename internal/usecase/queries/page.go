package queries

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage keeps Page*MaxPageSize inside int32.
	MaxPage = 1_000_000
)

// PageRequest is a zero-based page window.
type PageRequest struct {
	Page int
	Size int
}

// NewPageRequest clamps page to [0, MaxPage] and size to (0, MaxPageSize],
// using DefaultPageSize when size is not positive.
func NewPageRequest(page, size int) PageRequest {
	if page < 0 {
		page = 0
	}
	if page > MaxPage {
		page = MaxPage
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return PageRequest{Page: page, Size: size}
}

func (p PageRequest) Limit() int32 {
	return int32(p.Size) // #nosec G115 -- bounded by MaxPageSize
}

func (p PageRequest) Offset() int32 {
	return int32(p.Page * p.Size) // #nosec G115 -- bounded by MaxPage and MaxPageSize
}

type Page[T any] struct {
	Content       []T
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

func NewPage[T any](content []T, req PageRequest, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if total > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return &Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
