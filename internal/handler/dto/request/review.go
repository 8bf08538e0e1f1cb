package request

type ReviewRequest struct {
	Content string   `json:"content" binding:"required,max=1000"`
	Rating  *float64 `json:"rating" binding:"required,min=0,max=5"`
}

// ReviewUpdateRequest leaves absent fields unchanged.
type ReviewUpdateRequest struct {
	Content *string  `json:"content" binding:"omitempty,max=1000"`
	Rating  *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
}
