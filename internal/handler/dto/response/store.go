package response

import (
	"time"

	"store-reservation/internal/usecase/queries"
)

type StoreListResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Rating      float64 `json:"rating"`
	ReviewCount int64   `json:"reviewCount"`
}

type StoreSearchResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Rating  float64 `json:"rating"`
}

type StoreDetailsResponse struct {
	ID          int64   `json:"id"`
	OwnerID     string  `json:"ownerId"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	Contact     string  `json:"contact"`
	Open        string  `json:"open"`
	Close       string  `json:"close"`
	Rating      float64 `json:"rating"`
	ReviewCount int64   `json:"reviewCount"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func FromStoreDetails(d *queries.StoreDetails, loc *time.Location) (*StoreDetailsResponse, error) {
	var resp StoreDetailsResponse
	if err := copyInto(&resp, d, loc); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromStoreSearch(items []*queries.StoreSearchItem) ([]*StoreSearchResponse, error) {
	resp := make([]*StoreSearchResponse, 0, len(items))
	if len(items) == 0 {
		return resp, nil
	}
	if err := copyInto(&resp, items, nil); err != nil {
		return nil, err
	}
	return resp, nil
}
