package queries

import "time"

type StoreListItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Rating      float64 `json:"rating"`
	ReviewCount int64   `json:"review_count"`
}

type StoreSearchItem struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Rating  float64 `json:"rating"`
}

// StoreDetails is also the cached representation, hence the json tags.
type StoreDetails struct {
	ID          int64     `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	Contact     string    `json:"contact"`
	Open        string    `json:"open"`
	Close       string    `json:"close"`
	Rating      float64   `json:"rating"`
	ReviewCount int64     `json:"review_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReservationView joins a reservation with its store and member.
type ReservationView struct {
	ID              int64
	MemberID        string
	MemberName      string
	Phone           string
	StoreID         int64
	StoreName       string
	StoreOwnerID    string
	Address         string
	Contact         string
	ReservationDate time.Time
	Status          string
	Visited         bool
}

type ReviewView struct {
	ID            int64
	MemberID      string
	MemberName    string
	StoreID       int64
	StoreName     string
	ReservationID *int64
	Content       string
	Rating        float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
