package model

import "time"

// Service is one row of the service catalog. SortPosition defines display
// order; after a successful reorder it is contiguous from 0 for the ids
// that were reordered.
type Service struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	PriceString  *string   `json:"price_string"`
	Description  *string   `json:"description"`
	Category     string    `json:"category"`
	SortPosition int       `json:"sort_position"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateServiceRequest struct {
	Name        string  `json:"name"`
	PriceString *string `json:"price_string"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

// UpdateServiceRequest carries a partial update: nil means "leave the
// column alone", a non-nil pointer means "set it", including to empty.
type UpdateServiceRequest struct {
	Name        *string `json:"name"`
	PriceString *string `json:"price_string"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

func (r UpdateServiceRequest) Empty() bool {
	return r.Name == nil && r.PriceString == nil && r.Description == nil && r.Category == nil
}

type ReorderRequest struct {
	OrderedIDs []int64 `json:"orderedIds"`
}
