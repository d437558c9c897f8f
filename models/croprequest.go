package models

import "time"

// CropRequest is a consumer-initiated ask for a crop no farmer currently
// lists. Farmers browse open requests and mark the ones they can fulfill.
type CropRequest struct {
	ID               string    `json:"id"`
	CropName         string    `json:"crop_name"`
	Description      string    `json:"description"`
	QuantityNeeded   int       `json:"quantity_needed"`
	Unit             string    `json:"unit"`
	Location         string    `json:"location"`
	ConsumerCount    int       `json:"consumer_count"`
	Popularity       int       `json:"popularity"`
	IsFulfilled      bool      `json:"is_fulfilled"`
	FarmerFulfilling *string   `json:"farmer_fulfilling,omitempty"`
	CreatedBy        string    `json:"created_by"`
	CreatedAt        time.Time `json:"created_at"`
}
