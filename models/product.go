package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog record. Cart lines hold a snapshot of this struct
// taken at add time, so the persisted cart keeps the price the buyer saw.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	FarmerID    string          `json:"farmer_id"`
	FarmerName  string          `json:"farmer_name"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Unit        string          `json:"unit"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at,omitzero"`
	UpdatedAt   time.Time       `json:"updated_at,omitzero"`
}

var ProductCategories = []string{
	"Vegetables",
	"Fruits",
	"Dairy & Eggs",
	"Grains",
	"Other",
}
