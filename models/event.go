package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Event struct {
	ID          string           `json:"id"`
	FarmerID    string           `json:"farmer_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
	Time        string           `json:"time"`
	Location    string           `json:"location"`
	Image       string           `json:"image"`
	Attendees   int              `json:"attendees"`
	IsFree      bool             `json:"is_free"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	IsPublished bool             `json:"is_published"`
	CreatedAt   time.Time        `json:"created_at"`
}

type EventOrganizer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// EventWithOrganizer is the consumer-facing shape: the event plus the farmer
// hosting it.
type EventWithOrganizer struct {
	Event
	Organizer EventOrganizer `json:"organizer"`
}
