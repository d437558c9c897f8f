package models

import "time"

type FeedPost struct {
	ID        string    `json:"id"`
	FarmerID  string    `json:"farmer_id"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	ProductID *string   `json:"product_id,omitempty"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	Shares    int       `json:"shares"`
	CreatedAt time.Time `json:"created_at"`
}

type FeedUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Location string `json:"location"`
}

// FeedEntry is a post joined with its author and the optionally attached
// product, shaped the way the consumer home feed renders it.
type FeedEntry struct {
	ID        string    `json:"id"`
	User      FeedUser  `json:"user"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	Timestamp time.Time `json:"timestamp"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	Shares    int       `json:"shares"`
	Product   *Product  `json:"product,omitempty"`
}
