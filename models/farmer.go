package models

import "time"

type Farmer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Location  string    `json:"location"`
	Bio       string    `json:"bio"`
	Rating    float64   `json:"rating"`
	Followers int       `json:"followers"`
	Products  int       `json:"products"`
	CreatedAt time.Time `json:"created_at"`
}
