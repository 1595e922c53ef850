package model

import "time"

// Timestamps carries the store-assigned audit columns shared by every
// entity. Embedded rather than inherited so each model stays a plain struct.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
