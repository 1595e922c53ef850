package model

// User represents a registered author.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Email        string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Username     string `json:"username" gorm:"size:255;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Timestamps
}
