package model

// Article represents a published post. UserID is set at creation and never
// reassigned.
type Article struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Title   string `json:"title" gorm:"size:255;not null"`
	Content string `json:"content" gorm:"type:text;not null"`
	UserID  uint   `json:"user_id" gorm:"not null;index"`
	Timestamps

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}
