package model

// Comment represents a comment attached to an article. Both references are
// set at creation and never reassigned.
type Comment struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Content   string `json:"content" gorm:"type:text;not null"`
	ArticleID uint   `json:"article_id" gorm:"not null;index"`
	UserID    uint   `json:"user_id" gorm:"not null;index"`
	Timestamps

	// Relations
	Article Article `json:"-" gorm:"foreignKey:ArticleID"`
	User    User    `json:"-" gorm:"foreignKey:UserID"`
}
