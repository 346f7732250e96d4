package models

import (
	"time"
)

// Post represents a published design shot. Tags and image URLs are stored as
// serialized JSON arrays (see StringList); all engagement counts are derived
// from the ledger tables at query time, never persisted.
type Post struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	Title     string     `gorm:"not null" json:"title"`
	Tags      StringList `gorm:"type:text" json:"tags"`
	ImageURLs StringList `gorm:"type:text;column:image_urls" json:"image_urls"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	// Ledger rows and comments die with the post.
	Likes    []PostLike `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Views    []PostView `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Comments []Comment  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`

	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes"`
	// ViewsCount is not persisted; computed at query time (distinct viewers)
	ViewsCount int `gorm:"->" json:"views"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked bool `gorm:"->" json:"liked"`
	// Viewed indicates whether the current requesting user viewed this post (computed)
	Viewed bool `gorm:"->" json:"viewed"`
	// FollowingAuthor indicates whether the current requesting user follows the author.
	// Populated by the service layer on single-post reads.
	FollowingAuthor bool `gorm:"-" json:"following_author"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Post) TableName() string {
	return "posts"
}
