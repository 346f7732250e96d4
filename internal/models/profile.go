package models

import (
	"time"
)

// Profile holds the public display metadata for a user. There is at most one
// profile per user; writes go through an upsert keyed on user_id.
type Profile struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UserID       uint   `gorm:"not null;uniqueIndex" json:"user_id"`
	DisplayName  string `json:"display_name"`
	ProfileType  string `json:"profile_type"`
	Website      string `json:"website"`
	ContactEmail string `json:"contact_email"`
	Bio          string `json:"bio"`
	Expertise    string `json:"expertise"`
	AvatarURL    string `json:"avatar_url"`
	Twitter      string `json:"twitter"`
	Instagram    string `json:"instagram"`
	LinkedIn     string `json:"linkedin"`
	Facebook     string `json:"facebook"`

	// FollowerCount, FollowingCount and IsFollowing are computed at query time.
	FollowerCount  int  `gorm:"-" json:"follower_count"`
	FollowingCount int  `gorm:"-" json:"following_count"`
	IsFollowing    bool `gorm:"-" json:"is_following"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Profile) TableName() string {
	return "profiles"
}
