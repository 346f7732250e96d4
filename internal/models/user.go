// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account.
type User struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	FirstName     string `gorm:"not null" json:"first_name"`
	LastName      string `gorm:"not null" json:"last_name"`
	Email         string `gorm:"unique;not null" json:"email"`
	Password      string `gorm:"not null" json:"-"`
	AcceptedTerms bool   `json:"accepted_terms"`
	IsAdmin       bool   `gorm:"default:false" json:"is_admin"`

	// Verified and VerificationRequested are mutated only by the verification
	// sweep and by admin verification endpoints.
	Verified              bool `gorm:"default:false" json:"verified"`
	VerificationRequested bool `gorm:"default:false" json:"verification_requested"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Profile *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Posts   []Post   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`

	// Everything a user touched cascades away with the account.
	Likes     []PostLike `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Views     []PostView `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Comments  []Comment  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Following []Follow   `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Followers []Follow   `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
