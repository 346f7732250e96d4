package models

import (
	"time"
)

// PostLike is one row of the like ledger. The (post_id, user_id) pair is
// unique: existence of the row is the "liked" fact, not a counter.
type PostLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_likes_post_user" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_likes_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (PostLike) TableName() string {
	return "post_likes"
}

// PostView records that an authenticated user has seen a post. Anonymous
// views are never persisted; the unique pair makes repeat views no-ops.
type PostView struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_views_post_user" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_views_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (PostView) TableName() string {
	return "post_views"
}

// Follow is one row of the follow ledger: follower_id follows following_id.
// Self-follows are rejected at the service boundary, not here.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follows_pair" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follows_pair" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "user_follows"
}
