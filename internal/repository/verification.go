package repository

import (
	"context"

	"gridrr/internal/models"

	"gorm.io/gorm"
)

// EngagementTotals holds the per-user totals the verification sweep compares
// against its thresholds.
type EngagementTotals struct {
	Posts     int64 `gorm:"column:posts"`
	Followers int64 `gorm:"column:followers"`
	Likes     int64 `gorm:"column:likes"`
}

// VerificationRepository defines the interface for the verification ledger.
type VerificationRepository interface {
	ListUnflagged(ctx context.Context) ([]*models.User, error)
	Totals(ctx context.Context, userID uint) (*EngagementTotals, error)
	MarkRequested(ctx context.Context, userID uint) (bool, error)
	ListRequests(ctx context.Context) ([]*models.User, error)
	Approve(ctx context.Context, userID uint) error
	Reject(ctx context.Context, userID uint) error
	SetVerified(ctx context.Context, userID uint, verified bool) error
}

type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository creates a new verification repository
func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

// ListUnflagged returns users not yet verified and not yet flagged for review.
func (r *verificationRepository) ListUnflagged(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Where("verified = ? AND verification_requested = ?", false, false).
		Find(&users).Error
	return users, err
}

// Totals computes the user's post count, follower count and the likes
// received across all of their posts in a single query.
func (r *verificationRepository) Totals(ctx context.Context, userID uint) (*EngagementTotals, error) {
	var totals EngagementTotals
	err := r.db.WithContext(ctx).Raw(
		`SELECT
		   (SELECT COUNT(*) FROM posts WHERE posts.user_id = ?) as posts,
		   (SELECT COUNT(*) FROM user_follows WHERE user_follows.following_id = ?) as followers,
		   (SELECT COUNT(*) FROM post_likes
		      JOIN posts ON posts.id = post_likes.post_id
		     WHERE posts.user_id = ?) as likes`,
		userID, userID, userID,
	).Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

// MarkRequested latches verification_requested for the user. The WHERE guard
// keeps the flag one-way and makes replays a no-op; the return value reports
// whether this call flipped the flag.
func (r *verificationRepository) MarkRequested(ctx context.Context, userID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND verification_requested = ? AND verified = ?", userID, false, false).
		Update("verification_requested", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *verificationRepository) ListRequests(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Where("verification_requested = ? AND verified = ?", true, false).
		Order("updated_at DESC").
		Find(&users).Error
	return users, err
}

func (r *verificationRepository) Approve(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"verified":               true,
			"verification_requested": false,
		}).Error
}

func (r *verificationRepository) Reject(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("verification_requested", false).Error
}

func (r *verificationRepository) SetVerified(ctx context.Context, userID uint, verified bool) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("verified", verified).Error
}
