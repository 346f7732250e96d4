package repository

import (
	"context"

	"gridrr/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	List(ctx context.Context, sort string, limit, offset int, currentUserID uint) ([]*models.Post, error)
	Search(ctx context.Context, query string, tags []string, sort string, limit, offset int, currentUserID uint) ([]*models.Post, error)
	Delete(ctx context.Context, id uint) error
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	var post models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// List returns a page of the feed ordered by sort. Ordering happens in SQL,
// before LIMIT, so page one of the popular sort is the most-viewed posts of
// the whole feed rather than of the newest page.
func (r *postRepository) List(ctx context.Context, sort string, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Order(feedOrder(sort)).
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Search filters by title substring and tag membership. A post matches the tag
// filter when it carries at least one of the requested tags. Sorting works the
// same as List, over the filtered set.
func (r *postRepository) Search(ctx context.Context, query string, tags []string, sort string, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	base := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User")

	if query != "" {
		base = base.Where("title ILIKE ?", "%"+query+"%")
	}
	if len(tags) > 0 {
		// jsonb_exists_any is the function form of the ?| operator; the
		// operator itself collides with the driver's placeholder syntax.
		base = base.Where("jsonb_exists_any(posts.tags::jsonb, ARRAY[?])", tags)
	}

	err := base.
		Order(feedOrder(sort)).
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// feedOrder maps a sort name onto an ORDER BY clause over the count aliases
// from applyPostDetails. Ties fall back to recency; unknown sorts are recency.
func feedOrder(sort string) string {
	switch sort {
	case "popular":
		return "views_count DESC, posts.created_at DESC"
	case "liked":
		return "likes_count DESC, posts.created_at DESC"
	default:
		return "posts.created_at DESC"
	}
}

// applyPostDetails adds subqueries to fetch counts and engagement status in a single query.
// Views count distinct users so repeated views by the same user count once.
func (r *postRepository) applyPostDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM post_likes WHERE post_likes.post_id = posts.id) as likes_count, " +
		"(SELECT COUNT(DISTINCT post_views.user_id) FROM post_views WHERE post_views.post_id = posts.id) as views_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+
			", EXISTS(SELECT 1 FROM post_likes WHERE post_likes.post_id = posts.id AND post_likes.user_id = ?) as liked"+
			", EXISTS(SELECT 1 FROM post_views WHERE post_views.post_id = posts.id AND post_views.user_id = ?) as viewed",
			currentUserID, currentUserID)
	}

	return db.Select(selectQuery + ", false as liked, false as viewed")
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Post{}, id).Error
}

func (r *postRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
