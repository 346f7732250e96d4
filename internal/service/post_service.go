package service

import (
	"context"
	"net/url"
	"strings"

	"gridrr/internal/middleware"
	"gridrr/internal/models"
	"gridrr/internal/repository"

	"log/slog"
)

type PostService struct {
	postRepo       repository.PostRepository
	engagementRepo repository.EngagementRepository
}

type CreatePostInput struct {
	UserID    uint
	Title     string
	Tags      []string
	ImageURLs []string
}

type FeedInput struct {
	Query         string
	Tags          []string
	Sort          string
	Limit         int
	Offset        int
	CurrentUserID uint
}

type DeletePostInput struct {
	UserID  uint
	PostID  uint
	IsAdmin bool
}

func NewPostService(
	postRepo repository.PostRepository,
	engagementRepo repository.EngagementRepository,
) *PostService {
	return &PostService{
		postRepo:       postRepo,
		engagementRepo: engagementRepo,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	const maxTitleLen = 300

	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}

	images := normalizeList(in.ImageURLs)
	if len(images) == 0 {
		return nil, models.NewValidationError("At least one image is required")
	}
	for _, img := range images {
		if _, err := url.ParseRequestURI(img); err != nil {
			return nil, models.NewValidationError("image_urls must be valid URLs")
		}
	}

	post := &models.Post{
		UserID:    in.UserID,
		Title:     strings.TrimSpace(in.Title),
		Tags:      normalizeList(in.Tags),
		ImageURLs: images,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

// GetPost returns the post with its derived counts and viewer flags. For
// authenticated viewers the read also records a view, before the aggregate
// load so the returned counts include it. Anonymous reads record nothing.
func (s *PostService) GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	if currentUserID != 0 {
		// A failed view write never fails the read. A view against a missing
		// post fails on the foreign key and the load below reports NotFound.
		if err := s.engagementRepo.RecordView(ctx, id, currentUserID); err != nil {
			middleware.Logger.WarnContext(ctx, "failed to record post view",
				slog.Any("post_id", id), slog.String("error", err.Error()))
		}
	}

	post, err := s.postRepo.GetByID(ctx, id, currentUserID)
	if err != nil {
		return nil, err
	}

	if currentUserID != 0 && currentUserID != post.UserID {
		following, err := s.engagementRepo.IsFollowing(ctx, currentUserID, post.UserID)
		if err != nil {
			return nil, err
		}
		post.FollowingAuthor = following
	}

	return post, nil
}

func (s *PostService) GetUserPosts(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
}

// ListFeed returns a page of the feed. Filters and ordering both push down to
// the storage layer, so the popular and liked sorts rank the whole filtered
// set before pagination. Unrecognized sort names fall back to recency.
func (s *PostService) ListFeed(ctx context.Context, in FeedInput) ([]*models.Post, error) {
	tags := normalizeList(in.Tags)

	sort := in.Sort
	switch sort {
	case "popular", "liked":
	default:
		sort = ""
	}

	if in.Query != "" || len(tags) > 0 {
		return s.postRepo.Search(ctx, in.Query, tags, sort, in.Limit, in.Offset, in.CurrentUserID)
	}
	return s.postRepo.List(ctx, sort, in.Limit, in.Offset, in.CurrentUserID)
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return err
	}

	if post.UserID != in.UserID && !in.IsAdmin {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}

	return s.postRepo.Delete(ctx, in.PostID)
}

// normalizeList trims entries and drops empties and duplicates, keeping first
// occurrence order.
func normalizeList(items []string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, item := range items {
		v := strings.TrimSpace(item)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
