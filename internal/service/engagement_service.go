package service

import (
	"context"
	"errors"

	"gridrr/internal/middleware"
	"gridrr/internal/models"
	"gridrr/internal/repository"

	"gorm.io/gorm"
)

// EngagementService orchestrates the view, like and follow ledgers.
type EngagementService struct {
	engagementRepo repository.EngagementRepository
	postRepo       repository.PostRepository
	userRepo       repository.UserRepository
}

func NewEngagementService(
	engagementRepo repository.EngagementRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *EngagementService {
	return &EngagementService{
		engagementRepo: engagementRepo,
		postRepo:       postRepo,
		userRepo:       userRepo,
	}
}

// ToggleLike flips the user's like on the post and returns the resulting state.
func (s *EngagementService) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, models.NewNotFoundError("Post", postID)
		}
		return false, err
	}

	liked, err := s.engagementRepo.ToggleLike(ctx, userID, postID)
	if err != nil {
		return false, err
	}

	outcome := "unliked"
	if liked {
		outcome = "liked"
	}
	middleware.EngagementEvents.WithLabelValues("like", outcome).Inc()
	return liked, nil
}

// ToggleFollow flips the follow edge from the user to the target and returns
// the resulting state. Users cannot follow themselves.
func (s *EngagementService) ToggleFollow(ctx context.Context, userID, targetID uint) (bool, error) {
	if userID == targetID {
		return false, models.NewValidationError("You cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, models.NewNotFoundError("User", targetID)
		}
		return false, err
	}

	following, err := s.engagementRepo.ToggleFollow(ctx, userID, targetID)
	if err != nil {
		return false, err
	}

	outcome := "unfollowed"
	if following {
		outcome = "followed"
	}
	middleware.EngagementEvents.WithLabelValues("follow", outcome).Inc()
	return following, nil
}

// ListFollowers returns the users following userID, newest edges first.
func (s *EngagementService) ListFollowers(ctx context.Context, userID uint) ([]*models.User, error) {
	return s.engagementRepo.ListFollowers(ctx, userID)
}

// ListFollowing returns the users userID follows, newest edges first.
func (s *EngagementService) ListFollowing(ctx context.Context, userID uint) ([]*models.User, error) {
	return s.engagementRepo.ListFollowing(ctx, userID)
}
