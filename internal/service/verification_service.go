package service

import (
	"context"
	"time"

	"log/slog"

	"gridrr/internal/middleware"
	"gridrr/internal/models"
	"gridrr/internal/repository"
)

// Verification thresholds. A user qualifies for review once all three are met.
const (
	VerificationMinPosts     = 100
	VerificationMinFollowers = 1000
	VerificationMinLikes     = 1000
)

// VerificationService flags qualifying users for verification review and
// serves the admin review queue.
type VerificationService struct {
	verificationRepo repository.VerificationRepository
}

func NewVerificationService(verificationRepo repository.VerificationRepository) *VerificationService {
	return &VerificationService{verificationRepo: verificationRepo}
}

// Sweep scans all unverified, unflagged users and latches
// verification_requested for those meeting every threshold. Re-runs are
// idempotent: already-flagged users are excluded from the scan and the latch
// update guards on the current flag state. Returns the number of users newly
// flagged.
func (s *VerificationService) Sweep(ctx context.Context) (int, error) {
	start := time.Now()
	defer func() {
		middleware.VerificationSweepDuration.Observe(time.Since(start).Seconds())
	}()

	users, err := s.verificationRepo.ListUnflagged(ctx)
	if err != nil {
		return 0, err
	}

	flagged := 0
	for _, user := range users {
		totals, err := s.verificationRepo.Totals(ctx, user.ID)
		if err != nil {
			return flagged, err
		}

		if totals.Posts < VerificationMinPosts ||
			totals.Followers < VerificationMinFollowers ||
			totals.Likes < VerificationMinLikes {
			continue
		}

		flipped, err := s.verificationRepo.MarkRequested(ctx, user.ID)
		if err != nil {
			return flagged, err
		}
		if flipped {
			flagged++
			middleware.VerificationFlagged.Inc()
			middleware.Logger.InfoContext(ctx, "user flagged for verification review",
				slog.Any("user_id", user.ID),
				slog.Int64("posts", totals.Posts),
				slog.Int64("followers", totals.Followers),
				slog.Int64("likes", totals.Likes),
			)
		}
	}

	return flagged, nil
}

// ListRequests returns users awaiting verification review.
func (s *VerificationService) ListRequests(ctx context.Context) ([]*models.User, error) {
	return s.verificationRepo.ListRequests(ctx)
}

// Approve verifies the user and clears the pending request.
func (s *VerificationService) Approve(ctx context.Context, userID uint) error {
	return s.verificationRepo.Approve(ctx, userID)
}

// Reject clears the pending request without verifying. The sweep may flag the
// user again on a later run.
func (s *VerificationService) Reject(ctx context.Context, userID uint) error {
	return s.verificationRepo.Reject(ctx, userID)
}

// SetVerified sets the verified flag directly, bypassing the request queue.
func (s *VerificationService) SetVerified(ctx context.Context, userID uint, verified bool) error {
	return s.verificationRepo.SetVerified(ctx, userID, verified)
}
