package service

import (
	"context"
	"errors"
	"strings"

	"gridrr/internal/models"
	"gridrr/internal/repository"
	"gridrr/internal/validation"

	"gorm.io/gorm"
)

// ProfileService reads and writes user profiles and annotates them with
// follow counts.
type ProfileService struct {
	profileRepo    repository.ProfileRepository
	engagementRepo repository.EngagementRepository
	userRepo       repository.UserRepository
}

type UpsertProfileInput struct {
	UserID       uint
	DisplayName  string
	ProfileType  string
	Website      string
	ContactEmail string
	Bio          string
	Expertise    string
	AvatarURL    string
	Twitter      string
	Instagram    string
	LinkedIn     string
	Facebook     string
}

func NewProfileService(
	profileRepo repository.ProfileRepository,
	engagementRepo repository.EngagementRepository,
	userRepo repository.UserRepository,
) *ProfileService {
	return &ProfileService{
		profileRepo:    profileRepo,
		engagementRepo: engagementRepo,
		userRepo:       userRepo,
	}
}

// GetProfile returns the user's profile with follower and following counts.
// currentUserID of 0 yields IsFollowing false.
func (s *ProfileService) GetProfile(ctx context.Context, userID, currentUserID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile", userID)
		}
		return nil, err
	}

	followers, err := s.engagementRepo.FollowerCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.engagementRepo.FollowingCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.FollowerCount = int(followers)
	profile.FollowingCount = int(following)

	if currentUserID != 0 && currentUserID != userID {
		isFollowing, err := s.engagementRepo.IsFollowing(ctx, currentUserID, userID)
		if err != nil {
			return nil, err
		}
		profile.IsFollowing = isFollowing
	}

	return profile, nil
}

// UpsertProfile creates or replaces the caller's profile.
func (s *ProfileService) UpsertProfile(ctx context.Context, in UpsertProfileInput) (*models.Profile, error) {
	const maxBioLen = 2000

	if strings.TrimSpace(in.DisplayName) == "" {
		return nil, models.NewValidationError("Display name is required")
	}
	if len(in.Bio) > maxBioLen {
		return nil, models.NewValidationError("Bio too long (max 2000 characters)")
	}
	if in.ContactEmail != "" {
		if err := validation.ValidateEmail(in.ContactEmail); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
	}

	profile := &models.Profile{
		UserID:       in.UserID,
		DisplayName:  strings.TrimSpace(in.DisplayName),
		ProfileType:  in.ProfileType,
		Website:      in.Website,
		ContactEmail: in.ContactEmail,
		Bio:          in.Bio,
		Expertise:    in.Expertise,
		AvatarURL:    in.AvatarURL,
		Twitter:      in.Twitter,
		Instagram:    in.Instagram,
		LinkedIn:     in.LinkedIn,
		Facebook:     in.Facebook,
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, in.UserID, in.UserID)
}
