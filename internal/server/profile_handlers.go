package server

import (
	"gridrr/internal/models"
	"gridrr/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/profiles/:id
func (s *Server) GetProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	currentUserID, _ := s.optionalUserID(c)

	profile, err := s.profileService.GetProfile(ctx, userID, currentUserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(profile)
}

// UpsertMyProfile handles PUT /api/profiles/me
func (s *Server) UpsertMyProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
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
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.UpsertProfile(ctx, service.UpsertProfileInput{
		UserID:       userID,
		DisplayName:  req.DisplayName,
		ProfileType:  req.ProfileType,
		Website:      req.Website,
		ContactEmail: req.ContactEmail,
		Bio:          req.Bio,
		Expertise:    req.Expertise,
		AvatarURL:    req.AvatarURL,
		Twitter:      req.Twitter,
		Instagram:    req.Instagram,
		LinkedIn:     req.LinkedIn,
		Facebook:     req.Facebook,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(profile)
}
