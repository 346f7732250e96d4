package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetVerificationRequests handles GET /api/admin/verification/requests
func (s *Server) GetVerificationRequests(c *fiber.Ctx) error {
	users, err := s.verificationService.ListRequests(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(users)
}

// ApproveVerification handles POST /api/admin/verification/requests/:id/approve
func (s *Server) ApproveVerification(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.verificationService.Approve(c.Context(), userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Verification approved"})
}

// RejectVerification handles POST /api/admin/verification/requests/:id/reject
func (s *Server) RejectVerification(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.verificationService.Reject(c.Context(), userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Verification rejected"})
}

// RunVerificationSweep handles POST /api/admin/verification/sweep.
// It runs the threshold sweep synchronously and reports how many accounts
// were newly flagged.
func (s *Server) RunVerificationSweep(c *fiber.Ctx) error {
	flagged, err := s.verificationService.Sweep(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"flagged": flagged})
}

// VerifyUser handles POST /api/admin/users/:id/verify
func (s *Server) VerifyUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.verificationService.SetVerified(c.Context(), userID, true); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User verified"})
}

// UnverifyUser handles POST /api/admin/users/:id/unverify
func (s *Server) UnverifyUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.verificationService.SetVerified(c.Context(), userID, false); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User verification removed"})
}
