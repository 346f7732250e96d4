package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gridrr/internal/config"
	"gridrr/internal/models"
	"gridrr/internal/repository"
	"gridrr/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVerificationRepo implements repository.VerificationRepository with overridable functions.
type stubVerificationRepo struct {
	listUnflaggedFn func(ctx context.Context) ([]*models.User, error)
	totalsFn        func(ctx context.Context, userID uint) (*repository.EngagementTotals, error)
	markRequestedFn func(ctx context.Context, userID uint) (bool, error)
	listRequestsFn  func(ctx context.Context) ([]*models.User, error)
	approveFn       func(ctx context.Context, userID uint) error
	rejectFn        func(ctx context.Context, userID uint) error
	setVerifiedFn   func(ctx context.Context, userID uint, verified bool) error
}

var _ repository.VerificationRepository = (*stubVerificationRepo)(nil)

func (s *stubVerificationRepo) ListUnflagged(ctx context.Context) ([]*models.User, error) {
	return s.listUnflaggedFn(ctx)
}

func (s *stubVerificationRepo) Totals(ctx context.Context, userID uint) (*repository.EngagementTotals, error) {
	return s.totalsFn(ctx, userID)
}

func (s *stubVerificationRepo) MarkRequested(ctx context.Context, userID uint) (bool, error) {
	return s.markRequestedFn(ctx, userID)
}

func (s *stubVerificationRepo) ListRequests(ctx context.Context) ([]*models.User, error) {
	return s.listRequestsFn(ctx)
}

func (s *stubVerificationRepo) Approve(ctx context.Context, userID uint) error {
	return s.approveFn(ctx, userID)
}

func (s *stubVerificationRepo) Reject(ctx context.Context, userID uint) error {
	return s.rejectFn(ctx, userID)
}

func (s *stubVerificationRepo) SetVerified(ctx context.Context, userID uint, verified bool) error {
	return s.setVerifiedFn(ctx, userID, verified)
}

func newVerificationTestServer(repo repository.VerificationRepository) (*Server, *fiber.App) {
	s := &Server{
		config:              &config.Config{JWTSecret: "test_secret"},
		verificationService: service.NewVerificationService(repo),
	}
	app := fiber.New()
	return s, app
}

func TestGetVerificationRequests_Handler(t *testing.T) {
	repo := &stubVerificationRepo{
		listRequestsFn: func(_ context.Context) ([]*models.User, error) {
			return []*models.User{
				{ID: 1, VerificationRequested: true},
				{ID: 2, VerificationRequested: true},
			}, nil
		},
	}
	s, app := newVerificationTestServer(repo)
	app.Get("/requests", s.GetVerificationRequests)

	req := httptest.NewRequest(http.MethodGet, "/requests", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var users []models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	assert.Len(t, users, 2)
}

func TestApproveAndRejectVerification_Handler(t *testing.T) {
	var approved, rejected uint
	repo := &stubVerificationRepo{
		approveFn: func(_ context.Context, userID uint) error {
			approved = userID
			return nil
		},
		rejectFn: func(_ context.Context, userID uint) error {
			rejected = userID
			return nil
		},
	}
	s, app := newVerificationTestServer(repo)
	app.Post("/requests/:id/approve", s.ApproveVerification)
	app.Post("/requests/:id/reject", s.RejectVerification)

	req := httptest.NewRequest(http.MethodPost, "/requests/7/approve", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, uint(7), approved)

	req = httptest.NewRequest(http.MethodPost, "/requests/8/reject", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, uint(8), rejected)
}

func TestRunVerificationSweep_Handler(t *testing.T) {
	repo := &stubVerificationRepo{
		listUnflaggedFn: func(_ context.Context) ([]*models.User, error) {
			return []*models.User{{ID: 1}, {ID: 2}}, nil
		},
		totalsFn: func(_ context.Context, userID uint) (*repository.EngagementTotals, error) {
			if userID == 1 {
				return &repository.EngagementTotals{Posts: 150, Followers: 2000, Likes: 5000}, nil
			}
			return &repository.EngagementTotals{Posts: 3, Followers: 10, Likes: 40}, nil
		},
		markRequestedFn: func(_ context.Context, userID uint) (bool, error) {
			assert.Equal(t, uint(1), userID)
			return true, nil
		},
	}
	s, app := newVerificationTestServer(repo)
	app.Post("/sweep", s.RunVerificationSweep)

	req := httptest.NewRequest(http.MethodPost, "/sweep", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body["flagged"])
}

func TestVerifyAndUnverifyUser_Handler(t *testing.T) {
	type call struct {
		userID   uint
		verified bool
	}
	var got call
	repo := &stubVerificationRepo{
		setVerifiedFn: func(_ context.Context, userID uint, verified bool) error {
			got = call{userID, verified}
			return nil
		},
	}
	s, app := newVerificationTestServer(repo)
	app.Post("/users/:id/verify", s.VerifyUser)
	app.Post("/users/:id/unverify", s.UnverifyUser)

	req := httptest.NewRequest(http.MethodPost, "/users/3/verify", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, call{3, true}, got)

	req = httptest.NewRequest(http.MethodPost, "/users/3/unverify", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, call{3, false}, got)
}
