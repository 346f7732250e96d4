package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gridrr/internal/config"
	"gridrr/internal/models"
	"gridrr/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newEngagementTestServer(postRepo *stubPostRepo, engagementRepo *stubEngagementRepo, userRepo *MockUserRepository) (*Server, *fiber.App) {
	s := &Server{
		config:            &config.Config{JWTSecret: "test_secret"},
		engagementService: service.NewEngagementService(engagementRepo, postRepo, userRepo),
	}
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", uint(1))
		return c.Next()
	})
	return s, app
}

func TestToggleLike_Handler(t *testing.T) {
	postRepo := &stubPostRepo{
		getByIDFn: func(_ context.Context, id uint, _ uint) (*models.Post, error) {
			if id == 404 {
				return nil, gorm.ErrRecordNotFound
			}
			return &models.Post{ID: id, UserID: 2}, nil
		},
	}
	liked := true
	engagementRepo := &stubEngagementRepo{
		toggleLikeFn: func(_ context.Context, userID, postID uint) (bool, error) {
			assert.Equal(t, uint(1), userID)
			assert.Equal(t, uint(5), postID)
			return liked, nil
		},
	}

	s, app := newEngagementTestServer(postRepo, engagementRepo, new(MockUserRepository))
	app.Post("/posts/:id/like", s.ToggleLike)

	t.Run("like then unlike", func(t *testing.T) {
		for _, want := range []bool{true, false} {
			liked = want

			req := httptest.NewRequest(http.MethodPost, "/posts/5/like", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var body map[string]bool
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			_ = resp.Body.Close()
			assert.Equal(t, want, body["liked"])
		}
	})

	t.Run("missing post", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/posts/404/like", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestToggleFollow_Handler(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", mock.Anything, uint(2)).Return(&models.User{ID: 2}, nil)
	userRepo.On("GetByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	following := true
	engagementRepo := &stubEngagementRepo{
		toggleFollowFn: func(_ context.Context, followerID, followingID uint) (bool, error) {
			assert.Equal(t, uint(1), followerID)
			assert.Equal(t, uint(2), followingID)
			return following, nil
		},
	}

	s, app := newEngagementTestServer(&stubPostRepo{}, engagementRepo, userRepo)
	app.Post("/users/:id/follow", s.ToggleFollow)

	t.Run("follow then unfollow", func(t *testing.T) {
		for _, want := range []bool{true, false} {
			following = want

			req := httptest.NewRequest(http.MethodPost, "/users/2/follow", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var body map[string]bool
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			_ = resp.Body.Close()
			assert.Equal(t, want, body["following"])
		}
	})

	t.Run("cannot follow self", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/users/1/follow", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing target", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/users/404/follow", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetFollowers_Handler(t *testing.T) {
	engagementRepo := &stubEngagementRepo{
		listFollowersFn: func(_ context.Context, userID uint) ([]*models.User, error) {
			assert.Equal(t, uint(2), userID)
			return []*models.User{{ID: 3}, {ID: 4}}, nil
		},
	}

	s, app := newEngagementTestServer(&stubPostRepo{}, engagementRepo, new(MockUserRepository))
	app.Get("/users/:id/followers", s.GetFollowers)

	req := httptest.NewRequest(http.MethodGet, "/users/2/followers", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var users []models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	require.Len(t, users, 2)
	assert.Equal(t, uint(3), users[0].ID)
}
