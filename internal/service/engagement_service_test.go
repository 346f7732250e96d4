package service

import (
	"context"
	"testing"

	"gridrr/internal/models"
	"gridrr/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	updateFn        func(context.Context, *models.User) error
	existsByEmailFn func(context.Context, string) (bool, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.existsByEmailFn(ctx, email)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		existsByEmailFn: func(_ context.Context, _ string) (bool, error) { return false, nil },
	}
}

var _ repository.UserRepository = (*userRepoStub)(nil)

func TestEngagementService_ToggleLike(t *testing.T) {
	ctx := context.Background()

	t.Run("missing post yields not found", func(t *testing.T) {
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, _, _ uint) (*models.Post, error) {
			return nil, gorm.ErrRecordNotFound
		}
		svc := NewEngagementService(noopEngagementRepo(), repo, noopUserRepo())

		_, err := svc.ToggleLike(ctx, 2, 99)
		assertNotFoundError(t, err)
	})

	t.Run("reports the resulting state", func(t *testing.T) {
		state := false
		eng := noopEngagementRepo()
		eng.toggleLikeFn = func(_ context.Context, _, _ uint) (bool, error) {
			state = !state
			return state, nil
		}
		svc := NewEngagementService(eng, noopPostRepo(), noopUserRepo())

		liked, err := svc.ToggleLike(ctx, 2, 5)
		require.NoError(t, err)
		assert.True(t, liked)

		liked, err = svc.ToggleLike(ctx, 2, 5)
		require.NoError(t, err)
		assert.False(t, liked)
	})
}

func TestEngagementService_ToggleFollow(t *testing.T) {
	ctx := context.Background()

	t.Run("self follow is rejected before any storage call", func(t *testing.T) {
		eng := noopEngagementRepo()
		eng.toggleFollowFn = func(_ context.Context, _, _ uint) (bool, error) {
			t.Fatal("ToggleFollow must not reach storage for a self follow")
			return false, nil
		}
		users := noopUserRepo()
		users.getByIDFn = func(_ context.Context, _ uint) (*models.User, error) {
			t.Fatal("user lookup must not happen for a self follow")
			return nil, nil
		}
		svc := NewEngagementService(eng, noopPostRepo(), users)

		_, err := svc.ToggleFollow(ctx, 2, 2)
		assertValidationError(t, err)
	})

	t.Run("missing target yields not found", func(t *testing.T) {
		users := noopUserRepo()
		users.getByIDFn = func(_ context.Context, _ uint) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		}
		svc := NewEngagementService(noopEngagementRepo(), noopPostRepo(), users)

		_, err := svc.ToggleFollow(ctx, 2, 99)
		assertNotFoundError(t, err)
	})

	t.Run("reports the resulting state", func(t *testing.T) {
		state := false
		eng := noopEngagementRepo()
		eng.toggleFollowFn = func(_ context.Context, _, _ uint) (bool, error) {
			state = !state
			return state, nil
		}
		svc := NewEngagementService(eng, noopPostRepo(), noopUserRepo())

		following, err := svc.ToggleFollow(ctx, 2, 7)
		require.NoError(t, err)
		assert.True(t, following)

		following, err = svc.ToggleFollow(ctx, 2, 7)
		require.NoError(t, err)
		assert.False(t, following)
	})
}
