package service

import (
	"context"
	"strings"
	"testing"

	"gridrr/internal/models"
	"gridrr/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	listByPostFn  func(context.Context, uint, int, int) ([]*models.Comment, error)
	countByPostFn func(context.Context, uint) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPostFn(ctx, postID)
}

var _ repository.CommentRepository = (*commentRepoStub)(nil)

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:      func(_ context.Context, _ *models.Comment) error { return nil },
		listByPostFn:  func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) { return nil, nil },
		countByPostFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

func TestCommentService_CreateComment(t *testing.T) {
	ctx := context.Background()

	t.Run("requires content", func(t *testing.T) {
		svc := NewCommentService(noopCommentRepo(), noopPostRepo())
		_, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, PostID: 5, Content: "   "})
		assertValidationError(t, err)
	})

	t.Run("rejects oversized content", func(t *testing.T) {
		svc := NewCommentService(noopCommentRepo(), noopPostRepo())
		_, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, PostID: 5, Content: strings.Repeat("a", 5001)})
		assertValidationError(t, err)
	})

	t.Run("missing post yields not found", func(t *testing.T) {
		posts := noopPostRepo()
		posts.getByIDFn = func(_ context.Context, _, _ uint) (*models.Post, error) {
			return nil, gorm.ErrRecordNotFound
		}
		svc := NewCommentService(noopCommentRepo(), posts)
		_, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, PostID: 99, Content: "great work"})
		assertNotFoundError(t, err)
	})

	t.Run("trims and persists", func(t *testing.T) {
		var created *models.Comment
		comments := noopCommentRepo()
		comments.createFn = func(_ context.Context, c *models.Comment) error {
			c.ID = 1
			created = c
			return nil
		}
		svc := NewCommentService(comments, noopPostRepo())

		comment, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, PostID: 5, Content: "  great work  "})
		require.NoError(t, err)
		assert.Equal(t, "great work", comment.Content)
		assert.Equal(t, created, comment)
	})
}

func TestCommentService_ListComments(t *testing.T) {
	ctx := context.Background()

	comments := noopCommentRepo()
	comments.listByPostFn = func(_ context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
		assert.Equal(t, uint(5), postID)
		assert.Equal(t, 10, limit)
		assert.Equal(t, 20, offset)
		return []*models.Comment{{ID: 1}, {ID: 2}}, nil
	}
	comments.countByPostFn = func(_ context.Context, _ uint) (int64, error) { return 42, nil }

	svc := NewCommentService(comments, noopPostRepo())
	out, err := svc.ListComments(ctx, 5, 10, 20)
	require.NoError(t, err)
	assert.Len(t, out.Comments, 2)
	assert.Equal(t, int64(42), out.Total)
}
