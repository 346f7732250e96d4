package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryDryRun(t *testing.T) {
	factory := NewFactory(nil, Options{DryRun: true, SkipBcrypt: true})

	user, err := factory.CreateUser()
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEmpty(t, user.Email)
	assert.True(t, user.AcceptedTerms)

	profile, err := factory.CreateProfile(user)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)
	assert.NotEmpty(t, profile.DisplayName)

	post, err := factory.CreatePost(user)
	require.NoError(t, err)
	assert.Equal(t, user.ID, post.UserID)
	assert.NotEmpty(t, post.Title)
	assert.NotEmpty(t, post.Tags)
	assert.NotEmpty(t, post.ImageURLs)
}

func TestBuildPostTagsAreDistinct(t *testing.T) {
	factory := NewFactory(nil, Options{DryRun: true})
	user, err := factory.CreateUser()
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		post := factory.BuildPost(user)
		seen := map[string]bool{}
		for _, tag := range post.Tags {
			assert.False(t, seen[tag], "duplicate tag %q", tag)
			seen[tag] = true
		}
		require.NotEmpty(t, post.ImageURLs)
	}
}

func TestSeedDryRun(t *testing.T) {
	err := Seed(nil, Options{DryRun: true, SkipBcrypt: true, NumUsers: 5, NumPosts: 10})
	require.NoError(t, err)
}
