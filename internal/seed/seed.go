package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"gridrr/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	SkipBcrypt  bool
	DryRun      bool
	// MaxDays spreads post created_at timestamps over the past N days.
	MaxDays int
}

// Seed populates the database with demo users, profiles, posts and an
// engagement mesh of likes, views, follows and comments.
func Seed(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 25
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 120
	}

	if opts.ShouldClean {
		if err := Clean(db); err != nil {
			return fmt.Errorf("clean failed: %w", err)
		}
	}

	factory := NewFactory(db, opts)
	// #nosec G404: acceptable for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// deterministic admin account for local development
	admin, err := factory.CreateUser(func(u *models.User) {
		u.FirstName = "Grid"
		u.LastName = "Admin"
		u.Email = "admin@gridrr.local"
		u.IsAdmin = true
	})
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	if _, err := factory.CreateProfile(admin); err != nil {
		return fmt.Errorf("create admin profile: %w", err)
	}

	log.Printf("Seeding %d users...", opts.NumUsers)
	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if _, err := factory.CreateProfile(user); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		users = append(users, user)
	}

	log.Printf("Seeding %d posts...", opts.NumPosts)
	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		posts = append(posts, factory.BuildPost(users[r.Intn(len(users))]))
	}
	if err := factory.CreatePostsBatch(posts); err != nil {
		return fmt.Errorf("create posts: %w", err)
	}

	log.Printf("Seeding engagement mesh...")
	for _, post := range posts {
		// each post gets a handful of viewers, some of whom like or comment
		numViewers := r.Intn(len(users))
		for _, viewer := range pickUsers(r, users, numViewers) {
			if viewer.ID == post.UserID {
				continue
			}
			if err := factory.CreateView(viewer, post); err != nil {
				return fmt.Errorf("create view: %w", err)
			}
			if r.Float64() < 0.4 {
				if err := factory.CreateLike(viewer, post); err != nil {
					return fmt.Errorf("create like: %w", err)
				}
			}
			if r.Float64() < 0.15 {
				if _, err := factory.CreateComment(viewer, post); err != nil {
					return fmt.Errorf("create comment: %w", err)
				}
			}
		}
	}

	for _, follower := range users {
		numFollows := r.Intn(len(users) / 2)
		for _, target := range pickUsers(r, users, numFollows) {
			if target.ID == follower.ID {
				continue
			}
			if err := factory.CreateFollow(follower, target); err != nil {
				return fmt.Errorf("create follow: %w", err)
			}
		}
	}

	log.Printf("Seeding complete: %d users, %d posts", len(users), len(posts))
	return nil
}

// Clean removes all seeded data. Ledger tables go first to satisfy foreign keys.
func Clean(db *gorm.DB) error {
	tables := []string{
		"post_likes", "post_views", "user_follows", "comments",
		"posts", "profiles", "users",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clean %s: %w", table, err)
		}
	}
	return nil
}

// pickUsers returns up to n distinct users in shuffled order.
func pickUsers(r *rand.Rand, users []*models.User, n int) []*models.User {
	if n > len(users) {
		n = len(users)
	}
	shuffled := make([]*models.User, len(users))
	copy(shuffled, users)
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
