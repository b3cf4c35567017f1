package seed

import (
	"math/rand"

	"quill/internal/models"
	"quill/internal/observability"

	"gorm.io/gorm"
)

// Options controls how much data Run creates.
type Options struct {
	Users int
	Posts int
	// CommentsPerPost is the upper bound; each post gets 0..N comments,
	// roughly half of them guest comments.
	CommentsPerPost int
}

// DefaultOptions matches a small demo dataset.
func DefaultOptions() Options {
	return Options{Users: 10, Posts: 40, CommentsPerPost: 6}
}

// Seeder populates the database with demo users, posts, and comments.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded content. Comments go first so the post
// delete never leaves orphans behind.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{&models.Comment{}, &models.Post{}, &models.User{}} {
		if err := s.db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// Run creates opts.Users users, opts.Posts posts spread across them, and a
// mix of user and guest comments on each post.
func (s *Seeder) Run(opts Options) error {
	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}

	var comments int
	for i := 0; i < opts.Posts; i++ {
		owner := users[rand.Intn(len(users))]
		post, err := s.factory.CreatePost(owner)
		if err != nil {
			return err
		}

		for j := rand.Intn(opts.CommentsPerPost + 1); j > 0; j-- {
			if rand.Intn(2) == 0 {
				_, err = s.factory.CreateGuestComment(post)
			} else {
				_, err = s.factory.CreateUserComment(post, users[rand.Intn(len(users))])
			}
			if err != nil {
				return err
			}
			comments++
		}
	}

	observability.Logger.Info("seeding complete",
		"users", opts.Users, "posts", opts.Posts, "comments", comments)
	return nil
}
