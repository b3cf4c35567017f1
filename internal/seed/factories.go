// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"quill/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the plaintext password every seeded user gets.
const DefaultPassword = "password"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
	// MaxDays bounds how far in the past created_at timestamps spread.
	MaxDays int
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:      db,
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
		MaxDays: 90,
	}
}

// pastTime returns a random timestamp within the last MaxDays days.
func (f *Factory) pastTime() time.Time {
	daysBack := f.rand.Intn(f.MaxDays)
	hoursBack := f.rand.Intn(24)
	minsBack := f.rand.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}

// CreateUser persists a user with a fake name and email. All seeded users
// share DefaultPassword so any of them can be logged in as.
func (f *Factory) CreateUser() (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    fmt.Sprintf("%s-%s", gofakeit.UUID()[:8], gofakeit.Email()),
		Password: string(hashed),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost persists a post owned by the given user, created at a random
// point in the past.
func (f *Factory) CreatePost(user *models.User) (*models.Post, error) {
	post := &models.Post{
		Title:     gofakeit.Sentence(5),
		Content:   gofakeit.Paragraph(2, 4, 8, "\n\n"),
		UserID:    user.ID,
		CreatedAt: f.pastTime(),
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateUserComment persists a comment authored by the given user.
func (f *Factory) CreateUserComment(post *models.Post, user *models.User) (*models.Comment, error) {
	comment := models.NewUserComment(post.ID, user.ID, gofakeit.Sentence(8))
	comment.CreatedAt = f.pastTime()
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateGuestComment persists a comment from a fake-named guest.
func (f *Factory) CreateGuestComment(post *models.Post) (*models.Comment, error) {
	comment := models.NewGuestComment(post.ID, gofakeit.Name(), gofakeit.Sentence(8))
	comment.CreatedAt = f.pastTime()
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
