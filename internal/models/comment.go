package models

import (
	"time"

	"gorm.io/gorm"
)

// AnonymousAuthorName is the render-time fallback for guest comments that
// reached storage without a name. The creation path never produces such
// rows; the fallback only protects rendering of legacy data.
const AnonymousAuthorName = "Anonymous"

// Author identifies who wrote a comment: exactly one of UserAuthor or
// GuestAuthor. The Comment constructors make this a construction-time
// invariant rather than a pair of nullable columns to check at runtime.
type Author interface {
	isAuthor()
}

// UserAuthor marks a comment written by an authenticated user.
type UserAuthor struct {
	UserID uint
}

// GuestAuthor marks a comment written by an unauthenticated caller,
// identified only by a free-text name.
type GuestAuthor struct {
	Name string
}

func (UserAuthor) isAuthor()  {}
func (GuestAuthor) isAuthor() {}

// Comment is a comment on a post, authored either by a user or a guest.
// At the storage level authorship is a nullable user id plus a guest name;
// use NewUserComment / NewGuestComment so exactly one of them is ever set.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Body      string         `gorm:"column:comment;not null" json:"comment"`
	PostID    uint           `gorm:"not null" json:"post_id"`
	UserID    *uint          `json:"user_id"`
	GuestName string         `json:"guest_name,omitempty"`
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Post      *Post          `gorm:"foreignKey:PostID" json:"post,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// NewUserComment builds a comment authored by the given user. Any guest name
// supplied by the caller is discarded, never stored.
func NewUserComment(postID, userID uint, body string) *Comment {
	return &Comment{
		Body:   body,
		PostID: postID,
		UserID: &userID,
	}
}

// NewGuestComment builds a comment authored by a named guest.
func NewGuestComment(postID uint, guestName, body string) *Comment {
	return &Comment{
		Body:      body,
		PostID:    postID,
		GuestName: guestName,
	}
}

// Author returns the comment's authorship variant.
func (c *Comment) Author() Author {
	if c.UserID != nil {
		return UserAuthor{UserID: *c.UserID}
	}
	return GuestAuthor{Name: c.GuestName}
}

// IsGuest reports whether the comment was written by a guest.
func (c *Comment) IsGuest() bool {
	return c.UserID == nil
}

// AuthorName renders the display name of the comment's author: the user's
// name, the guest name, or AnonymousAuthorName for nameless legacy rows.
func (c *Comment) AuthorName() string {
	if c.UserID != nil && c.User != nil {
		return c.User.Name
	}
	if c.GuestName != "" {
		return c.GuestName
	}
	return AnonymousAuthorName
}
