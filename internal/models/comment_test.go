package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentConstructors(t *testing.T) {
	t.Parallel()

	t.Run("user comment", func(t *testing.T) {
		t.Parallel()
		comment := NewUserComment(1, 7, "Nice!")

		require.NotNil(t, comment.UserID)
		assert.Equal(t, uint(7), *comment.UserID)
		assert.Empty(t, comment.GuestName)
		assert.False(t, comment.IsGuest())

		author, ok := comment.Author().(UserAuthor)
		require.True(t, ok)
		assert.Equal(t, uint(7), author.UserID)
	})

	t.Run("guest comment", func(t *testing.T) {
		t.Parallel()
		comment := NewGuestComment(1, "Ann", "Nice!")

		assert.Nil(t, comment.UserID)
		assert.True(t, comment.IsGuest())

		author, ok := comment.Author().(GuestAuthor)
		require.True(t, ok)
		assert.Equal(t, "Ann", author.Name)
	})
}

func TestCommentAuthorName(t *testing.T) {
	t.Parallel()

	userID := uint(7)
	tests := []struct {
		name    string
		comment Comment
		want    string
	}{
		{
			name:    "user with loaded record",
			comment: Comment{UserID: &userID, User: &User{ID: 7, Name: "Alice"}},
			want:    "Alice",
		},
		{
			name:    "guest",
			comment: Comment{GuestName: "Ann"},
			want:    "Ann",
		},
		{
			// Legacy rows may predate the guest-name requirement; they
			// must still render.
			name:    "nameless guest falls back",
			comment: Comment{},
			want:    AnonymousAuthorName,
		},
		{
			name:    "user record not loaded falls back",
			comment: Comment{UserID: &userID},
			want:    AnonymousAuthorName,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.comment.AuthorName())
		})
	}
}
