package server

import (
	"fmt"
	"net/http"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment_Guest(t *testing.T) {
	t.Parallel()

	app, s := newTestApp(t)
	owner := createTestUser(t, s, "Alice", "alice@example.com")
	post := &models.Post{Title: "A post", Content: "content long enough", UserID: owner.ID}
	require.NoError(t, s.db.Create(post).Error)
	path := fmt.Sprintf("/api/posts/%d/comments", post.ID)

	t.Run("guest with name is accepted", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, path,
			map[string]string{"comment": "Nice!", "guest_name": "Ann"}, "")
		require.Equal(t, http.StatusCreated, status)

		data := body["data"].(map[string]any)
		assert.Equal(t, "Nice!", data["comment"])
		author := data["author"].(map[string]any)
		assert.Equal(t, "Ann", author["name"])
		assert.Equal(t, true, author["is_guest"])
		assert.Nil(t, author["user_id"])
	})

	t.Run("guest without name fails on guest_name", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, path,
			map[string]string{"comment": "Nice!"}, "")
		require.Equal(t, http.StatusUnprocessableEntity, status)

		fields := body["errors"].(map[string]any)
		assert.Contains(t, fields, "guest_name")
	})

	t.Run("missing post is 404", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPost, "/api/posts/9999/comments",
			map[string]string{"comment": "Nice!", "guest_name": "Ann"}, "")
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestCreateComment_Authenticated(t *testing.T) {
	t.Parallel()

	app, s := newTestApp(t)
	owner := createTestUser(t, s, "Alice", "alice@example.com")
	commenter := createTestUser(t, s, "Bob", "bob@example.com")
	post := &models.Post{Title: "A post", Content: "content long enough", UserID: owner.ID}
	require.NoError(t, s.db.Create(post).Error)
	path := fmt.Sprintf("/api/posts/%d/comments", post.ID)
	token := tokenFor(t, s, commenter)

	t.Run("no guest name needed", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, path,
			map[string]string{"comment": "Nice!"}, token)
		require.Equal(t, http.StatusCreated, status)

		data := body["data"].(map[string]any)
		author := data["author"].(map[string]any)
		assert.Equal(t, false, author["is_guest"])
		assert.EqualValues(t, commenter.ID, author["user_id"])
		assert.Equal(t, "Bob", author["name"])
	})

	t.Run("supplied guest name is discarded", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, path,
			map[string]string{"comment": "Nice!", "guest_name": "Impostor"}, token)
		require.Equal(t, http.StatusCreated, status)

		data := body["data"].(map[string]any)
		author := data["author"].(map[string]any)
		assert.Equal(t, false, author["is_guest"])
		assert.Equal(t, "Bob", author["name"])

		var stored models.Comment
		require.NoError(t, s.db.First(&stored, uint(data["id"].(float64))).Error)
		assert.Empty(t, stored.GuestName)
	})

	t.Run("invalid token is treated as guest", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, path,
			map[string]string{"comment": "Nice!"}, "garbage-token")
		require.Equal(t, http.StatusUnprocessableEntity, status)

		fields := body["errors"].(map[string]any)
		assert.Contains(t, fields, "guest_name")
	})
}

func TestGetComments(t *testing.T) {
	t.Parallel()

	app, s := newTestApp(t)
	owner := createTestUser(t, s, "Alice", "alice@example.com")
	post := &models.Post{Title: "A post", Content: "content long enough", UserID: owner.ID}
	require.NoError(t, s.db.Create(post).Error)
	require.NoError(t, s.db.Create(models.NewGuestComment(post.ID, "Ann", "First comment")).Error)
	require.NoError(t, s.db.Create(models.NewUserComment(post.ID, owner.ID, "Second comment")).Error)

	status, body := doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/posts/%d/comments", post.ID), nil, "")
	require.Equal(t, http.StatusOK, status)

	data := body["data"].([]any)
	require.Len(t, data, 2)
	newest := data[0].(map[string]any)
	assert.Equal(t, "Second comment", newest["comment"])

	status, _ = doJSON(t, app, http.MethodGet, "/api/posts/9999/comments", nil, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDeleteComment(t *testing.T) {
	t.Parallel()

	app, s := newTestApp(t)
	postOwner := createTestUser(t, s, "Alice", "alice@example.com")
	author := createTestUser(t, s, "Bob", "bob@example.com")
	thirdParty := createTestUser(t, s, "Carol", "carol@example.com")
	post := &models.Post{Title: "A post", Content: "content long enough", UserID: postOwner.ID}
	require.NoError(t, s.db.Create(post).Error)

	newComment := func() *models.Comment {
		comment := models.NewUserComment(post.ID, author.ID, "A comment")
		require.NoError(t, s.db.Create(comment).Error)
		return comment
	}
	pathFor := func(comment *models.Comment) string {
		return fmt.Sprintf("/api/comments/%d", comment.ID)
	}

	t.Run("unauthenticated is 401", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodDelete, pathFor(newComment()), nil, "")
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("missing comment is 404", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodDelete, "/api/comments/9999", nil,
			tokenFor(t, s, author))
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("third party is 403", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodDelete, pathFor(newComment()), nil,
			tokenFor(t, s, thirdParty))
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("author deletes own comment", func(t *testing.T) {
		comment := newComment()
		status, body := doJSON(t, app, http.MethodDelete, pathFor(comment), nil,
			tokenFor(t, s, author))
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Comment deleted successfully.", body["message"])
	})

	t.Run("post owner deletes guest comment", func(t *testing.T) {
		guestComment := models.NewGuestComment(post.ID, "Ann", "A guest comment")
		require.NoError(t, s.db.Create(guestComment).Error)

		status, _ := doJSON(t, app, http.MethodDelete, pathFor(guestComment), nil,
			tokenFor(t, s, postOwner))
		assert.Equal(t, http.StatusOK, status)
	})
}
