package server

import (
	"quill/internal/models"
	"quill/internal/policy"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page, perPage := pageParams(c)

	posts, err := s.postService.ListPosts(c.UserContext(), page, perPage)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(newPostCollectionResponse(posts))
}

// GetPost handles GET /api/posts/:id.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id", "Post")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"data": newPostDetailResponse(post)})
}

// CreatePost handles POST /api/posts.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req service.CreatePostInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body."))
	}

	post, err := s.postService.CreatePost(c.UserContext(), s.identity(c), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post created successfully!",
		"data":    newPostResponse(post),
	})
}

// UpdatePost handles PUT /api/posts/:id.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id", "Post")
	if err != nil {
		return nil
	}

	var req service.UpdatePostInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body."))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), s.identity(c), id, req)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Post updated successfully!",
		"data":    newPostResponse(post),
	})
}

// DeletePost handles DELETE /api/posts/:id.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id", "Post")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), s.identity(c), id); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted successfully!"})
}

// PostCreateForm handles GET /api/posts/create.
func (s *Server) PostCreateForm(c *fiber.Ctx) error {
	if !policy.CanCreatePost(s.identity(c)) {
		return models.RespondWithError(c,
			models.NewUnauthenticatedError("You must be authenticated to create posts."))
	}

	return c.JSON(fiber.Map{
		"message": "Post creation form data.",
		"form":    newPostFormResponse(nil),
	})
}

// PostEditForm handles GET /api/posts/:id/edit. Existence is checked
// before ownership, so a missing post is a 404 even for strangers.
func (s *Server) PostEditForm(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id", "Post")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if !policy.CanUpdatePost(s.identity(c), post) {
		return models.RespondWithError(c, models.NewForbiddenError("You can only edit your own posts."))
	}

	return c.JSON(fiber.Map{
		"message": "Post edit form data.",
		"form":    newPostFormResponse(post),
	})
}
