package service

import (
	"context"
	"errors"
	"strings"

	"quill/internal/models"
	"quill/internal/observability"
	"quill/internal/policy"
	"quill/internal/repository"

	"gorm.io/gorm"
)

// CommentService implements comment use cases, including the optional-guest
// authorship branching.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService creates a CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateCommentInput is the payload for creating a comment. GuestName is
// only consulted when the request carries no identity.
type CreateCommentInput struct {
	Body      string `json:"comment"`
	GuestName string `json:"guest_name"`
}

// CreateComment creates a comment on the post. With an identity present the
// comment is user-authored and any supplied guest name is discarded; without
// one a non-empty guest name is required. A missing guest name is a
// validation failure, never silently defaulted.
func (s *CommentService) CreateComment(ctx context.Context, identity *models.Identity, postID uint, in CreateCommentInput) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, err
	}

	fields := fieldErrors{}
	validateCommentBody(fields, in.Body)
	if identity == nil {
		validateGuestName(fields, in.GuestName)
	}
	if !fields.empty() {
		return nil, models.NewValidationFieldErrors(fields)
	}

	var comment *models.Comment
	if identity != nil {
		comment = models.NewUserComment(postID, identity.ID, in.Body)
	} else {
		comment = models.NewGuestComment(postID, strings.TrimSpace(in.GuestName), in.Body)
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	authorType := "user"
	if comment.IsGuest() {
		authorType = "guest"
	}
	observability.CommentsCreated.WithLabelValues(authorType).Inc()

	// Reload with the author and parent post attached for the response.
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns the post's comments, newest first. Public.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

// DeleteComment deletes a comment. Existence is checked first, then
// authentication presence, then the deletion policy (comment author or post
// owner).
func (s *CommentService) DeleteComment(ctx context.Context, identity *models.Identity, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Comment", commentID)
		}
		return err
	}

	if identity == nil {
		return models.NewUnauthenticatedError("You must be authenticated to delete comments.")
	}
	if !policy.CanDeleteComment(identity, comment, comment.Post) {
		observability.AuthorizationDenials.WithLabelValues("comment.delete").Inc()
		return models.NewForbiddenError("You cannot delete this comment.")
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}
	observability.CommentsDeleted.Inc()
	return nil
}
