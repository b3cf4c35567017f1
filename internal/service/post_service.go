// Package service implements the application's use cases on top of the
// repositories, the authorization policy, and the optional request identity.
package service

import (
	"context"
	"errors"

	"quill/internal/models"
	"quill/internal/observability"
	"quill/internal/policy"
	"quill/internal/repository"

	"gorm.io/gorm"
)

// Pagination bounds for post listings.
const (
	DefaultPerPage = 10
	MaxPerPage     = 50
)

// PostService implements post use cases.
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a PostService.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePostInput is the payload for creating a post.
type CreatePostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePostInput is the payload for updating a post. Nil fields are
// omitted and keep their prior value.
type UpdatePostInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// PostPage is one page of the post listing, newest first.
type PostPage struct {
	Posts   []*models.Post
	Total   int64
	Page    int
	PerPage int
}

// TotalPages returns the number of pages at the page size of this page.
func (p *PostPage) TotalPages() int {
	if p.Total == 0 {
		return 1
	}
	return int((p.Total + int64(p.PerPage) - 1) / int64(p.PerPage))
}

// HasMorePages reports whether pages beyond the current one exist.
func (p *PostPage) HasMorePages() bool {
	return p.Page < p.TotalPages()
}

// NormalizePageParams clamps the requested page and page size into their
// allowed ranges: page >= 1, per-page in [1, MaxPerPage], defaulting to
// DefaultPerPage when unspecified (zero).
func NormalizePageParams(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage == 0 {
		perPage = DefaultPerPage
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// ListPosts returns one page of posts, newest first. No authorization is
// required.
func (s *PostService) ListPosts(ctx context.Context, page, perPage int) (*PostPage, error) {
	page, perPage = NormalizePageParams(page, perPage)

	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	return &PostPage{
		Posts:   posts,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// GetPost returns the post with its owner, comments, and comment count.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByIDWithComments(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, err
	}
	return post, nil
}

// CreatePost creates a post owned by the caller. The identity is required;
// ownership is fixed at creation and never reassigned.
func (s *PostService) CreatePost(ctx context.Context, identity *models.Identity, in CreatePostInput) (*models.Post, error) {
	if identity == nil {
		return nil, models.NewUnauthenticatedError("You must be authenticated to create posts.")
	}
	if !policy.CanCreatePost(identity) {
		observability.AuthorizationDenials.WithLabelValues("post.create").Inc()
		return nil, models.NewForbiddenError("You are not allowed to create posts.")
	}

	fields := fieldErrors{}
	validateTitle(fields, in.Title)
	validateContent(fields, in.Content)
	if !fields.empty() {
		return nil, models.NewValidationFieldErrors(fields)
	}

	post := &models.Post{
		Title:   in.Title,
		Content: in.Content,
		UserID:  identity.ID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	observability.PostsCreated.Inc()

	// Reload with the owner attached for the response.
	return s.postRepo.GetByID(ctx, post.ID)
}

// UpdatePost applies a partial merge: fields omitted from the input keep
// their prior value. Existence is checked before authorization so a missing
// post reads as not-found rather than forbidden.
func (s *PostService) UpdatePost(ctx context.Context, identity *models.Identity, postID uint, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, err
	}

	if !policy.CanUpdatePost(identity, post) {
		observability.AuthorizationDenials.WithLabelValues("post.update").Inc()
		return nil, models.NewForbiddenError("You can only edit your own posts.")
	}

	fields := fieldErrors{}
	if in.Title != nil {
		validateTitle(fields, *in.Title)
	}
	if in.Content != nil {
		validateContent(fields, *in.Content)
	}
	if !fields.empty() {
		return nil, models.NewValidationFieldErrors(fields)
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// DeletePost deletes the post and, atomically, all its comments.
func (s *PostService) DeletePost(ctx context.Context, identity *models.Identity, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", postID)
		}
		return err
	}

	if !policy.CanDeletePost(identity, post) {
		observability.AuthorizationDenials.WithLabelValues("post.delete").Inc()
		return models.NewForbiddenError("You can only delete your own posts.")
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}
	observability.PostsDeleted.Inc()
	return nil
}
