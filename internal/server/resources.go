package server

import (
	"fmt"
	"time"

	"quill/internal/models"
	"quill/internal/service"

	"github.com/dustin/go-humanize"
)

// AuthorResponse identifies a post's owner.
type AuthorResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CommentAuthorResponse identifies a comment's author, user or guest.
type CommentAuthorResponse struct {
	Name    string `json:"name"`
	IsGuest bool   `json:"is_guest"`
	UserID  *uint  `json:"user_id"`
}

// CommentResponse is the API representation of a comment.
type CommentResponse struct {
	ID             uint                  `json:"id"`
	Comment        string                `json:"comment"`
	Author         CommentAuthorResponse `json:"author"`
	PostID         uint                  `json:"post_id"`
	CreatedAt      time.Time             `json:"created_at"`
	CreatedAtHuman string                `json:"created_at_human"`
}

// PostResponse is the API representation of a post. Comments and
// CommentsCount are present on single-post fetches only.
type PostResponse struct {
	ID             uint              `json:"id"`
	Title          string            `json:"title"`
	Content        string            `json:"content"`
	Author         AuthorResponse    `json:"author"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	CreatedAtHuman string            `json:"created_at_human"`
	UpdatedAtHuman string            `json:"updated_at_human"`
	Comments       []CommentResponse `json:"comments,omitempty"`
	CommentsCount  *int              `json:"comments_count,omitempty"`
}

// PaginationMeta describes one page of a collection.
type PaginationMeta struct {
	Total        int64 `json:"total"`
	Count        int   `json:"count"`
	PerPage      int   `json:"per_page"`
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	HasMorePages bool  `json:"has_more_pages"`
}

// PaginationLinks carries page navigation URLs. Prev and Next are null at
// the collection edges.
type PaginationLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// PostCollectionResponse is the paginated post listing body.
type PostCollectionResponse struct {
	Data  []PostResponse  `json:"data"`
	Meta  PaginationMeta  `json:"meta"`
	Links PaginationLinks `json:"links"`
}

func newCommentResponse(comment *models.Comment) CommentResponse {
	return CommentResponse{
		ID:      comment.ID,
		Comment: comment.Body,
		Author: CommentAuthorResponse{
			Name:    comment.AuthorName(),
			IsGuest: comment.IsGuest(),
			UserID:  comment.UserID,
		},
		PostID:         comment.PostID,
		CreatedAt:      comment.CreatedAt,
		CreatedAtHuman: humanize.Time(comment.CreatedAt),
	}
}

func newPostResponse(post *models.Post) PostResponse {
	resp := PostResponse{
		ID:             post.ID,
		Title:          post.Title,
		Content:        post.Content,
		CreatedAt:      post.CreatedAt,
		UpdatedAt:      post.UpdatedAt,
		CreatedAtHuman: humanize.Time(post.CreatedAt),
		UpdatedAtHuman: humanize.Time(post.UpdatedAt),
	}
	if post.User != nil {
		resp.Author = AuthorResponse{ID: post.User.ID, Name: post.User.Name}
	} else {
		resp.Author = AuthorResponse{ID: post.UserID}
	}
	return resp
}

// newPostDetailResponse includes the post's comments and their count.
func newPostDetailResponse(post *models.Post) PostResponse {
	resp := newPostResponse(post)
	resp.Comments = make([]CommentResponse, 0, len(post.Comments))
	for _, comment := range post.Comments {
		resp.Comments = append(resp.Comments, newCommentResponse(comment))
	}
	count := post.CommentsCount
	resp.CommentsCount = &count
	return resp
}

func newPostCollectionResponse(page *service.PostPage) PostCollectionResponse {
	data := make([]PostResponse, 0, len(page.Posts))
	for _, post := range page.Posts {
		data = append(data, newPostResponse(post))
	}

	totalPages := page.TotalPages()
	pageURL := func(n int) string {
		return fmt.Sprintf("/api/posts?page=%d&per_page=%d", n, page.PerPage)
	}

	links := PaginationLinks{
		First: pageURL(1),
		Last:  pageURL(totalPages),
	}
	if page.Page > 1 {
		prev := pageURL(page.Page - 1)
		links.Prev = &prev
	}
	if page.HasMorePages() {
		next := pageURL(page.Page + 1)
		links.Next = &next
	}

	return PostCollectionResponse{
		Data: data,
		Meta: PaginationMeta{
			Total:        page.Total,
			Count:        len(page.Posts),
			PerPage:      page.PerPage,
			CurrentPage:  page.Page,
			TotalPages:   totalPages,
			HasMorePages: page.HasMorePages(),
		},
		Links: links,
	}
}

// formField describes one input on a post form.
type formField struct {
	Type        string         `json:"type"`
	Label       string         `json:"label"`
	Placeholder string         `json:"placeholder"`
	Required    bool           `json:"required"`
	Validation  map[string]any `json:"validation"`
	Value       string         `json:"value"`
	HelpText    string         `json:"help_text"`
	Rows        int            `json:"rows,omitempty"`
}

// PostFormResponse carries field metadata and validation rules for the
// post create and edit forms.
type PostFormResponse struct {
	Fields          map[string]formField         `json:"fields"`
	ValidationRules map[string]map[string]string `json:"validation_rules"`
	SubmitURL       string                       `json:"submit_url"`
	Method          string                       `json:"method"`
	Data            *PostResponse                `json:"data,omitempty"`
}

// newPostFormResponse builds the form payload. A nil post yields the
// creation form; otherwise the edit form pre-filled from the post.
func newPostFormResponse(post *models.Post) PostFormResponse {
	title, content := "", ""
	submitURL, method := "/api/posts", "POST"
	if post != nil {
		title, content = post.Title, post.Content
		submitURL = fmt.Sprintf("/api/posts/%d", post.ID)
		method = "PUT"
	}

	resp := PostFormResponse{
		Fields: map[string]formField{
			"title": {
				Type:        "text",
				Label:       "Post Title",
				Placeholder: "Enter a compelling title for your post",
				Required:    true,
				Validation: map[string]any{
					"required":   true,
					"min_length": service.TitleMinLen,
					"max_length": service.TitleMaxLen,
				},
				Value:    title,
				HelpText: "Title must be between 3 and 255 characters.",
			},
			"content": {
				Type:        "textarea",
				Label:       "Post Content",
				Placeholder: "Write your post content here...",
				Required:    true,
				Validation: map[string]any{
					"required":   true,
					"min_length": service.ContentMinLen,
					"max_length": service.ContentMaxLen,
				},
				Value:    content,
				HelpText: "Content must be between 10 and 10,000 characters.",
				Rows:     10,
			},
		},
		ValidationRules: map[string]map[string]string{
			"title": {
				"required": "A post title is required.",
				"min":      "The title must be at least 3 characters.",
				"max":      "The title cannot exceed 255 characters.",
			},
			"content": {
				"required": "Post content is required.",
				"min":      "The content must be at least 10 characters.",
				"max":      "The content cannot exceed 10,000 characters.",
			},
		},
		SubmitURL: submitURL,
		Method:    method,
	}
	if post != nil {
		data := newPostResponse(post)
		resp.Data = &data
	}
	return resp
}
