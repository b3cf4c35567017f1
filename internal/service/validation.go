package service

import (
	"strings"
	"unicode/utf8"
)

// Field length bounds, counted in characters. Exported so the form
// endpoints can surface them as client-side validation metadata.
const (
	TitleMinLen   = 3
	TitleMaxLen   = 255
	ContentMinLen = 10
	ContentMaxLen = 10000
	CommentMinLen = 3
	CommentMaxLen = 1000
	GuestNameMinLen = 2
	GuestNameMaxLen = 100
)

// fieldErrors accumulates per-field validation messages.
type fieldErrors map[string][]string

func (f fieldErrors) add(field, message string) {
	f[field] = append(f[field], message)
}

func (f fieldErrors) empty() bool {
	return len(f) == 0
}

func validateTitle(f fieldErrors, title string) {
	switch n := utf8.RuneCountInString(title); {
	case n == 0:
		f.add("title", "A post title is required.")
	case n < TitleMinLen:
		f.add("title", "The title must be at least 3 characters.")
	case n > TitleMaxLen:
		f.add("title", "The title cannot exceed 255 characters.")
	}
}

func validateContent(f fieldErrors, content string) {
	switch n := utf8.RuneCountInString(content); {
	case n == 0:
		f.add("content", "Post content is required.")
	case n < ContentMinLen:
		f.add("content", "The content must be at least 10 characters.")
	case n > ContentMaxLen:
		f.add("content", "The content cannot exceed 10,000 characters.")
	}
}

func validateCommentBody(f fieldErrors, body string) {
	switch n := utf8.RuneCountInString(body); {
	case n == 0:
		f.add("comment", "A comment is required.")
	case n < CommentMinLen:
		f.add("comment", "The comment must be at least 3 characters.")
	case n > CommentMaxLen:
		f.add("comment", "The comment cannot exceed 1,000 characters.")
	}
}

func validateGuestName(f fieldErrors, name string) {
	switch n := utf8.RuneCountInString(strings.TrimSpace(name)); {
	case n == 0:
		f.add("guest_name", "A name is required for guest comments.")
	case n < GuestNameMinLen:
		f.add("guest_name", "The name must be at least 2 characters.")
	case n > GuestNameMaxLen:
		f.add("guest_name", "The name cannot exceed 100 characters.")
	}
}
