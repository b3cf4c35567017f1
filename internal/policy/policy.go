// Package policy is the authorization engine: pure decision functions over
// an optional identity and in-memory entities. It performs no I/O; callers
// load whatever entities a rule needs before asking.
package policy

import "quill/internal/models"

// CanCreatePost reports whether the identity may create posts. Callers must
// gate on identity presence first (absence is an authentication failure, not
// a policy denial); any authenticated user may create posts.
func CanCreatePost(identity *models.Identity) bool {
	return identity != nil
}

// CanUpdatePost reports whether the identity may update the post. Only the
// post's owner may.
func CanUpdatePost(identity *models.Identity, post *models.Post) bool {
	if identity == nil {
		return false
	}
	return identity.ID == post.UserID
}

// CanDeletePost reports whether the identity may delete the post. Same rule
// as update.
func CanDeletePost(identity *models.Identity, post *models.Post) bool {
	return CanUpdatePost(identity, post)
}

// CanDeleteComment reports whether the identity may delete the comment on
// the given post. Two independent grounds, either sufficient: the identity
// authored the comment, or the identity owns the post (post owners may
// remove any comment on their post, guest comments included). The post is
// passed explicitly; callers fetch it before invoking the policy.
func CanDeleteComment(identity *models.Identity, comment *models.Comment, post *models.Post) bool {
	if identity == nil {
		return false
	}
	if author, ok := comment.Author().(models.UserAuthor); ok && author.UserID == identity.ID {
		return true
	}
	return identity.ID == post.UserID
}
