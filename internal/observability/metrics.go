package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PostsCreated counts created posts.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quill_posts_created_total",
		Help: "Total number of posts created",
	})

	// PostsDeleted counts deleted posts.
	PostsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quill_posts_deleted_total",
		Help: "Total number of posts deleted",
	})

	// CommentsCreated counts created comments by author type (user or guest).
	CommentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_comments_created_total",
		Help: "Total number of comments created by author type",
	}, []string{"author_type"})

	// CommentsDeleted counts deleted comments.
	CommentsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quill_comments_deleted_total",
		Help: "Total number of comments deleted",
	})

	// AuthorizationDenials counts policy denials by operation.
	AuthorizationDenials = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_authorization_denials_total",
		Help: "Total number of requests denied by authorization policy",
	}, []string{"operation"})
)
