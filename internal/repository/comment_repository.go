package repository

import (
	"context"
	"sync"

	"github.com/univag/eventos-api/internal/models"
)

// CommentRepository is the append-only in-memory communication log,
// keyed by event.
type CommentRepository struct {
	mu       sync.RWMutex
	comments map[string][]models.Comment
}

// NewCommentRepository returns an empty log.
func NewCommentRepository() *CommentRepository {
	return &CommentRepository{comments: make(map[string][]models.Comment)}
}

// Append adds a comment to its event's log.
func (r *CommentRepository) Append(_ context.Context, comment models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments[comment.EventID] = append(r.comments[comment.EventID], comment)
	return nil
}

// ListByEvent returns the event's log in insertion order. Unknown events
// yield an empty list, never an error.
func (r *CommentRepository) ListByEvent(_ context.Context, eventID string) ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Comment(nil), r.comments[eventID]...), nil
}
