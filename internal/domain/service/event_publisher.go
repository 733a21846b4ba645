package service

import (
	"context"
	"time"
)

// Review event types.
const (
	ReviewCreated = "review.created"
	ReviewDeleted = "review.deleted"
)

// ReviewEvent is published after a review change has been committed.
type ReviewEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	Type         string    `json:"type"`
	ReviewID     int64     `json:"review_id"`
	UserID       int64     `json:"user_id"`
	RestaurantID int64     `json:"restaurant_id"`
	Rating       int       `json:"rating"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReviewEvent publishes a review event for downstream consumers
	PublishReviewEvent(ctx context.Context, event *ReviewEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
