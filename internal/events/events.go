// Package events publishes storefront domain events. Publishing is best
// effort: failures are logged and counted but never fail a request.
package events

import (
	"context"
	"sync"
	"time"

	"gamestore/backend/internal/metrics"

	"github.com/sirupsen/logrus"
)

// Type names an event and doubles as its routing key.
type Type string

const (
	GameCreated     Type = "game.created"
	GameUpdated     Type = "game.updated"
	GameDeleted     Type = "game.deleted"
	PostPublished   Type = "post.published"
	PostDeleted     Type = "post.deleted"
	ReviewSubmitted Type = "review.submitted"
	ReviewDeleted   Type = "review.deleted"
	PurchaseInquiry Type = "purchase.inquiry"
	PasswordReset   Type = "auth.password_reset"
)

// Event is the envelope sent to subscribers.
type Event struct {
	Type       Type      `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// New stamps an event with the current time.
func New(t Type, payload any) Event {
	return Event{Type: t, OccurredAt: time.Now().UTC(), Payload: payload}
}

// Publisher delivers events.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// GamePayload identifies a game that changed.
type GamePayload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// PostPayload identifies a post that changed.
type PostPayload struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// ReviewPayload identifies a review that changed.
type ReviewPayload struct {
	GameID   string `json:"game_id"`
	ReviewID string `json:"review_id"`
	UserID   string `json:"user_id"`
	Rating   int    `json:"rating,omitempty"`
}

// PurchasePayload records that a buyer opened the purchase links.
type PurchasePayload struct {
	GameID     string `json:"game_id"`
	Title      string `json:"title"`
	FinalPrice int64  `json:"final_price"`
	Free       bool   `json:"is_free"`
	Language   string `json:"language"`
}

// PasswordResetPayload is consumed by the mailer.
type PasswordResetPayload struct {
	Email string `json:"email"`
	Link  string `json:"link"`
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

// LogPublisher logs and counts every event before handing it on.
type LogPublisher struct {
	next Publisher
	log  logrus.FieldLogger
}

// WithLogging decorates next.
func WithLogging(next Publisher, log logrus.FieldLogger) *LogPublisher {
	return &LogPublisher{next: next, log: log}
}

func (p *LogPublisher) Publish(ctx context.Context, e Event) error {
	err := p.next.Publish(ctx, e)
	metrics.EventPublished(string(e.Type), err)
	entry := p.log.WithField("event", e.Type)
	if err != nil {
		entry.WithError(err).Warn("event not published")
		return err
	}
	entry.Debug("event published")
	return nil
}

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Types lists the types of the recorded events in order.
func (r *Recorder) Types() []Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]Type, len(r.events))
	for i, e := range r.events {
		types[i] = e.Type
	}
	return types
}

// ResetNotifier turns password reset requests into events.
type ResetNotifier struct {
	Publisher Publisher
}

func (n ResetNotifier) PasswordResetRequested(ctx context.Context, email, link string) error {
	return n.Publisher.Publish(ctx, New(PasswordReset, PasswordResetPayload{Email: email, Link: link}))
}
