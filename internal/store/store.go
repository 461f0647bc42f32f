// Package store defines the persistence and identity port of the storefront.
// Adapters live in sub-packages (supabase, memory) and in internal/database.
package store

import (
	"context"
	"errors"

	"gamestore/backend/internal/models"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// GameStore reads and writes the games table.
type GameStore interface {
	// ListGames returns every game, newest first.
	ListGames(ctx context.Context) ([]models.Game, error)
	GetGame(ctx context.Context, id string) (*models.Game, error)
	// UpsertGame inserts when game.ID is empty and updates otherwise.
	UpsertGame(ctx context.Context, game *models.Game) (*models.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

// ReviewStore reads and writes the game_reviews table.
type ReviewStore interface {
	// ListReviews returns the reviews of a game, newest first, with the author joined.
	ListReviews(ctx context.Context, gameID string) ([]models.Review, error)
	GetReview(ctx context.Context, id string) (*models.Review, error)
	UpsertReview(ctx context.Context, review *models.Review) (*models.Review, error)
	DeleteReview(ctx context.Context, id string) error
}

// PostStore reads and writes the blog_posts table.
type PostStore interface {
	ListPosts(ctx context.Context, publishedOnly bool) ([]models.Post, error)
	GetPostBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Post, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	UpsertPost(ctx context.Context, post *models.Post) (*models.Post, error)
	DeletePost(ctx context.Context, id string) error
}

// ProfileStore reads the profiles table.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
}

// Authenticator manages identities and sessions.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	// SignUp may return a nil session when the provider requires email confirmation.
	SignUp(ctx context.Context, email, password, fullName string) (*models.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	RequestPasswordReset(ctx context.Context, email, redirectTo string) error
	UpdatePassword(ctx context.Context, accessToken, newPassword string) error
	GetUser(ctx context.Context, accessToken string) (*models.User, error)
}

// Repository is everything the HTTP layer needs from a backing store.
type Repository interface {
	GameStore
	ReviewStore
	PostStore
	ProfileStore
	Authenticator

	Ping(ctx context.Context) error
	Close() error
}

type accessTokenKey struct{}

// WithAccessToken attaches the caller's access token so adapters can act on
// the user's behalf.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessToken returns the token attached by WithAccessToken, if any.
func AccessToken(ctx context.Context) string {
	token, _ := ctx.Value(accessTokenKey{}).(string)
	return token
}
