package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gamestore/backend/internal/models"
	"gamestore/backend/internal/store"
)

const (
	tableGames    = "games"
	tableReviews  = "game_reviews"
	tablePosts    = "blog_posts"
	tableProfiles = "profiles"

	withAuthor = "*, profiles(full_name,email)"
)

// Repository implements store.Repository on top of the REST client.
// Row-level security is enforced by the managed store, so writes are sent
// with the caller's access token taken from the context.
type Repository struct {
	client *Client
	now    func() time.Time
}

// NewRepository creates a repository backed by client.
func NewRepository(client *Client) *Repository {
	return &Repository{client: client, now: time.Now}
}

var _ store.Repository = (*Repository)(nil)

// writable turns v into a column map without the server-managed columns.
func writable(v any, drop ...string) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal row: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	row := map[string]any{}
	if err := dec.Decode(&row); err != nil {
		return nil, fmt.Errorf("decode row: %w", err)
	}
	for _, k := range append(drop, "id", "created_at", "updated_at") {
		delete(row, k)
	}
	return row, nil
}

func first[T any](rows []T, what, id string) (*T, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s %s: %w", what, id, store.ErrNotFound)
	}
	return &rows[0], nil
}

// upsert inserts when id is empty and patches the row otherwise.
func upsert[T any](ctx context.Context, r *Repository, table, columns, id, what string, row map[string]any) (*T, error) {
	var rows []T
	q := r.client.From(table)
	if columns != "" {
		q.Select(columns)
	}
	if id == "" {
		if err := q.Insert(ctx, row, &rows); err != nil {
			return nil, fmt.Errorf("insert %s: %w", what, err)
		}
		return first(rows, what, id)
	}
	row["updated_at"] = r.now().UTC()
	if err := q.Eq("id", id).Update(ctx, row, &rows); err != nil {
		return nil, fmt.Errorf("update %s: %w", what, err)
	}
	return first(rows, what, id)
}

func (r *Repository) remove(ctx context.Context, table, what, id string) error {
	var rows []map[string]any
	if err := r.client.From(table).Eq("id", id).Delete(ctx, &rows); err != nil {
		return fmt.Errorf("delete %s: %w", what, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s %s: %w", what, id, store.ErrNotFound)
	}
	return nil
}

func (r *Repository) ListGames(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := r.client.From(tableGames).Select("*").Order("created_at", false).Execute(ctx, &games); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

func (r *Repository) GetGame(ctx context.Context, id string) (*models.Game, error) {
	var game models.Game
	if err := r.client.From(tableGames).Select("*").Eq("id", id).Single().Execute(ctx, &game); err != nil {
		return nil, fmt.Errorf("get game %s: %w", id, err)
	}
	return &game, nil
}

func (r *Repository) UpsertGame(ctx context.Context, game *models.Game) (*models.Game, error) {
	row, err := writable(game)
	if err != nil {
		return nil, err
	}
	return upsert[models.Game](ctx, r, tableGames, "", game.ID, "game", row)
}

func (r *Repository) DeleteGame(ctx context.Context, id string) error {
	return r.remove(ctx, tableGames, "game", id)
}

func (r *Repository) ListReviews(ctx context.Context, gameID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.client.From(tableReviews).
		Select(withAuthor).
		Eq("game_id", gameID).
		Order("created_at", false).
		Execute(ctx, &reviews)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (r *Repository) GetReview(ctx context.Context, id string) (*models.Review, error) {
	var review models.Review
	if err := r.client.From(tableReviews).Select(withAuthor).Eq("id", id).Single().Execute(ctx, &review); err != nil {
		return nil, fmt.Errorf("get review %s: %w", id, err)
	}
	return &review, nil
}

func (r *Repository) UpsertReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	row, err := writable(review, "profiles")
	if err != nil {
		return nil, err
	}
	return upsert[models.Review](ctx, r, tableReviews, withAuthor, review.ID, "review", row)
}

func (r *Repository) DeleteReview(ctx context.Context, id string) error {
	return r.remove(ctx, tableReviews, "review", id)
}

func (r *Repository) ListPosts(ctx context.Context, publishedOnly bool) ([]models.Post, error) {
	q := r.client.From(tablePosts).Select(withAuthor)
	if publishedOnly {
		q.Eq("published", true)
	}
	var posts []models.Post
	if err := q.Order("created_at", false).Execute(ctx, &posts); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *Repository) GetPostBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Post, error) {
	q := r.client.From(tablePosts).Select(withAuthor).Eq("slug", slug)
	if publishedOnly {
		q.Eq("published", true)
	}
	var post models.Post
	if err := q.Single().Execute(ctx, &post); err != nil {
		return nil, fmt.Errorf("get post %q: %w", slug, err)
	}
	return &post, nil
}

func (r *Repository) GetPost(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := r.client.From(tablePosts).Select(withAuthor).Eq("id", id).Single().Execute(ctx, &post); err != nil {
		return nil, fmt.Errorf("get post %s: %w", id, err)
	}
	return &post, nil
}

func (r *Repository) UpsertPost(ctx context.Context, post *models.Post) (*models.Post, error) {
	row, err := writable(post, "profiles")
	if err != nil {
		return nil, err
	}
	return upsert[models.Post](ctx, r, tablePosts, withAuthor, post.ID, "post", row)
}

func (r *Repository) DeletePost(ctx context.Context, id string) error {
	return r.remove(ctx, tablePosts, "post", id)
}

func (r *Repository) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.client.From(tableProfiles).Select("*").Eq("id", userID).Single().Execute(ctx, &profile); err != nil {
		return nil, fmt.Errorf("get profile %s: %w", userID, err)
	}
	return &profile, nil
}

func toSession(resp *AuthResponse) *models.Session {
	if resp == nil || resp.AccessToken == "" {
		return nil
	}
	session := &models.Session{
		AccessToken:  resp.AccessToken,
		TokenType:    resp.TokenType,
		ExpiresIn:    resp.ExpiresIn,
		RefreshToken: resp.RefreshToken,
	}
	if resp.User != nil {
		session.User = &models.User{ID: resp.User.ID, Email: resp.User.Email}
	}
	return session
}

func (r *Repository) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	resp, err := r.client.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	return toSession(resp), nil
}

// SignUp stores fullName as user metadata; the profile row is created by the
// store. The session is nil until the email address is confirmed.
func (r *Repository) SignUp(ctx context.Context, email, password, fullName string) (*models.Session, error) {
	resp, err := r.client.SignUp(ctx, email, password, map[string]any{"full_name": fullName})
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	return toSession(resp), nil
}

func (r *Repository) SignOut(ctx context.Context, accessToken string) error {
	if err := r.client.SignOut(ctx, accessToken); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

func (r *Repository) RequestPasswordReset(ctx context.Context, email, redirectTo string) error {
	if err := r.client.Recover(ctx, email, redirectTo); err != nil {
		return fmt.Errorf("request password reset: %w", err)
	}
	return nil
}

func (r *Repository) UpdatePassword(ctx context.Context, accessToken, newPassword string) error {
	if err := r.client.UpdateUser(ctx, accessToken, newPassword); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (r *Repository) GetUser(ctx context.Context, accessToken string) (*models.User, error) {
	user, err := r.client.GetUser(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &models.User{ID: user.ID, Email: user.Email}, nil
}

// Ping issues a one-row select against the games table.
func (r *Repository) Ping(ctx context.Context) error {
	var rows []map[string]any
	if err := r.client.From(tableGames).Select("id").Limit(1).Execute(ctx, &rows); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

func (r *Repository) Close() error {
	r.client.httpClient.CloseIdleConnections()
	return nil
}
