package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gamestore/backend/internal/models"
	"gamestore/backend/internal/store"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResetNotifier delivers password recovery links to users.
type ResetNotifier interface {
	PasswordResetRequested(ctx context.Context, email, link string) error
}

// Options configures native authentication.
type Options struct {
	JWTSecret        string
	AccessTokenTTL   time.Duration
	RecoveryTokenTTL time.Duration
	Notifier         ResetNotifier
}

// Repository implements store.Repository on a SQL database through GORM.
type Repository struct {
	db   *gorm.DB
	opts Options
}

// NewRepository wraps an open database handle.
func NewRepository(db *gorm.DB, opts Options) *Repository {
	if opts.AccessTokenTTL <= 0 {
		opts.AccessTokenTTL = time.Hour
	}
	if opts.RecoveryTokenTTL <= 0 {
		opts.RecoveryTokenTTL = 15 * time.Minute
	}
	return &Repository{db: db, opts: opts}
}

var _ store.Repository = (*Repository)(nil)

// translate maps GORM errors onto the store's sentinel errors.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, store.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", what, store.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

// region --- games ---

func (r *Repository) ListGames(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&games).Error; err != nil {
		return nil, translate(err, "list games")
	}
	return games, nil
}

func (r *Repository) GetGame(ctx context.Context, id string) (*models.Game, error) {
	var game models.Game
	if err := r.db.WithContext(ctx).First(&game, "id = ?", id).Error; err != nil {
		return nil, translate(err, "get game "+id)
	}
	return &game, nil
}

func (r *Repository) UpsertGame(ctx context.Context, game *models.Game) (*models.Game, error) {
	g := *game
	if g.ID == "" {
		g.ID = uuid.NewString()
		if err := r.db.WithContext(ctx).Create(&g).Error; err != nil {
			return nil, translate(err, "create game")
		}
		return &g, nil
	}
	if err := r.updateAll(ctx, &models.Game{}, g.ID, &g); err != nil {
		return nil, translate(err, "update game "+g.ID)
	}
	return r.GetGame(ctx, g.ID)
}

// DeleteGame removes the game together with its reviews.
func (r *Repository) DeleteGame(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Game{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate(err, "delete game "+id)
}

// updateAll overwrites every column but the key and creation time.
func (r *Repository) updateAll(ctx context.Context, model any, id string, values any) error {
	res := r.db.WithContext(ctx).Model(model).Where("id = ?", id).
		Select("*").Omit("id", "created_at").Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// endregion

// region --- reviews ---

// authors loads the profile summaries for the given user ids.
func (r *Repository) authors(ctx context.Context, ids []string) (map[string]*models.ProfileSummary, error) {
	out := make(map[string]*models.ProfileSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var profiles []models.Profile
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, err
	}
	for _, p := range profiles {
		out[p.ID] = p.Summary()
	}
	return out, nil
}

func (r *Repository) attachReviewAuthors(ctx context.Context, reviews []models.Review) error {
	ids := make([]string, 0, len(reviews))
	seen := map[string]bool{}
	for _, rv := range reviews {
		if !seen[rv.UserID] {
			seen[rv.UserID] = true
			ids = append(ids, rv.UserID)
		}
	}
	byID, err := r.authors(ctx, ids)
	if err != nil {
		return err
	}
	for i := range reviews {
		reviews[i].Author = byID[reviews[i].UserID]
	}
	return nil
}

func (r *Repository) ListReviews(ctx context.Context, gameID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).Where("game_id = ?", gameID).Order("created_at desc").Find(&reviews).Error
	if err != nil {
		return nil, translate(err, "list reviews")
	}
	if err := r.attachReviewAuthors(ctx, reviews); err != nil {
		return nil, translate(err, "list review authors")
	}
	return reviews, nil
}

func (r *Repository) GetReview(ctx context.Context, id string) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		return nil, translate(err, "get review "+id)
	}
	list := []models.Review{review}
	if err := r.attachReviewAuthors(ctx, list); err != nil {
		return nil, translate(err, "get review author")
	}
	return &list[0], nil
}

func (r *Repository) UpsertReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	rv := *review
	rv.Author = nil
	if rv.ID == "" {
		rv.ID = uuid.NewString()
		if err := r.db.WithContext(ctx).Create(&rv).Error; err != nil {
			return nil, translate(err, "create review")
		}
	} else if err := r.updateAll(ctx, &models.Review{}, rv.ID, &rv); err != nil {
		return nil, translate(err, "update review "+rv.ID)
	}
	return r.GetReview(ctx, rv.ID)
}

func (r *Repository) DeleteReview(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Review{})
	if res.Error == nil && res.RowsAffected == 0 {
		res.Error = gorm.ErrRecordNotFound
	}
	return translate(res.Error, "delete review "+id)
}

// endregion

// region --- posts ---

func (r *Repository) attachPostAuthors(ctx context.Context, posts []models.Post) error {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.AuthorID)
	}
	byID, err := r.authors(ctx, ids)
	if err != nil {
		return err
	}
	for i := range posts {
		posts[i].Author = byID[posts[i].AuthorID]
	}
	return nil
}

func (r *Repository) ListPosts(ctx context.Context, publishedOnly bool) ([]models.Post, error) {
	q := r.db.WithContext(ctx)
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	var posts []models.Post
	if err := q.Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, translate(err, "list posts")
	}
	if err := r.attachPostAuthors(ctx, posts); err != nil {
		return nil, translate(err, "list post authors")
	}
	return posts, nil
}

func (r *Repository) findPost(ctx context.Context, what string, query any, args ...any) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Where(query, args...).First(&post).Error; err != nil {
		return nil, translate(err, what)
	}
	list := []models.Post{post}
	if err := r.attachPostAuthors(ctx, list); err != nil {
		return nil, translate(err, what)
	}
	return &list[0], nil
}

func (r *Repository) GetPostBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Post, error) {
	if publishedOnly {
		return r.findPost(ctx, "get post "+slug, "slug = ? AND published = ?", slug, true)
	}
	return r.findPost(ctx, "get post "+slug, "slug = ?", slug)
}

func (r *Repository) GetPost(ctx context.Context, id string) (*models.Post, error) {
	return r.findPost(ctx, "get post "+id, "id = ?", id)
}

func (r *Repository) UpsertPost(ctx context.Context, post *models.Post) (*models.Post, error) {
	p := *post
	p.Author = nil
	if p.ID == "" {
		p.ID = uuid.NewString()
		if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
			return nil, translate(err, "create post")
		}
	} else if err := r.updateAll(ctx, &models.Post{}, p.ID, &p); err != nil {
		return nil, translate(err, "update post "+p.ID)
	}
	return r.GetPost(ctx, p.ID)
}

func (r *Repository) DeletePost(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Post{})
	if res.Error == nil && res.RowsAffected == 0 {
		res.Error = gorm.ErrRecordNotFound
	}
	return translate(res.Error, "delete post "+id)
}

// endregion

func (r *Repository) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", userID).Error; err != nil {
		return nil, translate(err, "get profile "+userID)
	}
	return &profile, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
