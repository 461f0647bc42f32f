// Package memory is an in-process implementation of store.Repository used for
// local development and by handler tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"gamestore/backend/internal/models"
	"gamestore/backend/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type record[T any] struct {
	value T
	seq   int64
}

type account struct {
	userID       string
	email        string
	passwordHash []byte
}

// Store keeps every table in mutex-guarded maps.
type Store struct {
	mu sync.Mutex

	games    map[string]record[models.Game]
	reviews  map[string]record[models.Review]
	posts    map[string]record[models.Post]
	profiles map[string]models.Profile
	accounts map[string]*account // by lower-cased email
	tokens   map[string]string   // access token -> user id
	seq      int64

	// ResetRequests records the emails passed to RequestPasswordReset.
	ResetRequests []string

	// ErrorOnNextCall is returned, then cleared, by the next store call.
	ErrorOnNextCall error

	now func() time.Time
}

// New returns an empty store.
func New() *Store {
	return &Store{
		games:    make(map[string]record[models.Game]),
		reviews:  make(map[string]record[models.Review]),
		posts:    make(map[string]record[models.Post]),
		profiles: make(map[string]models.Profile),
		accounts: make(map[string]*account),
		tokens:   make(map[string]string),
		now:      time.Now,
	}
}

var _ store.Repository = (*Store)(nil)

// checkError returns and clears any injected error. Callers hold mu.
func (s *Store) checkError() error {
	if s.ErrorOnNextCall != nil {
		err := s.ErrorOnNextCall
		s.ErrorOnNextCall = nil
		return err
	}
	return nil
}

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

func newestFirst[T any](records map[string]record[T], createdAt func(T) time.Time, keep func(T) bool) []T {
	list := make([]record[T], 0, len(records))
	for _, r := range records {
		if keep == nil || keep(r.value) {
			list = append(list, r)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		ti, tj := createdAt(list[i].value), createdAt(list[j].value)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return list[i].seq > list[j].seq
	})
	out := make([]T, len(list))
	for i, r := range list {
		out[i] = r.value
	}
	return out
}

func cloneGame(g models.Game) models.Game {
	if g.Screenshots != nil {
		g.Screenshots = append([]string(nil), g.Screenshots...)
	}
	if g.Platforms != nil {
		g.Platforms = append([]string(nil), g.Platforms...)
	}
	return g
}

// region --- games ---

func (s *Store) ListGames(ctx context.Context) ([]models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return nil, err
	}
	games := newestFirst(s.games, func(g models.Game) time.Time { return g.CreatedAt }, nil)
	for i := range games {
		games[i] = cloneGame(games[i])
	}
	return games, nil
}

func (s *Store) GetGame(ctx context.Context, id string) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return nil, err
	}
	r, ok := s.games[id]
	if !ok {
		return nil, fmt.Errorf("game %s: %w", id, store.ErrNotFound)
	}
	g := cloneGame(r.value)
	return &g, nil
}

func (s *Store) UpsertGame(ctx context.Context, game *models.Game) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return nil, err
	}
	g := cloneGame(*game)
	now := s.now()
	if g.ID == "" {
		g.ID = uuid.NewString()
		g.CreatedAt = now
		g.UpdatedAt = now
		s.games[g.ID] = record[models.Game]{value: g, seq: s.nextSeq()}
	} else {
		existing, ok := s.games[g.ID]
		if !ok {
			return nil, fmt.Errorf("game %s: %w", g.ID, store.ErrNotFound)
		}
		g.CreatedAt = existing.value.CreatedAt
		g.UpdatedAt = now
		s.games[g.ID] = record[models.Game]{value: g, seq: existing.seq}
	}
	out := cloneGame(g)
	return &out, nil
}

// DeleteGame removes the game and its reviews.
func (s *Store) DeleteGame(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return err
	}
	if _, ok := s.games[id]; !ok {
		return fmt.Errorf("game %s: %w", id, store.ErrNotFound)
	}
	delete(s.games, id)
	for rid, r := range s.reviews {
		if r.value.GameID == id {
			delete(s.reviews, rid)
		}
	}
	return nil
}

// endregion

// region --- reviews ---

func (s *Store) withAuthor(r models.Review) models.Review {
	if p, ok := s.profiles[r.UserID]; ok {
		r.Author = p.Summary()
	} else {
		r.Author = nil
	}
	return r
}

func (s *Store) ListReviews(ctx context.Context, gameID string) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return nil, err
	}
	list := newestFirst(s.reviews,
		func(r models.Review) time.Time { return r.CreatedAt },
		func(r models.Review) bool { return r.GameID == gameID })
	for i := range list {
		list[i] = s.withAuthor(list[i])
	}
	return list, nil
}

func (s *Store) GetReview(ctx context.Context, id string) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return nil, err
	}
	r, ok := s.reviews[id]
	if !ok {
		return nil, fmt.Errorf("review %s: %w", id, store.ErrNotFound)
	}
	out := s.withAuthor(r.value)
	return &out, nil
}

func (s *Store) UpsertReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return nil, err
	}
	r := *review
	r.Author = nil
	now := s.now()
	if r.ID == "" {
		r.ID = uuid.NewString()
		r.CreatedAt = now
		r.UpdatedAt = now
		s.reviews[r.ID] = record[models.Review]{value: r, seq: s.nextSeq()}
	} else {
		existing, ok := s.reviews[r.ID]
		if !ok {
			return nil, fmt.Errorf("review %s: %w", r.ID, store.ErrNotFound)
		}
		r.CreatedAt = existing.value.CreatedAt
		r.UpdatedAt = now
		s.reviews[r.ID] = record[models.Review]{value: r, seq: existing.seq}
	}
	out := s.withAuthor(r)
	return &out, nil
}

func (s *Store) DeleteReview(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return err
	}
	if _, ok := s.reviews[id]; !ok {
		return fmt.Errorf("review %s: %w", id, store.ErrNotFound)
	}
	delete(s.reviews, id)
	return nil
}

// endregion

// region --- posts ---

func (s *Store) withPostAuthor(p models.Post) models.Post {
	if profile, ok := s.profiles[p.AuthorID]; ok {
		p.Author = profile.Summary()
	} else {
		p.Author = nil
	}
	return p
}

func (s *Store) ListPosts(ctx context.Context, publishedOnly bool) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return nil, err
	}
	list := newestFirst(s.posts,
		func(p models.Post) time.Time { return p.CreatedAt },
		func(p models.Post) bool { return p.Published || !publishedOnly })
	for i := range list {
		list[i] = s.withPostAuthor(list[i])
	}
	return list, nil
}

func (s *Store) GetPostBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return nil, err
	}
	for _, r := range s.posts {
		if r.value.Slug == slug && (r.value.Published || !publishedOnly) {
			out := s.withPostAuthor(r.value)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("post %q: %w", slug, store.ErrNotFound)
}

func (s *Store) GetPost(ctx context.Context, id string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return nil, err
	}
	r, ok := s.posts[id]
	if !ok {
		return nil, fmt.Errorf("post %s: %w", id, store.ErrNotFound)
	}
	out := s.withPostAuthor(r.value)
	return &out, nil
}

func (s *Store) UpsertPost(ctx context.Context, post *models.Post) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return nil, err
	}
	p := *post
	p.Author = nil
	for id, r := range s.posts {
		if r.value.Slug == p.Slug && id != p.ID {
			return nil, fmt.Errorf("slug %q: %w", p.Slug, store.ErrConflict)
		}
	}
	now := s.now()
	if p.ID == "" {
		p.ID = uuid.NewString()
		p.CreatedAt = now
		p.UpdatedAt = now
		s.posts[p.ID] = record[models.Post]{value: p, seq: s.nextSeq()}
	} else {
		existing, ok := s.posts[p.ID]
		if !ok {
			return nil, fmt.Errorf("post %s: %w", p.ID, store.ErrNotFound)
		}
		p.CreatedAt = existing.value.CreatedAt
		p.UpdatedAt = now
		s.posts[p.ID] = record[models.Post]{value: p, seq: existing.seq}
	}
	out := s.withPostAuthor(p)
	return &out, nil
}

func (s *Store) DeletePost(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return err
	}
	if _, ok := s.posts[id]; !ok {
		return fmt.Errorf("post %s: %w", id, store.ErrNotFound)
	}
	delete(s.posts, id)
	return nil
}

// endregion

// region --- profiles & auth ---

func (s *Store) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return nil, err
	}
	p, ok := s.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("profile %s: %w", userID, store.ErrNotFound)
	}
	return &p, nil
}

func (s *Store) issueSession(userID, email string) *models.Session {
	token := uuid.NewString()
	s.tokens[token] = userID
	return &models.Session{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   3600,
		User:        &models.User{ID: userID, Email: email},
	}
}

func (s *Store) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return nil, err
	}
	acc, ok := s.accounts[strings.ToLower(email)]
	if !ok || bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)) != nil {
		return nil, store.ErrInvalidCredentials
	}
	return s.issueSession(acc.userID, acc.email), nil
}

func (s *Store) SignUp(ctx context.Context, email, password, fullName string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return nil, err
	}
	user, err := s.createAccount(email, password, fullName, false)
	if err != nil {
		return nil, err
	}
	return s.issueSession(user.ID, user.Email), nil
}

func (s *Store) createAccount(email, password, fullName string, isAdmin bool) (*models.User, error) {
	key := strings.ToLower(email)
	if _, exists := s.accounts[key]; exists {
		return nil, store.ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	id := uuid.NewString()
	s.accounts[key] = &account{userID: id, email: email, passwordHash: hash}

	now := s.now()
	profile := models.Profile{ID: id, Email: email, IsAdmin: isAdmin, CreatedAt: now, UpdatedAt: now}
	if fullName != "" {
		profile.FullName = &fullName
	}
	s.profiles[id] = profile
	return &models.User{ID: id, Email: email}, nil
}

func (s *Store) SignOut(ctx context.Context, accessToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return err
	}
	delete(s.tokens, accessToken)
	return nil
}

// RequestPasswordReset records the request. Unknown emails are not reported.
func (s *Store) RequestPasswordReset(ctx context.Context, email, redirectTo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return err
	}
	s.ResetRequests = append(s.ResetRequests, email)
	return nil
}

func (s *Store) UpdatePassword(ctx context.Context, accessToken, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return err
	}
	userID, ok := s.tokens[accessToken]
	if !ok {
		return store.ErrUnauthorized
	}
	for _, acc := range s.accounts {
		if acc.userID == userID {
			hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.MinCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			acc.passwordHash = hash
			return nil
		}
	}
	return store.ErrUnauthorized
}

func (s *Store) GetUser(ctx context.Context, accessToken string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return nil, err
	}
	userID, ok := s.tokens[accessToken]
	if !ok {
		return nil, store.ErrUnauthorized
	}
	p := s.profiles[userID]
	return &models.User{ID: userID, Email: p.Email}, nil
}

// endregion

func (s *Store) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkError()
}

func (s *Store) Close() error { return nil }
