package memory

import (
	"gamestore/backend/internal/models"

	"github.com/google/uuid"
)

// SeedUser registers an account and returns it with a valid access token.
func (s *Store) SeedUser(email, password, fullName string, isAdmin bool) (*models.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, err := s.createAccount(email, password, fullName, isAdmin)
	if err != nil {
		return nil, "", err
	}
	session := s.issueSession(user.ID, user.Email)
	return user, session.AccessToken, nil
}

// SeedGame stores g as is. A missing ID or CreatedAt is filled in.
func (s *Store) SeedGame(g models.Game) models.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = s.now()
	}
	s.games[g.ID] = record[models.Game]{value: cloneGame(g), seq: s.nextSeq()}
	return g
}

// SeedReview stores r as is. A missing ID or CreatedAt is filled in.
func (s *Store) SeedReview(r models.Review) models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}
	s.reviews[r.ID] = record[models.Review]{value: r, seq: s.nextSeq()}
	return r
}

// SeedPost stores p as is. A missing ID or CreatedAt is filled in.
func (s *Store) SeedPost(p models.Post) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	s.posts[p.ID] = record[models.Post]{value: p, seq: s.nextSeq()}
	return p
}

// SetAdmin flips the admin flag of a profile.
func (s *Store) SetAdmin(userID string, isAdmin bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.profiles[userID]; ok {
		p.IsAdmin = isAdmin
		s.profiles[userID] = p
	}
}
