package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"gamestore/backend/internal/models"
	"gamestore/backend/internal/store"
	"gamestore/backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *Repository) findCredential(ctx context.Context, email string) (*models.Credential, error) {
	var cred models.Credential
	err := r.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&cred).Error
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *Repository) session(userID, email string) (*models.Session, error) {
	token, err := jwt.GenerateToken(r.opts.JWTSecret, userID, email, jwt.PurposeAccess, r.opts.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &models.Session{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(r.opts.AccessTokenTTL.Seconds()),
		User:        &models.User{ID: userID, Email: email},
	}, nil
}

func (r *Repository) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	cred, err := r.findCredential(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrInvalidCredentials
	}
	if err != nil {
		return nil, translate(err, "sign in")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, store.ErrInvalidCredentials
	}
	return r.session(cred.UserID, cred.Email)
}

// SignUp creates the credential and profile rows in one transaction.
// New accounts are never admins.
func (r *Repository) SignUp(ctx context.Context, email, password, fullName string) (*models.Session, error) {
	email = normalizeEmail(email)
	if _, err := r.findCredential(ctx, email); err == nil {
		return nil, store.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translate(err, "sign up")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	userID := uuid.NewString()
	profile := models.Profile{ID: userID, Email: email}
	if fullName = strings.TrimSpace(fullName); fullName != "" {
		profile.FullName = &fullName
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Credential{UserID: userID, Email: email, PasswordHash: string(hash)}).Error; err != nil {
			return err
		}
		return tx.Create(&profile).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, store.ErrEmailTaken
	}
	if err != nil {
		return nil, translate(err, "sign up")
	}
	return r.session(userID, email)
}

// SignOut is a no-op: tokens are stateless and expire on their own.
func (r *Repository) SignOut(ctx context.Context, accessToken string) error {
	return nil
}

// RequestPasswordReset mints a recovery token and hands the link to the
// notifier. Unknown addresses succeed silently.
func (r *Repository) RequestPasswordReset(ctx context.Context, email, redirectTo string) error {
	cred, err := r.findCredential(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return translate(err, "request password reset")
	}
	token, err := jwt.GenerateToken(r.opts.JWTSecret, cred.UserID, cred.Email, jwt.PurposeRecovery, r.opts.RecoveryTokenTTL)
	if err != nil {
		return fmt.Errorf("sign recovery token: %w", err)
	}
	if r.opts.Notifier == nil {
		return nil
	}
	return r.opts.Notifier.PasswordResetRequested(ctx, cred.Email, RecoveryLink(redirectTo, token))
}

// RecoveryLink appends the recovery token to redirectTo in the fragment,
// the same shape the managed store's recovery emails use.
func RecoveryLink(redirectTo, token string) string {
	fragment := url.Values{}
	fragment.Set("access_token", token)
	fragment.Set("type", "recovery")
	return strings.TrimSuffix(redirectTo, "#") + "#" + fragment.Encode()
}

func (r *Repository) UpdatePassword(ctx context.Context, accessToken, newPassword string) error {
	user, err := r.GetUser(ctx, accessToken)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	res := r.db.WithContext(ctx).Model(&models.Credential{}).
		Where("user_id = ?", user.ID).
		Update("password_hash", string(hash))
	if res.Error != nil {
		return translate(res.Error, "update password")
	}
	if res.RowsAffected == 0 {
		return store.ErrUnauthorized
	}
	return nil
}

// GetUser accepts access and recovery tokens.
func (r *Repository) GetUser(ctx context.Context, accessToken string) (*models.User, error) {
	claims, err := jwt.ParseToken(r.opts.JWTSecret, accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrUnauthorized, err)
	}
	if claims.Purpose != jwt.PurposeAccess && claims.Purpose != jwt.PurposeRecovery {
		return nil, store.ErrUnauthorized
	}
	return &models.User{ID: claims.UserID, Email: claims.Email}, nil
}
