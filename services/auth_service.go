package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"trimspire/models"
	"trimspire/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthService struct {
	db     *gorm.DB
	tokens *utils.Tokens
	mailer utils.Mailer
	appURL string // frontend pages
	apiURL string // this server
	log    *zap.Logger
}

// NewAuthService builds the service. Setup links point at the frontend (appURL),
// magic links at this server's verify route (apiURL).
func NewAuthService(db *gorm.DB, tokens *utils.Tokens, mailer utils.Mailer, appURL, apiURL string, log *zap.Logger) *AuthService {
	return &AuthService{db: db, tokens: tokens, mailer: mailer, appURL: appURL, apiURL: apiURL, log: log}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) findByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// Login checks the password and returns a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.findByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if !user.HasPassword() || !utils.CheckPasswordHash(password, *user.Password) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(user.ID, utils.PurposeSession)
}

// Authenticate resolves a session token to a user id.
func (s *AuthService) Authenticate(session string) (string, error) {
	return s.tokens.Verify(session, utils.PurposeSession)
}

func tokenLink(base, path, token string) string {
	return base + path + "?token=" + url.QueryEscape(token)
}

// SendSetupLink mails a one-hour link to the password setup page.
func (s *AuthService) SendSetupLink(ctx context.Context, user *models.User) error {
	token, err := s.tokens.Issue(user.ID, utils.PurposeSetup)
	if err != nil {
		return err
	}
	msg, err := utils.SetupPasswordEmail(user.Email, tokenLink(s.appURL, "/set-password", token))
	if err != nil {
		return fmt.Errorf("render setup email: %w", err)
	}
	return s.mailer.Send(ctx, msg)
}

// SendMagicLink mails a 15 minute login link. Unknown addresses are not reported to
// the caller.
func (s *AuthService) SendMagicLink(ctx context.Context, email string) error {
	user, err := s.findByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		s.log.Info("magic link requested for unknown email")
		return nil
	}
	if err != nil {
		return err
	}
	token, err := s.tokens.Issue(user.ID, utils.PurposeMagicLink)
	if err != nil {
		return err
	}
	msg, err := utils.MagicLinkEmail(user.Email, tokenLink(s.apiURL, "/api/auth/verify", token))
	if err != nil {
		return fmt.Errorf("render magic link email: %w", err)
	}
	return s.mailer.Send(ctx, msg)
}

// VerifyMagicLink exchanges a magic link token for a session token.
func (s *AuthService) VerifyMagicLink(ctx context.Context, token string) (string, error) {
	userID, err := s.tokens.Verify(token, utils.PurposeMagicLink)
	if err != nil {
		return "", err
	}
	if _, err := s.CurrentUser(ctx, userID); errors.Is(err, ErrNotFound) {
		return "", ErrInvalidToken
	} else if err != nil {
		return "", err
	}
	return s.tokens.Issue(userID, utils.PurposeSession)
}

// SetPassword stores a password hash for the owner of a setup token and returns a
// session token.
func (s *AuthService) SetPassword(ctx context.Context, token, password string) (string, error) {
	userID, err := s.tokens.Verify(token, utils.PurposeSetup)
	if err != nil {
		return "", err
	}
	if len(password) < utils.MinPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, utils.MinPasswordLength)
	}
	if len(password) > utils.MaxPasswordBytes {
		return "", fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, utils.MaxPasswordBytes)
	}
	hash, err := utils.HashPassword(password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("password", hash)
	if res.Error != nil {
		return "", fmt.Errorf("store password: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return "", ErrInvalidToken
	}
	return s.tokens.Issue(userID, utils.PurposeSession)
}
