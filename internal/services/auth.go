package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"translationhub/internal/domain"
)

// AuthService issues, verifies and revokes bearer tokens and registers users.
type AuthService struct {
	users          domain.UserRepository
	tokens         domain.TokenRepository
	hasher         domain.PasswordHasher
	issuer         domain.TokenIssuer
	parser         domain.TokenParser
	emailService   domain.EmailService
	tokenExpiry    time.Duration
	mailTimeout    time.Duration
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
	notices        sync.WaitGroup
}

const defaultMailTimeout = 10 * time.Second

// AuthConfig bundles the ports an AuthService depends on. EmailService may be nil.
type AuthConfig struct {
	Users        domain.UserRepository
	Tokens       domain.TokenRepository
	Hasher       domain.PasswordHasher
	Issuer       domain.TokenIssuer
	Parser       domain.TokenParser
	EmailService domain.EmailService
	TokenExpiry  time.Duration
	Timeout      time.Duration
	// MailTimeout bounds a background notice email. Zero means 10s.
	MailTimeout time.Duration
}

// NewAuthService creates an AuthService issuing revocable bearer tokens.
func NewAuthService(cfg AuthConfig, logger *slog.Logger) *AuthService {
	mailTimeout := cfg.MailTimeout
	if mailTimeout <= 0 {
		mailTimeout = defaultMailTimeout
	}
	return &AuthService{
		users:          cfg.Users,
		tokens:         cfg.Tokens,
		hasher:         cfg.Hasher,
		issuer:         cfg.Issuer,
		parser:         cfg.Parser,
		emailService:   cfg.EmailService,
		tokenExpiry:    cfg.TokenExpiry,
		mailTimeout:    mailTimeout,
		logger:         logger,
		contextTimeout: cfg.Timeout,
		now:            time.Now,
	}
}

var _ domain.AuthService = (*AuthService)(nil)

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// Register creates a user with a salted password hash.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	user := &domain.User{
		Email:        normalizeEmail(email),
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		Salt:         salt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *AuthService) IssueToken(ctx context.Context, email, password, deviceName string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to load user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	name := strings.TrimSpace(deviceName)
	if name == "" {
		name = domain.DefaultTokenName
	}
	now := s.now().UTC()
	record := &domain.APIToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Name:      name,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenExpiry),
	}
	if err := s.tokens.Create(ctx, record); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}
	signed, err := s.issuer.Issue(record.ID, user.ID, user.Email, s.tokenExpiry)
	if err != nil {
		return "", err
	}

	if s.emailService != nil {
		s.sendTokenIssued(ctx, user.ID, &domain.TokenIssuedEmailData{
			Email:      user.Email,
			Name:       user.Name,
			DeviceName: name,
			IssuedAt:   now.Format(time.RFC1123),
		})
	}
	return signed, nil
}

// sendTokenIssued mails the notice in the background, detached from the request
// context and bounded by mailTimeout. Failures are logged.
func (s *AuthService) sendTokenIssued(ctx context.Context, userID int64, data *domain.TokenIssuedEmailData) {
	mailCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.mailTimeout)
	s.notices.Add(1)
	go func() {
		defer s.notices.Done()
		defer cancel()
		if err := s.emailService.SendTokenIssued(mailCtx, data); err != nil {
			s.logger.WarnContext(mailCtx, "token issued email failed", "user_id", userID, "err", err)
		}
	}()
}

// Wait blocks until every pending notice email has finished.
func (s *AuthService) Wait() {
	s.notices.Wait()
}

// Verify accepts a token only while its signature is valid and its server-side record exists.
func (s *AuthService) Verify(ctx context.Context, token string) (*domain.Principal, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	claims, err := s.parser.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	record, err := s.tokens.GetByID(ctx, claims.TokenID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: token revoked", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to load token: %w", err)
	}
	now := s.now().UTC()
	if record.UserID != claims.UserID || !now.Before(record.ExpiresAt) {
		return nil, domain.ErrUnauthorized
	}
	if err := s.tokens.Touch(ctx, record.ID, now); err != nil {
		s.logger.WarnContext(ctx, "token touch failed", "token_id", record.ID, "err", err)
	}
	return &domain.Principal{UserID: record.UserID, TokenID: record.ID}, nil
}

// Logout revokes the token. Revoking an already revoked token succeeds.
func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.tokens.Delete(ctx, tokenID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
