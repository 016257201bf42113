package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"translationhub/config"
	"translationhub/internal/adapters/auth"
	"translationhub/internal/adapters/email"
	"translationhub/internal/cache"
	"translationhub/internal/domain"
	"translationhub/internal/repository/postgres"
	"translationhub/internal/services"
)

// app holds the process-wide resources shared by the commands.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	db      *sql.DB
	store   *postgres.Store
	closers []func() error
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:     cfg,
		logger:  logger,
		db:      db,
		store:   postgres.NewStore(db),
		closers: []func() error{db.Close},
	}, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("close resource", "err", err)
		}
	}
}

// exportCache returns the Redis cache when REDIS_URL is set, otherwise an in-process cache.
func (a *app) exportCache(ctx context.Context) (domain.ExportCache, error) {
	if a.cfg.RedisURL == "" {
		a.logger.Info("export cache: in-process", "ttl", a.cfg.ExportCacheTTL)
		return cache.NewMemoryCache(a.cfg.ExportCacheTTL), nil
	}
	c, client, err := cache.NewRedisCache(ctx, cache.RedisConfig{URL: a.cfg.RedisURL, TTL: a.cfg.ExportCacheTTL})
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	a.closers = append(a.closers, client.Close)
	a.logger.Info("export cache: redis", "ttl", a.cfg.ExportCacheTTL)
	return c, nil
}

func (a *app) translationService() domain.TranslationService {
	return services.NewTranslationService(a.store.Repositories(), a.store, a.logger, a.cfg.RequestTimeout)
}

func (a *app) exportService(c domain.ExportCache) domain.ExportService {
	repos := a.store.Repositories()
	return services.NewExportService(repos.Translations, repos.CacheVersions, c, a.logger, a.cfg.RequestTimeout)
}

func (a *app) localeService() domain.LocaleService {
	return services.NewLocaleService(a.store.Repositories().Locales, a.cfg.RequestTimeout)
}

func (a *app) authService() (*services.AuthService, error) {
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    a.cfg.Mail.Provider,
		FromAddress: a.cfg.Mail.FromAddress,
		FromName:    a.cfg.Mail.FromName,
		SES: email.SESConfig{
			Region:             a.cfg.Mail.AWSRegion,
			AccessKeyID:        a.cfg.Mail.AWSAccessKeyID,
			SecretAccessKey:    a.cfg.Mail.AWSSecretAccessKey,
			InsecureSkipVerify: a.cfg.Mail.InsecureSkipVerify,
		},
	}, a.logger)
	if err != nil {
		return nil, err
	}
	jwt := auth.NewJWT(a.cfg.JWTSecret, a.cfg.JWTIssuer)
	return services.NewAuthService(services.AuthConfig{
		Users:        postgres.NewUserRepository(a.db),
		Tokens:       postgres.NewTokenRepository(a.db),
		Hasher:       auth.NewBcryptHasher(bcrypt.DefaultCost),
		Issuer:       jwt,
		Parser:       jwt,
		EmailService: services.NewEmailService(mailer, email.NewTemplateRenderer(), a.logger),
		TokenExpiry:  a.cfg.TokenExpiry,
		Timeout:      a.cfg.RequestTimeout,
	}, a.logger), nil
}
