// Package auth registers accounts and verifies logins.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/thenoetrevino/taskdesk/internal/database"
	"github.com/thenoetrevino/taskdesk/internal/models"
)

// Service defines all account operations
type Service interface {
	// Register creates an account. Errors: ErrInvalidInput (wrapped),
	// ErrUsernameTaken, ErrStorage.
	Register(ctx context.Context, username, password string) error

	// Login returns the user when username and password match.
	// Unknown users and wrong passwords both yield ErrAuthenticationFailed.
	Login(ctx context.Context, username, password string) (*models.User, error)
}

// Options tunes a Service
type Options struct {
	// Hasher stores new credentials; defaults to bcrypt at cost 10
	Hasher Hasher
	// UpgradeLegacy rewrites legacy digests with Hasher after a successful login
	UpgradeLegacy bool
	Logger        *slog.Logger
}

// service implements Service interface
type service struct {
	repo          database.UserRepository
	hasher        Hasher
	upgradeLegacy bool
	logger        *slog.Logger

	dummyOnce sync.Once
	dummyHash string
}

// NewService creates a new auth service
func NewService(repo database.UserRepository, opts Options) Service {
	if opts.Hasher == nil {
		opts.Hasher = NewBcryptHasher(10)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &service{
		repo:          repo,
		hasher:        opts.Hasher,
		upgradeLegacy: opts.UpgradeLegacy,
		logger:        opts.Logger,
	}
}

// Register handles account creation with validation
func (s *service) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			return err
		}
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.repo.CreateUser(ctx, username, hashed); err != nil {
		if database.IsUniqueViolation(err) {
			s.logger.Info("registration rejected: username taken", "username", username)
			return models.ErrUsernameTaken
		}
		s.logger.Error("failed to create user", "username", username, "error", err)
		return fmt.Errorf("%w: %w", models.ErrStorage, err)
	}

	s.logger.Info("user registered", "username", username, "hasher", s.hasher.Name())
	return nil
}

// Login verifies credentials
func (s *service) Login(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, models.ErrAuthenticationFailed
	}

	user, err := s.repo.GetUserByUsername(ctx, username)
	if errors.Is(err, database.ErrUserNotFound) {
		// Spend the same work as a real comparison so timing does not
		// reveal which usernames exist.
		s.hasher.Verify(s.dummy(), password)
		s.logger.Info("login rejected", "username", username)
		return nil, models.ErrAuthenticationFailed
	}
	if err != nil {
		s.logger.Error("failed to look up user", "username", username, "error", err)
		return nil, fmt.Errorf("%w: %w", models.ErrStorage, err)
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		s.logger.Info("login rejected", "username", username)
		return nil, models.ErrAuthenticationFailed
	}

	if s.upgradeLegacy && IsLegacyDigest(user.PasswordHash) && s.hasher.Name() != (DigestHasher{}).Name() {
		s.upgrade(ctx, user, password)
	}

	s.logger.Info("login succeeded", "username", username)
	return user, nil
}

// upgrade replaces a legacy digest. Failures are logged only: the user has
// already proven the password and the digest keeps working.
func (s *service) upgrade(ctx context.Context, user *models.User, password string) {
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Warn("could not rehash legacy credential", "username", user.Username, "error", err)
		return
	}
	if err := s.repo.UpdateUserPasswordHash(ctx, user.Username, hashed); err != nil {
		s.logger.Warn("could not store upgraded credential", "username", user.Username, "error", err)
		return
	}
	user.PasswordHash = hashed
	s.logger.Info("upgraded legacy credential", "username", user.Username, "hasher", s.hasher.Name())
}

func (s *service) dummy() string {
	s.dummyOnce.Do(func() {
		hashed, err := s.hasher.Hash("taskdesk-timing-equalizer")
		if err != nil {
			hashed = Hash("taskdesk-timing-equalizer")
		}
		s.dummyHash = hashed
	})
	return s.dummyHash
}

func validateCredentials(username, password string) error {
	if username == "" {
		return models.ErrEmptyUsername
	}
	if len(username) > models.MaxUsernameLength {
		return models.ErrUsernameTooLong
	}
	if password == "" {
		return models.ErrEmptyPassword
	}
	return nil
}
