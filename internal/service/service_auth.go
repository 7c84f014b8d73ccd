package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/epqs-catalog/internal/config"
	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/internal/store"
	"github.com/MKhiriev/epqs-catalog/internal/utils"
	"github.com/MKhiriev/epqs-catalog/internal/validators"
	"github.com/MKhiriev/epqs-catalog/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the session
// token lifecycle using a UserRepository for persistence and argon2id for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator
	hasher    *utils.PasswordHasher

	// sessionSignKey is the HMAC secret used to sign and verify session tokens.
	sessionSignKey string

	// sessionIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	sessionIssuer string

	// sessionDuration controls how long a newly issued session remains valid.
	sessionDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		validator:       validator,
		hasher:          utils.NewPasswordHasher(cfg.PasswordHashKey),
		sessionSignKey:  cfg.SessionSignKey,
		sessionIssuer:   cfg.SessionIssuer,
		sessionDuration: cfg.SessionDuration,
		logger:          logger,
	}
}

// RegisterUser creates a new user account and returns its id.
//
// Returns:
//   - ErrInvalidDataProvided if a field is missing or malformed.
//   - ErrUsernameTaken if the username or email is already registered.
//   - ErrStorageUnavailable if no database is connected.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (int64, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("username", request.Username).Msg("invalid registration data provided")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, salt, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return 0, fmt.Errorf("password hashing failed: %w", err)
	}

	userID, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: hash,
		PasswordSalt: salt,
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return 0, mapStorageError(err, "user creation ended with error")
	}

	log.Info().Int64("user_id", userID).Str("username", request.Username).Msg("user registered")
	return userID, nil
}

// Login authenticates an existing user. An unknown username and a wrong
// password are indistinguishable to the caller: both yield ErrWrongCredentials.
//
// A successful login records the login time. Failing to record it does not
// fail the login.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, found, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user search by username failed")
		return models.User{}, mapStorageError(err, "user search by username failed")
	}

	if !found || !user.IsActive {
		log.Info().Str("username", request.Username).Bool("found", found).Msg("login rejected")
		return models.User{}, ErrWrongCredentials
	}

	if !a.hasher.Verify(request.Password, user.PasswordHash, user.PasswordSalt) {
		log.Info().Int64("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	if err := a.userRepository.TouchLastLogin(ctx, user.ID); err != nil {
		log.Warn().Err(err).Int64("user_id", user.ID).Msg("last login was not recorded")
	} else {
		now := time.Now()
		user.LastLogin = &now
	}

	return user, nil
}

// CreateSession issues a signed session token for the given user.
func (a *authService) CreateSession(ctx context.Context, user models.User) (models.Session, error) {
	session, err := utils.GenerateSessionToken(a.sessionIssuer, user.ID, user.Username, a.sessionDuration, a.sessionSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.ID).Msg("session token generation failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return session, nil
}

// ParseSession validates a raw session token.
//
// Any validation failure (expired, wrong issuer, wrong key, malformed) is
// normalised to ErrSessionIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseSession(ctx context.Context, token string) (models.Session, error) {
	session, err := utils.ValidateAndParseSessionToken(token, a.sessionSignKey, a.sessionIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		return models.Session{}, ErrSessionIsExpiredOrInvalid
	}

	return session, nil
}

// mapStorageError translates the storage classification sentinels into
// service errors. Unclassified errors are wrapped with msg.
func mapStorageError(err error, msg string) error {
	switch {
	case errors.Is(err, store.ErrStorageUnavailable):
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	case errors.Is(err, store.ErrConstraintViolation):
		return fmt.Errorf("%w: %w", ErrUsernameTaken, err)
	case errors.Is(err, store.ErrReferenceViolation):
		return fmt.Errorf("%w: %w", ErrUnknownReference, err)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
