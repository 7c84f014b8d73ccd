package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection.
func NewUserRepository(db *DB) UserRepository {
	db.logger.Debug().Msg("creating user repository")
	return &userRepository{db: db}
}

// FindUserByUsername retrieves the user whose username matches exactly.
//
// [sql.ErrNoRows] is not an error here: the method returns found=false.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, bool, error) {
	const op = "userRepository.FindUserByUsername"
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByUsernameQuery(r.db.builder, username)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to create query")
		return models.User{}, false, newStorageError(op, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	var (
		user      models.User
		lastLogin sql.NullTime
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.PasswordSalt,
		&user.CreatedAt,
		&lastLogin,
		&user.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", op).Str("username", username).Msg("user not found")
		return models.User{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", op).Str("username", username).Msg("failed to query user")
		return models.User{}, false, r.db.wrapError(op, ErrScanningRow, err)
	}

	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}

	return user, true, nil
}

// CreateUser inserts a new user in a transaction and returns the id assigned
// by the database.
//
// A taken username or email is reported as [ErrConstraintViolation].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (int64, error) {
	const op = "userRepository.CreateUser"
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to create query")
		return 0, newStorageError(op, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	var id int64
	err = r.db.withTx(ctx, op, func(tx *sql.Tx) error {
		if scanErr := tx.QueryRowContext(ctx, query, args...).Scan(&id); scanErr != nil {
			log.Err(scanErr).Str("func", op).Str("username", user.Username).Msg("failed to insert user")
			return r.db.wrapError(op, ErrExecutingQuery, scanErr)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info().Str("func", op).Int64("user_id", id).Msg("user created")
	return id, nil
}

// TouchLastLogin sets last_login to the database's current time.
func (r *userRepository) TouchLastLogin(ctx context.Context, userID int64) error {
	const op = "userRepository.TouchLastLogin"
	log := logger.FromContext(ctx)

	query, args, err := buildTouchLastLoginQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to create query")
		return newStorageError(op, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", op).Int64("user_id", userID).Msg("failed to update last login")
		return r.db.wrapError(op, ErrExecutingQuery, err)
	}

	return nil
}
