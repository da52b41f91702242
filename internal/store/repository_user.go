package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-users-posts/internal/logger"
	"github.com/MKhiriev/go-users-posts/models"
)

// userRepository is the SQL implementation of [UserRepository]. It works on
// the "users" table through the dialect aware [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectAllUsersQuery()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAll").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAll").Msg("failed to query users")
		return nil, r.db.errorClassificator.Classify(err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name); err != nil {
			log.Err(err).Str("func", "*userRepository.FindAll").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindAll").Msg("error iterating user rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// FindByID retrieves a single user.
//
// Error handling:
//   - no row → [ErrUserNotFound].
//   - any other driver-level error → classified by the dialect.
func (r *userRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectUserByIDQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindByID").Msg("failed to build query")
		return models.User{}, err
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindByID").Int64("user_id", id).Msg("failed to find user")
		return models.User{}, r.db.errorClassificator.Classify(err)
	}

	return user, nil
}

// Create persists a new user and returns the canonical database
// representation via a RETURNING clause.
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertUserQuery(user.Name)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("failed to build query")
		return models.User{}, err
	}

	var created models.User
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.Name); err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("failed to insert user")
		return models.User{}, r.db.errorClassificator.Classify(err)
	}

	return created, nil
}

// Update renames the user. Zero affected rows means the user does not exist.
func (r *userRepository) Update(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildUpdateUserQuery(user.ID, user.Name)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Update").Msg("failed to build query")
		return err
	}

	return r.execAffectingUser(ctx, "*userRepository.Update", user.ID, query, args)
}

// Delete removes the user. Zero affected rows means the user does not exist.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteUserQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Msg("failed to build query")
		return err
	}

	return r.execAffectingUser(ctx, "*userRepository.Delete", id, query, args)
}

func (r *userRepository) execAffectingUser(ctx context.Context, fn string, id int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Int64("user_id", id).Msg("failed to execute statement")
		return r.db.errorClassificator.Classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Int64("user_id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
