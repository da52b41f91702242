package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-posts/internal/logger"
	"github.com/MKhiriev/go-users-posts/models"
)

type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

func (p *postRepository) FindByUserID(ctx context.Context, userID int64) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.db.buildSelectPostsByUserIDQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindByUserID").Msg("failed to build query")
		return nil, err
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.FindByUserID").
			Int64("user_id", userID).
			Msg("failed to query posts")
		return nil, p.db.errorClassificator.Classify(err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Text, &post.UserID); err != nil {
			log.Err(err).Str("func", "*postRepository.FindByUserID").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.FindByUserID").Msg("error iterating post rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// Create persists a new post. A post for a missing user fails the foreign
// key and is reported as [ErrUserNotFound].
func (p *postRepository) Create(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.db.buildInsertPostQuery(post.Text, post.UserID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.Create").Msg("failed to build query")
		return models.Post{}, err
	}

	var created models.Post
	err = p.db.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.Text, &created.UserID)
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.Create").
			Int64("user_id", post.UserID).
			Msg("failed to insert post")
		return models.Post{}, p.db.errorClassificator.Classify(err)
	}

	return created, nil
}
