package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/blacklabelhq/scheduler-api/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PostRepository interface {
	GetByID(ctx context.Context, id string) (*models.ScheduledPost, error)
	Create(ctx context.Context, tx *sql.Tx, post *models.ScheduledPost) (string, error)
	ListByWorkspaceID(ctx context.Context, workspaceID string, limit int) ([]*models.ScheduledPost, error)
	ListByScheduledRange(ctx context.Context, workspaceID string, from, to time.Time) ([]*models.ScheduledPost, error)
	Remove(ctx context.Context, id string) error
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, tx *sql.Tx, post *models.ScheduledPost) (string, error) {
	query := `
		INSERT INTO scheduled_posts (id, workspace_id, user_id, caption, platforms, scheduled_for, status, image_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id string
	var err error

	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	platforms := platformTags(post.Platforms)

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, post.ID, post.WorkspaceID, post.UserID, post.Caption, pq.Array(platforms), post.ScheduledFor, post.Status, post.ImagePath).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, post.ID, post.WorkspaceID, post.UserID, post.Caption, pq.Array(platforms), post.ScheduledFor, post.Status, post.ImagePath).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return id, nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.ScheduledPost, error) {
	query := `SELECT id, workspace_id, user_id, caption, platforms, scheduled_for, status, image_path, created_at FROM scheduled_posts WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	post, err := scanPost(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return post, nil
}

// ListByWorkspaceID returns posts ascending by schedule time. Results are
// silently truncated at limit; there is no further pagination.
func (r *postRepository) ListByWorkspaceID(ctx context.Context, workspaceID string, limit int) ([]*models.ScheduledPost, error) {
	query := `
		SELECT id, workspace_id, user_id, caption, platforms, scheduled_for, status, image_path, created_at
		FROM scheduled_posts
		WHERE workspace_id = $1
		ORDER BY scheduled_for ASC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, workspaceID, limit)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return collectPosts(rows)
}

func (r *postRepository) ListByScheduledRange(ctx context.Context, workspaceID string, from, to time.Time) ([]*models.ScheduledPost, error) {
	query := `
		SELECT id, workspace_id, user_id, caption, platforms, scheduled_for, status, image_path, created_at
		FROM scheduled_posts
		WHERE workspace_id = $1 AND scheduled_for >= $2 AND scheduled_for < $3
		ORDER BY scheduled_for ASC
	`
	rows, err := r.db.QueryContext(ctx, query, workspaceID, from, to)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return collectPosts(rows)
}

func (r *postRepository) Remove(ctx context.Context, id string) error {
	query := `DELETE FROM scheduled_posts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)

	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*models.ScheduledPost, error) {
	var post models.ScheduledPost
	var platforms pq.StringArray
	err := row.Scan(&post.ID, &post.WorkspaceID, &post.UserID, &post.Caption, &platforms, &post.ScheduledFor, &post.Status, &post.ImagePath, &post.CreatedAt)
	if err != nil {
		return nil, err
	}
	post.Platforms = make([]models.Platform, len(platforms))
	for i, p := range platforms {
		post.Platforms[i] = models.Platform(p)
	}
	return &post, nil
}

func collectPosts(rows *sql.Rows) ([]*models.ScheduledPost, error) {
	var posts []*models.ScheduledPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func platformTags(platforms []models.Platform) []string {
	tags := make([]string, len(platforms))
	for i, p := range platforms {
		tags[i] = string(p)
	}
	return tags
}
