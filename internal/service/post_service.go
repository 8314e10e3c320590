package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/blacklabelhq/scheduler-api/internal/composer"
	"github.com/blacklabelhq/scheduler-api/internal/models"
	"github.com/blacklabelhq/scheduler-api/internal/repository"
	"github.com/blacklabelhq/scheduler-api/internal/transfer"
)

// MaxListSize caps the scheduled-post listing. Beyond it, results are
// silently truncated; there is no pagination.
const MaxListSize = 100

type PostService interface {
	Submit(ctx context.Context, userID string, pc *transfer.PostCreation) (*models.ScheduledPost, error)
	List(ctx context.Context, userID, workspaceID string) ([]*models.ScheduledPost, error)
	Remove(ctx context.Context, userID, postID string) error
	RefreshSeq(workspaceID string) uint64
}

type postService struct {
	pr       repository.PostRepository
	wr       repository.WorkspaceRepository
	settings SettingsService
	refresh  *RefreshCounter

	mu       sync.Mutex
	inflight map[string]struct{}
	views    map[string]*listView
}

// listView is the in-memory collection a workspace's list renders from.
// seq records which refresh generation it was fetched at.
type listView struct {
	seq   uint64
	posts []*models.ScheduledPost
}

func NewPostService(
	pr repository.PostRepository,
	wr repository.WorkspaceRepository,
	settings SettingsService,
	refresh *RefreshCounter) PostService {
	return &postService{
		pr:       pr,
		wr:       wr,
		settings: settings,
		refresh:  refresh,
		inflight: make(map[string]struct{}),
		views:    make(map[string]*listView),
	}
}

// Submit validates the draft, resolves its scheduled time, and persists a
// post with status fixed to "scheduled". Preconditions are checked in
// order and the first failure wins. The caption is stored exactly as
// authored; only the emptiness check trims. An image path, if present,
// must already have been uploaded; Submit never uploads.
func (s *postService) Submit(ctx context.Context, userID string, pc *transfer.PostCreation) (*models.ScheduledPost, error) {
	if pc == nil {
		err := errors.New("post creation data is nil")
		slog.Error(err.Error())
		return nil, err
	}

	if !s.acquire("submit:" + userID) {
		slog.Info(ErrSubmissionInFlight.Error())
		return nil, ErrSubmissionInFlight
	}
	defer s.release("submit:" + userID)

	if strings.TrimSpace(pc.Caption) == "" {
		slog.Info(composer.ErrEmptyCaption.Error())
		return nil, composer.ErrEmptyCaption
	}

	if len(pc.Platforms) == 0 {
		slog.Info(composer.ErrNoPlatformSelected.Error())
		return nil, composer.ErrNoPlatformSelected
	}

	if userID == "" || pc.WorkspaceID == "" {
		slog.Info(composer.ErrNoActiveWorkspace.Error())
		return nil, composer.ErrNoActiveWorkspace
	}
	isMember, err := s.wr.IsMember(ctx, pc.WorkspaceID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		slog.Info(composer.ErrNoActiveWorkspace.Error())
		return nil, composer.ErrNoActiveWorkspace
	}

	platforms, err := composer.NormalizePlatforms(pc.Platforms)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	loc, postingTime := s.settings.Clock(ctx, pc.WorkspaceID)
	resolver := composer.ScheduleResolver{Location: loc, DefaultTime: postingTime}
	scheduledFor, err := resolver.Resolve(pc.ScheduledDate, pc.ScheduledTime)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	post := &models.ScheduledPost{
		WorkspaceID:  pc.WorkspaceID,
		UserID:       userID,
		Caption:      pc.Caption,
		Platforms:    platforms,
		ScheduledFor: scheduledFor.UTC(),
		Status:       models.PostStatusScheduled,
	}
	if pc.ImagePath != "" {
		imagePath := pc.ImagePath
		post.ImagePath = &imagePath
	}

	if _, err := s.pr.Create(ctx, nil, post); err != nil {
		return nil, &PersistenceError{Op: "create post", Err: err}
	}

	// Bump only after the store confirms; dependent views re-fetch on the
	// next read instead of optimistically.
	s.refresh.Bump(pc.WorkspaceID)

	return post, nil
}

// List returns the workspace's scheduled posts ascending by schedule
// time, at most MaxListSize. The fetched collection is kept as the
// workspace's view and reused until the refresh counter moves.
func (s *postService) List(ctx context.Context, userID, workspaceID string) ([]*models.ScheduledPost, error) {
	isMember, err := s.wr.IsMember(ctx, workspaceID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		slog.Info(composer.ErrNoActiveWorkspace.Error())
		return nil, composer.ErrNoActiveWorkspace
	}

	cur := s.refresh.Current(workspaceID)

	s.mu.Lock()
	if view, ok := s.views[workspaceID]; ok && view.seq == cur {
		posts := snapshot(view.posts)
		s.mu.Unlock()
		return posts, nil
	}
	s.mu.Unlock()

	posts, err := s.pr.ListByWorkspaceID(ctx, workspaceID, MaxListSize)
	if err != nil {
		return nil, &PersistenceError{Op: "list posts", Err: err}
	}

	s.mu.Lock()
	s.views[workspaceID] = &listView{seq: cur, posts: posts}
	s.mu.Unlock()

	return snapshot(posts), nil
}

// Remove deletes the post and prunes it from the workspace's in-memory
// view without re-fetching.
func (s *postService) Remove(ctx context.Context, userID, postID string) error {
	if postID == "" {
		err := errors.New("post_id is not valid")
		slog.Info(err.Error())
		return err
	}

	if !s.acquire("delete:" + postID) {
		err := errors.New("post is already being deleted")
		slog.Info(err.Error())
		return err
	}
	defer s.release("delete:" + postID)

	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return &PersistenceError{Op: "get post", Err: err}
	}
	if post == nil {
		err = errors.New("post doesn't exist")
		slog.Info(err.Error())
		return err
	}

	isMember, err := s.wr.IsMember(ctx, post.WorkspaceID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		slog.Info(composer.ErrNoActiveWorkspace.Error())
		return composer.ErrNoActiveWorkspace
	}

	if err := s.pr.Remove(ctx, postID); err != nil {
		return &PersistenceError{Op: "remove post", Err: err}
	}

	seq := s.refresh.Bump(post.WorkspaceID)

	s.mu.Lock()
	if view, ok := s.views[post.WorkspaceID]; ok {
		for i, p := range view.posts {
			if p.ID == postID {
				view.posts = append(view.posts[:i], view.posts[i+1:]...)
				break
			}
		}
		// The pruned view is current again; the next List needs no fetch.
		view.seq = seq
	}
	s.mu.Unlock()

	return nil
}

func (s *postService) RefreshSeq(workspaceID string) uint64 {
	return s.refresh.Current(workspaceID)
}

func (s *postService) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[key]; busy {
		return false
	}
	s.inflight[key] = struct{}{}
	return true
}

func (s *postService) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, key)
}

func snapshot(posts []*models.ScheduledPost) []*models.ScheduledPost {
	out := make([]*models.ScheduledPost, len(posts))
	copy(out, posts)
	return out
}
