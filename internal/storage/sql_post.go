// AngelaMos | 2026
// sql_post.go

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/socialdash/internal/core"
)

const postColumns = `id, user_id, content, image_url, scheduled_date,
	published_date, status, platforms, template_id, engagement_stats`

func (s *SQLStore) ListPosts(ctx context.Context, userID int64) ([]Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE user_id = ?
		ORDER BY id`

	posts := []Post{}
	if err := s.selectAll(ctx, &posts, query, userID); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	for i := range posts {
		posts[i].normalizeTimes()
	}
	return posts, nil
}

func (s *SQLStore) ListPostsByMonth(
	ctx context.Context,
	userID int64,
	year int,
	month int,
) ([]Post, error) {
	start, end := MonthRange(year, month, s.loc)

	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE user_id = ?
		  AND scheduled_date >= ?
		  AND scheduled_date <= ?
		ORDER BY id`

	posts := []Post{}
	err := s.selectAll(ctx, &posts, query, userID, start.UTC(), end.UTC())
	if err != nil {
		return nil, fmt.Errorf("list posts by month: %w", err)
	}

	for i := range posts {
		posts[i].normalizeTimes()
	}
	return posts, nil
}

func (s *SQLStore) GetPost(ctx context.Context, id int64) (*Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = ?`

	var p Post
	err := s.get(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get post: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	p.normalizeTimes()
	return &p, nil
}

func (s *SQLStore) CreatePost(ctx context.Context, in NewPost) (*Post, error) {
	if err := checkPlatforms(in.Platforms); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	query := `
		INSERT INTO posts
			(user_id, content, image_url, scheduled_date, status, platforms,
			 template_id, engagement_stats)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + postColumns

	var p Post
	err := s.get(ctx, &p, query,
		in.UserID,
		in.Content,
		in.ImageURL,
		in.ScheduledDate.UTC(),
		string(StatusScheduled),
		nonNilPlatforms(in.Platforms),
		in.TemplateID,
		Engagement{},
	)
	if err != nil {
		return nil, translateError("create post", err)
	}

	p.normalizeTimes()
	return &p, nil
}

// insertPost writes a fully formed post, keeping its status, published date
// and engagement.
func (s *SQLStore) insertPost(ctx context.Context, p Post) error {
	if err := checkPlatforms(p.Platforms); err != nil {
		return err
	}

	query := s.rebind(`
		INSERT INTO posts
			(user_id, content, image_url, scheduled_date, published_date,
			 status, platforms, template_id, engagement_stats)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	var published any
	if p.PublishedDate != nil {
		published = p.PublishedDate.UTC()
	}
	var engagement any
	if p.EngagementStats != nil {
		engagement = *p.EngagementStats
	}

	_, err := s.q.ExecContext(ctx, query,
		p.UserID,
		p.Content,
		p.ImageURL,
		p.ScheduledDate.UTC(),
		published,
		string(p.Status),
		nonNilPlatforms(p.Platforms),
		p.TemplateID,
		engagement,
	)
	if err != nil {
		return translateError("insert post", err)
	}
	return nil
}

func (s *SQLStore) UpdatePost(
	ctx context.Context,
	id int64,
	patch PostPatch,
) (*Post, error) {
	if patch.Platforms != nil {
		if err := checkPlatforms(*patch.Platforms); err != nil {
			return nil, fmt.Errorf("update post: %w", err)
		}
	}
	if patch.IsEmpty() {
		return s.GetPost(ctx, id)
	}

	var set setClause
	if patch.Content != nil {
		set.add("content", *patch.Content)
	}
	if patch.ImageURL.Set {
		set.add("image_url", nullableArg(patch.ImageURL))
	}
	if patch.ScheduledDate != nil {
		set.add("scheduled_date", patch.ScheduledDate.UTC())
	}
	if patch.Platforms != nil {
		set.add("platforms", nonNilPlatforms(*patch.Platforms))
	}
	if patch.TemplateID.Set {
		set.add("template_id", nullableArg(patch.TemplateID))
	}

	query, args := set.update("posts", id, postColumns)

	var p Post
	err := s.get(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update post: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, translateError("update post", err)
	}

	p.normalizeTimes()
	return &p, nil
}

func (s *SQLStore) DeletePost(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.deleteByID(ctx, "posts", id)
	if err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}
	return deleted, nil
}
