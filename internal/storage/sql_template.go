// AngelaMos | 2026
// sql_template.go

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/socialdash/internal/core"
)

const templateColumns = `id, user_id, name, description, image_url, content,
	platforms, is_default`

func (s *SQLStore) ListPostTemplates(
	ctx context.Context,
	userID int64,
) ([]PostTemplate, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM post_templates
		WHERE user_id = ?
		ORDER BY id`

	templates := []PostTemplate{}
	if err := s.selectAll(ctx, &templates, query, userID); err != nil {
		return nil, fmt.Errorf("list post templates: %w", err)
	}

	return templates, nil
}

func (s *SQLStore) GetPostTemplate(
	ctx context.Context,
	id int64,
) (*PostTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM post_templates WHERE id = ?`

	var t PostTemplate
	err := s.get(ctx, &t, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get post template: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get post template: %w", err)
	}

	return &t, nil
}

func (s *SQLStore) CreatePostTemplate(
	ctx context.Context,
	in NewPostTemplate,
) (*PostTemplate, error) {
	if err := checkPlatforms(in.Platforms); err != nil {
		return nil, fmt.Errorf("create post template: %w", err)
	}

	query := `
		INSERT INTO post_templates
			(user_id, name, description, image_url, content, platforms, is_default)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + templateColumns

	var t PostTemplate
	err := s.get(ctx, &t, query,
		in.UserID,
		in.Name,
		in.Description,
		in.ImageURL,
		in.Content,
		nonNilPlatforms(in.Platforms),
		in.IsDefault,
	)
	if err != nil {
		return nil, translateError("create post template", err)
	}

	return &t, nil
}

func (s *SQLStore) UpdatePostTemplate(
	ctx context.Context,
	id int64,
	patch PostTemplatePatch,
) (*PostTemplate, error) {
	if patch.Platforms != nil {
		if err := checkPlatforms(*patch.Platforms); err != nil {
			return nil, fmt.Errorf("update post template: %w", err)
		}
	}
	if patch.IsEmpty() {
		return s.GetPostTemplate(ctx, id)
	}

	var set setClause
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Description.Set {
		set.add("description", nullableArg(patch.Description))
	}
	if patch.ImageURL.Set {
		set.add("image_url", nullableArg(patch.ImageURL))
	}
	if patch.Content != nil {
		set.add("content", *patch.Content)
	}
	if patch.Platforms != nil {
		set.add("platforms", nonNilPlatforms(*patch.Platforms))
	}
	if patch.IsDefault != nil {
		set.add("is_default", *patch.IsDefault)
	}

	query, args := set.update("post_templates", id, templateColumns)

	var t PostTemplate
	err := s.get(ctx, &t, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update post template: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, translateError("update post template", err)
	}

	return &t, nil
}

func (s *SQLStore) DeletePostTemplate(
	ctx context.Context,
	id int64,
) (bool, error) {
	deleted, err := s.deleteByID(ctx, "post_templates", id)
	if err != nil {
		return false, fmt.Errorf("delete post template: %w", err)
	}
	return deleted, nil
}
