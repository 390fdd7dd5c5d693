// AngelaMos | 2026
// sql_brand.go

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/socialdash/internal/core"
)

const brandColumns = `id, user_id, name, colors, fonts, logo_url`

func (s *SQLStore) GetBrandSettings(
	ctx context.Context,
	userID int64,
) (*BrandSetting, error) {
	query := `
		SELECT ` + brandColumns + `
		FROM brand_settings
		WHERE user_id = ?
		ORDER BY id
		LIMIT 1`

	var b BrandSetting
	err := s.get(ctx, &b, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get brand settings: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get brand settings: %w", err)
	}

	return &b, nil
}

func (s *SQLStore) getBrandSettingByID(
	ctx context.Context,
	id int64,
) (*BrandSetting, error) {
	query := `SELECT ` + brandColumns + ` FROM brand_settings WHERE id = ?`

	var b BrandSetting
	err := s.get(ctx, &b, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get brand settings: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get brand settings: %w", err)
	}

	return &b, nil
}

func (s *SQLStore) CreateBrandSettings(
	ctx context.Context,
	in NewBrandSetting,
) (*BrandSetting, error) {
	query := `
		INSERT INTO brand_settings (user_id, name, colors, fonts, logo_url)
		VALUES (?, ?, ?, ?, ?)
		RETURNING ` + brandColumns

	var b BrandSetting
	err := s.get(ctx, &b, query,
		in.UserID,
		in.Name,
		nonNilColors(in.Colors),
		in.Fonts,
		in.LogoURL,
	)
	if err != nil {
		return nil, translateError("create brand settings", err)
	}

	return &b, nil
}

func (s *SQLStore) UpdateBrandSettings(
	ctx context.Context,
	id int64,
	patch BrandSettingPatch,
) (*BrandSetting, error) {
	if patch.IsEmpty() {
		return s.getBrandSettingByID(ctx, id)
	}

	var set setClause
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Colors != nil {
		set.add("colors", nonNilColors(*patch.Colors))
	}
	if patch.Fonts != nil {
		set.add("fonts", *patch.Fonts)
	}
	if patch.LogoURL.Set {
		set.add("logo_url", nullableArg(patch.LogoURL))
	}

	query, args := set.update("brand_settings", id, brandColumns)

	var b BrandSetting
	err := s.get(ctx, &b, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update brand settings: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, translateError("update brand settings", err)
	}

	return &b, nil
}
