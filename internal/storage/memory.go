// AngelaMos | 2026
// memory.go

package storage

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/carterperez-dev/socialdash/internal/core"
)

var _ Storage = (*MemoryStore)(nil)

// MemoryStore keeps every collection in process memory. All reads return
// copies so callers never alias stored records.
type MemoryStore struct {
	mu  sync.RWMutex
	loc *time.Location

	users       map[int64]*User
	brands      map[int64]*BrandSetting
	connections map[int64]*PlatformConnection
	templates   map[int64]*PostTemplate
	posts       map[int64]*Post

	nextUserID       int64
	nextBrandID      int64
	nextConnectionID int64
	nextTemplateID   int64
	nextPostID       int64
}

type MemoryOption func(*MemoryStore)

// WithLocation sets the calendar location used by ListPostsByMonth.
func WithLocation(loc *time.Location) MemoryOption {
	return func(s *MemoryStore) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		loc:              time.UTC,
		users:            make(map[int64]*User),
		brands:           make(map[int64]*BrandSetting),
		connections:      make(map[int64]*PlatformConnection),
		templates:        make(map[int64]*PostTemplate),
		posts:            make(map[int64]*Post),
		nextUserID:       1,
		nextBrandID:      1,
		nextConnectionID: 1,
		nextTemplateID:   1,
		nextPostID:       1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSeededMemoryStore returns a memory store loaded with the demo dataset
// relative to now.
func NewSeededMemoryStore(
	ctx context.Context,
	now time.Time,
	opts ...MemoryOption,
) (*MemoryStore, error) {
	s := NewMemoryStore(opts...)

	fx, err := DemoFixtures(now, s.loc)
	if err != nil {
		return nil, err
	}
	if err := s.LoadFixtures(ctx, fx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) LoadFixtures(ctx context.Context, fx *Fixtures) error {
	user, err := s.CreateUser(ctx, fx.User)
	if err != nil {
		return fmt.Errorf("load fixture user: %w", err)
	}
	owned := fx.withOwner(user.ID)

	for _, b := range owned.BrandSettings {
		if _, err := s.CreateBrandSettings(ctx, b); err != nil {
			return fmt.Errorf("load fixture brand settings: %w", err)
		}
	}
	for _, c := range owned.Connections {
		if _, err := s.CreatePlatformConnection(ctx, c); err != nil {
			return fmt.Errorf("load fixture connection: %w", err)
		}
	}
	for _, t := range owned.Templates {
		if _, err := s.CreatePostTemplate(ctx, t); err != nil {
			return fmt.Errorf("load fixture template: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range owned.Posts {
		if err := checkPlatforms(p.Platforms); err != nil {
			return fmt.Errorf("load fixture post: %w", err)
		}
		stored := p.clone()
		stored.ID = s.nextPostID
		stored.Platforms = nonNilPlatforms(stored.Platforms)
		stored.normalizeTimes()
		s.nextPostID++
		s.posts[stored.ID] = stored
	}

	return nil
}

func (s *MemoryStore) GetUser(_ context.Context, id int64) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	return u.clone(), nil
}

func (s *MemoryStore) GetUserByUsername(
	_ context.Context,
	username string,
) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u.clone(), nil
		}
	}
	return nil, fmt.Errorf("get user by username: %w", core.ErrNotFound)
}

func (s *MemoryStore) CreateUser(_ context.Context, in NewUser) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == in.Username || u.Email == in.Email {
			return nil, fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
	}

	u := User{
		ID:           s.nextUserID,
		Username:     in.Username,
		Password:     in.Password,
		Name:         in.Name,
		BusinessName: clonePtr(in.BusinessName),
		Email:        in.Email,
	}
	s.nextUserID++
	s.users[u.ID] = &u

	return u.clone(), nil
}

func (s *MemoryStore) GetBrandSettings(
	_ context.Context,
	userID int64,
) (*BrandSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range sortedValues(s.brands) {
		if b.UserID == userID {
			return b.clone(), nil
		}
	}
	return nil, fmt.Errorf("get brand settings: %w", core.ErrNotFound)
}

func (s *MemoryStore) CreateBrandSettings(
	_ context.Context,
	in NewBrandSetting,
) (*BrandSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := BrandSetting{
		ID:      s.nextBrandID,
		UserID:  in.UserID,
		Name:    in.Name,
		Colors:  nonNilColors(cloneSlice(in.Colors)),
		Fonts:   in.Fonts,
		LogoURL: clonePtr(in.LogoURL),
	}
	s.nextBrandID++
	s.brands[b.ID] = &b

	return b.clone(), nil
}

func (s *MemoryStore) UpdateBrandSettings(
	_ context.Context,
	id int64,
	patch BrandSettingPatch,
) (*BrandSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.brands[id]
	if !ok {
		return nil, fmt.Errorf("update brand settings: %w", core.ErrNotFound)
	}

	next := b.clone()
	if patch.Name != nil {
		next.Name = *patch.Name
	}
	if patch.Colors != nil {
		next.Colors = nonNilColors(cloneSlice(*patch.Colors))
	}
	if patch.Fonts != nil {
		next.Fonts = *patch.Fonts
	}
	if patch.LogoURL.Set {
		next.LogoURL = patch.LogoURL.Ptr()
	}
	s.brands[id] = next

	return next.clone(), nil
}

func (s *MemoryStore) ListPlatformConnections(
	_ context.Context,
	userID int64,
) ([]PlatformConnection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []PlatformConnection{}
	for _, c := range sortedValues(s.connections) {
		if c.UserID == userID {
			out = append(out, *c.clone())
		}
	}
	return out, nil
}

func (s *MemoryStore) GetPlatformConnection(
	_ context.Context,
	id int64,
) (*PlatformConnection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.connections[id]
	if !ok {
		return nil, fmt.Errorf("get platform connection: %w", core.ErrNotFound)
	}
	return c.clone(), nil
}

func (s *MemoryStore) CreatePlatformConnection(
	_ context.Context,
	in NewPlatformConnection,
) (*PlatformConnection, error) {
	if err := checkPlatform(in.Platform); err != nil {
		return nil, fmt.Errorf("create platform connection: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := PlatformConnection{
		ID:          s.nextConnectionID,
		UserID:      in.UserID,
		Platform:    in.Platform,
		Connected:   in.Connected,
		AccountName: clonePtr(in.AccountName),
		Stats:       in.Stats.clone(),
	}
	s.nextConnectionID++
	s.connections[c.ID] = &c

	return c.clone(), nil
}

func (s *MemoryStore) UpdatePlatformConnection(
	_ context.Context,
	id int64,
	patch PlatformConnectionPatch,
) (*PlatformConnection, error) {
	if patch.Platform != nil {
		if err := checkPlatform(*patch.Platform); err != nil {
			return nil, fmt.Errorf("update platform connection: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.connections[id]
	if !ok {
		return nil, fmt.Errorf(
			"update platform connection: %w",
			core.ErrNotFound,
		)
	}

	next := c.clone()
	if patch.Platform != nil {
		next.Platform = *patch.Platform
	}
	if patch.Connected != nil {
		next.Connected = *patch.Connected
	}
	if patch.AccountName.Set {
		next.AccountName = patch.AccountName.Ptr()
	}
	if patch.Stats.Set {
		next.Stats = nil
		if patch.Stats.Valid {
			next.Stats = Stats(patch.Stats.Value).clone()
		}
	}
	s.connections[id] = next

	return next.clone(), nil
}

func (s *MemoryStore) ListPostTemplates(
	_ context.Context,
	userID int64,
) ([]PostTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []PostTemplate{}
	for _, t := range sortedValues(s.templates) {
		if t.UserID == userID {
			out = append(out, *t.clone())
		}
	}
	return out, nil
}

func (s *MemoryStore) GetPostTemplate(
	_ context.Context,
	id int64,
) (*PostTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.templates[id]
	if !ok {
		return nil, fmt.Errorf("get post template: %w", core.ErrNotFound)
	}
	return t.clone(), nil
}

func (s *MemoryStore) CreatePostTemplate(
	_ context.Context,
	in NewPostTemplate,
) (*PostTemplate, error) {
	if err := checkPlatforms(in.Platforms); err != nil {
		return nil, fmt.Errorf("create post template: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := PostTemplate{
		ID:          s.nextTemplateID,
		UserID:      in.UserID,
		Name:        in.Name,
		Description: clonePtr(in.Description),
		ImageURL:    clonePtr(in.ImageURL),
		Content:     in.Content,
		Platforms:   nonNilPlatforms(cloneSlice(in.Platforms)),
		IsDefault:   in.IsDefault,
	}
	s.nextTemplateID++
	s.templates[t.ID] = &t

	return t.clone(), nil
}

func (s *MemoryStore) UpdatePostTemplate(
	_ context.Context,
	id int64,
	patch PostTemplatePatch,
) (*PostTemplate, error) {
	if patch.Platforms != nil {
		if err := checkPlatforms(*patch.Platforms); err != nil {
			return nil, fmt.Errorf("update post template: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.templates[id]
	if !ok {
		return nil, fmt.Errorf("update post template: %w", core.ErrNotFound)
	}

	next := t.clone()
	if patch.Name != nil {
		next.Name = *patch.Name
	}
	if patch.Description.Set {
		next.Description = patch.Description.Ptr()
	}
	if patch.ImageURL.Set {
		next.ImageURL = patch.ImageURL.Ptr()
	}
	if patch.Content != nil {
		next.Content = *patch.Content
	}
	if patch.Platforms != nil {
		next.Platforms = nonNilPlatforms(cloneSlice(*patch.Platforms))
	}
	if patch.IsDefault != nil {
		next.IsDefault = *patch.IsDefault
	}
	s.templates[id] = next

	return next.clone(), nil
}

func (s *MemoryStore) DeletePostTemplate(
	_ context.Context,
	id int64,
) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.templates[id]; !ok {
		return false, nil
	}
	delete(s.templates, id)
	return true, nil
}

func (s *MemoryStore) ListPosts(
	_ context.Context,
	userID int64,
) ([]Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Post{}
	for _, p := range sortedValues(s.posts) {
		if p.UserID == userID {
			out = append(out, *p.clone())
		}
	}
	return out, nil
}

func (s *MemoryStore) ListPostsByMonth(
	_ context.Context,
	userID int64,
	year int,
	month int,
) ([]Post, error) {
	start, end := MonthRange(year, month, s.loc)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Post{}
	for _, p := range sortedValues(s.posts) {
		if p.UserID == userID && inRange(p.ScheduledDate, start, end) {
			out = append(out, *p.clone())
		}
	}
	return out, nil
}

func (s *MemoryStore) GetPost(_ context.Context, id int64) (*Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, fmt.Errorf("get post: %w", core.ErrNotFound)
	}
	return p.clone(), nil
}

func (s *MemoryStore) CreatePost(_ context.Context, in NewPost) (*Post, error) {
	if err := checkPlatforms(in.Platforms); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := Post{
		ID:              s.nextPostID,
		UserID:          in.UserID,
		Content:         in.Content,
		ImageURL:        clonePtr(in.ImageURL),
		ScheduledDate:   in.ScheduledDate,
		Status:          StatusScheduled,
		Platforms:       nonNilPlatforms(cloneSlice(in.Platforms)),
		TemplateID:      clonePtr(in.TemplateID),
		EngagementStats: &Engagement{},
	}
	p.normalizeTimes()
	s.nextPostID++
	s.posts[p.ID] = &p

	return p.clone(), nil
}

func (s *MemoryStore) UpdatePost(
	_ context.Context,
	id int64,
	patch PostPatch,
) (*Post, error) {
	if patch.Platforms != nil {
		if err := checkPlatforms(*patch.Platforms); err != nil {
			return nil, fmt.Errorf("update post: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, fmt.Errorf("update post: %w", core.ErrNotFound)
	}

	next := p.clone()
	if patch.Content != nil {
		next.Content = *patch.Content
	}
	if patch.ImageURL.Set {
		next.ImageURL = patch.ImageURL.Ptr()
	}
	if patch.ScheduledDate != nil {
		next.ScheduledDate = patch.ScheduledDate.UTC()
	}
	if patch.Platforms != nil {
		next.Platforms = nonNilPlatforms(cloneSlice(*patch.Platforms))
	}
	if patch.TemplateID.Set {
		next.TemplateID = patch.TemplateID.Ptr()
	}
	s.posts[id] = next

	return next.clone(), nil
}

func (s *MemoryStore) DeletePost(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return false, nil
	}
	delete(s.posts, id)
	return true, nil
}

func sortedValues[V any](m map[int64]V) []V {
	keys := slices.Sorted(maps.Keys(m))
	out := make([]V, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}
