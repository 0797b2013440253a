package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/maheshrc27/nexus/internal/models"
	"github.com/maheshrc27/nexus/pkg/utils"
)

// memoryStorage keeps every entity in process memory. Data is lost on restart.
type memoryStorage struct {
	mu             sync.RWMutex
	seq            uint64
	order          map[string]uint64
	users          map[string]*models.User
	socialProfiles map[string]*models.SocialProfile
	posts          map[string]*models.Post
	contentLibrary map[string]*models.ContentLibraryItem
	analytics      map[string]*models.Analytics
	aiGenerations  map[string]*models.AiGeneration
}

func NewMemoryStorage() Storage {
	return &memoryStorage{
		order:          map[string]uint64{},
		users:          map[string]*models.User{},
		socialProfiles: map[string]*models.SocialProfile{},
		posts:          map[string]*models.Post{},
		contentLibrary: map[string]*models.ContentLibraryItem{},
		analytics:      map[string]*models.Analytics{},
		aiGenerations:  map[string]*models.AiGeneration{},
	}
}

// nextID must be called with mu held for writing.
func (m *memoryStorage) nextID() string {
	id := uuid.NewString()
	m.seq++
	m.order[id] = m.seq
	return id
}

// newerFirst orders by timestamp descending, breaking ties by insertion order.
func (m *memoryStorage) newerFirst(ta, tb time.Time, ida, idb string) bool {
	if !ta.Equal(tb) {
		return ta.After(tb)
	}
	return m.order[ida] > m.order[idb]
}

// Users

func (m *memoryStorage) GetUser(ctx context.Context, id string) (*models.User, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, false, nil
	}
	c := *u
	return &c, true, nil
}

func (m *memoryStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			c := *u
			return &c, true, nil
		}
	}
	return nil, false, nil
}

func (m *memoryStorage) CreateUser(ctx context.Context, nu *models.NewUser) (*models.User, error) {
	var hash *string
	if nu.Password != "" {
		h, err := utils.HashPassword(nu.Password)
		if err != nil {
			return nil, err
		}
		hash = &h
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == nu.Email {
			return nil, ErrDuplicateEmail
		}
	}

	provider := nu.AuthProvider
	if provider == "" {
		provider = models.AuthProviderCustom
	}
	user := &models.User{
		ID:           m.nextID(),
		Email:        nu.Email,
		PasswordHash: hash,
		FullName:     nu.FullName,
		AuthProvider: provider,
		ProviderID:   nu.ProviderID,
		CreatedAt:    now(),
	}
	m.users[user.ID] = user

	c := *user
	return &c, nil
}

func (m *memoryStorage) DeleteUser(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)
	delete(m.order, id)

	for k, v := range m.socialProfiles {
		if v.UserID == id {
			delete(m.socialProfiles, k)
			delete(m.order, k)
		}
	}
	for k, v := range m.posts {
		if v.UserID == id {
			delete(m.posts, k)
			delete(m.order, k)
		}
	}
	for k, v := range m.contentLibrary {
		if v.UserID == id {
			delete(m.contentLibrary, k)
			delete(m.order, k)
		}
	}
	for k, v := range m.analytics {
		if v.UserID == id {
			delete(m.analytics, k)
			delete(m.order, k)
		}
	}
	for k, v := range m.aiGenerations {
		if v.UserID == id {
			delete(m.aiGenerations, k)
			delete(m.order, k)
		}
	}
	return true, nil
}

// Social profiles

func cloneProfile(p *models.SocialProfile) *models.SocialProfile {
	c := *p
	return &c
}

func (m *memoryStorage) ListSocialProfiles(ctx context.Context, userID string) ([]*models.SocialProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	profiles := []*models.SocialProfile{}
	for _, p := range m.socialProfiles {
		if p.UserID == userID {
			profiles = append(profiles, cloneProfile(p))
		}
	}
	sort.Slice(profiles, func(i, j int) bool {
		return m.order[profiles[i].ID] < m.order[profiles[j].ID]
	})
	return profiles, nil
}

func (m *memoryStorage) GetSocialProfile(ctx context.Context, id string) (*models.SocialProfile, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.socialProfiles[id]
	if !ok {
		return nil, false, nil
	}
	return cloneProfile(p), true, nil
}

func (m *memoryStorage) CreateSocialProfile(ctx context.Context, profile *models.SocialProfile) (*models.SocialProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[profile.UserID]; !ok {
		return nil, ErrForeignKey
	}

	p := cloneProfile(profile)
	p.ID = m.nextID()
	p.CreatedAt = now()
	m.socialProfiles[p.ID] = p
	return cloneProfile(p), nil
}

func (m *memoryStorage) UpdateSocialProfile(ctx context.Context, id string, update models.SocialProfileUpdate) (*models.SocialProfile, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.socialProfiles[id]
	if !ok {
		return nil, false, nil
	}
	updated := cloneProfile(p)
	update.Apply(updated)
	m.socialProfiles[id] = updated
	return cloneProfile(updated), true, nil
}

func (m *memoryStorage) DeleteSocialProfile(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.socialProfiles[id]; !ok {
		return false, nil
	}
	delete(m.socialProfiles, id)
	delete(m.order, id)
	return true, nil
}

func (m *memoryStorage) ListExpiredSocialProfiles(ctx context.Context, before time.Time) ([]*models.SocialProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	profiles := []*models.SocialProfile{}
	for _, p := range m.socialProfiles {
		if p.IsConnected == 1 && p.TokenExpiresAt != nil && p.TokenExpiresAt.Before(before) {
			profiles = append(profiles, cloneProfile(p))
		}
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].TokenExpiresAt.Before(*profiles[j].TokenExpiresAt)
	})
	return profiles, nil
}

// Posts

func clonePost(p *models.Post) *models.Post {
	c := *p
	c.MediaURLs = append(models.StringList{}, p.MediaURLs...)
	c.Platforms = append(models.StringList{}, p.Platforms...)
	return &c
}

func (m *memoryStorage) ListPosts(ctx context.Context, userID string) ([]*models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.postsNewestFirst(userID), nil
}

// postsNewestFirst must be called with mu held.
func (m *memoryStorage) postsNewestFirst(userID string) []*models.Post {
	posts := []*models.Post{}
	for _, p := range m.posts {
		if p.UserID == userID {
			posts = append(posts, clonePost(p))
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return m.newerFirst(posts[i].CreatedAt, posts[j].CreatedAt, posts[i].ID, posts[j].ID)
	})
	return posts
}

func (m *memoryStorage) GetPost(ctx context.Context, id string) (*models.Post, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.posts[id]
	if !ok {
		return nil, false, nil
	}
	return clonePost(p), true, nil
}

func (m *memoryStorage) CreatePost(ctx context.Context, post *models.Post) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[post.UserID]; !ok {
		return nil, ErrForeignKey
	}

	p := clonePost(post)
	p.ID = m.nextID()
	p.CreatedAt = now()
	if p.Status == "" {
		p.Status = models.PostStatusDraft
	}
	m.posts[p.ID] = p
	return clonePost(p), nil
}

func (m *memoryStorage) UpdatePost(ctx context.Context, id string, update models.PostUpdate) (*models.Post, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.posts[id]
	if !ok {
		return nil, false, nil
	}
	updated := clonePost(p)
	update.Apply(updated)
	m.posts[id] = updated
	return clonePost(updated), true, nil
}

func (m *memoryStorage) DeletePost(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[id]; !ok {
		return false, nil
	}
	delete(m.posts, id)
	delete(m.order, id)
	for k, a := range m.analytics {
		if a.PostID != nil && *a.PostID == id {
			delete(m.analytics, k)
			delete(m.order, k)
		}
	}
	return true, nil
}

func (m *memoryStorage) GetScheduledPosts(ctx context.Context, userID string) ([]*models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	posts := []*models.Post{}
	for _, p := range m.posts {
		if p.UserID == userID && p.Status == models.PostStatusScheduled {
			posts = append(posts, clonePost(p))
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		a, b := posts[i].ScheduledAt, posts[j].ScheduledAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		case !a.Equal(*b):
			return a.Before(*b)
		}
		return m.order[posts[i].ID] < m.order[posts[j].ID]
	})
	return posts, nil
}

func (m *memoryStorage) GetRecentPosts(ctx context.Context, userID string, limit int) ([]*models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	posts := m.postsNewestFirst(userID)
	if n := recentLimit(limit); len(posts) > n {
		posts = posts[:n]
	}
	return posts, nil
}

// Content library

func cloneItem(i *models.ContentLibraryItem) *models.ContentLibraryItem {
	c := *i
	c.Tags = append(models.StringList{}, i.Tags...)
	return &c
}

func (m *memoryStorage) ListContentLibrary(ctx context.Context, userID string) ([]*models.ContentLibraryItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := []*models.ContentLibraryItem{}
	for _, i := range m.contentLibrary {
		if i.UserID == userID {
			items = append(items, cloneItem(i))
		}
	}
	sort.Slice(items, func(a, b int) bool {
		return m.newerFirst(items[a].CreatedAt, items[b].CreatedAt, items[a].ID, items[b].ID)
	})
	return items, nil
}

func (m *memoryStorage) GetContentLibraryItem(ctx context.Context, id string) (*models.ContentLibraryItem, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.contentLibrary[id]
	if !ok {
		return nil, false, nil
	}
	return cloneItem(i), true, nil
}

func (m *memoryStorage) CreateContentLibraryItem(ctx context.Context, item *models.ContentLibraryItem) (*models.ContentLibraryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[item.UserID]; !ok {
		return nil, ErrForeignKey
	}

	i := cloneItem(item)
	i.ID = m.nextID()
	i.CreatedAt = now()
	m.contentLibrary[i.ID] = i
	return cloneItem(i), nil
}

func (m *memoryStorage) DeleteContentLibraryItem(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.contentLibrary[id]; !ok {
		return false, nil
	}
	delete(m.contentLibrary, id)
	delete(m.order, id)
	return true, nil
}

// Analytics

func cloneAnalytics(a *models.Analytics) *models.Analytics {
	c := *a
	if a.PostID != nil {
		id := *a.PostID
		c.PostID = &id
	}
	return &c
}

func (m *memoryStorage) filterAnalytics(keep func(*models.Analytics) bool) []*models.Analytics {
	rows := []*models.Analytics{}
	for _, a := range m.analytics {
		if keep(a) {
			rows = append(rows, cloneAnalytics(a))
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		return m.newerFirst(rows[i].RecordedAt, rows[j].RecordedAt, rows[i].ID, rows[j].ID)
	})
	return rows
}

func (m *memoryStorage) ListAnalytics(ctx context.Context, userID string) ([]*models.Analytics, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.filterAnalytics(func(a *models.Analytics) bool { return a.UserID == userID }), nil
}

func (m *memoryStorage) ListAnalyticsForPost(ctx context.Context, postID string) ([]*models.Analytics, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.filterAnalytics(func(a *models.Analytics) bool { return a.PostID != nil && *a.PostID == postID }), nil
}

func (m *memoryStorage) GetAnalyticsByPlatform(ctx context.Context, userID, platform string) ([]*models.Analytics, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.filterAnalytics(func(a *models.Analytics) bool {
		return a.UserID == userID && a.Platform == platform
	}), nil
}

func (m *memoryStorage) CreateAnalytics(ctx context.Context, a *models.Analytics) (*models.Analytics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[a.UserID]; !ok {
		return nil, ErrForeignKey
	}
	if a.PostID != nil {
		if _, ok := m.posts[*a.PostID]; !ok {
			return nil, ErrForeignKey
		}
	}

	row := cloneAnalytics(a)
	row.ID = m.nextID()
	row.RecordedAt = now()
	m.analytics[row.ID] = row
	return cloneAnalytics(row), nil
}

// AI generations

func cloneGeneration(g *models.AiGeneration) *models.AiGeneration {
	c := *g
	c.Metadata = models.Metadata{}
	for k, v := range g.Metadata {
		c.Metadata[k] = v
	}
	return &c
}

func (m *memoryStorage) CreateAiGeneration(ctx context.Context, g *models.AiGeneration) (*models.AiGeneration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[g.UserID]; !ok {
		return nil, ErrForeignKey
	}

	row := cloneGeneration(g)
	row.ID = m.nextID()
	row.CreatedAt = now()
	m.aiGenerations[row.ID] = row
	return cloneGeneration(row), nil
}

func (m *memoryStorage) ListAiGenerations(ctx context.Context, userID string) ([]*models.AiGeneration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows := []*models.AiGeneration{}
	for _, g := range m.aiGenerations {
		if g.UserID == userID {
			rows = append(rows, cloneGeneration(g))
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		return m.newerFirst(rows[i].CreatedAt, rows[j].CreatedAt, rows[i].ID, rows[j].ID)
	})
	return rows, nil
}
