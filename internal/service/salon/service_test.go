package salon

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciphersage74/elegancecoiffure/internal/domain"
	"github.com/ciphersage74/elegancecoiffure/internal/infra/cache"
	salonRepo "github.com/ciphersage74/elegancecoiffure/internal/infra/storage/salon"
	"github.com/ciphersage74/elegancecoiffure/internal/service/salon/models"
	"github.com/ciphersage74/elegancecoiffure/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type memCache struct {
	data    map[string][]byte
	ttls    map[string]time.Duration
	deleted []string
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memCache) Get(_ context.Context, key string, dst interface{}) (bool, error) {
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (m *memCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	m.ttls[key] = ttl
	return nil
}

func (m *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
		m.deleted = append(m.deleted, k)
	}
	return nil
}

type fakeRepo struct {
	info       *domain.SalonInfo
	gallery    []*domain.GalleryImage
	hours      []*domain.BusinessHours
	infoCalls  int
	hoursCalls int
}

func (f *fakeRepo) GetInfo(context.Context) (*domain.SalonInfo, error) {
	f.infoCalls++
	if f.info == nil {
		return nil, salonRepo.ErrSalonInfoNotFound
	}
	cp := *f.info
	return &cp, nil
}

func (f *fakeRepo) UpsertInfo(_ context.Context, info *domain.SalonInfo) (*domain.SalonInfo, error) {
	cp := *info
	cp.ID = 1
	f.info = &cp
	return &cp, nil
}

func (f *fakeRepo) ListGallery(context.Context) ([]*domain.GalleryImage, error) {
	return f.gallery, nil
}

func (f *fakeRepo) ListBusinessHours(context.Context) ([]*domain.BusinessHours, error) {
	f.hoursCalls++
	return f.hours, nil
}

func TestGetInfo_CachedAfterFirstRead(t *testing.T) {
	repo := &fakeRepo{info: &domain.SalonInfo{ID: 1, Name: "Élégance Coiffure"}}
	c := newMemCache()
	svc := NewService(repo, c, nopLogger{})
	ctx := context.Background()

	first, err := svc.GetInfo(ctx)
	require.NoError(t, err)
	second, err := svc.GetInfo(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.infoCalls)
	assert.Equal(t, TTLSalonInfo, c.ttls[KeySalonInfo])
}

func TestGetInfo_NotConfigured(t *testing.T) {
	svc := NewService(&fakeRepo{}, newMemCache(), nopLogger{})

	_, err := svc.GetInfo(context.Background())
	assert.ErrorIs(t, err, ErrSalonInfoNotFound)
}

func TestUpdateInfo_InvalidatesOnlyInfoKey(t *testing.T) {
	open := types.MustTimeString("09:00")
	closeAt := types.MustTimeString("19:00")
	repo := &fakeRepo{
		info:  &domain.SalonInfo{ID: 1, Name: "Old"},
		hours: []*domain.BusinessHours{{DayOfWeek: 0, OpenTime: &open, CloseTime: &closeAt}},
	}
	c := newMemCache()
	svc := NewService(repo, c, nopLogger{})
	ctx := context.Background()

	_, err := svc.GetInfo(ctx)
	require.NoError(t, err)
	_, err = svc.GetBusinessHours(ctx)
	require.NoError(t, err)

	updated, err := svc.UpdateInfo(ctx, &models.UpdateSalonInfoRequest{Name: "  New  "})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, []string{KeySalonInfo}, c.deleted)

	info, err := svc.GetInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "New", info.Name)
	assert.Equal(t, 2, repo.infoCalls)

	hours, err := svc.GetBusinessHours(ctx)
	require.NoError(t, err)
	require.Len(t, hours.Hours, 1)
	assert.Equal(t, "09:00", *hours.Hours[0].OpenTime)
	assert.Equal(t, 1, repo.hoursCalls)
}

func TestUpdateInfo_RejectsEmptyName(t *testing.T) {
	svc := NewService(&fakeRepo{}, newMemCache(), nopLogger{})

	_, err := svc.UpdateInfo(context.Background(), &models.UpdateSalonInfoRequest{Name: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetGallery_WithNopCache(t *testing.T) {
	title := "Vitrine"
	repo := &fakeRepo{gallery: []*domain.GalleryImage{{ID: 3, ImageURL: "/img/1.jpg", Title: &title, DisplayOrder: 1}}}
	svc := NewService(repo, cache.NopCache{}, nopLogger{})

	resp, err := svc.GetGallery(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Images, 1)
	assert.Equal(t, "/img/1.jpg", resp.Images[0].ImageURL)
}
