package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memStore) Get(_ context.Context, key string, dst interface{}) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (m *memStore) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	m.ttls[key] = ttl
	return nil
}

func (m *memStore) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

type countingLogger struct{ warns int }

func (l *countingLogger) Warn(string, ...interface{}) { l.warns++ }

func TestGetOrLoad_MissThenHit(t *testing.T) {
	store := newMemStore()
	log := &countingLogger{}
	loads := 0
	load := func(context.Context) ([]string, error) {
		loads++
		return []string{"Coupe", "Couleur"}, nil
	}

	got, err := GetOrLoad(context.Background(), store, log, "services:categories", time.Hour, load)
	require.NoError(t, err)
	assert.Equal(t, []string{"Coupe", "Couleur"}, got)
	assert.Equal(t, time.Hour, store.ttls["services:categories"])

	got, err = GetOrLoad(context.Background(), store, log, "services:categories", time.Hour, load)
	require.NoError(t, err)
	assert.Equal(t, []string{"Coupe", "Couleur"}, got)
	assert.Equal(t, 1, loads)
	assert.Zero(t, log.warns)
}

func TestGetOrLoad_CacheErrorFallsBack(t *testing.T) {
	store := newMemStore()
	store.getErr = ErrCacheUnavailable
	log := &countingLogger{}

	got, err := GetOrLoad(context.Background(), store, log, "salon:info", time.Hour, func(context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, log.warns)
}

func TestGetOrLoad_LoadErrorNotCached(t *testing.T) {
	store := newMemStore()
	boom := errors.New("db down")

	_, err := GetOrLoad(context.Background(), store, &countingLogger{}, "salon:gallery", time.Minute, func(context.Context) (int, error) {
		return 0, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, store.data)
}
