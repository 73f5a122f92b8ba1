// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/horizon/internal/config"
	"github.com/MKhiriev/horizon/internal/mock"
	"github.com/MKhiriev/horizon/models"
)

const testHistoryKey = "searchHistory"

var baseTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func recordAt(query string, offset time.Duration) models.HistoryRecord {
	return models.NewHistoryRecord(query, nil, baseTime.Add(offset))
}

func storedRecords(t *testing.T, kv KeyValueStore) []models.HistoryRecord {
	t.Helper()

	raw, err := kv.Get(context.Background(), testHistoryKey)
	require.NoError(t, err)

	var out []models.HistoryRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

func TestHistoryRepository_AppendNewestFirst(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()
	repo := NewHistoryRepository(kv, testHistoryKey, 10)

	_, err := repo.Append(ctx, recordAt("Alice", 0))
	require.NoError(t, err)
	_, err = repo.Append(ctx, models.NewHistoryRecord("Bob", []models.HistoryField{
		{Type: models.Email, Value: "bob@x.com"},
	}, baseTime.Add(time.Second)))
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bob", list[0].Query)
	assert.Equal(t, "Alice", list[1].Query)
	assert.Equal(t, []models.HistoryField{{Type: models.Email, Value: "bob@x.com"}}, list[0].Fields)

	assert.Equal(t, list, storedRecords(t, kv))
}

func TestHistoryRepository_AppendTruncatesToLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepository(NewMemoryKeyValueStore(), testHistoryKey, 10)

	for i := 0; i < 11; i++ {
		_, err := repo.Append(ctx, recordAt(string(rune('A'+i)), time.Duration(i)*time.Second))
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 10)
	assert.Equal(t, "K", list[0].Query)
	assert.Equal(t, "B", list[9].Query)
}

func TestHistoryRepository_NonPositiveLimitUsesDefault(t *testing.T) {
	for _, limit := range []int{0, -3} {
		ctx := context.Background()
		repo := NewHistoryRepository(NewMemoryKeyValueStore(), testHistoryKey, limit)

		for i := 0; i < config.DefaultHistoryLimit+2; i++ {
			_, err := repo.Append(ctx, recordAt("q", time.Duration(i)*time.Millisecond))
			require.NoError(t, err)
		}

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, config.DefaultHistoryLimit)
	}
}

func TestHistoryRepository_AppendKeepsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepository(NewMemoryKeyValueStore(), testHistoryKey, 10)

	_, err := repo.Append(ctx, recordAt("Alice", 0))
	require.NoError(t, err)
	_, err = repo.Append(ctx, recordAt("Alice", time.Second))
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestHistoryRepository_AppendSameMillisecondGetsUniqueID(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepository(NewMemoryKeyValueStore(), testHistoryKey, 10)

	first, err := repo.Append(ctx, recordAt("Alice", 0))
	require.NoError(t, err)
	second, err := repo.Append(ctx, recordAt("Bob", 0))
	require.NoError(t, err)

	assert.Equal(t, baseTime.UnixMilli(), first.ID)
	assert.Equal(t, first.ID+1, second.ID)
}

func TestHistoryRepository_ListAbsentOrMalformed(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		value *string
	}{
		{name: "absent"},
		{name: "not json", value: ptr("{not json")},
		{name: "json object", value: ptr(`{"id":1}`)},
		{name: "null", value: ptr("null")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemoryKeyValueStore()
			if tt.value != nil {
				require.NoError(t, kv.Set(ctx, testHistoryKey, *tt.value))
			}

			list, err := NewHistoryRepository(kv, testHistoryKey, 10).List(ctx)
			require.NoError(t, err)
			assert.NotNil(t, list)
			assert.Empty(t, list)
		})
	}
}

func TestHistoryRepository_AppendOverMalformedStartsFresh(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()
	require.NoError(t, kv.Set(ctx, testHistoryKey, "garbage"))

	repo := NewHistoryRepository(kv, testHistoryKey, 10)
	_, err := repo.Append(ctx, recordAt("Alice", 0))
	require.NoError(t, err)

	list := storedRecords(t, kv)
	require.Len(t, list, 1)
	assert.Equal(t, "Alice", list[0].Query)
}

func TestHistoryRepository_Remove(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepository(NewMemoryKeyValueStore(), testHistoryKey, 10)

	a, err := repo.Append(ctx, recordAt("Alice", 0))
	require.NoError(t, err)
	b, err := repo.Append(ctx, recordAt("Bob", time.Second))
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, a.ID))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	// second removal is a no-op
	require.NoError(t, repo.Remove(ctx, a.ID))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestHistoryRepository_Get(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepository(NewMemoryKeyValueStore(), testHistoryKey, 10)

	rec, err := repo.Append(ctx, recordAt("Alice", 0))
	require.NoError(t, err)

	got, err := repo.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	_, err = repo.Get(ctx, rec.ID+42)
	assert.ErrorIs(t, err, ErrHistoryRecordNotFound)
}

func TestHistoryRepository_Clear(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()
	repo := NewHistoryRepository(kv, testHistoryKey, 10)

	_, err := repo.Append(ctx, recordAt("Alice", 0))
	require.NoError(t, err)

	require.NoError(t, repo.Clear(ctx))

	_, err = kv.Get(ctx, testHistoryKey)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHistoryRepository_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepository(NewMemoryKeyValueStore(), testHistoryKey, 10)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Append(ctx, recordAt("same", 0))
		}()
	}
	wg.Wait()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 8)

	seen := make(map[int64]bool)
	for _, r := range list {
		assert.False(t, seen[r.ID], "duplicate id %d", r.ID)
		seen[r.ID] = true
	}
}

func TestHistoryRepository_StorageErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	t.Run("append propagates write failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		kv := mock.NewMockKeyValueStore(ctrl)
		kv.EXPECT().Get(ctx, testHistoryKey).Return("", ErrKeyNotFound)
		kv.EXPECT().Set(ctx, testHistoryKey, gomock.Any()).Return(boom)

		_, err := NewHistoryRepository(kv, testHistoryKey, 10).Append(ctx, recordAt("Alice", 0))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("append propagates read failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		kv := mock.NewMockKeyValueStore(ctrl)
		kv.EXPECT().Get(ctx, testHistoryKey).Return("", boom)

		_, err := NewHistoryRepository(kv, testHistoryKey, 10).Append(ctx, recordAt("Alice", 0))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("list swallows read failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		kv := mock.NewMockKeyValueStore(ctrl)
		kv.EXPECT().Get(ctx, testHistoryKey).Return("", boom)

		list, err := NewHistoryRepository(kv, testHistoryKey, 10).List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("remove of unknown id does not write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		kv := mock.NewMockKeyValueStore(ctrl)
		kv.EXPECT().Get(ctx, testHistoryKey).Return(`[{"id":1,"query":"a","timestamp":"2026-03-01T10:00:00.000Z"}]`, nil)

		require.NoError(t, NewHistoryRepository(kv, testHistoryKey, 10).Remove(ctx, 2))
	})

	t.Run("clear propagates failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		kv := mock.NewMockKeyValueStore(ctrl)
		kv.EXPECT().Remove(ctx, testHistoryKey).Return(boom)

		assert.ErrorIs(t, NewHistoryRepository(kv, testHistoryKey, 10).Clear(ctx), boom)
	})
}

func ptr(s string) *string { return &s }
