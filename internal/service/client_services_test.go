package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/horizon/internal/config"
	"github.com/MKhiriev/horizon/internal/logger"
	"github.com/MKhiriev/horizon/internal/store"
	"github.com/MKhiriev/horizon/models"
)

func TestNewClientServices_EndToEnd(t *testing.T) {
	ctx := context.Background()
	cfg := &config.StructuredConfig{
		Storage: config.Storage{
			DB:      config.DB{DSN: store.MemoryDSN},
			History: config.History{Key: "searchHistory", Limit: 10},
		},
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger.Nop())
	require.NoError(t, err)

	svcs, err := NewClientServices(storages, cfg, models.NewAppBuildInfo("dev", "", ""), logger.Nop())
	require.NoError(t, err)

	route, err := svcs.SearchService.Submit(ctx, models.SearchRequest{
		Name:    "Jane Doe",
		Entries: []models.IdentifierEntry{{Type: models.Email, Value: "jane@x.com"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "/profile/Jane%20Doe", route)

	list, err := svcs.HistoryService.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Jane Doe", list[0].Query)

	profile, err := svcs.ProfileService.Load(ctx, route)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.BasicInfo.Name)

	again, err := svcs.HistoryService.Repeat(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, route, again)

	list, err = svcs.HistoryService.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
