package storage_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabmaster/internal/domain/entity"
	"github.com/bnema/tabmaster/internal/domain/repository/mocks"
	"github.com/bnema/tabmaster/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabmaster/internal/infrastructure/storage"
	"github.com/bnema/tabmaster/internal/logging"
)

func testCtx() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func TestGateway_RoundTripOnSQLite(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "tabmaster.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	g := storage.NewGateway(sqlite.NewKeyValueRepository(lazy))

	data := entity.TabContainerData{Containers: []entity.Container{
		{ID: "c1", Title: "Work", Tabs: []entity.Tab{{ID: "t1", Title: "Go", URL: "https://go.dev"}}},
	}}
	require.NoError(t, g.Save(ctx, entity.KeyTabContainerData, data))

	var got entity.TabContainerData
	require.True(t, g.Load(ctx, entity.KeyTabContainerData, &got))
	assert.Equal(t, data, got)

	var settings entity.Settings
	assert.False(t, g.Load(ctx, entity.KeySettingsData, &settings), "absent key")

	keys, err := g.Keys(ctx)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, string(entity.KeyTabContainerData), keys[0].Key)

	require.NoError(t, g.Delete(ctx, entity.KeyTabContainerData))
	assert.False(t, g.Load(ctx, entity.KeyTabContainerData, &got))
}

func TestGateway_SettingsUseCamelCaseKeys(t *testing.T) {
	ctx := testCtx()
	repo := mocks.NewMockKeyValueRepository(t)
	repo.EXPECT().
		Put(mock.Anything, "settingsData", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, value []byte) error {
			assert.JSONEq(t, `{
				"extensionInstalledTime": "2024-05-01T09:30:00.000Z",
				"isUserRatedAndReviewed": false,
				"isNeverAskAgainToRate": true,
				"lastReviewRequestTime": ""
			}`, string(value))
			return nil
		})

	g := storage.NewGateway(repo)
	err := g.Save(ctx, entity.KeySettingsData, entity.Settings{
		ExtensionInstalledTime: "2024-05-01T09:30:00.000Z",
		IsNeverAskAgainToRate:  true,
	})
	require.NoError(t, err)
}

func TestGateway_MalformedValueLoadsAsAbsent(t *testing.T) {
	ctx := testCtx()
	repo := mocks.NewMockKeyValueRepository(t)
	repo.EXPECT().Get(mock.Anything, "settingsData").Return([]byte(`{not json`), nil)

	g := storage.NewGateway(repo)
	var s entity.Settings
	assert.False(t, g.Load(ctx, entity.KeySettingsData, &s))
}

func TestGateway_ReadErrorLoadsAsAbsent(t *testing.T) {
	ctx := testCtx()
	repo := mocks.NewMockKeyValueRepository(t)
	repo.EXPECT().Get(mock.Anything, "tabContainerData").Return(nil, errors.New("disk I/O error"))

	g := storage.NewGateway(repo)
	var d entity.TabContainerData
	assert.False(t, g.Load(ctx, entity.KeyTabContainerData, &d))
}

func TestGateway_SaveErrorIsReturned(t *testing.T) {
	ctx := testCtx()
	writeErr := errors.New("database is locked")
	repo := mocks.NewMockKeyValueRepository(t)
	repo.EXPECT().Put(mock.Anything, "tabContainerData", mock.Anything).Return(writeErr)

	g := storage.NewGateway(repo)
	err := g.Save(ctx, entity.KeyTabContainerData, entity.NewTabContainerData())
	require.ErrorIs(t, err, writeErr)
}
