package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/SketchShifter/starwars_backend/internal/mock"
	"github.com/SketchShifter/starwars_backend/internal/models"
	"github.com/SketchShifter/starwars_backend/internal/testutil"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSeedServiceSeedsDefaultDataset(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	svc := NewSeedService(db)

	inserted, err := svc.Seed(ctx, mock.Default())
	require.NoError(t, err)
	assert.Equal(t, TableCounts{Users: 2, Planets: 3, Characters: 3, Films: 2, Starships: 2, Favorites: 3}, inserted)

	counts, err := svc.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, inserted, counts)

	var fav models.Favorite
	require.NoError(t, db.Where("resource_type = ?", models.ResourceTypeCharacter).First(&fav).Error)
	var character models.Character
	require.NoError(t, db.First(&character, fav.ResourceID).Error)
	assert.Equal(t, "Luke Skywalker", character.Name)
}

func TestSeedServiceRollsBackOnUnknownReference(t *testing.T) {
	ctx := context.Background()
	svc := NewSeedService(testutil.NewDB(t))

	ds := mock.Default()
	ds.Favorites = append(ds.Favorites, mock.FavoriteSeed{
		UserEmail:    "luke@rebellion.org",
		ResourceType: models.ResourceTypePlanet,
		ResourceName: "Dagobah",
	})

	_, err := svc.Seed(ctx, ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Dagobah")

	counts, err := svc.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, TableCounts{}, counts)
}

func TestSeedServiceDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewSeedService(testutil.NewDB(t))

	_, err := svc.Seed(ctx, mock.Dataset{Users: mock.Default().Users})
	require.NoError(t, err)

	_, err = svc.Seed(ctx, mock.Dataset{Users: mock.Default().Users})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestHealthService(t *testing.T) {
	db := testutil.NewDB(t)
	var logs bytes.Buffer
	svc := NewHealthService(db, "test", zerolog.New(&logs))

	status := svc.GetStatus(context.Background())
	assert.True(t, status.Healthy())
	assert.Equal(t, "ok", status.Database)
	assert.Equal(t, "test", status.Version)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	status = svc.GetStatus(context.Background())
	assert.False(t, status.Healthy())
	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, "unavailable", status.Database)
	assert.Contains(t, logs.String(), "database is closed")
}
