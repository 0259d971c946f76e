package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestionski/skistation/internal/app/models"
	"github.com/gestionski/skistation/internal/app/repositories/memory"
)

func TestCreateDefaultDataSeedsEmptyCatalogueOnce(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, CreateDefaultData(ctx, store, zerolog.Nop()))
	require.NoError(t, CreateDefaultData(ctx, store, zerolog.Nop()))

	n, err := store.CountCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(DefaultCourses())), n)

	c, err := store.GetCourseByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.CourseTypeCollectiveChildren, c.Type)
}

func TestCreateDefaultDataKeepsExistingCatalogue(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(models.Course{ID: 9, Level: 1, Type: models.CourseTypeIndividual, Support: models.SupportSki})

	require.NoError(t, CreateDefaultData(ctx, store, zerolog.Nop()))

	n, err := store.CountCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

// racingCatalog hides courses from the count, as when another instance seeds in parallel
type racingCatalog struct {
	*memory.Store
}

func (racingCatalog) CountCourses(context.Context) (int64, error) { return 0, nil }

func TestCreateDefaultDataToleratesExistingCourses(t *testing.T) {
	ctx := context.Background()
	first := DefaultCourses()[0]
	first.ID = 1
	store := memory.NewStore(first)

	require.NoError(t, CreateDefaultData(ctx, racingCatalog{store}, zerolog.Nop()))

	n, err := store.CountCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(DefaultCourses())), n)
}

func TestCreateDefaultDataReportsStorageFaults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, CreateDefaultData(ctx, memory.NewStore(), zerolog.Nop()))
}
