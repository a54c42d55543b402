package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibridge/directory-api/internal/model"
)

func TestEnsureSeedPopulatesSampleData(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory()

	seeded, err := EnsureSeed(ctx, backend)
	require.NoError(t, err)
	assert.True(t, seeded)

	hospitals, err := NewRepository[model.Hospital](backend).Query(ctx, Filter{}, 0)
	require.NoError(t, err)
	assert.Len(t, hospitals, 2)

	treatments, err := NewRepository[model.Treatment](backend).Query(ctx, Filter{}, 0)
	require.NoError(t, err)
	assert.Len(t, treatments, 3)
}

func TestEnsureSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory()

	seeded, err := EnsureSeed(ctx, backend)
	require.NoError(t, err)
	require.True(t, seeded)

	seeded, err = EnsureSeed(ctx, backend)
	require.NoError(t, err)
	assert.False(t, seeded)

	hospitals, err := NewRepository[model.Hospital](backend).Query(ctx, Filter{}, 0)
	require.NoError(t, err)
	assert.Len(t, hospitals, 2)
}

func TestEnsureSeedSkipsWhenMarkerPresentButDataGone(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory()

	// A store whose directory data was wiped but whose marker survived must
	// not be re-seeded; the marker, not a row count, is the gate.
	markers := NewRepository[seedMarker](backend)
	_, err := markers.Insert(ctx, &seedMarker{Key: seedMarkerKey, Version: SeedVersion})
	require.NoError(t, err)

	seeded, err := EnsureSeed(ctx, backend)
	require.NoError(t, err)
	assert.False(t, seeded)

	hospitals, err := NewRepository[model.Hospital](backend).Query(ctx, Filter{}, 0)
	require.NoError(t, err)
	assert.Empty(t, hospitals)
}
