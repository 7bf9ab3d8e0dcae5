package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/archaeoscan/internal/archaeo/detect"
	"github.com/banshee-data/archaeoscan/internal/archaeo/geom2i"
	"github.com/banshee-data/archaeoscan/internal/archaeo/track"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestInsertAndGetCarriageTrackRun(t *testing.T) {
	db := openTestDB(t)

	result := track.CarriageTrackResult{
		Status:        track.ResultOK,
		CenterPlateau: detect.Plateau{Accepted: true, EstimatedCenter: 50},
		Left:          []track.PlateauFit{{ScanIndex: 0, Center: 49}, {ScanIndex: 1, Center: 48}},
		Right:         []track.PlateauFit{{ScanIndex: 0, Center: 51}},
	}

	runID, err := InsertCarriageTrackRun(db, "tile1", geom2i.Pt{X: 0, Y: 0}, geom2i.Pt{X: 100, Y: 0}, result, 1000)
	require.NoError(t, err)
	assert.NotEmpty(t, runID)

	run, err := GetRun(db, runID)
	require.NoError(t, err)
	assert.Equal(t, "tile1", run.TileName)
	assert.Equal(t, ModeCarriageTrack, run.Mode)
	assert.Equal(t, "RESULT_OK", run.Status)

	fits, err := GetFits(db, runID)
	require.NoError(t, err)
	assert.Len(t, fits, 4) // center + 2 left + 1 right
}

func TestGetRunMissingReturnsError(t *testing.T) {
	db := openTestDB(t)
	_, err := GetRun(db, "does-not-exist")
	assert.Error(t, err)
}
