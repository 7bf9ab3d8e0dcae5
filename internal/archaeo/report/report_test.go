package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/archaeoscan/internal/archaeo/detect"
	"github.com/banshee-data/archaeoscan/internal/archaeo/track"
)

func TestRenderCarriageTrackMapProducesHTML(t *testing.T) {
	result := track.CarriageTrackResult{
		Status:        track.ResultOK,
		CenterPlateau: detect.Plateau{Accepted: true, EstimatedCenter: 50},
		Left:          []track.PlateauFit{{ScanIndex: 1, Center: 49}, {ScanIndex: 2, Center: 48}},
		Right:         []track.PlateauFit{{ScanIndex: 1, Center: 51}},
	}

	var buf bytes.Buffer
	err := RenderCarriageTrackMap(&buf, "test track", result)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<html")
	assert.Contains(t, buf.String(), "test track")
}

func TestRenderRidgeMapProducesHTML(t *testing.T) {
	result := track.RidgeResult{
		Status:     track.ResultOK,
		CenterBump: detect.Bump{Accepted: true, EstimatedCenter: 50, Ridge: true},
		Left:       []track.BumpFit{{ScanIndex: 1, Center: 49}},
	}

	var buf bytes.Buffer
	err := RenderRidgeMap(&buf, "test ridge", result)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<html")
}

func TestRenderPlateauProfilePNGWritesFile(t *testing.T) {
	profile := []detect.ProfilePoint{
		{Position: 0, Height: 0}, {Position: 1, Height: 2}, {Position: 2, Height: 2}, {Position: 3, Height: 0},
	}
	tmpl := detect.PlateauTemplate{Start: 1, End: 2, Height: 2, Width: 1}
	fit := detect.Plateau{Status: detect.PlateauOK, Accepted: true, EstimatedCenter: 1, ReferenceHeight: 2}

	path := filepath.Join(t.TempDir(), "plateau.png")
	require.NoError(t, RenderPlateauProfilePNG(path, profile, tmpl, fit))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderBumpProfilePNGWritesFile(t *testing.T) {
	profile := []detect.ProfilePoint{
		{Position: 0, Height: 0}, {Position: 1, Height: 3}, {Position: 2, Height: 5}, {Position: 3, Height: 3}, {Position: 4, Height: 0},
	}
	fit := detect.Bump{Status: detect.BumpOK, Accepted: true, Ridge: true, EstimatedSummit: 2, EstimatedHeight: 5}

	path := filepath.Join(t.TempDir(), "bump.png")
	require.NoError(t, RenderBumpProfilePNG(path, profile, fit))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
