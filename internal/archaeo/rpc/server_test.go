package rpc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/banshee-data/archaeoscan/api/archaeopb"
	"github.com/banshee-data/archaeoscan/internal/archaeo/detect"
	"github.com/banshee-data/archaeoscan/internal/archaeo/tile"
)

// fakeStream implements archaeopb.DetectionService_RunDetectionServer by
// embedding a nil grpc.ServerStream (unused methods are never called by
// Server.RunDetection) and recording every sent message.
type fakeStream struct {
	grpc.ServerStream
	sent []*archaeopb.DetectedStructure
}

func (f *fakeStream) Send(m *archaeopb.DetectedStructure) error {
	f.sent = append(f.sent, m)
	return nil
}

func writeTestTile(t *testing.T, size int) string {
	t.Helper()
	tl := tile.New(1, 1)
	tl.SetArea(0, 0, 100, size)
	var pts []tile.Point3D
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			h := 0
			if x >= 4 && x <= 6 {
				h = 3
			}
			pts = append(pts, tile.NewPoint3D(x, y, h))
		}
	}
	tl.Points = pts
	tl.Cells[0] = 0
	tl.Cells[1] = int32(len(pts))

	path := filepath.Join(t.TempDir(), "test.til")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, tl.Save(f))
	return path
}

func TestRunDetectionStreamsCarriageTrackResult(t *testing.T) {
	path := writeTestTile(t, 11)

	s := NewServer(detect.DefaultConfig())
	req := &archaeopb.RunDetectionRequest{
		Tile: archaeopb.TileRef{Path: path},
		P1:   archaeopb.Pt{X: 0, Y: 5},
		P2:   archaeopb.Pt{X: 10, Y: 5},
		Mode: archaeopb.ModeCarriageTrack,
	}
	stream := &fakeStream{}
	err := s.RunDetection(req, stream)
	require.NoError(t, err)
	require.NotEmpty(t, stream.sent)
	assert.Equal(t, "center", stream.sent[0].Side)
}

func TestRunDetectionRejectsUnknownMode(t *testing.T) {
	path := writeTestTile(t, 11)

	s := NewServer(detect.DefaultConfig())
	req := &archaeopb.RunDetectionRequest{
		Tile: archaeopb.TileRef{Path: path},
		P1:   archaeopb.Pt{X: 0, Y: 5},
		P2:   archaeopb.Pt{X: 10, Y: 5},
		Mode: archaeopb.DetectionMode("bogus"),
	}
	stream := &fakeStream{}
	err := s.RunDetection(req, stream)
	assert.Error(t, err)
}

func TestJSONCodecRoundTrips(t *testing.T) {
	c := jsonCodec{}
	msg := &archaeopb.DetectedStructure{Side: "left", ScanIndex: 3, Center: 7, Accepted: true, Status: "RESULT_OK"}
	data, err := c.Marshal(msg)
	require.NoError(t, err)

	var out archaeopb.DetectedStructure
	require.NoError(t, c.Unmarshal(data, &out))
	assert.Equal(t, *msg, out)
}
