// Package rpc exposes the detection engine as a gRPC service
// (DetectionService, defined in api/archaeopb), grounded on the
// teacher's internal/lidar/visualiser gRPC server: a struct embedding
// the service's Unimplemented type, one method per RPC building its
// response from already-computed in-process state, registered against
// a *grpc.Server the caller owns and starts.
package rpc

import (
	"fmt"
	"os"

	"google.golang.org/grpc"

	"github.com/banshee-data/archaeoscan/api/archaeopb"
	"github.com/banshee-data/archaeoscan/internal/archaeo/detect"
	"github.com/banshee-data/archaeoscan/internal/archaeo/geom2i"
	"github.com/banshee-data/archaeoscan/internal/archaeo/scan"
	"github.com/banshee-data/archaeoscan/internal/archaeo/tile"
	"github.com/banshee-data/archaeoscan/internal/archaeo/track"
)

// Server implements archaeopb.DetectionServiceServer against the tile
// and track packages.
type Server struct {
	archaeopb.UnimplementedDetectionServiceServer

	Config detect.Config
}

// NewServer creates a Server using cfg for every run's detector
// tolerances.
func NewServer(cfg detect.Config) *Server {
	return &Server{Config: cfg}
}

// Register attaches s to grpcServer. It does not set a codec: archaeopb's
// messages are plain structs rather than generated proto.Message
// implementations, so grpcServer needs the JSON codec that
// NewGRPCServer forces.
func Register(grpcServer *grpc.Server, s *Server) {
	archaeopb.RegisterDetectionServiceServer(grpcServer, s)
}

// NewGRPCServer builds a *grpc.Server pre-configured with the JSON
// codec RunDetection's messages require.
func NewGRPCServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ForceServerCodec(jsonCodec{}))
	return grpc.NewServer(opts...)
}

// RunDetection loads the requested tile, scans the requested stroke,
// runs the requested detector, and streams the center fit followed by
// each accepted side fit.
func (s *Server) RunDetection(req *archaeopb.RunDetectionRequest, stream archaeopb.DetectionService_RunDetectionServer) error {
	t, err := loadTile(req.Tile.Path)
	if err != nil {
		return fmt.Errorf("load tile %q: %w", req.Tile.Path, err)
	}

	provider := scan.NewProvider(0, 0, t.Cols*t.CellSize, t.Rows*t.CellSize)
	p1 := geom2i.Pt{X: int(req.P1.X), Y: int(req.P1.Y)}
	p2 := geom2i.Pt{X: int(req.P2.X), Y: int(req.P2.Y)}
	scanner := provider.GetScanner(p1, p2)
	source := track.NewTileProfileSource(t)

	switch req.Mode {
	case archaeopb.ModeCarriageTrack:
		result := track.DetectCarriageTrack(scanner, source, s.Config)
		return streamCarriageTrack(stream, result)
	case archaeopb.ModeRidge:
		result := track.DetectRidge(scanner, source, true, s.Config)
		return streamRidge(stream, result)
	case archaeopb.ModeHollow:
		result := track.DetectRidge(scanner, source, false, s.Config)
		return streamRidge(stream, result)
	default:
		return fmt.Errorf("unknown detection mode %q", req.Mode)
	}
}

func loadTile(path string) (*tile.Tile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tile.Load(f, true)
}

func streamCarriageTrack(stream archaeopb.DetectionService_RunDetectionServer, result track.CarriageTrackResult) error {
	if err := stream.Send(&archaeopb.DetectedStructure{
		Side: "center", Center: int32(result.CenterPlateau.EstimatedCenter),
		Accepted: result.CenterPlateau.Accepted, Status: result.Status.String(),
	}); err != nil {
		return err
	}
	for _, f := range result.Left {
		if err := stream.Send(&archaeopb.DetectedStructure{
			Side: "left", ScanIndex: int32(f.ScanIndex), Center: int32(f.Center), Accepted: true, Status: result.Status.String(),
		}); err != nil {
			return err
		}
	}
	for _, f := range result.Right {
		if err := stream.Send(&archaeopb.DetectedStructure{
			Side: "right", ScanIndex: int32(f.ScanIndex), Center: int32(f.Center), Accepted: true, Status: result.Status.String(),
		}); err != nil {
			return err
		}
	}
	return nil
}

func streamRidge(stream archaeopb.DetectionService_RunDetectionServer, result track.RidgeResult) error {
	if err := stream.Send(&archaeopb.DetectedStructure{
		Side: "center", Center: int32(result.CenterBump.EstimatedCenter),
		Accepted: result.CenterBump.Accepted, Status: result.Status.String(),
	}); err != nil {
		return err
	}
	for _, f := range result.Left {
		if err := stream.Send(&archaeopb.DetectedStructure{
			Side: "left", ScanIndex: int32(f.ScanIndex), Center: int32(f.Center), Accepted: true, Status: result.Status.String(),
		}); err != nil {
			return err
		}
	}
	for _, f := range result.Right {
		if err := stream.Send(&archaeopb.DetectedStructure{
			Side: "right", ScanIndex: int32(f.ScanIndex), Center: int32(f.Center), Accepted: true, Status: result.Status.String(),
		}); err != nil {
			return err
		}
	}
	return nil
}
