// Package archaeopb holds the wire message and service definitions for
// the detection engine's gRPC surface. There is no protoc toolchain
// available to generate these from a .proto source in this environment,
// so the message structs and the grpc.ServiceDesc/client/server
// scaffolding below are authored directly, by hand, in the shape
// protoc-gen-go and protoc-gen-go-grpc would produce: plain structs for
// messages (see internal/archaeo/rpc's JSON codec for why these don't
// need to implement proto.Message), a ServiceDesc value, and thin
// client/server wrapper types around grpc.ClientConn/grpc.ServerStream.
// Grounded on the teacher's own hand-describable gRPC surface in
// internal/lidar/visualiser (VisualiserService), adapted from a
// perception-overlay stream to a tile detection-run stream.
package archaeopb

// Pt is a point in tile-local integer coordinates.
type Pt struct {
	X, Y int32
}

// TileRef names the tile file a detection run scans.
type TileRef struct {
	Path string
}

// DetectionMode selects which structure family a run looks for.
type DetectionMode string

const (
	ModeCarriageTrack DetectionMode = "carriage_track"
	ModeRidge         DetectionMode = "ridge"
	ModeHollow        DetectionMode = "hollow"
)

// RunDetectionRequest starts a detection run along a stroke (P1 to P2)
// over a tile, for one structure kind.
type RunDetectionRequest struct {
	Tile TileRef
	P1   Pt
	P2   Pt
	Mode DetectionMode
}

// DetectedStructure is one side fit streamed back from a run: the
// center fit first (Side == "center"), then each accepted left/right
// fit in propagation order.
type DetectedStructure struct {
	Side      string
	ScanIndex int32
	Center    int32
	Accepted  bool
	Status    string
}
