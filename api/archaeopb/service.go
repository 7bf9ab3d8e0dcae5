package archaeopb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DetectionServiceServer is the server API for DetectionService.
type DetectionServiceServer interface {
	// RunDetection scans a stroke against a tile for the requested
	// structure kind and streams back the center fit followed by each
	// accepted side fit.
	RunDetection(*RunDetectionRequest, DetectionService_RunDetectionServer) error
}

// UnimplementedDetectionServiceServer can be embedded by a server
// implementation to satisfy DetectionServiceServer for methods it
// doesn't implement, matching the forward-compatibility convention
// generated servers use (c.f. the teacher's pb.UnimplementedVisualiserServiceServer).
type UnimplementedDetectionServiceServer struct{}

func (UnimplementedDetectionServiceServer) RunDetection(*RunDetectionRequest, DetectionService_RunDetectionServer) error {
	return status.Errorf(codes.Unimplemented, "method RunDetection not implemented")
}

// DetectionService_RunDetectionServer is the server-side stream handle
// RunDetection sends results over.
type DetectionService_RunDetectionServer interface {
	Send(*DetectedStructure) error
	grpc.ServerStream
}

type detectionServiceRunDetectionServer struct {
	grpc.ServerStream
}

func (x *detectionServiceRunDetectionServer) Send(m *DetectedStructure) error {
	return x.ServerStream.SendMsg(m)
}

func _DetectionService_RunDetection_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(RunDetectionRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(DetectionServiceServer).RunDetection(m, &detectionServiceRunDetectionServer{stream})
}

// DetectionService_ServiceDesc is the grpc.ServiceDesc registered by a
// server and used by the client to build the wire method name.
var DetectionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "archaeopb.DetectionService",
	HandlerType: (*DetectionServiceServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "RunDetection",
			Handler:       _DetectionService_RunDetection_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "archaeopb/detection.proto",
}

// RegisterDetectionServiceServer registers srv against s, the way a
// generated _grpc.pb.go's RegisterXServer function would.
func RegisterDetectionServiceServer(s grpc.ServiceRegistrar, srv DetectionServiceServer) {
	s.RegisterService(&DetectionService_ServiceDesc, srv)
}

// DetectionServiceClient is the client API for DetectionService.
type DetectionServiceClient interface {
	RunDetection(ctx context.Context, in *RunDetectionRequest, opts ...grpc.CallOption) (DetectionService_RunDetectionClient, error)
}

type detectionServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDetectionServiceClient wraps cc as a DetectionServiceClient.
func NewDetectionServiceClient(cc grpc.ClientConnInterface) DetectionServiceClient {
	return &detectionServiceClient{cc}
}

func (c *detectionServiceClient) RunDetection(ctx context.Context, in *RunDetectionRequest, opts ...grpc.CallOption) (DetectionService_RunDetectionClient, error) {
	stream, err := c.cc.NewStream(ctx, &DetectionService_ServiceDesc.Streams[0], "/archaeopb.DetectionService/RunDetection", opts...)
	if err != nil {
		return nil, err
	}
	x := &detectionServiceRunDetectionClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// DetectionService_RunDetectionClient is the client-side stream handle
// RunDetection results are received over.
type DetectionService_RunDetectionClient interface {
	Recv() (*DetectedStructure, error)
	grpc.ClientStream
}

type detectionServiceRunDetectionClient struct {
	grpc.ClientStream
}

func (x *detectionServiceRunDetectionClient) Recv() (*DetectedStructure, error) {
	m := new(DetectedStructure)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}
