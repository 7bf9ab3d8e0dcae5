package rpc

import "encoding/json"

// jsonCodec marshals gRPC messages as JSON instead of the protobuf wire
// format. archaeopb's messages are plain structs, not generated
// proto.Message implementations (no protoc toolchain is available to
// produce the descriptor-backed ProtoReflect method real generated code
// needs), so NewGRPCServer forces this codec via grpc.ForceServerCodec
// rather than relying on gRPC's default content-subtype negotiation. No
// client in this module sets grpc.ForceCodec.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v interface{}) error { return json.Unmarshal(data, v) }

func (jsonCodec) Name() string { return "archaeopb-json" }
