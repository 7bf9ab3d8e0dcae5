package main

import "testing"

// TestModeFlagDefault verifies the -mode flag exists and defaults to
// carriage_track, mirroring cmd/radar/flags_test.go's flag-default checks.
func TestModeFlagDefault(t *testing.T) {
	if mode == nil {
		t.Fatal("mode flag not defined")
	}
	if *mode != "carriage_track" {
		t.Errorf("expected mode default to be carriage_track, got %q", *mode)
	}
}

// TestServeFlagDefault verifies -serve defaults to false (one-shot scan
// mode, not the long-lived gRPC server).
func TestServeFlagDefault(t *testing.T) {
	if serve == nil {
		t.Fatal("serve flag not defined")
	}
	if *serve != false {
		t.Errorf("expected serve default to be false, got %v", *serve)
	}
}

// TestGRPCListenFlagDefault verifies -grpc-listen has a usable default
// address.
func TestGRPCListenFlagDefault(t *testing.T) {
	if grpcListen == nil {
		t.Fatal("grpcListen flag not defined")
	}
	if *grpcListen == "" {
		t.Error("expected grpcListen default to be non-empty")
	}
}
