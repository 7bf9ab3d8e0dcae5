// Command archaeo-detect runs the archaeomorphological structure
// detection engine either as a one-shot batch scan over a single tile
// and stroke, or as a long-running gRPC DetectionService. Flag layout
// and lifecycle (flag.Parse, stdout logging, signal.NotifyContext
// shutdown, deferred DB close) follow cmd/radar/radar.go.
package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/banshee-data/archaeoscan/api/archaeopb"
	"github.com/banshee-data/archaeoscan/internal/archaeo/detect"
	"github.com/banshee-data/archaeoscan/internal/archaeo/geom2i"
	"github.com/banshee-data/archaeoscan/internal/archaeo/report"
	"github.com/banshee-data/archaeoscan/internal/archaeo/rpc"
	"github.com/banshee-data/archaeoscan/internal/archaeo/scan"
	"github.com/banshee-data/archaeoscan/internal/archaeo/store"
	"github.com/banshee-data/archaeoscan/internal/archaeo/tile"
	"github.com/banshee-data/archaeoscan/internal/archaeo/track"
)

var (
	tilePath = flag.String("tile", "", "path to a tile file in spec §6's binary format")
	mode     = flag.String("mode", "carriage_track", "structure kind to detect: carriage_track, ridge, or hollow")
	p1x      = flag.Int("p1x", 0, "stroke start X")
	p1y      = flag.Int("p1y", 0, "stroke start Y")
	p2x      = flag.Int("p2x", 0, "stroke end X")
	p2y      = flag.Int("p2y", 0, "stroke end Y")
	dbPath   = flag.String("db-path", "archaeo_results.db", "path to the sqlite results database")
	htmlOut  = flag.String("html-out", "", "optional path to write an echarts centerline map HTML file")

	serve      = flag.Bool("serve", false, "run as a long-lived gRPC DetectionService instead of a one-shot scan")
	grpcListen = flag.String("grpc-listen", "localhost:50061", "gRPC listen address when -serve is set")
)

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetOutput(os.Stdout)

	cfg := detect.DefaultConfig()

	if *serve {
		runServer(cfg)
		return
	}
	runOnce(cfg)
}

func runServer(cfg detect.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lis, err := net.Listen("tcp", *grpcListen)
	if err != nil {
		log.Fatalf("listen on %s: %v", *grpcListen, err)
	}

	grpcServer := rpc.NewGRPCServer()
	rpc.Register(grpcServer, rpc.NewServer(cfg))

	go func() {
		<-ctx.Done()
		log.Printf("shutting down gRPC server on %s", *grpcListen)
		grpcServer.GracefulStop()
	}()

	log.Printf("DetectionService listening on %s", *grpcListen)
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

func runOnce(cfg detect.Config) {
	if *tilePath == "" {
		log.Fatal("-tile is required")
	}

	f, err := os.Open(*tilePath)
	if err != nil {
		log.Fatalf("open tile %s: %v", *tilePath, err)
	}
	t, err := tile.Load(f, true)
	f.Close()
	if err != nil {
		log.Fatalf("load tile %s: %v", *tilePath, err)
	}

	db, err := store.Open(*dbPath)
	if err != nil {
		log.Fatalf("open results database %s: %v", *dbPath, err)
	}
	defer db.Close()

	provider := scan.NewProvider(0, 0, t.Cols*t.CellSize, t.Rows*t.CellSize)
	p1, p2 := geom2i.Pt{X: *p1x, Y: *p1y}, geom2i.Pt{X: *p2x, Y: *p2y}
	scanner := provider.GetScanner(p1, p2)
	source := track.NewTileProfileSource(t)

	switch archaeopb.DetectionMode(*mode) {
	case archaeopb.ModeCarriageTrack:
		result := track.DetectCarriageTrack(scanner, source, cfg)
		log.Printf("carriage track: status=%s accepted=%v left=%d right=%d", result.Status, result.CenterPlateau.Accepted, len(result.Left), len(result.Right))
		runID, err := store.InsertCarriageTrackRun(db, *tilePath, p1, p2, result, time.Now().UnixNano())
		if err != nil {
			log.Fatalf("persist run: %v", err)
		}
		log.Printf("run %s persisted", runID)
		writeHTMLMap(func(w *os.File) error { return report.RenderCarriageTrackMap(w, "carriage track", result) })
	case archaeopb.ModeRidge, archaeopb.ModeHollow:
		ridge := archaeopb.DetectionMode(*mode) == archaeopb.ModeRidge
		result := track.DetectRidge(scanner, source, ridge, cfg)
		log.Printf("%s: status=%s accepted=%v left=%d right=%d", *mode, result.Status, result.CenterBump.Accepted, len(result.Left), len(result.Right))
		runID, err := store.InsertRidgeRun(db, *tilePath, p1, p2, ridge, result, time.Now().UnixNano())
		if err != nil {
			log.Fatalf("persist run: %v", err)
		}
		log.Printf("run %s persisted", runID)
		writeHTMLMap(func(w *os.File) error { return report.RenderRidgeMap(w, *mode, result) })
	default:
		log.Fatalf("unknown -mode %q (want carriage_track, ridge, or hollow)", *mode)
	}
}

func writeHTMLMap(render func(w *os.File) error) {
	if *htmlOut == "" {
		return
	}
	f, err := os.Create(*htmlOut)
	if err != nil {
		log.Printf("warning: create %s: %v", *htmlOut, err)
		return
	}
	defer f.Close()
	if err := render(f); err != nil {
		log.Printf("warning: render map to %s: %v", *htmlOut, err)
	}
}
