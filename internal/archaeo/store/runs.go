package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/banshee-data/archaeoscan/internal/archaeo/geom2i"
	"github.com/banshee-data/archaeoscan/internal/archaeo/track"
)

// DetectionMode names which structure kind a run detected.
type DetectionMode string

const (
	ModeCarriageTrack DetectionMode = "ctrack"
	ModeRidge         DetectionMode = "ridge"
	ModeHollow        DetectionMode = "hollow"
)

// Run is a persisted detection run: the stroke that triggered it, which
// tile it ran against, and its outcome.
type Run struct {
	RunID            string
	TileName         string
	Mode             DetectionMode
	P1, P2           geom2i.Pt
	Status           string
	CreatedUnixNanos int64
}

// Fit is one side's single-scan result, persisted for replay.
type Fit struct {
	Side      string // "left", "right", or "center"
	ScanIndex int
	Center    int
	Accepted  bool
}

// InsertCarriageTrackRun persists a completed carriage-track run, its
// center fit and all of its side fits (every one accepted) in one
// transaction.
func InsertCarriageTrackRun(db *DB, tileName string, p1, p2 geom2i.Pt, result track.CarriageTrackResult, createdUnixNanos int64) (string, error) {
	fits := make([]Fit, 0, len(result.Left)+len(result.Right)+1)
	fits = append(fits, Fit{Side: "center", ScanIndex: 0, Center: result.CenterPlateau.EstimatedCenter, Accepted: result.CenterPlateau.Accepted})
	for _, f := range result.Left {
		fits = append(fits, Fit{Side: "left", ScanIndex: f.ScanIndex, Center: f.Center, Accepted: true})
	}
	for _, f := range result.Right {
		fits = append(fits, Fit{Side: "right", ScanIndex: f.ScanIndex, Center: f.Center, Accepted: true})
	}
	return insertRun(db, Run{
		TileName: tileName, Mode: ModeCarriageTrack, P1: p1, P2: p2,
		Status: result.Status.String(), CreatedUnixNanos: createdUnixNanos,
	}, fits)
}

// InsertRidgeRun persists a completed ridge or hollow run the same way.
func InsertRidgeRun(db *DB, tileName string, p1, p2 geom2i.Pt, ridge bool, result track.RidgeResult, createdUnixNanos int64) (string, error) {
	mode := ModeHollow
	if ridge {
		mode = ModeRidge
	}
	fits := make([]Fit, 0, len(result.Left)+len(result.Right)+1)
	fits = append(fits, Fit{Side: "center", ScanIndex: 0, Center: result.CenterBump.EstimatedCenter, Accepted: result.CenterBump.Accepted})
	for _, f := range result.Left {
		fits = append(fits, Fit{Side: "left", ScanIndex: f.ScanIndex, Center: f.Center, Accepted: true})
	}
	for _, f := range result.Right {
		fits = append(fits, Fit{Side: "right", ScanIndex: f.ScanIndex, Center: f.Center, Accepted: true})
	}
	return insertRun(db, Run{
		TileName: tileName, Mode: mode, P1: p1, P2: p2,
		Status: result.Status.String(), CreatedUnixNanos: createdUnixNanos,
	}, fits)
}

func insertRun(db *DB, run Run, fits []Fit) (string, error) {
	runID := uuid.NewString()
	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO archaeo_detection_runs (
			run_id, tile_name, detection_mode,
			stroke_x1, stroke_y1, stroke_x2, stroke_y2,
			result_status, created_unix_nanos
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, runID, run.TileName, string(run.Mode), run.P1.X, run.P1.Y, run.P2.X, run.P2.Y, run.Status, run.CreatedUnixNanos)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, f := range fits {
		accepted := 0
		if f.Accepted {
			accepted = 1
		}
		_, err = tx.Exec(`
			INSERT INTO archaeo_structure_fits (run_id, side, scan_index, center, accepted)
			VALUES (?, ?, ?, ?, ?)
		`, runID, f.Side, f.ScanIndex, f.Center, accepted)
		if err != nil {
			return "", fmt.Errorf("insert fit: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}
	return runID, nil
}

// GetRun loads a run's header row by ID.
func GetRun(db *DB, runID string) (*Run, error) {
	run := &Run{RunID: runID}
	var mode, status string
	row := db.QueryRow(`
		SELECT tile_name, detection_mode, stroke_x1, stroke_y1, stroke_x2, stroke_y2, result_status, created_unix_nanos
		FROM archaeo_detection_runs WHERE run_id = ?
	`, runID)
	if err := row.Scan(&run.TileName, &mode, &run.P1.X, &run.P1.Y, &run.P2.X, &run.P2.Y, &status, &run.CreatedUnixNanos); err != nil {
		return nil, fmt.Errorf("get run %s: %w", runID, err)
	}
	run.Mode = DetectionMode(mode)
	run.Status = status
	return run, nil
}

// GetFits loads every side fit recorded for a run, ordered by side then
// scan index.
func GetFits(db *DB, runID string) ([]Fit, error) {
	rows, err := db.Query(`
		SELECT side, scan_index, center, accepted FROM archaeo_structure_fits
		WHERE run_id = ? ORDER BY side, scan_index
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("get fits for run %s: %w", runID, err)
	}
	defer rows.Close()

	var fits []Fit
	for rows.Next() {
		var f Fit
		var accepted int
		if err := rows.Scan(&f.Side, &f.ScanIndex, &f.Center, &accepted); err != nil {
			return nil, fmt.Errorf("scan fit row: %w", err)
		}
		f.Accepted = accepted != 0
		fits = append(fits, f)
	}
	return fits, rows.Err()
}
