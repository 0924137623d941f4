// Package pvrecdb is an optional post-hoc index of promoted tracklets:
// camera, night, point count, and the path of a file already written for
// the tracklet (cmd/tools/pvrec-report records each trajectory PNG),
// queryable across runs. It is adapter-layer bookkeeping, not part
// of the core engine — spec.md §6's "Persisted state: None" describes the
// engine, not this opt-in tool. Modeled on the teacher's internal/db, cut
// down to one table and one migration.
package pvrecdb

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/banshee-data/pvrec/internal/pvrec"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB wraps a sqlite connection holding the tracklet index.
type DB struct {
	*sql.DB
}

// Open opens (creating if necessary) the sqlite database at path and
// applies any pending migrations.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("pvrecdb: open %s: %w", path, err)
	}
	db := &DB{sqlDB}
	if err := db.migrateUp(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) migrateUp() error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("pvrecdb: iofs source: %w", err)
	}
	driver, err := sqlite.WithInstance(db.DB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("pvrecdb: sqlite driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("pvrecdb: migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("pvrecdb: migrate up: %w", err)
	}
	return nil
}

// TrackletRow is one indexed tracklet file.
type TrackletRow struct {
	ID           int64
	CameraID     int
	Night        string
	PointCount   int
	FilePath     string
	InsertedUnix int64
}

// IndexObject records one promoted object's output file in the index.
// night is the YYYYMMDD calendar-date component of the written filename.
func (db *DB) IndexObject(obj pvrec.Object, night, filePath string, insertedUnix int64) error {
	_, err := db.Exec(
		`INSERT OR REPLACE INTO tracklet (camera_id, night, point_count, file_path, inserted_unix)
		 VALUES (?, ?, ?, ?, ?)`,
		obj.CamID, night, len(obj.Points), filePath, insertedUnix,
	)
	if err != nil {
		return fmt.Errorf("pvrecdb: index object: %w", err)
	}
	return nil
}

// ListByCamera returns every indexed tracklet for a camera, most recent
// night first.
func (db *DB) ListByCamera(cameraID int) ([]TrackletRow, error) {
	rows, err := db.Query(
		`SELECT id, camera_id, night, point_count, file_path, inserted_unix
		 FROM tracklet WHERE camera_id = ? ORDER BY night DESC, id DESC`,
		cameraID,
	)
	if err != nil {
		return nil, fmt.Errorf("pvrecdb: list by camera: %w", err)
	}
	defer rows.Close()

	var out []TrackletRow
	for rows.Next() {
		var r TrackletRow
		if err := rows.Scan(&r.ID, &r.CameraID, &r.Night, &r.PointCount, &r.FilePath, &r.InsertedUnix); err != nil {
			return nil, fmt.Errorf("pvrecdb: scan tracklet row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CameraSummary is an aggregate over every tracklet indexed for one camera.
type CameraSummary struct {
	CameraID      int
	TrackletCount int
	TotalPoints   int
}

// Summarize aggregates tracklet counts and total points per camera.
func (db *DB) Summarize() ([]CameraSummary, error) {
	rows, err := db.Query(
		`SELECT camera_id, COUNT(*), COALESCE(SUM(point_count), 0)
		 FROM tracklet GROUP BY camera_id ORDER BY camera_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("pvrecdb: summarize: %w", err)
	}
	defer rows.Close()

	var out []CameraSummary
	for rows.Next() {
		var s CameraSummary
		if err := rows.Scan(&s.CameraID, &s.TrackletCount, &s.TotalPoints); err != nil {
			return nil, fmt.Errorf("pvrecdb: scan summary row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
