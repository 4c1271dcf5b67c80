package report_repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dice_backend/internal/model"
	"dice_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const (
	table            = "rtp_reports"
	colID            = "id"
	colTitle         = "title"
	colOdds          = "odds"
	colTrials        = "trials"
	colStake         = "stake"
	colTotalStaked   = "total_staked"
	colTotalReturned = "total_returned"
	colRTP           = "rtp"
	colVerdict       = "verdict"
	colHits          = "hits"
	colSeed          = "seed"
	colComplete      = "complete"
	colElapsedMs     = "elapsed_ms"
	colCreatedAt     = "created_at"
)

var columns = []string{
	colID, colTitle, colOdds, colTrials, colStake, colTotalStaked, colTotalReturned,
	colRTP, colVerdict, colHits, colSeed, colComplete, colElapsedMs, colCreatedAt,
}

// Repo - calibration reports in a local sqlite file
type Repo struct {
	db  *sql.DB
	now func() time.Time
}

// NewReportRepository - opens (creating if needed) the sqlite file and migrates it
func NewReportRepository(path string) (*Repo, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report database: %w", err)
	}
	// single writer keeps sqlite from returning SQLITE_BUSY under load
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	r := &Repo{db: db, now: time.Now}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

var _ repository.ReportRepository = (*Repo)(nil)

func (r *Repo) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS rtp_reports (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			odds TEXT NOT NULL,
			trials INTEGER NOT NULL,
			stake REAL NOT NULL,
			total_staked REAL NOT NULL,
			total_returned REAL NOT NULL,
			rtp REAL NOT NULL,
			verdict TEXT NOT NULL,
			hits TEXT NOT NULL,
			seed INTEGER,
			complete INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rtp_reports_created ON rtp_reports(created_at)`,
	}
	for _, m := range migrations {
		if _, err := r.db.Exec(m); err != nil {
			return fmt.Errorf("report migration failed: %w", err)
		}
	}
	return nil
}

// Close - closes the database
func (r *Repo) Close() error {
	return r.db.Close()
}

// Save - stores the report under a fresh id
func (r *Repo) Save(ctx context.Context, report *model.SimulationReport) (string, error) {
	odds, err := json.Marshal(report.Odds)
	if err != nil {
		return "", err
	}
	hits, err := json.Marshal(report.Hits)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	createdAt := r.now().UTC()

	var seed any
	if report.Seed != nil {
		// sqlite integers are signed
		seed = int64(*report.Seed)
	}

	query := sq.Insert(table).
		Columns(columns...).
		Values(id, report.Title, string(odds), report.Trials, report.Stake, report.TotalStaked,
			report.TotalReturned, report.RTP, report.Verdict, string(hits), seed, report.Complete,
			report.Elapsed.Milliseconds(), createdAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", err
	}
	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}

	report.ID = id
	report.CreatedAt = createdAt
	return id, nil
}

// Get - report by id
func (r *Repo) Get(ctx context.Context, id string) (*model.SimulationReport, error) {
	query := sq.Select(columns...).From(table).Where(sq.Eq{colID: id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	report, err := scanReport(r.db.QueryRowContext(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return report, nil
}

// List - newest reports first
func (r *Repo) List(ctx context.Context, limit int) ([]model.SimulationReport, error) {
	query := sq.Select(columns...).
		From(table).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SimulationReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *report)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(s scanner) (*model.SimulationReport, error) {
	var (
		rep       model.SimulationReport
		odds      string
		hits      string
		seed      sql.NullInt64
		elapsedMs int64
	)
	err := s.Scan(&rep.ID, &rep.Title, &odds, &rep.Trials, &rep.Stake, &rep.TotalStaked,
		&rep.TotalReturned, &rep.RTP, &rep.Verdict, &hits, &seed, &rep.Complete, &elapsedMs, &rep.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(odds), &rep.Odds); err != nil {
		return nil, fmt.Errorf("decode odds: %w", err)
	}
	if err := json.Unmarshal([]byte(hits), &rep.Hits); err != nil {
		return nil, fmt.Errorf("decode hits: %w", err)
	}
	if seed.Valid {
		v := uint64(seed.Int64)
		rep.Seed = &v
	}
	rep.Elapsed = time.Duration(elapsedMs) * time.Millisecond

	return &rep, nil
}
