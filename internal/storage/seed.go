package storage

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// SeedResult reports how many rows each table received
type SeedResult struct {
	Regions int
	Events  int
}

type regionRow struct {
	NOC    string         `db:"noc"`
	Region string         `db:"region"`
	Notes  sql.NullString `db:"notes"`
}

type eventRow struct {
	ID                   int            `db:"id"`
	Type                 string         `db:"type"`
	Year                 int            `db:"year"`
	Country              sql.NullString `db:"country"`
	Host                 sql.NullString `db:"host"`
	NOC                  sql.NullString `db:"noc"`
	Start                sql.NullString `db:"start_date"`
	End                  sql.NullString `db:"end_date"`
	DisabilitiesIncluded sql.NullString `db:"disabilities_included"`
	Countries            sql.NullInt64  `db:"countries"`
	Events               sql.NullInt64  `db:"events"`
	Sports               sql.NullInt64  `db:"sports"`
	ParticipantsM        sql.NullInt64  `db:"participants_m"`
	ParticipantsF        sql.NullInt64  `db:"participants_f"`
	Participants         sql.NullInt64  `db:"participants"`
	Highlights           sql.NullString `db:"highlights"`
	URL                  sql.NullString `db:"url"`
}

const insertRegionRow = `INSERT INTO regions (noc, region, notes) VALUES (:noc, :region, :notes)`

const insertEventRow = `
    INSERT INTO events (id, type, year, country, host, noc, start_date, end_date,
        disabilities_included, countries, events, sports,
        participants_m, participants_f, participants, highlights, url)
    VALUES (:id, :type, :year, :country, :host, :noc, :start_date, :end_date,
        :disabilities_included, :countries, :events, :sports,
        :participants_m, :participants_f, :participants, :highlights, :url)`

// Seed loads the bundled regions and events data into empty tables.
// Tables that already hold rows are left alone, so calling it again is a no-op.
func Seed(ctx context.Context, db *sqlx.DB, log zerolog.Logger) (SeedResult, error) {
	var result SeedResult

	n, err := seedTable(ctx, db, "regions", "data/noc_regions.csv", insertRegionRow, parseRegionRecord)
	if err != nil {
		return result, err
	}
	result.Regions = n

	n, err = seedTable(ctx, db, "events", "data/paralympic_events.csv", insertEventRow, parseEventRecord)
	if err != nil {
		return result, err
	}
	result.Events = n

	log.Info().Int("regions", result.Regions).Int("events", result.Events).Msg("seed complete")
	return result, nil
}

func seedTable(ctx context.Context, db *sqlx.DB, table, file, insert string, parse func([]string) (any, error)) (int, error) {
	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+table); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	if count > 0 {
		return 0, nil
	}

	f, err := files.Open(file)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", file, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil {
		return 0, fmt.Errorf("read %s header: %w", file, err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed %s: %w", table, err)
	}
	defer tx.Rollback()

	inserted := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read %s: %w", file, err)
		}

		row, err := parse(record)
		if err != nil {
			return 0, fmt.Errorf("parse %s line %d: %w", file, inserted+2, err)
		}
		if _, err := tx.NamedExecContext(ctx, insert, row); err != nil {
			return 0, fmt.Errorf("insert into %s: %w", table, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed %s: %w", table, err)
	}
	return inserted, nil
}

func parseRegionRecord(record []string) (any, error) {
	if len(record) != 3 {
		return nil, fmt.Errorf("want 3 fields, got %d", len(record))
	}
	return regionRow{
		NOC:    strings.TrimSpace(record[0]),
		Region: strings.TrimSpace(record[1]),
		Notes:  nullString(record[2]),
	}, nil
}

func parseEventRecord(record []string) (any, error) {
	if len(record) != 17 {
		return nil, fmt.Errorf("want 17 fields, got %d", len(record))
	}

	id, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return nil, fmt.Errorf("id: %w", err)
	}
	year, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return nil, fmt.Errorf("year: %w", err)
	}

	row := eventRow{
		ID:                   id,
		Type:                 strings.TrimSpace(record[1]),
		Year:                 year,
		Country:              nullString(record[3]),
		Host:                 nullString(record[4]),
		NOC:                  nullString(record[5]),
		Start:                nullString(record[6]),
		End:                  nullString(record[7]),
		DisabilitiesIncluded: nullString(record[8]),
		Highlights:           nullString(record[15]),
		URL:                  nullString(record[16]),
	}

	ints := []*sql.NullInt64{&row.Countries, &row.Events, &row.Sports, &row.ParticipantsM, &row.ParticipantsF, &row.Participants}
	for i, dst := range ints {
		v, err := nullInt(record[9+i])
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", 9+i, err)
		}
		*dst = v
	}
	return row, nil
}

func nullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(s string) (sql.NullInt64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullInt64{}, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return sql.NullInt64{}, err
	}
	return sql.NullInt64{Int64: v, Valid: true}, nil
}
