// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kalamanch/directory/internal/platform/database/schema"
	"github.com/kalamanch/directory/internal/platform/dberr"
)

// PostgresRepository loads and seeds records in the directory.artist table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListRecords returns every live record ordered by its insertion order.
func (repository *PostgresRepository) ListRecords(ctx context.Context) ([]Record, error) {
	table := schema.DirectoryArtist
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s IS NULL
		ORDER BY %s ASC, %s ASC
	`,
		strings.Join(table.RecordColumns(), ", "),
		table.Table, table.DeletedAt, table.SortOrder, table.ID,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_artist_records")
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_artist_record")
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_artist_records")
	}

	return records, nil
}

// UpsertRecords writes records in one transaction, keyed by ID. The slice
// position becomes the stored insertion order.
func (repository *PostgresRepository) UpsertRecords(ctx context.Context, records []Record) (int, error) {
	table := schema.DirectoryArtist
	columns := append(table.RecordColumns(), table.SortOrder)

	placeholders := make([]string, len(columns))
	updates := make([]string, 0, len(columns))
	for i, column := range columns {
		placeholders[i] = "$" + strconv.Itoa(i+1)
		if column != table.ID {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
		}
	}
	updates = append(updates, fmt.Sprintf("%s = NOW()", table.UpdatedAt), fmt.Sprintf("%s = NULL", table.DeletedAt))

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (%s)
		ON CONFLICT (%s) DO UPDATE SET %s
	`,
		table.Table, strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
		table.ID, strings.Join(updates, ", "),
	)

	tx, err := repository.db.Begin(ctx)
	if err != nil {
		return 0, dberr.Wrap(err, "begin_upsert_artist_records")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for i := range records {
		batch.Queue(query, append(recordArgs(&records[i]), i)...)
	}

	results := tx.SendBatch(ctx, batch)
	for range records {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return 0, dberr.Wrap(err, "upsert_artist_record")
		}
	}
	if err := results.Close(); err != nil {
		return 0, dberr.Wrap(err, "close_upsert_batch")
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, dberr.Wrap(err, "commit_upsert_artist_records")
	}

	return len(records), nil
}

func scanRecord(row pgx.Row) (Record, error) {
	var (
		record       Record
		badge        *string
		availability string
		joined       pgtype.Date
	)

	err := row.Scan(
		&record.ID, &record.Name, &record.Category, &record.Subcategory,
		&record.City, &record.State, &record.District, &record.Block, &record.Pincode,
		&record.Lat, &record.Lng, &record.GeoLat, &record.GeoLng,
		&record.StartingPrice, &record.Experience,
		&record.Rating, &record.Reviews, &record.Verified, &badge,
		&record.Views, &record.Bookings, &record.IsTrending, &joined,
		&availability, &record.Skills, &record.Description, &record.ImageURL,
	)
	if err != nil {
		return Record{}, err
	}

	if badge != nil {
		tier := Badge(*badge)
		record.Badge = &tier
	}
	if joined.Valid {
		record.JoinedDate = joined.Time.Format(time.DateOnly)
	}
	record.Availability = Availability(availability)

	return record, nil
}

func recordArgs(record *Record) []any {
	var badge *string
	if record.Badge != nil {
		value := string(*record.Badge)
		badge = &value
	}

	joined := pgtype.Date{}
	if record.HasJoinedDate() {
		joined = pgtype.Date{Time: record.Joined(), Valid: true}
	}

	skills := record.Skills
	if skills == nil {
		skills = []string{}
	}

	return []any{
		record.ID, record.Name, record.Category, record.Subcategory,
		record.City, record.State, record.District, record.Block, record.Pincode,
		record.Lat, record.Lng, record.GeoLat, record.GeoLng,
		record.StartingPrice, record.Experience,
		record.Rating, record.Reviews, record.Verified, badge,
		record.Views, record.Bookings, record.IsTrending, joined,
		string(record.Availability), skills, record.Description, record.ImageURL,
	}
}
