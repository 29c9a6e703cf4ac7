package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
)

// DB writes station records to postgres for grafana to chew on.
type DB struct {
	conn *sql.DB
}

func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return &DB{conn: conn}, nil
}

type WriteRecordParams struct {
	WindSpeed     float64
	WindGust      float64
	WindDirection float64
	RainRate      float64
	RainDay       float64
}

const writeRecord = `
INSERT INTO weather (recorded_at, wind_speed, wind_gust, wind_direction, rain_rate, rain_day)
VALUES (now(), $1, $2, $3, $4, $5)`

func (db *DB) WriteRecord(ctx context.Context, p WriteRecordParams) error {
	_, err := db.conn.ExecContext(ctx, writeRecord,
		p.WindSpeed, p.WindGust, p.WindDirection, p.RainRate, p.RainDay)
	return err
}

func (db *DB) Close() error {
	return db.conn.Close()
}
