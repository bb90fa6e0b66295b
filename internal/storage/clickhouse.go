package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"FlowScope/internal/config"
	"FlowScope/internal/core/model"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

const createTableStatement = `
CREATE TABLE IF NOT EXISTS flow_records (
    Timestamp     DateTime,
    SourceIP      String,
    DestinationIP String,
    TotalBytes    UInt64,
    Protocol      String
) ENGINE = MergeTree()
PARTITION BY toYYYYMM(Timestamp)
ORDER BY (Timestamp, SourceIP, DestinationIP);
`

// ClickHouseStore persists raw flow records and serves windowed queries
// over them. It backs both the collector (writes) and the API (reads).
type ClickHouseStore struct {
	conn driver.Conn
}

// NewClickHouseStore connects to ClickHouse and ensures the table exists.
func NewClickHouseStore(cfg config.ClickHouseConfig) (*ClickHouseStore, error) {
	conn, err := connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
	}

	if err := conn.Exec(context.Background(), createTableStatement); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	log.Println("Successfully connected to ClickHouse and ensured table exists.")

	return &ClickHouseStore{conn: conn}, nil
}

func connect(cfg config.ClickHouseConfig) (driver.Conn, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	return conn, nil
}

// WriteBatch inserts a batch of flow records stamped with the given time.
func (s *ClickHouseStore) WriteBatch(ctx context.Context, records []model.FlowRecord, ts time.Time) error {
	if len(records) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, "INSERT INTO flow_records")
	if err != nil {
		return fmt.Errorf("failed to prepare batch: %w", err)
	}

	for _, rec := range records {
		if err := batch.Append(ts, rec.SourceIP, rec.DestinationIP, rec.TotalBytes, rec.Protocol); err != nil {
			return fmt.Errorf("failed to append record to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send batch: %w", err)
	}
	log.Printf("Inserted %d flow records into ClickHouse", len(records))
	return nil
}

// FetchFlows returns up to limit raw flow records observed since the given
// time, oldest first so aggregation tie-breaks stay deterministic.
func (s *ClickHouseStore) FetchFlows(ctx context.Context, since time.Time, limit int) ([]model.FlowRecord, error) {
	query := `
		SELECT SourceIP, DestinationIP, TotalBytes, Protocol
		FROM flow_records
		WHERE Timestamp >= ?
		ORDER BY Timestamp
	`
	args := []interface{}{since}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query flows: %w", err)
	}
	defer rows.Close()

	var records []model.FlowRecord
	for rows.Next() {
		var rec model.FlowRecord
		if err := rows.Scan(&rec.SourceIP, &rec.DestinationIP, &rec.TotalBytes, &rec.Protocol); err != nil {
			return nil, fmt.Errorf("failed to scan flow record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// Close closes the underlying connection.
func (s *ClickHouseStore) Close() error {
	return s.conn.Close()
}
