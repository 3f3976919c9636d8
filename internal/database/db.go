package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/astrolab/starcurve/pkg/models"
)

// DB wraps the database connection
type DB struct {
	conn *sql.DB
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// initSchema creates the necessary tables
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS observations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		obs_id TEXT NOT NULL,
		collection TEXT NOT NULL,
		target_name TEXT NOT NULL,
		ra REAL NOT NULL,
		dec REAL NOT NULL,
		instrument TEXT,
		data_type TEXT,
		exp_time REAL,
		created_at TEXT NOT NULL,
		UNIQUE(obs_id)
	);
	CREATE INDEX IF NOT EXISTS idx_observations_target ON observations(target_name);
	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		obs_id TEXT NOT NULL,
		collection TEXT NOT NULL,
		product_type TEXT,
		sub_group TEXT,
		description TEXT,
		data_uri TEXT NOT NULL,
		size INTEGER DEFAULT 0,
		UNIQUE(data_uri)
	);
	CREATE INDEX IF NOT EXISTS idx_products_obs_id ON products(obs_id);
	CREATE TABLE IF NOT EXISTS manifest (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		batch_id TEXT NOT NULL,
		data_uri TEXT NOT NULL,
		local_path TEXT NOT NULL,
		size INTEGER DEFAULT 0,
		downloaded_at TEXT NOT NULL,
		UNIQUE(local_path)
	);
	CREATE INDEX IF NOT EXISTS idx_manifest_batch ON manifest(batch_id);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// InsertObservation inserts an observation record, ignoring duplicates
func (db *DB) InsertObservation(obs *models.Observation) error {
	query := `
	INSERT OR IGNORE INTO observations (obs_id, collection, target_name, ra, dec, instrument, data_type, exp_time, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := time.Now().UTC().Format(time.RFC3339)
	_, err := db.conn.Exec(query, obs.ObsID, obs.Collection, obs.TargetName,
		obs.RA, obs.Dec, obs.Instrument, obs.DataType, obs.ExpTime, createdAt)
	if err != nil {
		return fmt.Errorf("inserting observation: %w", err)
	}

	return nil
}

// ListObservations retrieves stored observations, optionally filtered by
// target name. An empty target returns all rows.
func (db *DB) ListObservations(target string) ([]models.Observation, error) {
	query := `
	SELECT obs_id, collection, target_name, ra, dec, instrument, data_type, exp_time
	FROM observations
	`
	args := []any{}
	if target != "" {
		query += ` WHERE target_name = ?`
		args = append(args, target)
	}
	query += ` ORDER BY id`

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying observations: %w", err)
	}
	defer rows.Close()

	var results []models.Observation
	for rows.Next() {
		var obs models.Observation
		var instrument, dataType sql.NullString
		var expTime sql.NullFloat64

		if err := rows.Scan(&obs.ObsID, &obs.Collection, &obs.TargetName,
			&obs.RA, &obs.Dec, &instrument, &dataType, &expTime); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		obs.Instrument = instrument.String
		obs.DataType = dataType.String
		obs.ExpTime = expTime.Float64

		results = append(results, obs)
	}

	return results, rows.Err()
}

// InsertProduct inserts a product record, ignoring duplicates
func (db *DB) InsertProduct(p *models.Product) error {
	query := `
	INSERT OR IGNORE INTO products (obs_id, collection, product_type, sub_group, description, data_uri, size)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.conn.Exec(query, p.ObsID, p.Collection, p.ProductType,
		p.SubGroup, p.Description, p.DataURI, p.Size)
	if err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}

	return nil
}

// ListProducts retrieves stored products, optionally filtered by
// observation ID. An empty obsID returns all rows.
func (db *DB) ListProducts(obsID string) ([]models.Product, error) {
	query := `
	SELECT obs_id, collection, product_type, sub_group, description, data_uri, size
	FROM products
	`
	args := []any{}
	if obsID != "" {
		query += ` WHERE obs_id = ?`
		args = append(args, obsID)
	}
	query += ` ORDER BY id`

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var results []models.Product
	for rows.Next() {
		var p models.Product
		var productType, subGroup, description sql.NullString

		if err := rows.Scan(&p.ObsID, &p.Collection, &productType,
			&subGroup, &description, &p.DataURI, &p.Size); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		p.ProductType = productType.String
		p.SubGroup = subGroup.String
		p.Description = description.String

		results = append(results, p)
	}

	return results, rows.Err()
}

// InsertManifestRow records a downloaded file. Re-downloading a file to
// the same path replaces the previous row.
func (db *DB) InsertManifestRow(row *models.ManifestRow) error {
	query := `
	INSERT OR REPLACE INTO manifest (batch_id, data_uri, local_path, size, downloaded_at)
	VALUES (?, ?, ?, ?, ?)
	`

	downloadedAt := row.DownloadedAt.UTC().Format(time.RFC3339)
	_, err := db.conn.Exec(query, row.BatchID, row.DataURI, row.LocalPath, row.Size, downloadedAt)
	if err != nil {
		return fmt.Errorf("inserting manifest row: %w", err)
	}

	return nil
}

// ListManifest retrieves all manifest rows in download order
func (db *DB) ListManifest() ([]models.ManifestRow, error) {
	query := `
	SELECT id, batch_id, data_uri, local_path, size, downloaded_at
	FROM manifest
	ORDER BY id
	`

	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying manifest: %w", err)
	}
	defer rows.Close()

	var results []models.ManifestRow
	for rows.Next() {
		var row models.ManifestRow
		var downloadedAt string

		if err := rows.Scan(&row.ID, &row.BatchID, &row.DataURI,
			&row.LocalPath, &row.Size, &downloadedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		row.DownloadedAt, err = time.Parse(time.RFC3339, downloadedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing downloaded_at: %w", err)
		}

		results = append(results, row)
	}

	return results, rows.Err()
}
