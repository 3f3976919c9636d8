package models

import "time"

// Observation is one archive observation metadata row returned by a
// target query.
type Observation struct {
	ObsID      string  `json:"obsid"`
	Collection string  `json:"obs_collection"` // mission, e.g. "TESS"
	TargetName string  `json:"target_name"`
	RA         float64 `json:"s_ra"` // degrees
	Dec        float64 `json:"s_dec"`
	Instrument string  `json:"instrument_name"`
	DataType   string  `json:"dataproduct_type"` // e.g. "timeseries"
	ExpTime    float64 `json:"t_exptime"`        // seconds
}

// Product is one downloadable data product associated with an
// observation.
type Product struct {
	ObsID       string `json:"obsid"`
	Collection  string `json:"obs_collection"`
	ProductType string `json:"productType"`                // e.g. "SCIENCE"
	SubGroup    string `json:"productSubGroupDescription"` // e.g. "LC"
	Description string `json:"description"`
	DataURI     string `json:"dataURI"`
	Size        int64  `json:"size"` // bytes, as reported by the archive
}

// ManifestRow records one downloaded product file on local storage.
type ManifestRow struct {
	ID           int       `json:"id"`
	BatchID      string    `json:"batch_id"` // shared by one download run
	DataURI      string    `json:"data_uri"`
	LocalPath    string    `json:"local_path"`
	Size         int64     `json:"size"`
	DownloadedAt time.Time `json:"downloaded_at"`
}
