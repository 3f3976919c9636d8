// Package archive implements a client for a MAST-style astronomical
// archive API: cone-search queries by target name, product listings for
// a set of observations, and product file downloads.
package archive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/astrolab/starcurve/pkg/models"
	"github.com/astrolab/starcurve/pkg/units"
)

const (
	observationsPath = "/api/v0.1/observations"
	productsPath     = "/api/v0.1/products"
	downloadPath     = "/api/v0.1/download/file"
)

// NetworkError represents a connectivity failure before any response was
// received from the archive.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("archive unreachable at %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServiceError represents an error response returned by the archive.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("archive returned status %d: %s", e.StatusCode, e.Message)
}

// DownloadError represents a failure to retrieve a single product file.
type DownloadError struct {
	DataURI string
	Err     error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("downloading %s: %v", e.DataURI, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// Client queries a remote archive service
type Client struct {
	http *resty.Client
}

// New creates a new archive client for the given API base URL
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

type observationsResponse struct {
	Data []models.Observation `json:"data"`
}

type productsResponse struct {
	Data []models.Product `json:"data"`
}

// QueryByName performs a cone search around a named target. The radius
// must be an angular quantity; it is converted to degrees for the API.
// A target with no catalogued observations yields an empty list, not an
// error.
func (c *Client) QueryByName(ctx context.Context, target string, radius units.Quantity) ([]models.Observation, error) {
	radiusDeg, err := radius.To(units.Degree)
	if err != nil {
		return nil, fmt.Errorf("search radius: %w", err)
	}

	var result observationsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("target", target).
		SetQueryParam("radius", fmt.Sprintf("%g", radiusDeg.Value)).
		SetResult(&result).
		Get(observationsPath)
	if err != nil {
		return nil, &NetworkError{URL: c.http.BaseURL + observationsPath, Err: err}
	}
	if resp.IsError() {
		return nil, &ServiceError{StatusCode: resp.StatusCode(), Message: resp.String()}
	}

	return result.Data, nil
}

// ListProducts fetches the downloadable products for a set of
// observations, keyed by their observation IDs.
func (c *Client) ListProducts(ctx context.Context, observations []models.Observation) ([]models.Product, error) {
	if len(observations) == 0 {
		return nil, nil
	}

	obsids := make([]string, 0, len(observations))
	for _, obs := range observations {
		obsids = append(obsids, obs.ObsID)
	}

	var result productsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("obsid", strings.Join(obsids, ",")).
		SetResult(&result).
		Get(productsPath)
	if err != nil {
		return nil, &NetworkError{URL: c.http.BaseURL + productsPath, Err: err}
	}
	if resp.IsError() {
		return nil, &ServiceError{StatusCode: resp.StatusCode(), Message: resp.String()}
	}

	return result.Data, nil
}

// Download fetches each product file into dir, overwriting existing
// files of the same name. When some files fail the batch continues: the
// returned manifest covers the files that were retrieved and the error
// joins one DownloadError per failed file.
func (c *Client) Download(ctx context.Context, products []models.Product, dir string) ([]models.ManifestRow, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating download directory: %w", err)
	}

	batchID := uuid.NewString()
	var manifest []models.ManifestRow
	var failures []error

	for _, p := range products {
		localPath := filepath.Join(dir, path.Base(p.DataURI))
		size, err := c.downloadFile(ctx, p.DataURI, localPath)
		if err != nil {
			failures = append(failures, &DownloadError{DataURI: p.DataURI, Err: err})
			continue
		}

		manifest = append(manifest, models.ManifestRow{
			BatchID:      batchID,
			DataURI:      p.DataURI,
			LocalPath:    localPath,
			Size:         size,
			DownloadedAt: time.Now().UTC(),
		})
	}

	return manifest, errors.Join(failures...)
}

// downloadFile retrieves one product file and writes it to localPath.
func (c *Client) downloadFile(ctx context.Context, dataURI, localPath string) (int64, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("uri", dataURI).
		Get(downloadPath)
	if err != nil {
		return 0, &NetworkError{URL: c.http.BaseURL + downloadPath, Err: err}
	}
	if resp.IsError() {
		return 0, &ServiceError{StatusCode: resp.StatusCode(), Message: resp.String()}
	}

	body := resp.Body()
	if err := os.WriteFile(localPath, body, 0644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", localPath, err)
	}

	return int64(len(body)), nil
}
