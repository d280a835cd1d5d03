package tabular

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ONSdigital/log.go/v2/log"
	"github.com/pkg/errors"
)

//go:generate moq -out mocks_tabular.go . HTTPClient

// HTTPClient is the subset of the dp-net http client used to fetch tables
type HTTPClient interface {
	Get(ctx context.Context, url string) (*http.Response, error)
}

// Row is a single table row keyed by header name
type Row map[string]string

// StatusError is returned when the upstream responds with a non-2xx status
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d fetching %s", e.StatusCode, e.URL)
}

// Code returns the upstream status code
func (e *StatusError) Code() int {
	return e.StatusCode
}

// Downloader fetches CSV tables over HTTP
type Downloader struct {
	client HTTPClient
}

// NewDownloader creates a Downloader using the given http client
func NewDownloader(client HTTPClient) *Downloader {
	return &Downloader{client: client}
}

// GetTabularRows fetches the CSV at url and returns its rows, using the first
// line as the header
func (d *Downloader) GetTabularRows(ctx context.Context, url string) ([]Row, error) {
	logData := log.Data{"url": url}

	resp, err := d.client.Get(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s", url)
	}
	defer closeBody(ctx, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	rows, err := ReadRows(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read table from %s", url)
	}

	logData["rows"] = len(rows)
	log.Info(ctx, "fetched table", logData)

	return rows, nil
}

// ReadRows parses CSV content with a header line into rows. Short records are
// padded with empty values.
func ReadRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []Row{}, nil
	}
	if err != nil {
		return nil, err
	}

	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	rows := []Row{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) > len(header) {
			return nil, fmt.Errorf("record on line %d has %d fields, header has %d", len(rows)+2, len(record), len(header))
		}

		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func closeBody(ctx context.Context, body io.ReadCloser) {
	if body == nil {
		return
	}
	if err := body.Close(); err != nil {
		log.Error(ctx, "error closing http response body", err)
	}
}
