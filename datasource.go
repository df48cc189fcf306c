package main

import (
	"fmt"
	"io"
	"net/http"
)

// DataSource describes where to fetch the vendor database and which adapter
// understands its format.
type DataSource struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// FetchInformation downloads the vendor database and converts it with the
// adapter named by the datasource. The adapter is resolved before any
// network work so an unknown name fails immediately.
func (d *DataSource) FetchInformation() ([]VendorRecord, error) {
	adapter, err := AdapterByName(d.Name)
	if err != nil {
		return nil, err
	}

	resp, err := http.Get(d.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrFetch, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return adapter.Decode(data)
}
