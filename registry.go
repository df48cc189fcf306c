package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// VendorRegistry holds the vendor records in registry order along with the
// snapshot location and the adapter defining the on-disk format. Registry
// order is the tie-break for ambiguous lookups, the first match wins.
type VendorRegistry struct {
	records []VendorRecord
	path    string
	adapter SourceAdapter
}

func NewVendorRegistry(path string, adapter SourceAdapter, records []VendorRecord) *VendorRegistry {
	return &VendorRegistry{
		records: records,
		path:    path,
		adapter: adapter,
	}
}

// Len reports the number of vendor records.
func (v *VendorRegistry) Len() int {
	return len(v.records)
}

// LookupByPrefix returns the first record whose prefix starts the given
// address, comparing case-insensitively. The address must already be in
// colon-delimited hex form, no other normalization is done.
func (v *VendorRegistry) LookupByPrefix(address string) *VendorRecord {
	address = strings.ToUpper(address)
	for i := range v.records {
		if strings.HasPrefix(address, strings.ToUpper(v.records[i].Prefix)) {
			return &v.records[i]
		}
	}
	return nil
}

// LookupByVendor returns the first record whose vendor name contains the
// given string, case-insensitively.
func (v *VendorRegistry) LookupByVendor(name string) *VendorRecord {
	name = strings.ToLower(name)
	for i := range v.records {
		if strings.Contains(strings.ToLower(v.records[i].Vendor), name) {
			return &v.records[i]
		}
	}
	return nil
}

// SearchByVendor returns every record whose vendor name contains the given
// string, in registry order.
func (v *VendorRegistry) SearchByVendor(name string) []VendorRecord {
	name = strings.ToLower(name)
	var matches []VendorRecord
	for i := range v.records {
		if strings.Contains(strings.ToLower(v.records[i].Vendor), name) {
			matches = append(matches, v.records[i])
		}
	}
	return matches
}

// Save writes the full record list to the snapshot path in the adapter's
// native format.
func (v *VendorRegistry) Save() error {
	data, err := v.adapter.Encode(v.records)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err = WriteFileAtomic(v.path, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

// LoadOrFetch builds a registry from the snapshot at path, downloading and
// persisting a fresh copy when no snapshot exists yet. A snapshot that
// exists but cannot be decoded is a fatal read error, never re-fetched.
func LoadOrFetch(ds *DataSource, path string) (*VendorRegistry, error) {
	adapter, err := AdapterByName(ds.Name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err == nil {
		records, derr := adapter.Decode(data)
		if derr != nil {
			return nil, fmt.Errorf("failed to read database %s: %w", path, derr)
		}
		return NewVendorRegistry(path, adapter, records), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read database %s: %w", path, err)
	}

	fmt.Println("Database not found, downloading...")
	records, err := ds.FetchInformation()
	if err != nil {
		return nil, err
	}

	registry := NewVendorRegistry(path, adapter, records)
	if err = registry.Save(); err != nil {
		return nil, err
	}
	log.Debugf("Persisted fresh database to %s.", path)

	fmt.Printf("Database downloaded, found %d entries!\n", registry.Len())
	return registry, nil
}

// setupRegistry resolves the configured datasource and database paths and
// loads the registry, fetching when no snapshot is present.
func setupRegistry() (*VendorRegistry, error) {
	dsPath, err := DatasourcePath()
	if err != nil {
		return nil, err
	}
	ds, err := SetupDataSource(dsPath)
	if err != nil {
		return nil, err
	}

	dbPath, err := DatabasePath()
	if err != nil {
		return nil, err
	}
	return LoadOrFetch(ds, dbPath)
}
