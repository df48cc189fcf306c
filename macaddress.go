package main

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"strings"
)

// VendorRecord is a single vendor allocation from the MAC address registry.
// Records are created by a SourceAdapter or decoded from the persisted
// database and never modified afterwards.
type VendorRecord struct {
	Prefix    string
	Vendor    string
	Private   bool
	BlockType string

	// SourceFormat names the adapter that produced the record. Only one
	// format exists today, the tag is reserved for future providers.
	SourceFormat string
}

// RandomFromPrefix derives a full MAC address from the record's vendor prefix.
func (r *VendorRecord) RandomFromPrefix() string {
	return RandomFromPrefix(r.Prefix)
}

// RandomFromPrefix appends three random octets to the given prefix. Each
// octet is uniform over the full 0x00-0xFF range.
func RandomFromPrefix(prefix string) string {
	var octets [3]byte
	rand.Read(octets[:])
	return fmt.Sprintf("%s:%02X:%02X:%02X", prefix, octets[0], octets[1], octets[2])
}

// VerifyPrefix checks that a user supplied prefix is three octets of hex,
// with or without colon separators. Prefixes from the database are trusted
// and not re-checked.
func VerifyPrefix(prefix string) error {
	stripped := strings.ReplaceAll(prefix, ":", "")
	if len(stripped) != 6 {
		return fmt.Errorf("%w: %q", ErrPrefixLength, prefix)
	}
	for _, c := range stripped {
		if !isHexDigit(c) {
			return fmt.Errorf("%w: %q", ErrPrefixCharacter, prefix)
		}
	}
	return nil
}

func isHexDigit(c rune) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// SourceAdapter converts between the internal record list and one provider's
// native payload format. Encode writes the same shape Decode reads, so the
// persisted database stays in the provider's own format.
type SourceAdapter interface {
	Decode(data []byte) ([]VendorRecord, error)
	Encode(records []VendorRecord) ([]byte, error)
}

const sourceMacLookupApp = "maclookupapp"

// Known adapters, keyed by lower-case datasource name. New providers register
// here rather than branching in existing logic.
var sourceAdapters = map[string]SourceAdapter{
	sourceMacLookupApp: macLookupApp{},
}

// AdapterByName resolves a datasource name to its adapter, case-insensitively.
func AdapterByName(name string) (SourceAdapter, error) {
	adapter, ok := sourceAdapters[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
	return adapter, nil
}

// The maclookup.app JSON database format.
type macLookupApp struct{}

type macLookupAppRecord struct {
	MacPrefix  string `json:"macPrefix"`
	VendorName string `json:"vendorName"`
	Private    bool   `json:"private"`
	BlockType  string `json:"blockType"`
}

func (macLookupApp) Decode(data []byte) ([]VendorRecord, error) {
	var entries []macLookupAppRecord
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConvert, err)
	}

	records := make([]VendorRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, VendorRecord{
			Prefix:       entry.MacPrefix,
			Vendor:       entry.VendorName,
			Private:      entry.Private,
			BlockType:    entry.BlockType,
			SourceFormat: sourceMacLookupApp,
		})
	}
	return records, nil
}

func (macLookupApp) Encode(records []VendorRecord) ([]byte, error) {
	entries := make([]macLookupAppRecord, 0, len(records))
	for _, record := range records {
		entries = append(entries, macLookupAppRecord{
			MacPrefix:  record.Prefix,
			VendorName: record.Vendor,
			Private:    record.Private,
			BlockType:  record.BlockType,
		})
	}
	return json.Marshal(entries)
}
