package main

import (
	"errors"
	"regexp"
	"strings"
	"testing"
)

func TestVerifyPrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		want   error
	}{
		{name: "colon separated", prefix: "AA:BB:CC"},
		{name: "no separators", prefix: "aabbcc"},
		{name: "mixed case", prefix: "Aa:bB:0f"},
		{name: "digits only", prefix: "00:11:22"},
		{name: "too short", prefix: "AA:BB", want: ErrPrefixLength},
		{name: "too long", prefix: "AA:BB:CC:DD", want: ErrPrefixLength},
		{name: "empty", prefix: "", want: ErrPrefixLength},
		{name: "only colons", prefix: ":::", want: ErrPrefixLength},
		{name: "non hex letter", prefix: "AA:BB:CG", want: ErrPrefixCharacter},
		{name: "dash separated", prefix: "AA-BB-CC", want: ErrPrefixCharacter},
		{name: "embedded space", prefix: "AA:B :CC", want: ErrPrefixCharacter},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := VerifyPrefix(tc.prefix)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("VerifyPrefix(%q) = %v, want nil", tc.prefix, err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("VerifyPrefix(%q) = %v, want %v", tc.prefix, err, tc.want)
			}
		})
	}
}

var randomMACPattern = regexp.MustCompile(`^AA:BB:CC(:[0-9A-F]{2}){3}$`)

func TestRandomFromPrefixFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		mac := RandomFromPrefix("AA:BB:CC")
		if !randomMACPattern.MatchString(mac) {
			t.Fatalf("RandomFromPrefix returned %q, want prefix plus three hex octets", mac)
		}
	}
}

func TestRecordRandomFromPrefix(t *testing.T) {
	record := &VendorRecord{Prefix: "00:50:56", Vendor: "VMware"}
	mac := record.RandomFromPrefix()
	if !strings.HasPrefix(mac, "00:50:56:") {
		t.Fatalf("record address %q does not keep the vendor prefix", mac)
	}
	if len(mac) != 17 {
		t.Fatalf("record address %q has length %d, want 17", mac, len(mac))
	}
}

func TestRandomFromPrefixCoversAllOctetValues(t *testing.T) {
	// Every byte value must be reachable, including 0xFF.
	seen := make(map[string]bool)
	for i := 0; i < 100000 && len(seen) < 256; i++ {
		mac := RandomFromPrefix("AA:BB:CC")
		for _, octet := range strings.Split(mac, ":")[3:] {
			seen[octet] = true
		}
	}
	if len(seen) != 256 {
		t.Fatalf("observed %d of 256 octet values", len(seen))
	}
}

func TestAdapterByName(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr error
	}{
		{name: "exact", source: "maclookupapp"},
		{name: "mixed case", source: "MacLookupApp"},
		{name: "upper case", source: "MACLOOKUPAPP"},
		{name: "unknown", source: "totallyUnknownSource", wantErr: ErrUnknownSource},
		{name: "empty", source: "", wantErr: ErrUnknownSource},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			adapter, err := AdapterByName(tc.source)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("AdapterByName(%q) = %v, want %v", tc.source, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("AdapterByName(%q) = %v, want nil", tc.source, err)
			}
			if adapter == nil {
				t.Fatalf("AdapterByName(%q) returned nil adapter", tc.source)
			}
		})
	}
}

func TestMacLookupAppDecode(t *testing.T) {
	payload := []byte(`[
		{"macPrefix":"AA:BB:CC","vendorName":"Acme","private":false,"blockType":"MA-L"},
		{"macPrefix":"DD:EE:FF","vendorName":"Initech","private":true,"blockType":"MA-S"}
	]`)

	records, err := macLookupApp{}.Decode(payload)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("decoded %d records, want 2", len(records))
	}

	want := []VendorRecord{
		{Prefix: "AA:BB:CC", Vendor: "Acme", Private: false, BlockType: "MA-L", SourceFormat: sourceMacLookupApp},
		{Prefix: "DD:EE:FF", Vendor: "Initech", Private: true, BlockType: "MA-S", SourceFormat: sourceMacLookupApp},
	}
	for i, record := range records {
		if record != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, record, want[i])
		}
	}
}

func TestMacLookupAppDecodeMalformed(t *testing.T) {
	_, err := macLookupApp{}.Decode([]byte(`{"not":"an array"}`))
	if !errors.Is(err, ErrConvert) {
		t.Fatalf("Decode of malformed payload = %v, want %v", err, ErrConvert)
	}
}

func TestMacLookupAppEncodeRoundTrip(t *testing.T) {
	records := []VendorRecord{
		{Prefix: "AA:BB:CC", Vendor: "Acme", BlockType: "MA-L", SourceFormat: sourceMacLookupApp},
		{Prefix: "AA:BB:CC", Vendor: "Acme Duplicate", BlockType: "MA-L", SourceFormat: sourceMacLookupApp},
		{Prefix: "0A:00:27", Vendor: "Oracle", Private: true, BlockType: "MA-M", SourceFormat: sourceMacLookupApp},
	}

	data, err := macLookupApp{}.Encode(records)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := macLookupApp{}.Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if len(decoded) != len(records) {
		t.Fatalf("round trip produced %d records, want %d", len(decoded), len(records))
	}
	for i := range records {
		if decoded[i] != records[i] {
			t.Errorf("record %d = %+v, want %+v", i, decoded[i], records[i])
		}
	}
}
