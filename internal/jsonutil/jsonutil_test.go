package jsonutil

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUnmarshalWithContext(t *testing.T) {
	type TestStruct struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`{"name":"test"}`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v TestStruct
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil && !strings.HasPrefix(err.Error(), "test context: ") {
				t.Errorf("UnmarshalWithContext() error = %q, want context prefix", err)
			}
			if !tt.wantErr && v.Name != "test" {
				t.Errorf("UnmarshalWithContext() v.Name = %q, want %q", v.Name, "test")
			}
		})
	}
}

func TestUint32(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint32
		wantErr bool
	}{
		{raw: "0", want: 0},
		{raw: "234", want: 234},
		{raw: " 150 ", want: 150},
		{raw: "4294967295", want: 4294967295},
		{raw: "4294967296", wantErr: true},
		{raw: "-1", wantErr: true},
		{raw: "1.5", wantErr: true},
		{raw: "1e3", wantErr: true},
		{raw: `"5"`, wantErr: true},
		{raw: "null", wantErr: true},
		{raw: "true", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Uint32(json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Uint32(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Uint32(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}
