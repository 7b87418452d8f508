package flights

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateRecordArray(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantLen  int
		wantPath string
	}{
		{
			name:     "top-level array returned as-is",
			doc:      `[{"flight_number":"MH1432"},{"flight_number":"AK5642"}]`,
			wantLen:  2,
			wantPath: "$",
		},
		{
			name:     "empty top-level array is still identity",
			doc:      `[]`,
			wantLen:  0,
			wantPath: "$",
		},
		{
			name:     "single array property",
			doc:      `{"data":[{"flight_number":"MH1432"}]}`,
			wantLen:  1,
			wantPath: "data",
		},
		{
			name: "flight-like keys beat sibling arrays",
			doc: `{
				"meta": ["cached", "2024-05-15"],
				"flights": [{"flight_number": "MH1432"}],
				"warnings": ["stale data"]
			}`,
			wantLen:  1,
			wantPath: "flights",
		},
		{
			name: "airline name alias also qualifies",
			doc: `{
				"codes": [1, 2, 3],
				"rows": [{"airline": "AirAsia"}]
			}`,
			wantLen:  1,
			wantPath: "rows",
		},
		{
			name:     "no qualifying candidate falls back to first array",
			doc:      `{"first":[1,2],"second":[3,4]}`,
			wantLen:  2,
			wantPath: "first",
		},
		{
			name:     "array nested one object level deeper",
			doc:      `{"status":"ok","data":{"arrivals":[{"flight_number":"FD3311"}]}}`,
			wantLen:  1,
			wantPath: "data.arrivals",
		},
		{
			name:     "empty arrays are not candidates",
			doc:      `{"empty":[],"payload":{"list":[{"flight_number":"MH1"}]}}`,
			wantLen:  1,
			wantPath: "payload.list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, path, err := LocateRecordArray(json.RawMessage(tt.doc))
			require.NoError(t, err)
			assert.Len(t, records, tt.wantLen)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestLocateRecordArrayIdentity(t *testing.T) {
	doc := json.RawMessage(`[{"flight_number":"MH1432","origin":{"city":"Kuala Lumpur"}}]`)
	records, _, err := LocateRecordArray(doc)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.JSONEq(t, `{"flight_number":"MH1432","origin":{"city":"Kuala Lumpur"}}`, string(records[0]))
}

func TestLocateRecordArrayNotFound(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no arrays anywhere", `{"status":"ok","count":3}`},
		{"arrays only below depth two", `{"a":{"b":{"c":[1]}}}`},
		{"scalar document", `42`},
		{"string document", `"flights"`},
		{"empty document", ``},
		{"malformed document", `{"flights": [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := LocateRecordArray(json.RawMessage(tt.doc))
			assert.ErrorIs(t, err, ErrShapeNotFound)
		})
	}
}

func TestShapeErrorCarriesDocument(t *testing.T) {
	doc := json.RawMessage(`{"status":"ok"}`)
	_, _, err := LocateRecordArray(doc)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, doc, shapeErr.Doc)
}
