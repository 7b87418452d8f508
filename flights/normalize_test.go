package flights

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zabeliqbal/langkawi-data-hub/models"
)

var testNow = time.Date(2024, 5, 15, 9, 30, 0, 0, time.UTC)

func rawRecords(docs ...string) []json.RawMessage {
	records := make([]json.RawMessage, len(docs))
	for i, d := range docs {
		records[i] = json.RawMessage(d)
	}
	return records
}

func TestNormalizeBasicRecord(t *testing.T) {
	out := Normalize(rawRecords(`{"flight_number":"MH1432","origin":{"city":"Kuala Lumpur"}}`), testNow)
	require.Len(t, out, 1)

	got := out[0]
	assert.Equal(t, "MH1432", got.FlightNumber)
	assert.Equal(t, "Kuala Lumpur", got.Origin)
	assert.Equal(t, "2024-05-15", got.Date)
	assert.Equal(t, models.StatusScheduled, got.Status)
	assert.Equal(t, "", got.AirlineCode)
	assert.Equal(t, "", got.AirlineName)
	assert.Equal(t, "", got.ScheduledTime)
	assert.Equal(t, "", got.EstimatedTime)
	assert.Equal(t, "", got.Terminal)
}

func TestNormalizeEmptyRecordNeverThrows(t *testing.T) {
	out := Normalize(rawRecords(`{}`), testNow)
	require.Len(t, out, 1)

	got := out[0]
	assert.Equal(t, "UNKNOWN-0", got.FlightNumber)
	assert.Equal(t, models.StatusScheduled, got.Status)
	assert.Equal(t, "2024-05-15", got.Date)
	assert.Equal(t, "", got.Origin)
	assert.Equal(t, "", got.Terminal)
	assert.NotEmpty(t, got.ID)
}

func TestNormalizeSynthesizedFlightNumbersUseIndex(t *testing.T) {
	out := Normalize(rawRecords(`{}`, `{}`, `{"flight_number":"AK5642"}`), testNow)
	require.Len(t, out, 3)
	assert.Equal(t, "UNKNOWN-0", out[0].FlightNumber)
	assert.Equal(t, "UNKNOWN-1", out[1].FlightNumber)
	assert.Equal(t, "AK5642", out[2].FlightNumber)
}

func TestNormalizeAliasPriority(t *testing.T) {
	tests := []struct {
		name   string
		record string
		check  func(t *testing.T, got models.FlightArrival)
	}{
		{
			name:   "flight_number beats flightNumber",
			record: `{"flight_number":"MH1","flightNumber":"MH2","flight_id":"MH3"}`,
			check: func(t *testing.T, got models.FlightArrival) {
				assert.Equal(t, "MH1", got.FlightNumber)
			},
		},
		{
			name:   "flight_id used last",
			record: `{"flight_id":"FD3311"}`,
			check: func(t *testing.T, got models.FlightArrival) {
				assert.Equal(t, "FD3311", got.FlightNumber)
			},
		},
		{
			name:   "name beats airline for airline name",
			record: `{"name":"Malaysia Airlines","airline":"MAS"}`,
			check: func(t *testing.T, got models.FlightArrival) {
				assert.Equal(t, "Malaysia Airlines", got.AirlineName)
			},
		},
		{
			name:   "null values are skipped",
			record: `{"flight_number":null,"flightNumber":"AK5642"}`,
			check: func(t *testing.T, got models.FlightArrival) {
				assert.Equal(t, "AK5642", got.FlightNumber)
			},
		},
		{
			name:   "origin string fallback chain",
			record: `{"from":"Singapore"}`,
			check: func(t *testing.T, got models.FlightArrival) {
				assert.Equal(t, "Singapore", got.Origin)
			},
		},
		{
			name:   "departure_airport is the last origin alias",
			record: `{"departure_airport":"Bangkok"}`,
			check: func(t *testing.T, got models.FlightArrival) {
				assert.Equal(t, "Bangkok", got.Origin)
			},
		},
		{
			name:   "origin object without city falls through",
			record: `{"origin":{"iata":"SIN"},"from":"Singapore"}`,
			check: func(t *testing.T, got models.FlightArrival) {
				assert.Equal(t, "Singapore", got.Origin)
			},
		},
		{
			name:   "scheduled and estimated time aliases",
			record: `{"std":"09:30","etd":"09:45"}`,
			check: func(t *testing.T, got models.FlightArrival) {
				assert.Equal(t, "09:30", got.ScheduledTime)
				assert.Equal(t, "09:45", got.EstimatedTime)
			},
		},
		{
			name:   "numeric values keep their JSON spelling",
			record: `{"flight_number":1432,"terminal":1}`,
			check: func(t *testing.T, got models.FlightArrival) {
				assert.Equal(t, "1432", got.FlightNumber)
				assert.Equal(t, "1", got.Terminal)
			},
		},
		{
			name:   "source status wins over the default",
			record: `{"status":"Delayed"}`,
			check: func(t *testing.T, got models.FlightArrival) {
				assert.Equal(t, "Delayed", got.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Normalize(rawRecords(tt.record), testNow)
			require.Len(t, out, 1)
			tt.check(t, out[0])
		})
	}
}

func TestNormalizeIdentifier(t *testing.T) {
	t.Run("source id wins", func(t *testing.T) {
		out := Normalize(rawRecords(`{"id":"abc-123","flight_number":"MH1"}`), testNow)
		assert.Equal(t, "abc-123", out[0].ID)
	})

	t.Run("synthesized id embeds flight number and timestamp", func(t *testing.T) {
		out := Normalize(rawRecords(`{"flight_number":"MH1"}`), testNow)
		want := fmt.Sprintf("live-MH1-%d", testNow.UnixMilli())
		assert.Equal(t, want, out[0].ID)
	})
}

// Normalization with a fixed clock is fully deterministic, including the
// synthesized identifier.
func TestNormalizeIdempotentForFixedClock(t *testing.T) {
	records := rawRecords(`{"flight_number":"MH1432","airline":"Malaysia Airlines"}`, `{}`)
	first := Normalize(records, testNow)
	second := Normalize(records, testNow)
	assert.Equal(t, first, second)
}

func TestNormalizeUndecodableRecordDegrades(t *testing.T) {
	out := Normalize(rawRecords(`"just a string"`, `[1,2]`), testNow)
	require.Len(t, out, 2)
	assert.Equal(t, "UNKNOWN-0", out[0].FlightNumber)
	assert.Equal(t, "UNKNOWN-1", out[1].FlightNumber)
}
